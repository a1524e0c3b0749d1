package validators

import (
	"math"
	"testing"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		check     func() error
		wantError bool
	}{
		{"valid home price", func() error { return CheckHomePrice(cfg, 400000) }, false},
		{"zero home price passes to engine guard", func() error { return CheckHomePrice(cfg, 0) }, false},
		{"negative home price", func() error { return CheckHomePrice(cfg, -1) }, true},
		{"NaN home price", func() error { return CheckHomePrice(cfg, math.NaN()) }, true},
		{"home price over limit", func() error { return CheckHomePrice(cfg, cfg.MaxHomePrice*2) }, true},
		{"valid down payment", func() error { return CheckDownPayment(cfg, 80000, 400000) }, false},
		{"down payment above price", func() error { return CheckDownPayment(cfg, 500000, 400000) }, true},
		{"valid rate", func() error { return CheckRate(cfg, 7) }, false},
		{"zero rate", func() error { return CheckRate(cfg, 0) }, false},
		{"negative rate", func() error { return CheckRate(cfg, -1) }, true},
		{"allowed term", func() error { return CheckTermYears(30) }, false},
		{"unsupported term", func() error { return CheckTermYears(12) }, true},
		{"horizon lower bound", func() error { return CheckHorizon(1) }, false},
		{"horizon zero", func() error { return CheckHorizon(0) }, true},
		{"horizon too long", func() error { return CheckHorizon(31) }, true},
		{"negative appreciation", func() error { return CheckGrowthPercent(cfg, "home_appreciation_percent", -3) }, false},
		{"negative tax rate", func() error { return CheckPercent(cfg, "marginal_tax_rate_percent", -3) }, true},
		{"infinite cost", func() error { return CheckCost(cfg, "closing_costs", math.Inf(1)) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestCheckInputs(t *testing.T) {
	cfg, _ := config.LoadConfig()

	if err := CheckInputs(cfg, calculations.DefaultInputs()); err != nil {
		t.Fatalf("default inputs should be valid: %v", err)
	}

	in := calculations.DefaultInputs()
	in.Carrying.PMIMonthly = -5
	if err := CheckInputs(cfg, in); err == nil {
		t.Error("expected error for negative PMI")
	}

	in = calculations.DefaultInputs()
	in.Assumptions.HorizonYears = 0
	if err := CheckInputs(cfg, in); err == nil {
		t.Error("expected error for zero horizon")
	}
}
