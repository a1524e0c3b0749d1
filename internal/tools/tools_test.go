package tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloud-ru/rentbuy-go/internal/cache"
	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func testDeps(t *testing.T, c cache.Cache) Deps {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return Deps{
		Config: cfg,
		Tracer: noop.NewTracerProvider().Tracer("test"),
		Cache:  c,
	}
}

func defaultParams() map[string]interface{} {
	return ParamsFromInputs(calculations.DefaultInputs())
}

func TestProjectionHandler(t *testing.T) {
	handler := ProjectionHandler(testDeps(t, nil))

	out, err := handler(context.Background(), defaultParams())
	require.NoError(t, err)

	result, ok := out.(*calculations.ProjectionResult)
	require.True(t, ok, "unexpected result type %T", out)
	assert.Equal(t, 40200.28, result.NetDifference)
	assert.Equal(t, 13, result.BreakEvenYears)
	assert.Equal(t, calculations.OptionRenting, result.Verdict.BetterOption)
}

func TestProjectionHandler_Errors(t *testing.T) {
	handler := ProjectionHandler(testDeps(t, nil))

	tests := []struct {
		name    string
		modify  func(map[string]interface{})
		wantErr error
	}{
		{"missing home price", func(p map[string]interface{}) { delete(p, "home_price") }, ErrInvalidParameter},
		{"rent as string", func(p map[string]interface{}) { p["monthly_rent"] = "2500" }, ErrInvalidParameter},
		{"fractional term", func(p map[string]interface{}) { p["term_years"] = 30.5 }, ErrInvalidParameter},
		{"negative tax", func(p map[string]interface{}) { p["property_tax_annual"] = -1.0 }, ErrValidation},
		{"unsupported term", func(p map[string]interface{}) { p["term_years"] = 12.0 }, ErrValidation},
		{"missing horizon", func(p map[string]interface{}) { delete(p, "horizon_years") }, ErrValidation},
		{"zero rent", func(p map[string]interface{}) { p["monthly_rent"] = 0.0 }, calculations.ErrNoResult},
		{"zero home price", func(p map[string]interface{}) {
			p["home_price"] = 0.0
			p["down_payment"] = 0.0
		}, calculations.ErrNoResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultParams()
			tt.modify(params)

			out, err := handler(context.Background(), params)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr), "got error %v, want %v", err, tt.wantErr)
		})
	}
}

func TestProjectionHandler_DownPaymentPercent(t *testing.T) {
	handler := ProjectionHandler(testDeps(t, nil))

	params := defaultParams()
	delete(params, "down_payment")
	params["down_payment_percent"] = 20.0

	out, err := handler(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 320000.0, out.(*calculations.ProjectionResult).LoanAmount)
}

func TestProjectionHandler_Cache(t *testing.T) {
	mem := cache.NewMemoryCache(time.Minute, 100)
	handler := ProjectionHandler(testDeps(t, mem))

	first, err := handler(context.Background(), defaultParams())
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Len())

	second, err := handler(context.Background(), defaultParams())
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Len())
	assert.Equal(t, first, second)
}

func TestProjectionHandler_CacheBounded(t *testing.T) {
	mem := cache.NewMemoryCache(time.Minute, 50)
	handler := ProjectionHandler(testDeps(t, mem))

	for i := 0; i < 500; i++ {
		params := defaultParams()
		params["monthly_rent"] = 2500.0 + float64(i)*0.01
		_, err := handler(context.Background(), params)
		require.NoError(t, err)
	}

	assert.Equal(t, 50, mem.Len())
}

func TestBreakEvenHandler(t *testing.T) {
	handler := BreakEvenHandler(testDeps(t, nil))

	params := defaultParams()
	delete(params, "horizon_years")

	out, err := handler(context.Background(), params)
	require.NoError(t, err)

	result := out.(*BreakEvenResult)
	assert.Equal(t, 13, result.BreakEvenYears)
	assert.False(t, result.Saturated)
	assert.LessOrEqual(t, result.NetBuyCost, result.NetRentCost)
}

func TestBreakEvenHandler_Saturated(t *testing.T) {
	handler := BreakEvenHandler(testDeps(t, nil))

	params := defaultParams()
	params["monthly_rent"] = 500.0
	params["annual_rent_increase_percent"] = 0.0

	out, err := handler(context.Background(), params)
	require.NoError(t, err)

	result := out.(*BreakEvenResult)
	assert.Equal(t, calculations.MaxBreakEvenYears, result.BreakEvenYears)
	assert.True(t, result.Saturated)
}

func TestBreakEvenHandler_LastYear(t *testing.T) {
	handler := BreakEvenHandler(testDeps(t, nil))

	params := defaultParams()
	params["monthly_rent"] = 1480.0

	out, err := handler(context.Background(), params)
	require.NoError(t, err)

	result := out.(*BreakEvenResult)
	assert.Equal(t, calculations.MaxBreakEvenYears, result.BreakEvenYears)
	assert.False(t, result.Saturated)
	assert.LessOrEqual(t, result.NetBuyCost, result.NetRentCost)
}

func TestMortgageHandler(t *testing.T) {
	handler := MortgageHandler(testDeps(t, nil))

	out, err := handler(context.Background(), map[string]interface{}{
		"principal":             300000.0,
		"interest_rate_percent": 7.0,
		"term_years":            30.0,
	})
	require.NoError(t, err)

	summary := out.(*calculations.MortgageSummary)
	assert.Equal(t, 1995.91, summary.MonthlyPayment)
	assert.Len(t, summary.Schedule, 30)

	_, err = handler(context.Background(), map[string]interface{}{
		"principal":             0.0,
		"interest_rate_percent": 7.0,
		"term_years":            30.0,
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestHandlers(t *testing.T) {
	handlers := Handlers(testDeps(t, nil))
	assert.Len(t, handlers, 3)
	assert.Contains(t, handlers, ToolProjection)
	assert.Contains(t, handlers, ToolBreakEven)
	assert.Contains(t, handlers, ToolMortgage)
}
