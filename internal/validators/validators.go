package validators

import (
	"fmt"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// AllowedTermYears - допустимые сроки ипотеки
var AllowedTermYears = []int{15, 20, 25, 30}

// ValidateNumber проверяет, что число конечное и в допустимом диапазоне
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// ValidateIntOneOf проверяет, что целое число входит в список допустимых
func ValidateIntOneOf(name string, value int, allowed []int) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: значение должно быть одним из %v", name, allowed)
}

// CheckHomePrice проверяет цену жилья. Ноль допустим: такой ввод дает "нет результата".
func CheckHomePrice(cfg *config.Config, price float64) error {
	return ValidateNumber("home_price", price, 0, cfg.MaxHomePrice)
}

// CheckDownPayment проверяет, что взнос не превышает цену жилья
func CheckDownPayment(cfg *config.Config, downPayment, homePrice float64) error {
	if err := ValidateNumber("down_payment", downPayment, 0, cfg.MaxHomePrice); err != nil {
		return err
	}
	if downPayment > homePrice {
		return fmt.Errorf("down_payment: взнос не может превышать цену жилья")
	}
	return nil
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumber("interest_rate_percent", rate, 0, cfg.MaxRate)
}

// CheckTermYears проверяет срок ипотеки
func CheckTermYears(termYears int) error {
	return ValidateIntOneOf("term_years", termYears, AllowedTermYears)
}

// CheckHorizon проверяет горизонт прогноза
func CheckHorizon(years int) error {
	return ValidateIntRange("horizon_years", years, 1, calculations.MaxBreakEvenYears)
}

// CheckMonthlyRent проверяет арендную плату. Ноль допустим, как и для цены.
func CheckMonthlyRent(cfg *config.Config, rent float64) error {
	return ValidateNumber("monthly_rent", rent, 0, cfg.MaxMonthlyRent)
}

// CheckCost проверяет неотрицательный расход
func CheckCost(cfg *config.Config, name string, cost float64) error {
	return ValidateNumber(name, cost, 0, cfg.MaxCost)
}

// CheckGrowthPercent проверяет процент роста (может быть отрицательным)
func CheckGrowthPercent(cfg *config.Config, name string, pct float64) error {
	return ValidateNumber(name, pct, -cfg.MaxPercent, cfg.MaxPercent)
}

// CheckPercent проверяет неотрицательный процент
func CheckPercent(cfg *config.Config, name string, pct float64) error {
	return ValidateNumber(name, pct, 0, cfg.MaxPercent)
}

// CheckInputs проверяет полный набор входных данных и возвращает первую ошибку
func CheckInputs(cfg *config.Config, in calculations.Inputs) error {
	checks := []func() error{
		func() error { return CheckHomePrice(cfg, in.Loan.HomePrice) },
		func() error { return CheckDownPayment(cfg, in.Loan.DownPayment, in.Loan.HomePrice) },
		func() error { return CheckRate(cfg, in.Loan.InterestRatePct) },
		func() error { return CheckTermYears(in.Loan.TermYears) },
		func() error { return CheckCost(cfg, "property_tax_annual", in.Carrying.PropertyTaxAnnual) },
		func() error { return CheckCost(cfg, "home_insurance_annual", in.Carrying.HomeInsuranceAnnual) },
		func() error { return CheckCost(cfg, "pmi_monthly", in.Carrying.PMIMonthly) },
		func() error { return CheckCost(cfg, "maintenance_annual", in.Carrying.MaintenanceAnnual) },
		func() error { return CheckCost(cfg, "closing_costs", in.Carrying.ClosingCosts) },
		func() error { return CheckMonthlyRent(cfg, in.Rent.MonthlyRent) },
		func() error { return CheckGrowthPercent(cfg, "annual_rent_increase_percent", in.Rent.AnnualIncreasePct) },
		func() error { return CheckCost(cfg, "renters_insurance_annual", in.Rent.RentersInsuranceAnnual) },
		func() error { return CheckCost(cfg, "security_deposit", in.Rent.SecurityDeposit) },
		func() error { return CheckHorizon(in.Assumptions.HorizonYears) },
		func() error { return CheckGrowthPercent(cfg, "home_appreciation_percent", in.Assumptions.HomeAppreciationPct) },
		func() error { return CheckGrowthPercent(cfg, "investment_return_percent", in.Assumptions.InvestmentReturnPct) },
		func() error { return CheckPercent(cfg, "marginal_tax_rate_percent", in.Assumptions.MarginalTaxRatePct) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
