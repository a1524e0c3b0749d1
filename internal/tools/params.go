package tools

import (
	"errors"
	"fmt"
	"math"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
)

// ErrInvalidParameter - параметр отсутствует или имеет неверный тип
var ErrInvalidParameter = errors.New("invalid parameter")

func requireFloat(params map[string]interface{}, name string) (float64, error) {
	raw, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	value, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	return value, nil
}

// optionalFloat возвращает 0 для отсутствующего или пустого значения
func optionalFloat(params map[string]interface{}, name string) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, nil
	}
	value, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	if math.IsNaN(value) {
		return 0, nil
	}
	return value, nil
}

func requireInt(params map[string]interface{}, name string) (int, error) {
	value, err := requireFloat(params, name)
	if err != nil {
		return 0, err
	}
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidParameter, name)
	}
	return int(value), nil
}

func optionalInt(params map[string]interface{}, name string) (int, error) {
	if _, ok := params[name]; !ok {
		return 0, nil
	}
	return requireInt(params, name)
}

// InputsFromParams собирает входные данные калькулятора из плоского набора параметров.
// Необязательные суммы по умолчанию равны нулю; down_payment_percent заменяет down_payment.
func InputsFromParams(params map[string]interface{}) (calculations.Inputs, error) {
	var in calculations.Inputs
	var err error

	if in.Loan.HomePrice, err = requireFloat(params, "home_price"); err != nil {
		return in, err
	}
	if in.Loan.InterestRatePct, err = requireFloat(params, "interest_rate_percent"); err != nil {
		return in, err
	}
	if in.Loan.TermYears, err = requireInt(params, "term_years"); err != nil {
		return in, err
	}
	if in.Rent.MonthlyRent, err = requireFloat(params, "monthly_rent"); err != nil {
		return in, err
	}

	if _, ok := params["down_payment_percent"]; ok {
		pct, err := requireFloat(params, "down_payment_percent")
		if err != nil {
			return in, err
		}
		in.Loan.DownPayment = calculations.DownPaymentFromPercent(in.Loan.HomePrice, pct)
	} else if in.Loan.DownPayment, err = optionalFloat(params, "down_payment"); err != nil {
		return in, err
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"property_tax_annual", &in.Carrying.PropertyTaxAnnual},
		{"home_insurance_annual", &in.Carrying.HomeInsuranceAnnual},
		{"pmi_monthly", &in.Carrying.PMIMonthly},
		{"maintenance_annual", &in.Carrying.MaintenanceAnnual},
		{"closing_costs", &in.Carrying.ClosingCosts},
		{"annual_rent_increase_percent", &in.Rent.AnnualIncreasePct},
		{"renters_insurance_annual", &in.Rent.RentersInsuranceAnnual},
		{"security_deposit", &in.Rent.SecurityDeposit},
		{"home_appreciation_percent", &in.Assumptions.HomeAppreciationPct},
		{"investment_return_percent", &in.Assumptions.InvestmentReturnPct},
		{"marginal_tax_rate_percent", &in.Assumptions.MarginalTaxRatePct},
	}
	for _, f := range floats {
		if *f.dst, err = optionalFloat(params, f.name); err != nil {
			return in, err
		}
	}

	if in.Assumptions.HorizonYears, err = optionalInt(params, "horizon_years"); err != nil {
		return in, err
	}

	return in, nil
}

// ParamsFromInputs - обратное преобразование, используется клиентами и CLI
func ParamsFromInputs(in calculations.Inputs) map[string]interface{} {
	return map[string]interface{}{
		"home_price":                   in.Loan.HomePrice,
		"down_payment":                 in.Loan.DownPayment,
		"interest_rate_percent":        in.Loan.InterestRatePct,
		"term_years":                   float64(in.Loan.TermYears),
		"property_tax_annual":          in.Carrying.PropertyTaxAnnual,
		"home_insurance_annual":        in.Carrying.HomeInsuranceAnnual,
		"pmi_monthly":                  in.Carrying.PMIMonthly,
		"maintenance_annual":           in.Carrying.MaintenanceAnnual,
		"closing_costs":                in.Carrying.ClosingCosts,
		"monthly_rent":                 in.Rent.MonthlyRent,
		"annual_rent_increase_percent": in.Rent.AnnualIncreasePct,
		"renters_insurance_annual":     in.Rent.RentersInsuranceAnnual,
		"security_deposit":             in.Rent.SecurityDeposit,
		"horizon_years":                float64(in.Assumptions.HorizonYears),
		"home_appreciation_percent":    in.Assumptions.HomeAppreciationPct,
		"investment_return_percent":    in.Assumptions.InvestmentReturnPct,
		"marginal_tax_rate_percent":    in.Assumptions.MarginalTaxRatePct,
	}
}
