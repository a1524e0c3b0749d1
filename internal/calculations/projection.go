package calculations

import (
	"errors"

	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// ErrNoResult возвращается, когда входные данные не позволяют построить прогноз
var ErrNoResult = errors.New("enter valid values: home price and monthly rent must be positive")

// Ready сообщает, достаточно ли входных данных для расчета
func Ready(in Inputs) bool {
	return in.Loan.HomePrice > 0 && in.Rent.MonthlyRent > 0
}

// DownPaymentFromPercent переводит первоначальный взнос из процентов в сумму
func DownPaymentFromPercent(homePrice, percent float64) float64 {
	return homePrice * percent / 100.0
}

// Compute выполняет полный расчет: симуляция на горизонте, поиск
// безубыточности и рекомендация. Функция чистая и не хранит состояние
// между вызовами.
func Compute(in Inputs) (*ProjectionResult, error) {
	if !Ready(in) {
		return nil, ErrNoResult
	}

	horizon := in.Assumptions.HorizonYears
	sim := Simulate(in, horizon)
	breakEven, reached := BreakEven(in)
	verdict := Compare(sim.NetDifference)
	opportunity := InvestmentGrowth(in.Loan.DownPayment, in.Assumptions.InvestmentReturnPct, horizon)

	years := make([]YearSnapshot, len(sim.Years))
	for i, y := range sim.Years {
		years[i] = YearSnapshot{
			Year:               y.Year,
			MortgageBalance:    utils.Round2(y.MortgageBalance),
			HomeValue:          utils.Round2(y.HomeValue),
			CumulativeBuyCost:  utils.Round2(y.CumulativeBuyCost),
			CumulativeRentCost: utils.Round2(y.CumulativeRentCost),
			CurrentRent:        utils.Round2(y.CurrentRent),
		}
	}

	return &ProjectionResult{
		TotalBuyingCost:             utils.Round2(sim.TotalBuyingCost),
		TotalRentingCost:            utils.Round2(sim.TotalRentingCost),
		NetDifference:               utils.Round2(sim.NetDifference),
		HomeEquityAfterSellingCosts: utils.Round2(sim.NetEquity),
		InvestmentValueIfRenting:    utils.Round2(sim.InvestmentValue),
		BreakEvenYears:              breakEven,
		BreakEvenReached:            reached,
		MonthlyMortgagePayment:      utils.Round2(sim.Monthly.MortgagePayment),
		MonthlyTax:                  utils.Round2(sim.Monthly.PropertyTax),
		MonthlyInsurance:            utils.Round2(sim.Monthly.Insurance),
		MonthlyMaintenance:          utils.Round2(sim.Monthly.Maintenance),
		MonthlyPMI:                  utils.Round2(sim.Monthly.PMI),
		MonthlyOwnershipCost:        utils.Round2(sim.Monthly.Total),
		LoanAmount:                  utils.Round2(in.Loan.LoanAmount()),
		TaxSavingsEstimate:          utils.Round2(sim.FirstYearInterest * in.Assumptions.MarginalTaxRatePct / 100.0),
		OpportunityCost:             opportunity,
		Verdict:                     verdict,
		Years:                       years,
	}, nil
}

// DefaultInputs возвращает значения калькулятора по умолчанию
func DefaultInputs() Inputs {
	return Inputs{
		Loan: LoanTerms{
			HomePrice:       400000,
			DownPayment:     80000,
			InterestRatePct: 7.0,
			TermYears:       30,
		},
		Carrying: CarryingCosts{
			PropertyTaxAnnual:   6000,
			HomeInsuranceAnnual: 1200,
			PMIMonthly:          200,
			MaintenanceAnnual:   4000,
			ClosingCosts:        8000,
		},
		Rent: RentTerms{
			MonthlyRent:            2500,
			AnnualIncreasePct:      3,
			RentersInsuranceAnnual: 200,
			SecurityDeposit:        2500,
		},
		Assumptions: Assumptions{
			HorizonYears:        10,
			HomeAppreciationPct: 3.5,
			InvestmentReturnPct: 7.0,
			MarginalTaxRatePct:  22,
		},
	}
}
