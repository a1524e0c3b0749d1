package calculations

import "math"

// SellingCostRate - доля стоимости дома, уходящая на издержки при продаже
const SellingCostRate = 0.07

// Simulate моделирует покупку и аренду год за годом на горизонте horizonYears.
// Проценты по ипотеке считаются один раз в год от остатка на начало года;
// остаток не ограничивается снизу и может стать слегка отрицательным к концу срока.
func Simulate(in Inputs, horizonYears int) SimulationResult {
	return simulate(in, horizonYears, true)
}

func simulate(in Inputs, horizonYears int, record bool) SimulationResult {
	loan := in.Loan
	carrying := in.Carrying
	rent := in.Rent
	assumptions := in.Assumptions

	monthlyPayment := MonthlyPayment(loan.LoanAmount(), loan.InterestRatePct, loan.TermYears)
	annualMortgage := 12 * monthlyPayment
	annualOwnership := annualMortgage +
		carrying.PropertyTaxAnnual +
		carrying.HomeInsuranceAnnual +
		12*carrying.PMIMonthly +
		carrying.MaintenanceAnnual

	totalBuyingCost := loan.DownPayment + carrying.ClosingCosts
	totalRentingCost := rent.SecurityDeposit
	mortgageBalance := loan.LoanAmount()
	homeValue := loan.HomePrice
	currentRent := rent.MonthlyRent
	firstYearInterest := 0.0

	var years []YearSnapshot
	if record && horizonYears > 0 {
		years = make([]YearSnapshot, 0, horizonYears)
	}

	for y := 1; y <= horizonYears; y++ {
		totalBuyingCost += annualOwnership

		interest := mortgageBalance * (loan.InterestRatePct / 100.0)
		if y == 1 {
			firstYearInterest = interest
		}
		mortgageBalance -= annualMortgage - interest

		homeValue *= 1.0 + assumptions.HomeAppreciationPct/100.0

		totalRentingCost += 12*currentRent + rent.RentersInsuranceAnnual
		rentPaid := currentRent
		currentRent *= 1.0 + rent.AnnualIncreasePct/100.0

		if record {
			years = append(years, YearSnapshot{
				Year:               y,
				MortgageBalance:    mortgageBalance,
				HomeValue:          homeValue,
				CumulativeBuyCost:  totalBuyingCost,
				CumulativeRentCost: totalRentingCost,
				CurrentRent:        rentPaid,
			})
		}
	}

	homeEquity := homeValue - mortgageBalance
	netEquity := homeEquity - homeValue*SellingCostRate
	investmentValue := loan.DownPayment * math.Pow(1.0+assumptions.InvestmentReturnPct/100.0, float64(horizonYears))

	result := SimulationResult{
		HorizonYears:      horizonYears,
		TotalBuyingCost:   totalBuyingCost,
		TotalRentingCost:  totalRentingCost,
		HomeValue:         homeValue,
		MortgageBalance:   mortgageBalance,
		HomeEquity:        homeEquity,
		NetEquity:         netEquity,
		InvestmentValue:   investmentValue,
		FirstYearInterest: firstYearInterest,
		Monthly: MonthlyBreakdown{
			MortgagePayment: monthlyPayment,
			PropertyTax:     carrying.PropertyTaxAnnual / 12,
			Insurance:       carrying.HomeInsuranceAnnual / 12,
			PMI:             carrying.PMIMonthly,
			Maintenance:     carrying.MaintenanceAnnual / 12,
			Total:           annualOwnership / 12,
		},
		Years: years,
	}
	result.NetDifference = result.NetBuyCost() - result.NetRentCost()

	return result
}
