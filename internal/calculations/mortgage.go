package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// MonthlyPayment рассчитывает фиксированный ежемесячный платеж по ипотеке.
// Отрицательная сумма кредита не ограничивается - это ответственность вызывающего.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRatePercent == 0 {
		return principal / n
	}

	r := annualRatePercent / 100.0 / 12.0
	growth := math.Pow(1.0+r, n)
	return principal * r * growth / (growth - 1.0)
}

// AmortizationSchedule строит помесячный график платежей и сворачивает его по годам.
// В отличие от прогноза аренды/покупки, здесь проценты начисляются ежемесячно.
func AmortizationSchedule(principal, annualRatePercent float64, termYears int) (*MortgageSummary, error) {
	if termYears <= 0 {
		return nil, fmt.Errorf("срок кредита должен быть положительным")
	}

	n := termYears * 12
	r := annualRatePercent / 100.0 / 12.0
	payment := MonthlyPayment(principal, annualRatePercent, termYears)

	schedule := make([]AmortizationYear, 0, termYears)
	remaining := principal
	cumI := 0.0
	totalPaid := 0.0

	var year AmortizationYear
	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := payment - interest
		monthly := payment

		if m == n {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		remaining -= principalComponent
		cumI += interest
		totalPaid += monthly

		year.PrincipalPaid += principalComponent
		year.InterestPaid += interest

		if m%12 == 0 {
			if remaining < -0.01 {
				return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
			}
			schedule = append(schedule, AmortizationYear{
				Year:               m / 12,
				PrincipalPaid:      utils.Round2(year.PrincipalPaid),
				InterestPaid:       utils.Round2(year.InterestPaid),
				RemainingPrincipal: utils.Round2(math.Max(remaining, 0)),
				CumulativeInterest: utils.Round2(cumI),
			})
			year = AmortizationYear{}
		}
	}

	return &MortgageSummary{
		Principal:         utils.Round2(principal),
		AnnualRatePercent: utils.Round2(annualRatePercent),
		TermYears:         termYears,
		MonthlyPayment:    utils.Round2(payment),
		TotalPaid:         utils.Round2(totalPaid),
		TotalInterest:     utils.Round2(cumI),
		Schedule:          schedule,
	}, nil
}
