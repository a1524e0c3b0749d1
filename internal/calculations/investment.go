package calculations

import (
	"math"

	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// InvestmentGrowth рассчитывает рост суммы при ежегодной капитализации
func InvestmentGrowth(principal, annualReturnPercent float64, years int) GrowthMetrics {
	finalValue := principal * math.Pow(1.0+annualReturnPercent/100.0, float64(years))

	// ROI (Return on Investment) в процентах
	var roiPercent float64
	if principal > 0 {
		roiPercent = utils.Round2(((finalValue - principal) / principal) * 100)
	}

	return GrowthMetrics{
		Principal:   utils.Round2(principal),
		FinalValue:  utils.Round2(finalValue),
		CapitalGain: utils.Round2(finalValue - principal),
		ROIPercent:  roiPercent,
		Years:       years,
	}
}
