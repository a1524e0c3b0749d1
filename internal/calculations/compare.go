package calculations

import (
	"math"

	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// StrongBuyThreshold - разница, начиная с которой покупка однозначно выгоднее
const StrongBuyThreshold = -50000.0

const (
	OptionBuying  = "buying"
	OptionRenting = "renting"
)

// Тексты рекомендаций
const (
	RecommendStrongBuy = "Strong case for buying: owning builds substantially more wealth over this period."
	RecommendBuy       = "Buying looks favorable over this period."
	RecommendSimilar   = "Buying and renting cost about the same. Consider personal factors such as flexibility and stability."
	RecommendRent      = "Renting is more cost-effective over this period."
)

// Compare превращает чистую разницу в рекомендацию.
// Отрицательная разница означает, что покупка дешевле.
func Compare(netDifference float64) Verdict {
	better := OptionRenting
	if netDifference < 0 {
		better = OptionBuying
	}

	var recommendation string
	switch {
	case netDifference < StrongBuyThreshold:
		recommendation = RecommendStrongBuy
	case utils.Round2(netDifference) == 0:
		recommendation = RecommendSimilar
	case netDifference < 0:
		recommendation = RecommendBuy
	default:
		recommendation = RecommendRent
	}

	return Verdict{
		BetterOption:   better,
		Recommendation: recommendation,
		Magnitude:      utils.Round2(math.Abs(netDifference)),
	}
}
