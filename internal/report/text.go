// Package report выводит результат прогноза в виде текста и PDF.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

// WriteText печатает сводку прогноза и таблицу по годам
func WriteText(w io.Writer, name string, in calculations.Inputs, res *calculations.ProjectionResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	lines := []string{
		fmt.Sprintf("Rent vs Buy: %s\n", name),
		fmt.Sprintf("Horizon\t%d years\n", in.Assumptions.HorizonYears),
		fmt.Sprintf("Home price\t%s\n", utils.FormatMoneyWhole(in.Loan.HomePrice)),
		fmt.Sprintf("Loan amount\t%s\n", utils.FormatMoneyWhole(res.LoanAmount)),
		"\n",
		fmt.Sprintf("Monthly mortgage\t%s\n", utils.FormatMoney(res.MonthlyMortgagePayment)),
		fmt.Sprintf("Monthly tax\t%s\n", utils.FormatMoney(res.MonthlyTax)),
		fmt.Sprintf("Monthly insurance\t%s\n", utils.FormatMoney(res.MonthlyInsurance)),
		fmt.Sprintf("Monthly PMI\t%s\n", utils.FormatMoney(res.MonthlyPMI)),
		fmt.Sprintf("Monthly maintenance\t%s\n", utils.FormatMoney(res.MonthlyMaintenance)),
		fmt.Sprintf("Monthly cost of owning\t%s\n", utils.FormatMoney(res.MonthlyOwnershipCost)),
		"\n",
		fmt.Sprintf("Total cost of buying\t%s\n", utils.FormatMoneyWhole(res.TotalBuyingCost)),
		fmt.Sprintf("Total cost of renting\t%s\n", utils.FormatMoneyWhole(res.TotalRentingCost)),
		fmt.Sprintf("Equity after selling costs\t%s\n", utils.FormatMoneyWhole(res.HomeEquityAfterSellingCosts)),
		fmt.Sprintf("Invested down payment\t%s\n", utils.FormatMoneyWhole(res.InvestmentValueIfRenting)),
		fmt.Sprintf("Net difference\t%s\n", utils.FormatMoneyWhole(res.NetDifference)),
		fmt.Sprintf("Break-even\t%s\n", BreakEvenLabel(res.BreakEvenYears, res.BreakEvenReached)),
		fmt.Sprintf("Est. first-year tax savings\t%s\n", utils.FormatMoneyWhole(res.TaxSavingsEstimate)),
		"\n",
		fmt.Sprintf("Verdict\t%s (by %s)\n", res.Verdict.Recommendation, utils.FormatMoneyWhole(res.Verdict.Magnitude)),
		"\n",
		"Year\tHome value\tMortgage balance\tBuy cost\tRent cost\tMonthly rent\n",
	}
	for _, l := range lines {
		if _, err := io.WriteString(tw, l); err != nil {
			return err
		}
	}

	for _, y := range res.Years {
		_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			y.Year,
			utils.FormatMoneyWhole(y.HomeValue),
			utils.FormatMoneyWhole(y.MortgageBalance),
			utils.FormatMoneyWhole(y.CumulativeBuyCost),
			utils.FormatMoneyWhole(y.CumulativeRentCost),
			utils.FormatMoney(y.CurrentRent),
		)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

// BreakEvenLabel подписывает год безубыточности. Если за MaxBreakEvenYears
// лет покупка не окупилась (reached == false), выводится "30+ years".
func BreakEvenLabel(years int, reached bool) string {
	if !reached {
		return fmt.Sprintf("%d+ years", calculations.MaxBreakEvenYears)
	}
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
