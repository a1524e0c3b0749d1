package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/pkg/utils"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	chartHeight  = 70.0
)

type pdfReport struct {
	pdf    *fpdf.Fpdf
	name   string
	in     calculations.Inputs
	result *calculations.ProjectionResult
}

// GeneratePDF строит PDF-отчет: сводка, график накопленных затрат и таблица по годам
func GeneratePDF(name string, in calculations.Inputs, res *calculations.ProjectionResult) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		name:   name,
		in:     in,
		result: res,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.pdf.AddPage()
	r.addHeader()
	r.addSummary()
	r.addCostChart()
	r.addYearTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Rent vs Buy Analysis", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 8, r.name, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) addSummary() {
	res := r.result
	rows := [][2]string{
		{"Time horizon", fmt.Sprintf("%d years", r.in.Assumptions.HorizonYears)},
		{"Monthly cost of owning", utils.FormatMoney(res.MonthlyOwnershipCost)},
		{"  Mortgage payment", utils.FormatMoney(res.MonthlyMortgagePayment)},
		{"  Property tax", utils.FormatMoney(res.MonthlyTax)},
		{"  Insurance", utils.FormatMoney(res.MonthlyInsurance)},
		{"  PMI", utils.FormatMoney(res.MonthlyPMI)},
		{"  Maintenance", utils.FormatMoney(res.MonthlyMaintenance)},
		{"Total cost of buying", utils.FormatMoneyWhole(res.TotalBuyingCost)},
		{"Total cost of renting", utils.FormatMoneyWhole(res.TotalRentingCost)},
		{"Equity after selling costs", utils.FormatMoneyWhole(res.HomeEquityAfterSellingCosts)},
		{"Down payment invested instead", utils.FormatMoneyWhole(res.InvestmentValueIfRenting)},
		{"Net difference", utils.FormatMoneyWhole(res.NetDifference)},
		{"Break-even", BreakEvenLabel(res.BreakEvenYears, res.BreakEvenReached)},
	}

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetTextColor(50, 50, 50)
	for i, row := range rows {
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.CellFormat(contentWidth*0.6, 7, row[0], "1", 0, "L", i%2 == 0, 0, "")
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(contentWidth*0.4, 7, row[1], "1", 1, "R", i%2 == 0, 0, "")
	}

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 11)
	if res.Verdict.BetterOption == calculations.OptionBuying {
		r.pdf.SetTextColor(0, 110, 60)
	} else {
		r.pdf.SetTextColor(160, 60, 0)
	}
	r.pdf.MultiCell(contentWidth, 6, res.Verdict.Recommendation, "", "L", false)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.Ln(4)
}

// addCostChart рисует парные столбцы накопленных затрат на покупку и аренду
func (r *pdfReport) addCostChart() {
	years := r.result.Years
	if len(years) == 0 {
		return
	}

	maxCost := 0.0
	for _, y := range years {
		maxCost = math.Max(maxCost, math.Max(y.CumulativeBuyCost, y.CumulativeRentCost))
	}
	if maxCost <= 0 {
		return
	}

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.CellFormat(contentWidth, 7, "Cumulative cost by year", "", 1, "L", false, 0, "")

	top := r.pdf.GetY() + 2
	base := top + chartHeight
	slot := contentWidth / float64(len(years))
	bar := slot * 0.35

	r.pdf.SetDrawColor(150, 150, 150)
	r.pdf.Line(marginLeft, base, marginLeft+contentWidth, base)

	r.pdf.SetFont("Arial", "", 7)
	for i, y := range years {
		x := marginLeft + float64(i)*slot + slot*0.15

		buyH := chartHeight * y.CumulativeBuyCost / maxCost
		r.pdf.SetFillColor(0, 51, 102)
		r.pdf.Rect(x, base-buyH, bar, buyH, "F")

		rentH := chartHeight * y.CumulativeRentCost / maxCost
		r.pdf.SetFillColor(230, 126, 34)
		r.pdf.Rect(x+bar, base-rentH, bar, rentH, "F")

		r.pdf.SetXY(x, base+1)
		r.pdf.CellFormat(2*bar, 4, fmt.Sprintf("%d", y.Year), "", 0, "C", false, 0, "")
	}

	r.pdf.SetXY(marginLeft, base+6)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.Rect(marginLeft, base+7, 3, 3, "F")
	r.pdf.SetXY(marginLeft+4, base+6)
	r.pdf.CellFormat(20, 5, "Buying", "", 0, "L", false, 0, "")
	r.pdf.SetFillColor(230, 126, 34)
	r.pdf.Rect(marginLeft+26, base+7, 3, 3, "F")
	r.pdf.SetXY(marginLeft+30, base+6)
	r.pdf.CellFormat(20, 5, "Renting", "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) addYearTable() {
	headers := []string{"Year", "Home value", "Mortgage", "Buy cost", "Rent cost", "Rent/mo"}
	widths := []float64{15, 35, 35, 35, 35, 25}

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFillColor(245, 247, 250)
	for i, y := range r.result.Years {
		fill := i%2 == 1
		cells := []string{
			fmt.Sprintf("%d", y.Year),
			utils.FormatMoneyWhole(y.HomeValue),
			utils.FormatMoneyWhole(y.MortgageBalance),
			utils.FormatMoneyWhole(y.CumulativeBuyCost),
			utils.FormatMoneyWhole(y.CumulativeRentCost),
			utils.FormatMoneyWhole(y.CurrentRent),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 {
				align = "C"
			}
			r.pdf.CellFormat(widths[j], 6, c, "1", 0, align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
