package calculations

// LoanTerms описывает покупку жилья в ипотеку
type LoanTerms struct {
	HomePrice       float64 `json:"home_price" yaml:"home_price"`
	DownPayment     float64 `json:"down_payment" yaml:"down_payment"`
	InterestRatePct float64 `json:"interest_rate_percent" yaml:"interest_rate_percent"`
	TermYears       int     `json:"term_years" yaml:"term_years"`
}

// LoanAmount возвращает сумму кредита (цена минус первоначальный взнос)
func (l LoanTerms) LoanAmount() float64 {
	return l.HomePrice - l.DownPayment
}

// CarryingCosts содержит расходы на содержание жилья
type CarryingCosts struct {
	PropertyTaxAnnual   float64 `json:"property_tax_annual" yaml:"property_tax_annual"`
	HomeInsuranceAnnual float64 `json:"home_insurance_annual" yaml:"home_insurance_annual"`
	PMIMonthly          float64 `json:"pmi_monthly" yaml:"pmi_monthly"`
	MaintenanceAnnual   float64 `json:"maintenance_annual" yaml:"maintenance_annual"`
	ClosingCosts        float64 `json:"closing_costs" yaml:"closing_costs"`
}

// RentTerms описывает условия аренды
type RentTerms struct {
	MonthlyRent            float64 `json:"monthly_rent" yaml:"monthly_rent"`
	AnnualIncreasePct      float64 `json:"annual_rent_increase_percent" yaml:"annual_rent_increase_percent"`
	RentersInsuranceAnnual float64 `json:"renters_insurance_annual" yaml:"renters_insurance_annual"`
	SecurityDeposit        float64 `json:"security_deposit" yaml:"security_deposit"`
}

// Assumptions содержит допущения прогноза
type Assumptions struct {
	HorizonYears        int     `json:"horizon_years" yaml:"horizon_years"`
	HomeAppreciationPct float64 `json:"home_appreciation_percent" yaml:"home_appreciation_percent"`
	InvestmentReturnPct float64 `json:"investment_return_percent" yaml:"investment_return_percent"`
	MarginalTaxRatePct  float64 `json:"marginal_tax_rate_percent" yaml:"marginal_tax_rate_percent"`
}

// Inputs - полный снимок входных данных калькулятора
type Inputs struct {
	Loan        LoanTerms     `json:"loan" yaml:"loan"`
	Carrying    CarryingCosts `json:"carrying" yaml:"carrying"`
	Rent        RentTerms     `json:"rent" yaml:"rent"`
	Assumptions Assumptions   `json:"assumptions" yaml:"assumptions"`
}

// YearSnapshot - состояние модели на конец года
type YearSnapshot struct {
	Year               int     `json:"year"`
	MortgageBalance    float64 `json:"mortgage_balance"`
	HomeValue          float64 `json:"home_value"`
	CumulativeBuyCost  float64 `json:"cumulative_buy_cost"`
	CumulativeRentCost float64 `json:"cumulative_rent_cost"`
	CurrentRent        float64 `json:"current_rent"`
}

// MonthlyBreakdown - ежемесячные расходы владельца
type MonthlyBreakdown struct {
	MortgagePayment float64 `json:"mortgage_payment"`
	PropertyTax     float64 `json:"property_tax"`
	Insurance       float64 `json:"insurance"`
	PMI             float64 `json:"pmi"`
	Maintenance     float64 `json:"maintenance"`
	Total           float64 `json:"total"`
}

// SimulationResult - итог годовой симуляции на заданном горизонте
type SimulationResult struct {
	HorizonYears      int              `json:"horizon_years"`
	TotalBuyingCost   float64          `json:"total_buying_cost"`
	TotalRentingCost  float64          `json:"total_renting_cost"`
	HomeValue         float64          `json:"home_value"`
	MortgageBalance   float64          `json:"mortgage_balance"`
	HomeEquity        float64          `json:"home_equity"`
	NetEquity         float64          `json:"net_equity"`
	InvestmentValue   float64          `json:"investment_value"`
	NetDifference     float64          `json:"net_difference"`
	FirstYearInterest float64          `json:"first_year_interest"`
	Monthly           MonthlyBreakdown `json:"monthly"`
	Years             []YearSnapshot   `json:"years,omitempty"`
}

// NetBuyCost - стоимость покупки за вычетом чистого капитала после продажи
func (s SimulationResult) NetBuyCost() float64 {
	return s.TotalBuyingCost - s.NetEquity
}

// NetRentCost - стоимость аренды за вычетом выросших инвестиций
func (s SimulationResult) NetRentCost() float64 {
	return s.TotalRentingCost - s.InvestmentValue
}

// Verdict - рекомендация для пользователя
type Verdict struct {
	BetterOption   string  `json:"better_option"`
	Recommendation string  `json:"recommendation"`
	Magnitude      float64 `json:"magnitude"`
}

// GrowthMetrics - метрики альтернативных инвестиций первоначального взноса
type GrowthMetrics struct {
	Principal   float64 `json:"principal"`
	FinalValue  float64 `json:"final_value"`
	CapitalGain float64 `json:"capital_gain"`
	ROIPercent  float64 `json:"roi_percent"`
	Years       int     `json:"years"`
}

// ProjectionResult - итоговый результат сравнения аренды и покупки
type ProjectionResult struct {
	TotalBuyingCost             float64        `json:"total_buying_cost"`
	TotalRentingCost            float64        `json:"total_renting_cost"`
	NetDifference               float64        `json:"net_difference"`
	HomeEquityAfterSellingCosts float64        `json:"home_equity_after_selling_costs"`
	InvestmentValueIfRenting    float64        `json:"investment_value_if_renting"`
	BreakEvenYears              int            `json:"break_even_years"`
	BreakEvenReached            bool           `json:"break_even_reached"`
	MonthlyMortgagePayment      float64        `json:"monthly_mortgage_payment"`
	MonthlyTax                  float64        `json:"monthly_tax"`
	MonthlyInsurance            float64        `json:"monthly_insurance"`
	MonthlyMaintenance          float64        `json:"monthly_maintenance"`
	MonthlyPMI                  float64        `json:"monthly_pmi"`
	MonthlyOwnershipCost        float64        `json:"monthly_ownership_cost"`
	LoanAmount                  float64        `json:"loan_amount"`
	TaxSavingsEstimate          float64        `json:"tax_savings_estimate"`
	OpportunityCost             GrowthMetrics  `json:"opportunity_cost"`
	Verdict                     Verdict        `json:"verdict"`
	Years                       []YearSnapshot `json:"years"`
}

// AmortizationYear - годовая сводка помесячного графика платежей
type AmortizationYear struct {
	Year               int     `json:"year"`
	PrincipalPaid      float64 `json:"principal_paid"`
	InterestPaid       float64 `json:"interest_paid"`
	RemainingPrincipal float64 `json:"remaining_principal"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// MortgageSummary представляет сводку по ипотеке
type MortgageSummary struct {
	Principal         float64            `json:"principal"`
	AnnualRatePercent float64            `json:"annual_rate_percent"`
	TermYears         int                `json:"term_years"`
	MonthlyPayment    float64            `json:"monthly_payment"`
	TotalPaid         float64            `json:"total_paid"`
	TotalInterest     float64            `json:"total_interest"`
	Schedule          []AmortizationYear `json:"schedule"`
}
