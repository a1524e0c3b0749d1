package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_DefaultScenario(t *testing.T) {
	in := DefaultInputs()
	s := Simulate(in, 10)

	assert.Equal(t, 10, s.HorizonYears)
	assert.InDelta(t, 479476.16, s.TotalBuyingCost, 0.01)
	assert.InDelta(t, 348416.38, s.TotalRentingCost, 0.01)
	assert.InDelta(t, 248231.61, s.NetEquity, 0.01)
	assert.InDelta(t, 157372.11, s.InvestmentValue, 0.01)
	assert.InDelta(t, 40200.28, s.NetDifference, 0.01)
	assert.InDelta(t, 2128.97, s.Monthly.MortgagePayment, 0.005)
	assert.Equal(t, 500.0, s.Monthly.PropertyTax)
	assert.Equal(t, 100.0, s.Monthly.Insurance)
	assert.Equal(t, 200.0, s.Monthly.PMI)

	require.Len(t, s.Years, 10)
	assert.Equal(t, 2500.0, s.Years[0].CurrentRent)
	assert.Equal(t, s.TotalBuyingCost, s.Years[9].CumulativeBuyCost)
	assert.Equal(t, s.TotalRentingCost, s.Years[9].CumulativeRentCost)
	assert.Equal(t, in.Loan.LoanAmount()*0.07, s.FirstYearInterest)
}

func TestSimulate_ZeroHorizon(t *testing.T) {
	in := DefaultInputs()
	s := Simulate(in, 0)

	assert.Equal(t, in.Loan.DownPayment+in.Carrying.ClosingCosts, s.TotalBuyingCost)
	assert.Equal(t, in.Rent.SecurityDeposit, s.TotalRentingCost)
	assert.InDelta(t, in.Loan.HomePrice*(1-SellingCostRate)-in.Loan.LoanAmount(), s.NetEquity, 1e-6)
	assert.Equal(t, in.Loan.DownPayment, s.InvestmentValue)
	assert.Empty(t, s.Years)
}

func TestSimulate_NetDifferenceIdentity(t *testing.T) {
	in := DefaultInputs()
	for _, h := range []int{1, 5, 7, 10, 15, 20, 30} {
		s := Simulate(in, h)
		want := (s.TotalBuyingCost - s.NetEquity) - (s.TotalRentingCost - s.InvestmentValue)
		assert.Equal(t, want, s.NetDifference, "horizon %d", h)
		assert.Equal(t, s.HomeValue-s.MortgageBalance, s.HomeEquity, "horizon %d", h)
	}
}

func TestSimulate_AppreciationNeverLowersEquity(t *testing.T) {
	for _, horizon := range []int{1, 5, 10, 30} {
		prev := math.Inf(-1)
		for pct := -5.0; pct <= 10.0; pct += 0.5 {
			in := DefaultInputs()
			in.Assumptions.HomeAppreciationPct = pct
			equity := Simulate(in, horizon).NetEquity
			if equity < prev {
				t.Fatalf("horizon %d: equity dropped from %v to %v at %v%%", horizon, prev, equity, pct)
			}
			prev = equity
		}
	}
}

func TestSimulate_RentEscalationNeverLowersRentCost(t *testing.T) {
	for _, horizon := range []int{1, 5, 10, 30} {
		prev := math.Inf(-1)
		for pct := 0.0; pct <= 10.0; pct += 0.25 {
			in := DefaultInputs()
			in.Rent.AnnualIncreasePct = pct
			total := Simulate(in, horizon).TotalRentingCost
			if total < prev {
				t.Fatalf("horizon %d: renting cost dropped from %v to %v at %v%%", horizon, prev, total, pct)
			}
			prev = total
		}
	}
}

func TestSimulate_BalanceMayGoNegativePastPayoff(t *testing.T) {
	in := DefaultInputs()
	in.Loan.TermYears = 15

	s := Simulate(in, 20)
	assert.Less(t, s.MortgageBalance, 0.0)
}

func TestSimulate_Deterministic(t *testing.T) {
	in := DefaultInputs()
	a := Simulate(in, 10)
	b := Simulate(in, 10)
	assert.Equal(t, a, b)
}
