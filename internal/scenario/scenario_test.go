package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Default scenario", s.Name)
	assert.Equal(t, calculations.DefaultInputs(), s.Inputs)
}

func TestParse_PartialOverride(t *testing.T) {
	s, err := Parse([]byte(`
name: Pricier city
down_payment_percent: 10
loan:
  home_price: 600000
rent:
  monthly_rent: 3200
`))
	require.NoError(t, err)

	assert.Equal(t, "Pricier city", s.Name)
	assert.Equal(t, 600000.0, s.Loan.HomePrice)
	assert.Equal(t, 60000.0, s.Loan.DownPayment)
	assert.Equal(t, 3200.0, s.Rent.MonthlyRent)
	// незаданные поля остаются по умолчанию
	assert.Equal(t, 7.0, s.Loan.InterestRatePct)
	assert.Equal(t, 10, s.Assumptions.HorizonYears)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("loan: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("assumptions:\n  horizon_years: 15\n"), 0o600))
	s, err := Load(good, cfg)
	require.NoError(t, err)
	assert.Equal(t, 15, s.Assumptions.HorizonYears)
	assert.Equal(t, "Unnamed scenario", s.Name)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("loan:\n  term_years: 12\n"), 0o600))
	_, err = Load(bad, cfg)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"), cfg)
	assert.Error(t, err)
}
