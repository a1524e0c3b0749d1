// Package scenario читает сценарии калькулятора из YAML-файлов.
package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/cloud-ru/rentbuy-go/internal/validators"
)

//go:embed default.yaml
var defaultScenario []byte

// Scenario - именованный набор входных данных.
// DownPaymentPercent, если задан, заменяет loan.down_payment.
type Scenario struct {
	Name               string   `yaml:"name"`
	DownPaymentPercent *float64 `yaml:"down_payment_percent,omitempty"`

	calculations.Inputs `yaml:",inline"`
}

// Default возвращает встроенный сценарий по умолчанию
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

// Parse разбирает YAML. Незаданные поля берутся из встроенного сценария.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{Inputs: calculations.DefaultInputs()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if s.DownPaymentPercent != nil {
		s.Loan.DownPayment = calculations.DownPaymentFromPercent(s.Loan.HomePrice, *s.DownPaymentPercent)
	}
	if s.Name == "" {
		s.Name = "Unnamed scenario"
	}
	return s, nil
}

// Load читает сценарий из файла и проверяет его по лимитам конфигурации
func Load(path string, cfg *config.Config) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := validators.CheckInputs(cfg, s.Inputs); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}
