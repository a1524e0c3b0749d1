package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-ru/rentbuy-go/internal/cache"
	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/cloud-ru/rentbuy-go/internal/metrics"
	"github.com/cloud-ru/rentbuy-go/internal/validators"
	"github.com/cloud-ru/rentbuy-go/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Имена инструментов
const (
	ToolProjection = "rent_vs_buy_projection"
	ToolBreakEven  = "break_even_year"
	ToolMortgage   = "mortgage_payment"
)

// ErrValidation - параметры не прошли проверку
var ErrValidation = errors.New("неверные параметры")

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Deps - зависимости обработчиков. Cache и Logger необязательны.
type Deps struct {
	Config *config.Config
	Tracer trace.Tracer
	Cache  cache.Cache
	Logger *zap.Logger
}

// BreakEvenResult - результат поиска точки безубыточности
type BreakEvenResult struct {
	BreakEvenYears int     `json:"break_even_years"`
	Saturated      bool    `json:"saturated"`
	NetBuyCost     float64 `json:"net_buy_cost"`
	NetRentCost    float64 `json:"net_rent_cost"`
}

// Handlers возвращает все инструменты сервиса по именам
func Handlers(d Deps) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolProjection: ProjectionHandler(d),
		ToolBreakEven:  BreakEvenHandler(d),
		ToolMortgage:   MortgageHandler(d),
	}
}

// ProjectionHandler обрабатывает запрос на полный прогноз аренды и покупки
func ProjectionHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolProjection

		ctx, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		in, err := InputsFromParams(params)
		if err != nil {
			return nil, d.fail(span, toolName, "params", err)
		}
		span.SetAttributes(inputAttributes(in)...)

		if err := validators.CheckInputs(d.Config, in); err != nil {
			return nil, d.fail(span, toolName, "validation", fmt.Errorf("%w: %w", ErrValidation, err))
		}

		var cached calculations.ProjectionResult
		if d.lookup(ctx, toolName, in, &cached) {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			d.succeed(toolName)
			return &cached, nil
		}

		start := time.Now()
		result, err := calculations.Compute(in)
		metrics.ComputeDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, d.fail(span, toolName, "no_result", err)
		}

		d.store(ctx, toolName, in, result)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("net_difference", result.NetDifference),
			attribute.Int("break_even_years", result.BreakEvenYears),
			attribute.String("better_option", result.Verdict.BetterOption),
		)
		d.succeed(toolName)

		return result, nil
	}
}

// BreakEvenHandler обрабатывает запрос на поиск года безубыточности.
// Горизонт прогноза для этого инструмента не обязателен.
func BreakEvenHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolBreakEven

		ctx, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		in, err := InputsFromParams(params)
		if err != nil {
			return nil, d.fail(span, toolName, "params", err)
		}
		if in.Assumptions.HorizonYears == 0 {
			in.Assumptions.HorizonYears = calculations.MaxBreakEvenYears
		}
		span.SetAttributes(inputAttributes(in)...)

		if err := validators.CheckInputs(d.Config, in); err != nil {
			return nil, d.fail(span, toolName, "validation", fmt.Errorf("%w: %w", ErrValidation, err))
		}
		if !calculations.Ready(in) {
			return nil, d.fail(span, toolName, "no_result", calculations.ErrNoResult)
		}

		var cached BreakEvenResult
		if d.lookup(ctx, toolName, in, &cached) {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			d.succeed(toolName)
			return &cached, nil
		}

		start := time.Now()
		years, reached := calculations.BreakEven(in)
		sim := calculations.Simulate(in, years)
		metrics.ComputeDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())

		result := &BreakEvenResult{
			BreakEvenYears: years,
			Saturated:      !reached,
			NetBuyCost:     utils.Round2(sim.NetBuyCost()),
			NetRentCost:    utils.Round2(sim.NetRentCost()),
		}
		d.store(ctx, toolName, in, result)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("break_even_years", years),
			attribute.Bool("saturated", result.Saturated),
		)
		d.succeed(toolName)

		return result, nil
	}
}

// MortgageHandler обрабатывает запрос на расчет ипотечного платежа и графика
func MortgageHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolMortgage

		ctx, span := d.Tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := requireFloat(params, "principal")
		if err != nil {
			return nil, d.fail(span, toolName, "params", err)
		}
		rate, err := requireFloat(params, "interest_rate_percent")
		if err != nil {
			return nil, d.fail(span, toolName, "params", err)
		}
		termYears, err := requireInt(params, "term_years")
		if err != nil {
			return nil, d.fail(span, toolName, "params", err)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("interest_rate_percent", rate),
			attribute.Int("term_years", termYears),
		)

		if err := validators.ValidateNumber("principal", principal, 1e-9, d.Config.MaxHomePrice); err != nil {
			return nil, d.fail(span, toolName, "validation", fmt.Errorf("%w: %w", ErrValidation, err))
		}
		if err := validators.CheckRate(d.Config, rate); err != nil {
			return nil, d.fail(span, toolName, "validation", fmt.Errorf("%w: %w", ErrValidation, err))
		}
		if err := validators.CheckTermYears(termYears); err != nil {
			return nil, d.fail(span, toolName, "validation", fmt.Errorf("%w: %w", ErrValidation, err))
		}

		start := time.Now()
		result, err := calculations.AmortizationSchedule(principal, rate, termYears)
		metrics.ComputeDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, d.fail(span, toolName, "calculation", fmt.Errorf("ошибка при выполнении расчета: %w", err))
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_payment", result.MonthlyPayment),
			attribute.Float64("total_paid", result.TotalPaid),
		)
		d.succeed(toolName)

		return result, nil
	}
}

func (d Deps) fail(span trace.Span, toolName, kind string, err error) error {
	span.SetAttributes(attribute.String("error", kind))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, kind).Inc()
	if d.Logger != nil {
		d.Logger.Debug("tool call failed",
			zap.String("tool", toolName),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
	return err
}

func (d Deps) succeed(toolName string) {
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
}

func (d Deps) lookup(ctx context.Context, toolName string, in calculations.Inputs, dst interface{}) bool {
	if d.Cache == nil {
		return false
	}
	key, err := cache.Key(toolName, in)
	if err != nil {
		return false
	}
	raw, ok := d.Cache.Get(ctx, key)
	if !ok {
		metrics.CacheLookups.WithLabelValues(toolName, "miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		metrics.CacheLookups.WithLabelValues(toolName, "corrupt").Inc()
		return false
	}
	metrics.CacheLookups.WithLabelValues(toolName, "hit").Inc()
	return true
}

// store сохраняет результат в кэш; ошибка кэша не влияет на ответ
func (d Deps) store(ctx context.Context, toolName string, in calculations.Inputs, result interface{}) {
	if d.Cache == nil {
		return
	}
	key, err := cache.Key(toolName, in)
	if err != nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := d.Cache.Set(ctx, key, string(raw)); err != nil && d.Logger != nil {
		d.Logger.Warn("failed to cache result", zap.String("tool", toolName), zap.Error(err))
	}
}

func inputAttributes(in calculations.Inputs) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("home_price", in.Loan.HomePrice),
		attribute.Float64("down_payment", in.Loan.DownPayment),
		attribute.Float64("interest_rate_percent", in.Loan.InterestRatePct),
		attribute.Int("term_years", in.Loan.TermYears),
		attribute.Float64("monthly_rent", in.Rent.MonthlyRent),
		attribute.Int("horizon_years", in.Assumptions.HorizonYears),
	}
}
