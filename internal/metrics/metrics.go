package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentbuy_tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentbuy_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// CacheLookups счетчик обращений к кэшу результатов
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentbuy_cache_lookups_total",
			Help: "Обращения к кэшу результатов",
		},
		[]string{"tool_name", "result"},
	)

	// ComputeDuration время расчета одного инструмента
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentbuy_compute_duration_seconds",
			Help:    "Длительность расчета",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		},
		[]string{"tool_name"},
	)

	// LiveSessions число открытых websocket-сессий
	LiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentbuy_live_sessions",
			Help: "Открытые websocket-сессии пересчета",
		},
	)
)
