// Package keeper implements the mutating side of the launch engine: per
// market reserve ledgers, the pure trade simulator, and the registry that
// owns them.
package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TradesTotal counts executed trades by side and status
	// (executed, rejected)
	TradesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_trades_total",
			Help: "Total trade executions by side and status",
		},
		[]string{"side", "status"},
	)

	// FeesCollected accumulates fee magnitudes reported by the engine,
	// in quote units
	FeesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "launchpad_fees_collected_total",
			Help: "Total fees reported by the engine (quote units)",
		},
	)

	// GraduationsTotal counts markets that crossed their graduation target
	GraduationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "launchpad_graduations_total",
			Help: "Markets graduated from curve to open-market trading",
		},
	)

	// MarketsCreated counts markets registered with the keeper
	MarketsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "launchpad_markets_created_total",
			Help: "Markets created",
		},
	)

	// TradeAmounts observes requested trade sizes by side
	TradeAmounts = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchpad_trade_amount",
			Help:    "Requested trade amounts by side",
			Buckets: prometheus.ExponentialBuckets(0.001, 10, 9),
		},
		[]string{"side"},
	)
)
