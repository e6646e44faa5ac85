package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BusinessMetrics 桥接业务指标
type BusinessMetrics struct {
	SessionRequestsTotal   *prometheus.CounterVec
	SessionRequestDuration *prometheus.HistogramVec
	IdentifierCacheTotal   *prometheus.CounterVec
	MirrorQueriesTotal     *prometheus.CounterVec
	WalletBalanceHbar      *prometheus.GaugeVec
}

// Business 包加载时即创建, Init 之前也可安全调用 (只是不会被导出)
var Business = &BusinessMetrics{
	SessionRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hedera_session_requests_total",
		Help: "Session requests handled by the wallet, by method and outcome",
	}, []string{"method", "outcome"}),
	SessionRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedera_session_request_duration_seconds",
		Help:    "Time spent approving a session request",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"}),
	IdentifierCacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hedera_identifier_cache_total",
		Help: "Identifier slot lookups, by slot and result (hit, created, default)",
	}, []string{"slot", "result"}),
	MirrorQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hedera_mirror_queries_total",
		Help: "Mirror node balance queries, by status",
	}, []string{"status"}),
	WalletBalanceHbar: prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hedera_wallet_balance_hbar",
		Help: "Last synced wallet balance in HBAR",
	}, []string{"account"}),
}

func registerBusinessMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		Business.SessionRequestsTotal,
		Business.SessionRequestDuration,
		Business.IdentifierCacheTotal,
		Business.MirrorQueriesTotal,
		Business.WalletBalanceHbar,
	)
}
