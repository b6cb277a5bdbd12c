// Package metrics 基于Prometheus的指标收集
//
// 指标类型：
//   - Counter：只增不减的累计值（请求数、订单数）
//   - Gauge：可增可减的瞬时值（处理中的请求数）
//   - Histogram：观测值分布（请求耗时），可计算P50/P99
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值的维度（method、status），不要用user_id这类高基数字段。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var once sync.Once

var (
	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// OrdersCreatedTotal 下单成功总数
	OrdersCreatedTotal prometheus.Counter

	// OrdersFailedTotal 下单失败总数
	OrdersFailedTotal prometheus.Counter

	// OrderCreationDuration 下单耗时
	OrderCreationDuration prometheus.Histogram

	// OrderStatusChangesTotal 订单状态变更次数，标签to为目标状态
	OrderStatusChangesTotal *prometheus.CounterVec

	// BookCacheRequestsTotal 图书详情缓存访问次数，标签result为hit/miss/error
	BookCacheRequestsTotal *prometheus.CounterVec

	// MessagesPublishedTotal 事件发布次数
	// 标签：routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry，多次调用只生效一次
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		OrdersCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "订单创建总数",
			},
		)

		OrdersFailedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_failed_total",
				Help: "订单创建失败总数",
			},
		)

		OrderCreationDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_creation_duration_seconds",
				Help:    "订单创建耗时（秒）",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		)

		OrderStatusChangesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_changes_total",
				Help: "订单状态变更次数",
			},
			[]string{"to"},
		)

		BookCacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_cache_requests_total",
				Help: "图书详情缓存访问次数",
			},
			[]string{"result"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "消息发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

// ObserveOrderCreation 记录一次下单结果与耗时
func ObserveOrderCreation(seconds float64, err error) {
	InitMetrics()
	if err != nil {
		OrdersFailedTotal.Inc()
		return
	}
	OrdersCreatedTotal.Inc()
	OrderCreationDuration.Observe(seconds)
}

// ObserveStatusChange 记录一次订单状态变更
func ObserveStatusChange(to string) {
	InitMetrics()
	OrderStatusChangesTotal.WithLabelValues(to).Inc()
}

// ObserveBookCache 记录一次缓存访问，result为hit/miss/error
func ObserveBookCache(result string) {
	InitMetrics()
	BookCacheRequestsTotal.WithLabelValues(result).Inc()
}

// ObservePublish 记录一次事件发布
func ObservePublish(routingKey string, err error) {
	InitMetrics()
	result := "success"
	if err != nil {
		result = "failure"
	}
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}
