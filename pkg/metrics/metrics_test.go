package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	first := HTTPRequestsTotal

	// 重复调用不会重复注册（重复注册会panic）
	assert.NotPanics(t, InitMetrics)
	assert.Same(t, first, HTTPRequestsTotal)
	assert.NotNil(t, MessagesPublishedTotal)
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	get := map[string]string{"method": "GET", "path": "/books", "status": "200"}
	before := counterValue(t, HTTPRequestsTotal.With(get))

	IncCounterVec(HTTPRequestsTotal, get)
	IncCounterVec(HTTPRequestsTotal, get)
	IncCounterVec(HTTPRequestsTotal, map[string]string{"method": "POST", "path": "/books", "status": "201"})

	assert.Equal(t, before+2, counterValue(t, HTTPRequestsTotal.With(get)))
}

func TestObserveOrderCreation(t *testing.T) {
	InitMetrics()

	created := counterValue(t, OrdersCreatedTotal)
	failed := counterValue(t, OrdersFailedTotal)
	samples := histogramCount(t, OrderCreationDuration)

	ObserveOrderCreation(0.02, nil)
	ObserveOrderCreation(0.5, errors.New("购物车为空"))

	assert.Equal(t, created+1, counterValue(t, OrdersCreatedTotal))
	assert.Equal(t, failed+1, counterValue(t, OrdersFailedTotal))
	assert.Equal(t, samples+1, histogramCount(t, OrderCreationDuration), "失败不记录耗时")
}

func TestObservePublishAndCache(t *testing.T) {
	InitMetrics()

	ok := MessagesPublishedTotal.WithLabelValues("order.created", "success")
	fail := MessagesPublishedTotal.WithLabelValues("order.created", "failure")
	okBefore, failBefore := counterValue(t, ok), counterValue(t, fail)

	ObservePublish("order.created", nil)
	ObservePublish("order.created", errors.New("连接断开"))

	assert.Equal(t, okBefore+1, counterValue(t, ok))
	assert.Equal(t, failBefore+1, counterValue(t, fail))

	hit := BookCacheRequestsTotal.WithLabelValues("hit")
	before := counterValue(t, hit)
	ObserveBookCache("hit")
	assert.Equal(t, before+1, counterValue(t, hit))

	paid := OrderStatusChangesTotal.WithLabelValues("PAID")
	before = counterValue(t, paid)
	ObserveStatusChange("PAID")
	assert.Equal(t, before+1, counterValue(t, paid))
}
