package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// 指标命名空间常量
const (
	// Namespace 指标命名空间
	Namespace = "dep2p"
	// Subsystem 指标子系统
	Subsystem = "eventbus"
)

// Tracer 基于 Prometheus 的投递追踪器
//
// Tracer 实现 interfaces.Tracer，将总线钩子同步转换为指标更新。
// 所有指标操作都是原子的，可安全用于并发投递路径。
type Tracer struct {
	emits       *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	replays     *prometheus.CounterVec
	panics      *prometheus.CounterVec
	keys        prometheus.Gauge
	subscribers *prometheus.GaugeVec
}

// 确保 Tracer 实现 Tracer 接口
var _ pkgif.Tracer = (*Tracer)(nil)

// NewTracer 创建 Prometheus 追踪器并注册全部指标
//
// reg 为 nil 时使用 prometheus.DefaultRegisterer。
// 任一指标注册失败（如重复注册）时返回错误，已注册的指标不会回滚。
func NewTracer(reg prometheus.Registerer) (*Tracer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	t := &Tracer{
		emits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "emits_total",
			Help:      "事件发布总数",
		}, []string{"key"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "deliveries_total",
			Help:      "实时投递总数",
		}, []string{"key"}),
		replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "replays_total",
			Help:      "回放投递总数",
		}, []string{"key"}),
		panics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "panics_total",
			Help:      "观察者崩溃总数",
		}, []string{"key"}),
		keys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "keys",
			Help:      "已创建的事件键总数",
		}),
		subscribers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "subscribers",
			Help:      "逐键当前订阅者数",
		}, []string{"key"}),
	}

	collectors := []prometheus.Collector{
		t.emits, t.deliveries, t.replays, t.panics, t.keys, t.subscribers,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: 注册指标失败: %w", err)
		}
	}

	return t, nil
}

// ============================================================================
// Tracer 接口实现
// ============================================================================

// KeyCreated 流首次创建时递增键总数
func (t *Tracer) KeyCreated(key string) {
	t.keys.Inc()
	t.subscribers.WithLabelValues(key).Set(0)
}

// Emitted 记录一次发布
func (t *Tracer) Emitted(key string, subscribers int) {
	t.emits.WithLabelValues(key).Inc()
}

// Delivered 记录一次实时投递
func (t *Tracer) Delivered(key string) {
	t.deliveries.WithLabelValues(key).Inc()
}

// Replayed 记录一次回放投递
func (t *Tracer) Replayed(key string) {
	t.replays.WithLabelValues(key).Inc()
}

// Subscribed 更新逐键订阅者数
func (t *Tracer) Subscribed(key string, subscribers int) {
	t.subscribers.WithLabelValues(key).Set(float64(subscribers))
}

// Canceled 更新逐键订阅者数
func (t *Tracer) Canceled(key string, subscribers int) {
	t.subscribers.WithLabelValues(key).Set(float64(subscribers))
}

// DeliveryPanicked 记录一次观察者崩溃
func (t *Tracer) DeliveryPanicked(key string) {
	t.panics.WithLabelValues(key).Inc()
}
