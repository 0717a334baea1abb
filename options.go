package eventbus

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 总线构造选项（追踪器、panic 处理、日志器）
	busOpts []pkgif.BusOpt

	// 指标配置
	metrics struct {
		enable     bool
		registerer prometheus.Registerer
	}
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{}
}

// apply 依次应用选项
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// toBusOpts 转换为总线构造选项
//
// 可失败的选项（指标注册）在这里求值，错误从构造入口返回。
func (o *options) toBusOpts() ([]pkgif.BusOpt, error) {
	busOpts := o.busOpts

	if o.metrics.enable {
		tracer, err := metrics.NewTracer(o.metrics.registerer)
		if err != nil {
			return nil, fmt.Errorf("eventbus: 创建指标追踪器失败: %w", err)
		}
		busOpts = append(busOpts, pkgif.WithTracer(tracer))
	}

	return busOpts, nil
}

// ============================================================================
//                              观测选项
// ============================================================================

// WithTracer 注册投递追踪器
//
// 可重复使用以注册多个追踪器，按注册顺序依次调用。
// 追踪器钩子在投递路径上同步执行，实现必须轻量且并发安全。
func WithTracer(t Tracer) Option {
	return func(o *options) error {
		if t == nil {
			return fmt.Errorf("追踪器不能为空")
		}
		o.busOpts = append(o.busOpts, pkgif.WithTracer(t))
		return nil
	}
}

// WithMetrics 启用 prometheus 指标
//
// 在总线上安装指标追踪器并将指标注册到 reg；reg 为 nil 时使用
// prometheus 默认注册器。同一注册器只能用于一个总线（或一个工厂），
// 重复注册会在构造时报错。
//
//	reg := prometheus.NewRegistry()
//	bus, err := eventbus.New(eventbus.WithMetrics(reg))
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.metrics.enable = true
		o.metrics.registerer = reg
		return nil
	}
}

// ============================================================================
//                              故障处理选项
// ============================================================================

// WithPanicHandler 设置观察者 panic 的处理回调
//
// 观察者 panic 被逐次投递隔离：恢复后调用 h，随后继续投递给
// 后续订阅者。未设置时默认记录错误日志。
func WithPanicHandler(h PanicHandler) Option {
	return func(o *options) error {
		if h == nil {
			return fmt.Errorf("panic 处理器不能为空")
		}
		o.busOpts = append(o.busOpts, pkgif.WithPanicHandler(h))
		return nil
	}
}

// WithLogger 设置总线日志器
//
// 流创建与观察者 panic 的日志走该日志器，未设置时使用包级默认。
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("日志器不能为空")
		}
		o.busOpts = append(o.busOpts, pkgif.WithLogger(l))
		return nil
	}
}

// ============================================================================
//                              观察选项（再导出）
// ============================================================================

// WithoutReplay 关闭订阅时的最近值回放
//
// 传给 Bus.Observe 使用，订阅者将只收到实时投递的值。
func WithoutReplay() ObserveOpt {
	return pkgif.WithoutReplay()
}
