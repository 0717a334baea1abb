// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 Bus 接口，提供键控多播与最近值回放。
package interfaces

import (
	"log/slog"

	"github.com/dep2p/go-eventbus/pkg/types"
)

// Observer 事件观察者回调
//
// 投递是同步的：回调在发布方的调用栈上执行。
// 回调内允许再次调用总线（订阅、取消、发布其他键）。
type Observer func(value interface{})

// Predicate 过滤谓词
//
// value 为候选事件值；index 是到达该谓词的值的序号
// （按订阅计数，从 0 开始，被拒绝的值同样消耗序号）。
// 返回 true 表示放行。
type Predicate func(value interface{}, index int) bool

// Bus 定义键控多播总线接口
//
// 每个字符串键对应一条独立的事件流。流在首次访问时创建，
// 与总线同生命周期。总线缓存每个键的最近值，供新订阅者回放。
type Bus interface {
	// Observe 返回指定键的可观察句柄
	//
	// 句柄是惰性的：仅创建流，不注册任何订阅。
	Observe(key string, opts ...ObserveOpt) Observable

	// Emit 向指定键发布事件值
	//
	// 先更新最近值，再同步投递给当前全部订阅者。
	// 没有订阅者时仅缓存，值不丢失语义（后续订阅者可回放获得）。
	Emit(key string, value interface{})

	// HasLastValue 检查指定键是否已缓存最近值
	//
	// 只读探测，不会创建流。
	HasLastValue(key string) bool

	// Keys 返回所有已创建的流键
	Keys() []string

	// Stats 返回总线统计快照
	Stats() types.BusStats
}

// Observable 定义可观察句柄接口
//
// 句柄本身不持有订阅；每次 Subscribe 产生一个独立订阅。
type Observable interface {
	// Subscribe 注册观察者，返回订阅句柄
	//
	// 默认立即回放已缓存的最近值（若存在），随后进入实时投递。
	// fn 为 nil 时返回已取消的惰性句柄。
	Subscribe(fn Observer) Subscription

	// Filter 返回附加过滤谓词的新句柄
	//
	// 原句柄不受影响。谓词状态（序号计数）按订阅独立维护。
	Filter(pred Predicate) Observable
}

// Subscription 定义订阅句柄接口
type Subscription interface {
	// Cancel 取消订阅
	//
	// 幂等：重复调用无副作用。返回后观察者不再收到任何投递。
	Cancel()

	// Active 检查订阅是否仍在接收投递
	Active() bool
}

// ObserveOpt 观察选项函数类型
type ObserveOpt func(*ObserveSettings)

// BusOpt 总线构造选项函数类型
type BusOpt func(*BusSettings)

// ObserveSettings 观察设置（导出以供实现使用）
type ObserveSettings struct {
	Replay bool
}

// BusSettings 总线构造设置（导出以供实现使用）
type BusSettings struct {
	Tracers      []Tracer
	PanicHandler PanicHandler
	Logger       *slog.Logger
}

// WithoutReplay 关闭订阅时的最近值回放
func WithoutReplay() ObserveOpt {
	return func(s *ObserveSettings) {
		s.Replay = false
	}
}

// WithTracer 注册投递追踪器，可重复使用以注册多个
func WithTracer(t Tracer) BusOpt {
	return func(s *BusSettings) {
		if t != nil {
			s.Tracers = append(s.Tracers, t)
		}
	}
}

// WithPanicHandler 设置观察者 panic 的处理回调
func WithPanicHandler(h PanicHandler) BusOpt {
	return func(s *BusSettings) {
		if h != nil {
			s.PanicHandler = h
		}
	}
}

// WithLogger 设置总线日志器
//
// 流创建与观察者 panic 走该日志器；nil 时使用包级默认日志。
// 已设置 PanicHandler 时 panic 日志由处理器自行负责。
func WithLogger(l *slog.Logger) BusOpt {
	return func(s *BusSettings) {
		if l != nil {
			s.Logger = l
		}
	}
}
