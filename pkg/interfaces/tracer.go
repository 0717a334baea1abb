// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 Tracer 接口，提供投递路径上的观测钩子。
package interfaces

import (
	"github.com/dep2p/go-eventbus/pkg/types"
)

// Tracer 定义投递追踪接口
//
// 钩子在投递路径上同步调用（锁外），实现必须轻量且并发安全。
// 所有钩子都不允许 panic。
type Tracer interface {
	// KeyCreated 流首次创建时调用
	KeyCreated(key string)

	// Emitted 每次发布时调用，subscribers 为快照时的订阅者数量
	Emitted(key string, subscribers int)

	// Delivered 每次实时投递完成时调用
	Delivered(key string)

	// Replayed 每次回放投递完成时调用
	Replayed(key string)

	// Subscribed 新增订阅后调用，subscribers 为当前订阅者数量
	Subscribed(key string, subscribers int)

	// Canceled 取消订阅后调用，subscribers 为当前订阅者数量
	Canceled(key string, subscribers int)

	// DeliveryPanicked 观察者 panic 被隔离后调用
	DeliveryPanicked(key string)
}

// PanicHandler 观察者 panic 的处理回调
//
// recovered 为 recover() 捕获的值，stack 为 panic 时的调用栈。
// 回调在投递 goroutine 上同步执行，自身不允许 panic。
type PanicHandler func(key string, recovered interface{}, stack []byte)

// ActivityRecorder 定义活动记录器接口
//
// 在 Tracer 基础上提供按键聚合的活动快照。
type ActivityRecorder interface {
	Tracer

	// Snapshot 返回当前记录的逐键活动，按键排序
	Snapshot() []types.KeyActivity
}

// ============================================================================
//                              Tracer 工具
// ============================================================================

// NopTracer 空追踪器，所有钩子均为空操作
type NopTracer struct{}

var _ Tracer = NopTracer{}

func (NopTracer) KeyCreated(string)       {}
func (NopTracer) Emitted(string, int)     {}
func (NopTracer) Delivered(string)        {}
func (NopTracer) Replayed(string)         {}
func (NopTracer) Subscribed(string, int)  {}
func (NopTracer) Canceled(string, int)    {}
func (NopTracer) DeliveryPanicked(string) {}

// multiTracer 将多个追踪器合并为一个
type multiTracer struct {
	tracers []Tracer
}

func (m multiTracer) KeyCreated(key string) {
	for _, t := range m.tracers {
		t.KeyCreated(key)
	}
}

func (m multiTracer) Emitted(key string, subscribers int) {
	for _, t := range m.tracers {
		t.Emitted(key, subscribers)
	}
}

func (m multiTracer) Delivered(key string) {
	for _, t := range m.tracers {
		t.Delivered(key)
	}
}

func (m multiTracer) Replayed(key string) {
	for _, t := range m.tracers {
		t.Replayed(key)
	}
}

func (m multiTracer) Subscribed(key string, subscribers int) {
	for _, t := range m.tracers {
		t.Subscribed(key, subscribers)
	}
}

func (m multiTracer) Canceled(key string, subscribers int) {
	for _, t := range m.tracers {
		t.Canceled(key, subscribers)
	}
}

func (m multiTracer) DeliveryPanicked(key string) {
	for _, t := range m.tracers {
		t.DeliveryPanicked(key)
	}
}

// CombineTracers 合并多个追踪器
//
// nil 追踪器会被跳过。没有有效追踪器时返回 NopTracer，
// 恰好一个时原样返回，避免不必要的间接层。
func CombineTracers(tracers ...Tracer) Tracer {
	valid := make([]Tracer, 0, len(tracers))
	for _, t := range tracers {
		if t != nil {
			valid = append(valid, t)
		}
	}

	switch len(valid) {
	case 0:
		return NopTracer{}
	case 1:
		return valid[0]
	default:
		return multiTracer{tracers: valid}
	}
}
