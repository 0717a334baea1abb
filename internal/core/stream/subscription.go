package stream

import (
	"runtime/debug"
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
//                              Subscription
// ============================================================================

// Subscription 订阅句柄
//
// 同一观察者可以多次订阅同一条流，每次订阅产生独立句柄，
// 互不影响地取消。
type Subscription struct {
	stream *Stream
	fn     pkgif.Observer

	// active 为 false 后投递被跳过
	active atomic.Bool

	// 回放状态：pending 在订阅临界区内写入一次，
	// 此后仅由 replayDone 的 CAS 赢家读取
	pending    interface{}
	hasPending bool
	replayDone atomic.Bool
}

var _ pkgif.Subscription = (*Subscription)(nil)

// Cancel 取消订阅
//
// 幂等。返回后观察者不再收到任何投递；
// 正在执行中的回调不会被打断。
func (sub *Subscription) Cancel() {
	if !sub.active.CompareAndSwap(true, false) {
		return
	}
	sub.stream.remove(sub)
}

// Active 检查订阅是否仍在接收投递
func (sub *Subscription) Active() bool {
	return sub.active.Load()
}

// flushReplay 恰好一次地投递待回放值
//
// 订阅方与并发的发布方都会调用；CAS 保证只有一方执行投递。
// 发布方先于订阅方到达时，回放仍然先于该次实时投递。
func (sub *Subscription) flushReplay() {
	if !sub.hasPending {
		return
	}
	if !sub.replayDone.CompareAndSwap(false, true) {
		return
	}
	value := sub.pending
	sub.pending = nil
	sub.deliver(value, true)
}

// dispatch 投递实时值，由 Emit 的快照循环调用
func (sub *Subscription) dispatch(value interface{}) {
	sub.flushReplay()
	if !sub.active.Load() {
		return
	}
	sub.deliver(value, false)
}

// deliver 执行观察者回调并记录结果
//
// 回调 panic 被就地恢复：计入统计并交给 panic 处理器，
// 不向发布方传播。
func (sub *Subscription) deliver(value interface{}, replayed bool) {
	defer func() {
		if r := recover(); r != nil {
			st := sub.stream
			st.panics.Add(1)
			st.tracer.DeliveryPanicked(st.key)
			st.onPanic(st.key, r, debug.Stack())
		}
	}()

	sub.fn(value)

	st := sub.stream
	if replayed {
		st.replays.Add(1)
		st.tracer.Replayed(st.key)
	} else {
		st.deliveries.Add(1)
		st.tracer.Delivered(st.key)
	}
}
