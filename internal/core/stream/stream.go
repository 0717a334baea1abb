package stream

import (
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
	"github.com/dep2p/go-eventbus/pkg/types"
)

var logger = log.Logger("core/stream")

// ============================================================================
//                              Stream
// ============================================================================

// Stream 单键事件流
//
// 由总线按键创建并持有，与总线同生命周期。
type Stream struct {
	key     string
	tracer  pkgif.Tracer
	onPanic pkgif.PanicHandler

	// lk 保护 sinks、last、hasLast
	lk      sync.Mutex
	sinks   []*Subscription
	last    interface{}
	hasLast bool

	emits      atomic.Uint64
	deliveries atomic.Uint64
	replays    atomic.Uint64
	panics     atomic.Uint64
}

// New 创建事件流
//
// tracer 为 nil 时使用空追踪器；onPanic 为 nil 时
// 使用默认处理器（记录错误日志）。
func New(key string, tracer pkgif.Tracer, onPanic pkgif.PanicHandler) *Stream {
	if tracer == nil {
		tracer = pkgif.NopTracer{}
	}
	if onPanic == nil {
		onPanic = defaultPanicHandler
	}
	return &Stream{
		key:     key,
		tracer:  tracer,
		onPanic: onPanic,
	}
}

// defaultPanicHandler 默认的观察者 panic 处理：记录日志后继续
func defaultPanicHandler(key string, recovered interface{}, stack []byte) {
	logger.Error("观察者 panic 已隔离",
		"key", key,
		"panic", recovered,
		"stack", string(stack))
}

// Key 返回流键
func (s *Stream) Key() string {
	return s.key
}

// Emit 发布事件值
//
// 先更新最近值并快照订阅者集合，再在锁外按订阅顺序
// 同步投递。没有订阅者时仅更新缓存。
func (s *Stream) Emit(value interface{}) {
	s.lk.Lock()
	s.last = value
	s.hasLast = true
	snapshot := make([]*Subscription, len(s.sinks))
	copy(snapshot, s.sinks)
	s.lk.Unlock()

	s.emits.Add(1)
	s.tracer.Emitted(s.key, len(snapshot))

	for _, sub := range snapshot {
		sub.dispatch(value)
	}
}

// Subscribe 注册观察者
//
// replay 为 true 且存在最近值时，观察者先恰好一次地收到
// 该值，再进入实时投递。读取最近值与加入订阅者集合在
// 同一临界区内完成：与并发 Emit 交错时不会丢值或重复。
//
// 调用方保证 fn 非空。
func (s *Stream) Subscribe(fn pkgif.Observer, replay bool) *Subscription {
	sub := &Subscription{stream: s, fn: fn}
	sub.active.Store(true)

	s.lk.Lock()
	if replay && s.hasLast {
		sub.pending = s.last
		sub.hasPending = true
	} else {
		sub.replayDone.Store(true)
	}
	s.sinks = append(s.sinks, sub)
	total := len(s.sinks)
	s.lk.Unlock()

	s.tracer.Subscribed(s.key, total)
	sub.flushReplay()
	return sub
}

// remove 将订阅从集合中移除，由 Subscription.Cancel 调用
func (s *Stream) remove(sub *Subscription) {
	s.lk.Lock()
	for i, other := range s.sinks {
		if other == sub {
			s.sinks = append(s.sinks[:i], s.sinks[i+1:]...)
			break
		}
	}
	total := len(s.sinks)
	s.lk.Unlock()

	s.tracer.Canceled(s.key, total)
}

// HasLast 检查是否已缓存最近值
func (s *Stream) HasLast() bool {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.hasLast
}

// Last 返回缓存的最近值
//
// 第二个返回值指示缓存是否存在。
func (s *Stream) Last() (interface{}, bool) {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.last, s.hasLast
}

// Subscribers 返回当前订阅者数量
func (s *Stream) Subscribers() int {
	s.lk.Lock()
	defer s.lk.Unlock()
	return len(s.sinks)
}

// Stats 返回流的统计快照
func (s *Stream) Stats() types.KeyStats {
	s.lk.Lock()
	subscribers := len(s.sinks)
	hasLast := s.hasLast
	s.lk.Unlock()

	return types.KeyStats{
		Key:         s.key,
		Emits:       s.emits.Load(),
		Deliveries:  s.deliveries.Load(),
		Replays:     s.replays.Load(),
		Panics:      s.panics.Load(),
		Subscribers: subscribers,
		HasLast:     hasLast,
	}
}
