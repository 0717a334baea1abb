// Package eventbus 实现键控多播总线
package eventbus

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/dep2p/go-eventbus/internal/core/stream"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
	"github.com/dep2p/go-eventbus/pkg/types"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 键控多播总线
//
// 维护键到事件流的注册表。流在首次访问时创建，
// 之后与总线同生命周期，不会被移除。
type Bus struct {
	tracer  pkgif.Tracer
	onPanic pkgif.PanicHandler

	// log 注入的日志器，nil 时使用包级默认
	log *slog.Logger

	// mu 保护 streams 注册表
	mu      sync.RWMutex
	streams map[string]*stream.Stream
}

var _ pkgif.Bus = (*Bus)(nil)

// NewBus 创建事件总线
func NewBus(opts ...pkgif.BusOpt) *Bus {
	settings := &busSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	b := &Bus{
		tracer:  pkgif.CombineTracers(settings.Tracers...),
		onPanic: settings.PanicHandler,
		log:     settings.Logger,
		streams: make(map[string]*stream.Stream),
	}
	if b.onPanic == nil && b.log != nil {
		l := b.log
		b.onPanic = func(key string, recovered interface{}, stack []byte) {
			l.Error("观察者 panic 已隔离",
				"key", key,
				"panic", recovered,
				"stack", string(stack))
		}
	}
	return b
}

// Observe 返回指定键的可观察句柄
//
// 句柄是惰性的：仅解析（必要时创建）流，不注册订阅。
// 同一键的多个句柄互不影响。
func (b *Bus) Observe(key string, opts ...pkgif.ObserveOpt) pkgif.Observable {
	settings := &observeSettings{Replay: true}
	for _, opt := range opts {
		opt(settings)
	}

	return &observable{
		st:     b.getStream(key),
		replay: settings.Replay,
	}
}

// Emit 向指定键发布事件值
//
// 键不存在时先创建流。投递是同步的：返回时当前
// 订阅者集合中的每个观察者都已被调用过。
func (b *Bus) Emit(key string, value interface{}) {
	b.getStream(key).Emit(value)
}

// HasLastValue 检查指定键是否已缓存最近值
//
// 只读探测：键不存在时直接返回 false，不创建流。
func (b *Bus) HasLastValue(key string) bool {
	b.mu.RLock()
	st, ok := b.streams[key]
	b.mu.RUnlock()

	if !ok {
		return false
	}
	return st.HasLast()
}

// Keys 返回所有已创建的流键，顺序未定义
func (b *Bus) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.streams))
	for key := range b.streams {
		keys = append(keys, key)
	}
	return keys
}

// Stats 返回总线统计快照，逐键明细按键排序
func (b *Bus) Stats() types.BusStats {
	b.mu.RLock()
	streams := make([]*stream.Stream, 0, len(b.streams))
	for _, st := range b.streams {
		streams = append(streams, st)
	}
	b.mu.RUnlock()

	stats := types.BusStats{
		Keys:   len(streams),
		PerKey: make([]types.KeyStats, 0, len(streams)),
	}
	for _, st := range streams {
		ks := st.Stats()
		stats.Subscribers += ks.Subscribers
		stats.Emits += ks.Emits
		stats.Deliveries += ks.Deliveries
		stats.Replays += ks.Replays
		stats.Panics += ks.Panics
		stats.PerKey = append(stats.PerKey, ks)
	}
	sort.Slice(stats.PerKey, func(i, j int) bool {
		return stats.PerKey[i].Key < stats.PerKey[j].Key
	})
	return stats
}

// getStream 返回键对应的流，不存在时创建
//
// 读路径走 RLock；未命中时双重检查后创建，
// 并发抢建收敛到同一实例。
func (b *Bus) getStream(key string) *stream.Stream {
	b.mu.RLock()
	st, ok := b.streams[key]
	b.mu.RUnlock()
	if ok {
		return st
	}

	b.mu.Lock()
	if st, ok = b.streams[key]; ok {
		b.mu.Unlock()
		return st
	}
	st = stream.New(key, b.tracer, b.onPanic)
	b.streams[key] = st
	b.mu.Unlock()

	b.tracer.KeyCreated(key)
	if b.log != nil {
		b.log.Debug("创建事件流", "key", key)
	} else {
		logger.Debug("创建事件流", "key", key)
	}
	return st
}
