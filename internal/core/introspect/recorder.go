package introspect

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/types"
)

// keyRecord 单个键的活动计数
type keyRecord struct {
	mu          sync.Mutex
	emits       uint64
	deliveries  uint64
	replays     uint64
	panics      uint64
	subscribers int
	lastEmitAt  time.Time
}

// Recorder 基于 LRU 缓存的活动记录器
//
// Recorder 实现 interfaces.ActivityRecorder：作为 Tracer 挂到总线上，
// 按键聚合活动计数，并记录最近一次发布的时间戳。
// 键数超出容量时淘汰最久未活动的记录。
type Recorder struct {
	clk   clock.Clock
	cache *lru.Cache[string, *keyRecord]
}

// 确保 Recorder 实现 ActivityRecorder 接口
var _ pkgif.ActivityRecorder = (*Recorder)(nil)

// NewRecorder 创建活动记录器
//
// cfg 为 nil 时使用 DefaultConfig，clk 为 nil 时使用系统时钟。
func NewRecorder(cfg *Config, clk clock.Clock) (*Recorder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.New()
	}

	cache, err := lru.New[string, *keyRecord](cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("introspect: 创建缓存失败: %w", err)
	}

	return &Recorder{
		clk:   clk,
		cache: cache,
	}, nil
}

// record 返回键的记录，不存在则创建
func (r *Recorder) record(key string) *keyRecord {
	if rec, ok := r.cache.Get(key); ok {
		return rec
	}

	// 未命中时创建，并发创建以先入缓存者为准
	rec := &keyRecord{}
	if prev, ok, _ := r.cache.PeekOrAdd(key, rec); ok {
		return prev
	}
	return rec
}

// Len 返回当前记录的键数
func (r *Recorder) Len() int {
	return r.cache.Len()
}

// Snapshot 返回当前记录的逐键活动，按键排序
func (r *Recorder) Snapshot() []types.KeyActivity {
	keys := r.cache.Keys()
	out := make([]types.KeyActivity, 0, len(keys))

	for _, key := range keys {
		rec, ok := r.cache.Peek(key)
		if !ok {
			continue
		}

		rec.mu.Lock()
		out = append(out, types.KeyActivity{
			Key:         key,
			Emits:       rec.emits,
			Deliveries:  rec.deliveries,
			Replays:     rec.replays,
			Panics:      rec.panics,
			Subscribers: rec.subscribers,
			LastEmitAt:  rec.lastEmitAt,
		})
		rec.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// ============================================================================
// Tracer 接口实现
// ============================================================================

// KeyCreated 为新键建立记录
func (r *Recorder) KeyCreated(key string) {
	r.record(key)
}

// Emitted 记录一次发布并更新时间戳
func (r *Recorder) Emitted(key string, subscribers int) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.emits++
	rec.subscribers = subscribers
	rec.lastEmitAt = r.clk.Now()
	rec.mu.Unlock()
}

// Delivered 记录一次实时投递
func (r *Recorder) Delivered(key string) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.deliveries++
	rec.mu.Unlock()
}

// Replayed 记录一次回放投递
func (r *Recorder) Replayed(key string) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.replays++
	rec.mu.Unlock()
}

// Subscribed 更新订阅者数
func (r *Recorder) Subscribed(key string, subscribers int) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.subscribers = subscribers
	rec.mu.Unlock()
}

// Canceled 更新订阅者数
func (r *Recorder) Canceled(key string, subscribers int) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.subscribers = subscribers
	rec.mu.Unlock()
}

// DeliveryPanicked 记录一次观察者崩溃
func (r *Recorder) DeliveryPanicked(key string) {
	rec := r.record(key)
	rec.mu.Lock()
	rec.panics++
	rec.mu.Unlock()
}
