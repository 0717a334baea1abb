package types

import "time"

// ============================================================================
//                              KeyStats
// ============================================================================

// KeyStats 单个流键的统计快照
type KeyStats struct {
	// Key 流键
	Key string

	// Emits 累计发布次数
	Emits uint64

	// Deliveries 累计实时投递次数（不含回放）
	Deliveries uint64

	// Replays 累计回放投递次数
	Replays uint64

	// Panics 累计被隔离的观察者 panic 次数
	Panics uint64

	// Subscribers 当前订阅者数量
	Subscribers int

	// HasLast 是否缓存了最近值
	HasLast bool
}

// TotalDeliveries 返回实时投递与回放投递的总和
func (s KeyStats) TotalDeliveries() uint64 {
	return s.Deliveries + s.Replays
}

// ============================================================================
//                              BusStats
// ============================================================================

// BusStats 总线级统计快照
type BusStats struct {
	// Keys 已创建的流键数量
	Keys int

	// Subscribers 当前订阅者总数
	Subscribers int

	// Emits 累计发布次数
	Emits uint64

	// Deliveries 累计实时投递次数（不含回放）
	Deliveries uint64

	// Replays 累计回放投递次数
	Replays uint64

	// Panics 累计被隔离的观察者 panic 次数
	Panics uint64

	// PerKey 按流键排序的逐键明细
	PerKey []KeyStats
}

// TotalDeliveries 返回实时投递与回放投递的总和
func (s BusStats) TotalDeliveries() uint64 {
	return s.Deliveries + s.Replays
}

// ============================================================================
//                              KeyActivity
// ============================================================================

// KeyActivity 单个流键的活动记录
//
// 由活动记录器（introspect）维护，相比 KeyStats
// 额外携带最近一次发布的时间戳。
type KeyActivity struct {
	// Key 流键
	Key string

	// Emits 累计发布次数
	Emits uint64

	// Deliveries 累计实时投递次数（不含回放）
	Deliveries uint64

	// Replays 累计回放投递次数
	Replays uint64

	// Panics 累计被隔离的观察者 panic 次数
	Panics uint64

	// Subscribers 当前订阅者数量
	Subscribers int

	// LastEmitAt 最近一次发布的时间，从未发布过则为零值
	LastEmitAt time.Time
}

// Idle 返回自最近一次发布以来经过的时长
//
// 从未发布过时返回 0。
func (a KeyActivity) Idle(now time.Time) time.Duration {
	if a.LastEmitAt.IsZero() {
		return 0
	}
	return now.Sub(a.LastEmitAt)
}
