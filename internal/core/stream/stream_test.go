package stream

import (
	"testing"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestSubscription_ImplementsInterface 验证 Subscription 实现接口
func TestSubscription_ImplementsInterface(t *testing.T) {
	var _ pkgif.Subscription = (*Subscription)(nil)
}

// ============================================================================
// 基础功能测试
// ============================================================================

// TestStream_New 测试创建事件流
func TestStream_New(t *testing.T) {
	s := New("ui/tooltip", nil, nil)

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.Key() != "ui/tooltip" {
		t.Errorf("Key() = %q, want %q", s.Key(), "ui/tooltip")
	}
	if s.HasLast() {
		t.Error("新建流不应缓存最近值")
	}
	if s.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", s.Subscribers())
	}
}

// TestStream_EmitCachesLast 测试无订阅者时发布仅缓存
func TestStream_EmitCachesLast(t *testing.T) {
	s := New("k", nil, nil)

	s.Emit(42)

	if !s.HasLast() {
		t.Error("Emit 后 HasLast() = false, want true")
	}
	last, ok := s.Last()
	if !ok {
		t.Fatal("Last() ok = false, want true")
	}
	if last != 42 {
		t.Errorf("Last() = %v, want 42", last)
	}
}

// TestStream_EmitDelivers 测试发布投递给订阅者
func TestStream_EmitDelivers(t *testing.T) {
	s := New("k", nil, nil)

	var received []interface{}
	s.Subscribe(func(v interface{}) {
		received = append(received, v)
	}, false)

	s.Emit("hello")
	s.Emit("world")

	if len(received) != 2 {
		t.Fatalf("received %d values, want 2", len(received))
	}
	if received[0] != "hello" || received[1] != "world" {
		t.Errorf("received = %v, want [hello world]", received)
	}
}

// TestStream_Multicast 测试多订阅者按订阅顺序投递
func TestStream_Multicast(t *testing.T) {
	s := New("k", nil, nil)

	var order []string
	s.Subscribe(func(v interface{}) { order = append(order, "first") }, false)
	s.Subscribe(func(v interface{}) { order = append(order, "second") }, false)
	s.Subscribe(func(v interface{}) { order = append(order, "third") }, false)

	s.Emit(1)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("delivered to %d observers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("投递顺序[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

// TestStream_DuplicateObserver 测试同一观察者重复订阅
func TestStream_DuplicateObserver(t *testing.T) {
	s := New("k", nil, nil)

	count := 0
	fn := func(v interface{}) { count++ }

	sub1 := s.Subscribe(fn, false)
	sub2 := s.Subscribe(fn, false)

	s.Emit(1)
	if count != 2 {
		t.Errorf("重复订阅后 count = %d, want 2", count)
	}

	// 取消其中一个，另一个不受影响
	sub1.Cancel()
	s.Emit(2)
	if count != 3 {
		t.Errorf("取消一个订阅后 count = %d, want 3", count)
	}
	if !sub2.Active() {
		t.Error("sub2 应仍处于活跃状态")
	}
}

// TestStream_OrderPreservation 测试单键投递顺序与发布顺序一致
func TestStream_OrderPreservation(t *testing.T) {
	s := New("k", nil, nil)

	var received []interface{}
	s.Subscribe(func(v interface{}) {
		received = append(received, v)
	}, false)

	const n = 100
	for i := 0; i < n; i++ {
		s.Emit(i)
	}

	if len(received) != n {
		t.Fatalf("received %d values, want %d", len(received), n)
	}
	for i := 0; i < n; i++ {
		if received[i] != i {
			t.Fatalf("received[%d] = %v, want %d", i, received[i], i)
		}
	}
}

// ============================================================================
// 回放测试
// ============================================================================

// TestStream_ReplayLatestOnly 测试回放仅包含最近一个值
func TestStream_ReplayLatestOnly(t *testing.T) {
	s := New("k", nil, nil)

	s.Emit(1)
	s.Emit(2)
	s.Emit(3)

	var received []interface{}
	s.Subscribe(func(v interface{}) {
		received = append(received, v)
	}, true)

	if len(received) != 1 {
		t.Fatalf("replayed %d values, want 1", len(received))
	}
	if received[0] != 3 {
		t.Errorf("replayed = %v, want 3", received[0])
	}
}

// TestStream_NoReplayWithoutValue 测试无缓存时不回放
func TestStream_NoReplayWithoutValue(t *testing.T) {
	s := New("k", nil, nil)

	called := false
	s.Subscribe(func(v interface{}) { called = true }, true)

	if called {
		t.Error("从未发布过的流不应回放")
	}
}

// TestStream_SubscribeWithoutReplay 测试关闭回放
func TestStream_SubscribeWithoutReplay(t *testing.T) {
	s := New("k", nil, nil)
	s.Emit(1)

	var received []interface{}
	s.Subscribe(func(v interface{}) {
		received = append(received, v)
	}, false)

	if len(received) != 0 {
		t.Errorf("关闭回放后收到 %d 个值, want 0", len(received))
	}

	s.Emit(2)
	if len(received) != 1 || received[0] != 2 {
		t.Errorf("received = %v, want [2]", received)
	}
}

// TestStream_ReplayThenLive 测试回放先于实时投递
func TestStream_ReplayThenLive(t *testing.T) {
	s := New("k", nil, nil)
	s.Emit("cached")

	var received []interface{}
	s.Subscribe(func(v interface{}) {
		received = append(received, v)
	}, true)
	s.Emit("live")

	if len(received) != 2 {
		t.Fatalf("received %d values, want 2", len(received))
	}
	if received[0] != "cached" || received[1] != "live" {
		t.Errorf("received = %v, want [cached live]", received)
	}
}

// TestStream_ReplayPerSubscription 测试每个订阅独立回放
func TestStream_ReplayPerSubscription(t *testing.T) {
	s := New("k", nil, nil)
	s.Emit(7)

	first := 0
	second := 0
	s.Subscribe(func(v interface{}) { first++ }, true)
	s.Subscribe(func(v interface{}) { second++ }, true)

	if first != 1 || second != 1 {
		t.Errorf("replay counts = %d, %d, want 1, 1", first, second)
	}
}

// ============================================================================
// 取消测试
// ============================================================================

// TestSubscription_Cancel 测试取消后不再投递
func TestSubscription_Cancel(t *testing.T) {
	s := New("k", nil, nil)

	count := 0
	sub := s.Subscribe(func(v interface{}) { count++ }, false)

	s.Emit(1)
	sub.Cancel()
	s.Emit(2)
	s.Emit(3)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if sub.Active() {
		t.Error("取消后 Active() = true, want false")
	}
	if s.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", s.Subscribers())
	}
}

// TestSubscription_CancelIdempotent 测试取消幂等
func TestSubscription_CancelIdempotent(t *testing.T) {
	s := New("k", nil, nil)

	sub := s.Subscribe(func(v interface{}) {}, false)
	other := s.Subscribe(func(v interface{}) {}, false)

	sub.Cancel()
	sub.Cancel()
	sub.Cancel()

	if s.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", s.Subscribers())
	}
	if !other.Active() {
		t.Error("其他订阅不应受重复取消影响")
	}
}

// TestStream_CancelDuringEmit 测试投递过程中取消其他订阅
func TestStream_CancelDuringEmit(t *testing.T) {
	s := New("k", nil, nil)

	var later *Subscription
	firstGot := 0
	laterGot := 0

	s.Subscribe(func(v interface{}) {
		firstGot++
		later.Cancel()
	}, false)
	later = s.Subscribe(func(v interface{}) { laterGot++ }, false)

	s.Emit(1)

	if firstGot != 1 {
		t.Errorf("firstGot = %d, want 1", firstGot)
	}
	if laterGot != 0 {
		t.Errorf("被取消的订阅收到 %d 个值, want 0", laterGot)
	}
}

// TestStream_CancelFromOwnCallback 测试回调内取消自身（一次性订阅）
func TestStream_CancelFromOwnCallback(t *testing.T) {
	s := New("k", nil, nil)

	var received []interface{}
	var sub *Subscription
	sub = s.Subscribe(func(v interface{}) {
		received = append(received, v)
		sub.Cancel()
	}, false)

	s.Emit(1)
	s.Emit(2)

	if len(received) != 1 || received[0] != 1 {
		t.Errorf("received = %v, want [1]", received)
	}
	if sub.Active() {
		t.Error("自取消后 Active() = true, want false")
	}
}

// ============================================================================
// 再入测试
// ============================================================================

// TestStream_SubscribeFromCallback 测试回调内再订阅
func TestStream_SubscribeFromCallback(t *testing.T) {
	t.Run("不带回放", func(t *testing.T) {
		s := New("k", nil, nil)

		var inner []interface{}
		s.Subscribe(func(v interface{}) {
			if v == "first" {
				s.Subscribe(func(iv interface{}) {
					inner = append(inner, iv)
				}, false)
			}
		}, false)

		s.Emit("first")
		// 快照语义：再入订阅不参与当前这次投递
		if len(inner) != 0 {
			t.Errorf("inner received %v during same emit, want none", inner)
		}

		s.Emit("second")
		if len(inner) != 1 || inner[0] != "second" {
			t.Errorf("inner = %v, want [second]", inner)
		}
	})

	t.Run("带回放", func(t *testing.T) {
		s := New("k", nil, nil)

		var inner []interface{}
		s.Subscribe(func(v interface{}) {
			if v == "first" {
				// Emit 先更新缓存再投递，因此回放能拿到本次值
				s.Subscribe(func(iv interface{}) {
					inner = append(inner, iv)
				}, true)
			}
		}, false)

		s.Emit("first")
		if len(inner) != 1 || inner[0] != "first" {
			t.Errorf("inner = %v, want [first]", inner)
		}
	})
}

// ============================================================================
// panic 隔离测试
// ============================================================================

// TestStream_PanicIsolation 测试观察者 panic 不影响其他订阅者
func TestStream_PanicIsolation(t *testing.T) {
	var panicKey string
	var panicValue interface{}
	onPanic := func(key string, recovered interface{}, stack []byte) {
		panicKey = key
		panicValue = recovered
	}

	s := New("boom", nil, onPanic)

	healthy := 0
	s.Subscribe(func(v interface{}) { panic("observer exploded") }, false)
	s.Subscribe(func(v interface{}) { healthy++ }, false)

	s.Emit(1)

	if healthy != 1 {
		t.Errorf("healthy = %d, want 1（panic 不应中断后续投递）", healthy)
	}
	if panicKey != "boom" {
		t.Errorf("panic handler key = %q, want %q", panicKey, "boom")
	}
	if panicValue != "observer exploded" {
		t.Errorf("panic handler recovered = %v, want %q", panicValue, "observer exploded")
	}
}

// TestStream_PanicKeepsSubscription 测试 panic 后订阅仍然存活
func TestStream_PanicKeepsSubscription(t *testing.T) {
	s := New("k", nil, func(string, interface{}, []byte) {})

	calls := 0
	s.Subscribe(func(v interface{}) {
		calls++
		if calls == 1 {
			panic("first call explodes")
		}
	}, false)

	s.Emit(1)
	s.Emit(2)

	if calls != 2 {
		t.Errorf("calls = %d, want 2（panic 后订阅不应被移除）", calls)
	}
}

// TestStream_PanicDuringReplay 测试回放投递中的 panic 隔离
func TestStream_PanicDuringReplay(t *testing.T) {
	handled := 0
	s := New("k", nil, func(string, interface{}, []byte) { handled++ })

	s.Emit(1)
	sub := s.Subscribe(func(v interface{}) { panic("replay explodes") }, true)

	if handled != 1 {
		t.Errorf("handled = %d, want 1", handled)
	}
	if !sub.Active() {
		t.Error("回放 panic 后订阅应仍然活跃")
	}
}

// ============================================================================
// 统计测试
// ============================================================================

// TestStream_Stats 测试统计快照
func TestStream_Stats(t *testing.T) {
	s := New("stats/key", nil, func(string, interface{}, []byte) {})

	s.Emit(1) // 无订阅者，仅缓存

	s.Subscribe(func(v interface{}) {}, true) // 回放 1 次
	s.Subscribe(func(v interface{}) { panic("x") }, false)

	s.Emit(2) // 实时投递 1 次成功 + 1 次 panic

	stats := s.Stats()
	if stats.Key != "stats/key" {
		t.Errorf("Key = %q, want %q", stats.Key, "stats/key")
	}
	if stats.Emits != 2 {
		t.Errorf("Emits = %d, want 2", stats.Emits)
	}
	if stats.Replays != 1 {
		t.Errorf("Replays = %d, want 1", stats.Replays)
	}
	if stats.Deliveries != 1 {
		t.Errorf("Deliveries = %d, want 1", stats.Deliveries)
	}
	if stats.Panics != 1 {
		t.Errorf("Panics = %d, want 1", stats.Panics)
	}
	if stats.Subscribers != 2 {
		t.Errorf("Subscribers = %d, want 2", stats.Subscribers)
	}
	if !stats.HasLast {
		t.Error("HasLast = false, want true")
	}
	if stats.TotalDeliveries() != 2 {
		t.Errorf("TotalDeliveries() = %d, want 2", stats.TotalDeliveries())
	}
}
