package eventbus

import (
	"testing"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestObservable_ImplementsInterface 验证 observable 实现接口
func TestObservable_ImplementsInterface(t *testing.T) {
	var _ pkgif.Observable = (*observable)(nil)
	var _ pkgif.Subscription = inertSubscription{}
}

// ============================================================================
// 冷句柄测试
// ============================================================================

// TestObservable_Cold 测试句柄本身不注册订阅
func TestObservable_Cold(t *testing.T) {
	bus := NewBus()

	obs := bus.Observe("cold")
	bus.Emit("cold", 1)

	stats := bus.Stats()
	if stats.Subscribers != 0 {
		t.Errorf("未 Subscribe 前 Subscribers = %d, want 0", stats.Subscribers)
	}

	// 句柄可多次使用，每次产生独立订阅
	first := 0
	second := 0
	obs.Subscribe(func(v interface{}) { first++ })  // 回放 1
	obs.Subscribe(func(v interface{}) { second++ }) // 回放 1

	if first != 1 || second != 1 {
		t.Errorf("各订阅回放次数 = %d, %d, want 1, 1", first, second)
	}

	bus.Emit("cold", 2)
	if first != 2 || second != 2 {
		t.Errorf("实时投递后计数 = %d, %d, want 2, 2", first, second)
	}
}

// TestObservable_NilObserver 测试空观察者返回惰性句柄
func TestObservable_NilObserver(t *testing.T) {
	bus := NewBus()

	sub := bus.Observe("k").Subscribe(nil)

	if sub == nil {
		t.Fatal("Subscribe(nil) returned nil")
	}
	if sub.Active() {
		t.Error("空观察者的订阅不应处于活跃状态")
	}
	sub.Cancel() // 不应 panic

	bus.Emit("k", 1) // 不应 panic
	if bus.Stats().Subscribers != 0 {
		t.Error("空观察者不应占用订阅席位")
	}
}

// ============================================================================
// 过滤测试
// ============================================================================

// TestObservable_Filter 测试谓词过滤
func TestObservable_Filter(t *testing.T) {
	bus := NewBus()

	var received []interface{}
	bus.Observe("nums", WithoutReplay()).
		Filter(func(v interface{}, index int) bool {
			return v.(int)%2 == 0
		}).
		Subscribe(func(v interface{}) {
			received = append(received, v)
		})

	for i := 1; i <= 6; i++ {
		bus.Emit("nums", i)
	}

	want := []interface{}{2, 4, 6}
	if len(received) != len(want) {
		t.Fatalf("received = %v, want %v", received, want)
	}
	for i := range want {
		if received[i] != want[i] {
			t.Errorf("received[%d] = %v, want %v", i, received[i], want[i])
		}
	}
}

// TestObservable_FilterIndex 测试谓词序号语义
func TestObservable_FilterIndex(t *testing.T) {
	bus := NewBus()

	var indexes []int
	bus.Observe("k", WithoutReplay()).
		Filter(func(v interface{}, index int) bool {
			indexes = append(indexes, index)
			return v.(int) > 0 // 拒绝的值同样消耗序号
		}).
		Subscribe(func(v interface{}) {})

	bus.Emit("k", -1)
	bus.Emit("k", 5)
	bus.Emit("k", -2)
	bus.Emit("k", 7)

	want := []int{0, 1, 2, 3}
	if len(indexes) != len(want) {
		t.Fatalf("indexes = %v, want %v", indexes, want)
	}
	for i := range want {
		if indexes[i] != want[i] {
			t.Errorf("indexes[%d] = %d, want %d", i, indexes[i], want[i])
		}
	}
}

// TestObservable_FilterIndexPerSubscription 测试序号按订阅独立计数
func TestObservable_FilterIndexPerSubscription(t *testing.T) {
	bus := NewBus()

	obs := bus.Observe("k", WithoutReplay()).
		Filter(func(v interface{}, index int) bool {
			return index == 0 // 每个订阅只放行第一个值
		})

	var first, second []interface{}
	obs.Subscribe(func(v interface{}) { first = append(first, v) })

	bus.Emit("k", "a")

	// 第二个订阅在 a 之后注册：它的序号从 0 重新计数
	obs.Subscribe(func(v interface{}) { second = append(second, v) })

	bus.Emit("k", "b")
	bus.Emit("k", "c")

	if len(first) != 1 || first[0] != "a" {
		t.Errorf("first = %v, want [a]", first)
	}
	if len(second) != 1 || second[0] != "b" {
		t.Errorf("second = %v, want [b]", second)
	}
}

// TestObservable_FilterOnReplay 测试回放值经过过滤链
func TestObservable_FilterOnReplay(t *testing.T) {
	bus := NewBus()
	bus.Emit("k", 10)

	t.Run("谓词放行回放值", func(t *testing.T) {
		var received []interface{}
		bus.Observe("k").
			Filter(func(v interface{}, index int) bool { return true }).
			Subscribe(func(v interface{}) { received = append(received, v) })

		if len(received) != 1 || received[0] != 10 {
			t.Errorf("received = %v, want [10]", received)
		}
	})

	t.Run("谓词拒绝回放值", func(t *testing.T) {
		var received []interface{}
		var replayIndex = -1
		bus.Observe("k").
			Filter(func(v interface{}, index int) bool {
				replayIndex = index
				return false
			}).
			Subscribe(func(v interface{}) { received = append(received, v) })

		if len(received) != 0 {
			t.Errorf("被拒绝的回放值仍被投递: %v", received)
		}
		// 回放值消耗序号 0
		if replayIndex != 0 {
			t.Errorf("回放值的序号 = %d, want 0", replayIndex)
		}
	})
}

// TestObservable_FilterChain 测试过滤链组合
func TestObservable_FilterChain(t *testing.T) {
	bus := NewBus()

	var reachedSecond []interface{}
	var received []interface{}

	bus.Observe("k", WithoutReplay()).
		Filter(func(v interface{}, index int) bool {
			return v.(int)%2 == 0
		}).
		Filter(func(v interface{}, index int) bool {
			reachedSecond = append(reachedSecond, v)
			return v.(int) > 2
		}).
		Subscribe(func(v interface{}) {
			received = append(received, v)
		})

	for i := 1; i <= 6; i++ {
		bus.Emit("k", i)
	}

	// 第二级谓词只看到通过第一级的值
	wantReached := []interface{}{2, 4, 6}
	if len(reachedSecond) != len(wantReached) {
		t.Fatalf("reachedSecond = %v, want %v", reachedSecond, wantReached)
	}

	wantReceived := []interface{}{4, 6}
	if len(received) != len(wantReceived) {
		t.Fatalf("received = %v, want %v", received, wantReceived)
	}
	for i := range wantReceived {
		if received[i] != wantReceived[i] {
			t.Errorf("received[%d] = %v, want %v", i, received[i], wantReceived[i])
		}
	}
}

// TestObservable_FilterChainIndex 测试链上各级序号独立
func TestObservable_FilterChainIndex(t *testing.T) {
	bus := NewBus()

	var secondIndexes []int
	bus.Observe("k", WithoutReplay()).
		Filter(func(v interface{}, index int) bool {
			return v.(int)%2 == 0
		}).
		Filter(func(v interface{}, index int) bool {
			secondIndexes = append(secondIndexes, index)
			return true
		}).
		Subscribe(func(v interface{}) {})

	for i := 1; i <= 6; i++ {
		bus.Emit("k", i)
	}

	// 第二级只对到达它的值计数：2, 4, 6 → 序号 0, 1, 2
	want := []int{0, 1, 2}
	if len(secondIndexes) != len(want) {
		t.Fatalf("secondIndexes = %v, want %v", secondIndexes, want)
	}
	for i := range want {
		if secondIndexes[i] != want[i] {
			t.Errorf("secondIndexes[%d] = %d, want %d", i, secondIndexes[i], want[i])
		}
	}
}

// TestObservable_FilterDoesNotMutateParent 测试 Filter 不影响原句柄
func TestObservable_FilterDoesNotMutateParent(t *testing.T) {
	bus := NewBus()

	parent := bus.Observe("k", WithoutReplay())
	parent.Filter(func(v interface{}, index int) bool { return false })

	// 原句柄订阅不经过任何过滤
	var received []interface{}
	parent.Subscribe(func(v interface{}) { received = append(received, v) })

	bus.Emit("k", 1)
	if len(received) != 1 {
		t.Errorf("原句柄 received = %v, want [1]", received)
	}
}

// TestObservable_NilPredicate 测试空谓词原样返回
func TestObservable_NilPredicate(t *testing.T) {
	bus := NewBus()

	obs := bus.Observe("k")
	filtered := obs.Filter(nil)

	if filtered != obs {
		t.Error("nil 谓词应原样返回句柄")
	}
}
