package interfaces_test

import (
	"testing"

	"github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/types"
)

// ============================================================================
// Mock 实现
// ============================================================================

// MockBus 模拟 Bus 接口实现
type MockBus struct {
	emitted map[string][]interface{}
}

func NewMockBus() *MockBus {
	return &MockBus{emitted: make(map[string][]interface{})}
}

func (m *MockBus) Observe(key string, opts ...interfaces.ObserveOpt) interfaces.Observable {
	return &MockObservable{}
}

func (m *MockBus) Emit(key string, value interface{}) {
	m.emitted[key] = append(m.emitted[key], value)
}

func (m *MockBus) HasLastValue(key string) bool {
	return len(m.emitted[key]) > 0
}

func (m *MockBus) Keys() []string {
	keys := make([]string, 0, len(m.emitted))
	for k := range m.emitted {
		keys = append(keys, k)
	}
	return keys
}

func (m *MockBus) Stats() types.BusStats {
	return types.BusStats{Keys: len(m.emitted)}
}

// MockObservable 模拟 Observable 接口实现
type MockObservable struct{}

func (m *MockObservable) Subscribe(fn interfaces.Observer) interfaces.Subscription {
	return &MockSubscription{active: true}
}

func (m *MockObservable) Filter(pred interfaces.Predicate) interfaces.Observable {
	return m
}

// MockSubscription 模拟 Subscription 接口实现
type MockSubscription struct {
	active bool
}

func (m *MockSubscription) Cancel()      { m.active = false }
func (m *MockSubscription) Active() bool { return m.active }

// ============================================================================
// 接口契约测试
// ============================================================================

// TestBusInterface 验证 Bus 接口存在
func TestBusInterface(t *testing.T) {
	var _ interfaces.Bus = (*MockBus)(nil)
	var _ interfaces.Observable = (*MockObservable)(nil)
	var _ interfaces.Subscription = (*MockSubscription)(nil)
}

// TestBus_Emit 测试 Emit 方法
func TestBus_Emit(t *testing.T) {
	bus := NewMockBus()

	bus.Emit("test/key", 42)
	if !bus.HasLastValue("test/key") {
		t.Error("Emit 后 HasLastValue 应返回 true")
	}
	if bus.HasLastValue("other/key") {
		t.Error("未发布的键 HasLastValue 应返回 false")
	}
}

// ============================================================================
// 选项函数测试
// ============================================================================

// TestWithoutReplay 测试回放开关选项
func TestWithoutReplay(t *testing.T) {
	settings := &interfaces.ObserveSettings{Replay: true}

	interfaces.WithoutReplay()(settings)
	if settings.Replay {
		t.Error("WithoutReplay 应关闭 Replay")
	}
}

// TestWithTracer 测试追踪器注册选项
func TestWithTracer(t *testing.T) {
	settings := &interfaces.BusSettings{}

	interfaces.WithTracer(interfaces.NopTracer{})(settings)
	interfaces.WithTracer(interfaces.NopTracer{})(settings)
	if len(settings.Tracers) != 2 {
		t.Errorf("Tracers 数量 = %d, 期望 2", len(settings.Tracers))
	}

	interfaces.WithTracer(nil)(settings)
	if len(settings.Tracers) != 2 {
		t.Error("nil 追踪器不应被注册")
	}
}

// TestWithPanicHandler 测试 panic 处理器选项
func TestWithPanicHandler(t *testing.T) {
	settings := &interfaces.BusSettings{}

	interfaces.WithPanicHandler(func(key string, recovered interface{}, stack []byte) {})(settings)
	if settings.PanicHandler == nil {
		t.Error("WithPanicHandler 应设置处理器")
	}

	interfaces.WithPanicHandler(nil)(settings)
	if settings.PanicHandler == nil {
		t.Error("nil 处理器不应覆盖已有处理器")
	}
}
