package scope

import (
	"sync"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/types"
)

// ============================================================================
//                              Manager
// ============================================================================

// Manager 作用域管理器
//
// 维护作用域标识到总线实例的注册表。
// 每个作用域恰好对应一个总线，首次 Get 时由工厂创建。
type Manager struct {
	factory pkgif.BusFactory

	// mu 保护 scopes 注册表
	mu     sync.RWMutex
	scopes map[types.ScopeID]pkgif.Bus
}

var _ pkgif.ScopeManager = (*Manager)(nil)

// NewManager 创建作用域管理器
//
// factory 为 nil 时使用默认工厂（无追踪器）。
func NewManager(factory pkgif.BusFactory) *Manager {
	if factory == nil {
		factory = NewFactory()
	}
	return &Manager{
		factory: factory,
		scopes:  make(map[types.ScopeID]pkgif.Bus),
	}
}

// Get 返回作用域对应的总线，不存在时创建
//
// 读路径走 RLock；未命中时双重检查后创建，
// 并发 Get 同一作用域收敛到同一实例。
func (m *Manager) Get(scope types.ScopeID) pkgif.Bus {
	m.mu.RLock()
	bus, ok := m.scopes[scope]
	m.mu.RUnlock()
	if ok {
		return bus
	}

	m.mu.Lock()
	if bus, ok = m.scopes[scope]; ok {
		m.mu.Unlock()
		return bus
	}
	bus = m.factory.Create()
	m.scopes[scope] = bus
	m.mu.Unlock()

	logger.Debug("创建作用域总线", "scope", scope.ShortString())
	return bus
}

// Drop 移除作用域及其总线
//
// 幂等：作用域不存在时无副作用。已持有的旧总线引用
// 仍可继续使用，只是不再被本管理器追踪。
func (m *Manager) Drop(scope types.ScopeID) {
	m.mu.Lock()
	_, existed := m.scopes[scope]
	delete(m.scopes, scope)
	m.mu.Unlock()

	if existed {
		logger.Debug("移除作用域总线", "scope", scope.ShortString())
	}
}

// Count 返回当前管理的作用域数量
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scopes)
}

// Scopes 返回当前管理的全部作用域标识，顺序未定义
func (m *Manager) Scopes() []types.ScopeID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]types.ScopeID, 0, len(m.scopes))
	for id := range m.scopes {
		ids = append(ids, id)
	}
	return ids
}
