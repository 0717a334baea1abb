// Package scope 实现作用域总线工厂与管理器
//
// 共享总线要求订阅方自行过滤无关流量；作用域总线反过来，
// 给每个协调域一个私有总线实例，键空间、最近值缓存与
// 订阅者集合完全隔离。
//
// # 组件
//
//   - Factory: 总线工厂，每次 Create 返回独立实例，
//     并把工厂持有的追踪器与 panic 处理器装配进去
//   - Manager: 作用域注册表，每个 ScopeID 恰好对应一个总线
//
// # 快速开始
//
//	factory := scope.NewFactory()
//	manager := scope.NewManager(factory)
//
//	busA := manager.Get("tooltip-42")
//	busB := manager.Get("tooltip-43")
//	// busA 与 busB 互不可见
//
//	manager.Drop("tooltip-42") // 之后 Get 返回全新实例
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：internal/core/eventbus, pkg/interfaces
//   - 被依赖：根门面
//
// # 并发安全
//
// Manager 使用 sync.RWMutex 保护作用域注册表，
// 并发 Get 同一作用域收敛到同一实例。
package scope
