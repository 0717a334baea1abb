// Package eventbus 实现键控多播总线
//
// 提供按字符串键组织的事件流，支持：
//   - 多订阅者同步多播
//   - 最近值缓存与订阅回放
//   - 谓词过滤（Filter 组合子）
//   - 观察者 panic 隔离
//   - 投递追踪钩子
//   - 并发安全
//
// # 快速开始
//
//	// 创建总线
//	bus := eventbus.NewBus()
//
//	// 订阅事件（默认回放最近值）
//	sub := bus.Observe("ui/position").Subscribe(func(v interface{}) {
//	    pos := v.(Position)
//	    // 处理事件
//	})
//	defer sub.Cancel()
//
//	// 发布事件
//	bus.Emit("ui/position", Position{X: 1, Y: 2})
//
// # 过滤
//
//	bus.Observe("ui/position").
//	    Filter(func(v interface{}, index int) bool {
//	        return index%2 == 0 // 只看偶数序号
//	    }).
//	    Subscribe(handler)
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    eventbus.Module(),
//	    fx.Invoke(func(bus pkgif.Bus) {
//	        bus.Emit("app/ready", struct{}{})
//	    }),
//	)
//
// # 架构定位
//
// Tier: Core Layer Level 1（仅依赖 stream）
//
// 依赖关系：
//   - 依赖：internal/core/stream, pkg/interfaces
//   - 被依赖：scope, discovery/handshake
//
// # 并发安全
//
// Bus 使用 sync.RWMutex 保护流注册表：
//   - 读路径（已存在的键）：RLock
//   - 首次创建：双重检查后 Lock 创建，并发抢建收敛到同一实例
//   - 流内部的投递与订阅由 stream 包自行加锁
//
// # 相关文档
//
//   - 接口定义：pkg/interfaces/eventbus.go
//   - 流实现：internal/core/stream
package eventbus
