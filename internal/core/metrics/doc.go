// Package metrics 提供基于 Prometheus 的总线指标收集
//
// metrics 模块将 Tracer 钩子转换为 Prometheus 指标，基于 client_golang 提供：
//   - 逐键计数器（发布/投递/回放/崩溃）
//   - 键总数与逐键订阅者数的实时仪表
//   - 并发安全（Prometheus 指标内置原子操作）
//   - 可注入自定义 Registerer（默认 prometheus.DefaultRegisterer）
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	tracer, err := metrics.NewTracer(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bus := eventbus.NewBus(interfaces.WithTracer(tracer))
//	bus.Emit("peer:connected", peerInfo)
//
// # 指标清单
//
// 所有指标位于 dep2p 命名空间下的 eventbus 子系统：
//
//	dep2p_eventbus_emits_total{key}      发布总数
//	dep2p_eventbus_deliveries_total{key} 实时投递总数
//	dep2p_eventbus_replays_total{key}    回放投递总数
//	dep2p_eventbus_panics_total{key}     观察者崩溃总数
//	dep2p_eventbus_keys                  已创建的事件键总数
//	dep2p_eventbus_subscribers{key}      逐键当前订阅者数
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    metrics.Module(),
//	    eventbus.Module(),
//	    fx.Invoke(func(bus interfaces.Bus) {
//	        bus.Emit("app:ready", struct{}{})
//	    }),
//	)
//
// Module 将 Tracer 注入 "tracers" 组，eventbus 模块自动聚合组内全部追踪器。
//
// # 架构定位
//
// Tier: Core Layer Level 1（仅依赖 pkg 层）
//
// 依赖关系：
//   - 依赖：pkg/interfaces, client_golang
//   - 被依赖：根门面（WithMetrics 选项）
//
// # 并发安全
//
// 所有钩子都是并发安全的：
//   - Counter/Gauge 基于原子操作
//   - WithLabelValues 内置锁保护
//   - 无需额外同步
//
// # 设计文档
//
//   - pkg/interfaces/tracer.go
package metrics
