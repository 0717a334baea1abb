// Package introspect 提供总线活动的内省记录与本地诊断服务
//
// introspect 模块实现 ActivityRecorder，基于 golang-lru 提供：
//   - 逐键活动计数（发布/投递/回放/崩溃/订阅者数）
//   - 最近发布时间戳（可注入时钟，便于测试）
//   - 容量上限（LRU 淘汰最久未活动的键，防止键爆炸撑大内存）
//   - 并发安全（缓存内置锁 + 逐记录锁）
//
// 另提供可选的本地自省 HTTP 服务（Server），以 JSON 格式暴露
// 总线统计与活动快照，默认绑定 127.0.0.1，不暴露到网络。
//
// # 快速开始
//
//	recorder, err := introspect.NewRecorder(nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bus := eventbus.NewBus(interfaces.WithTracer(recorder))
//	bus.Emit("peer:connected", peerInfo)
//
//	for _, act := range recorder.Snapshot() {
//	    fmt.Printf("%s: emits=%d idle=%v\n", act.Key, act.Emits, act.Idle(time.Now()))
//	}
//
// # 与 Stats 的关系
//
// Bus.Stats 返回权威计数（流自身维护，永不淘汰）；
// Snapshot 返回活动视图（含时间戳，受容量限制，仅保留最近活跃的键）。
// 排障时先看 Snapshot 找可疑键，再用 Stats 核对精确计数。
//
// # 自省服务
//
//	server := introspect.NewServer(introspect.ServerConfig{
//	    Addr:     "127.0.0.1:6060",
//	    Bus:      bus,
//	    Recorder: recorder,
//	})
//	_ = server.Start(context.Background())
//	defer server.Stop()
//
// 端点：
//   - GET /debug/eventbus          - 完整诊断报告
//   - GET /debug/eventbus/stats    - 总线统计
//   - GET /debug/eventbus/activity - 活动快照
//   - GET /debug/eventbus/keys     - 流键列表
//   - GET /debug/pprof/*           - Go pprof
//   - GET /health                  - 健康检查
//
// # Fx 模块
//
//	app := fx.New(
//	    introspect.Module(),
//	    eventbus.Module(),
//	    fx.Invoke(func(r *introspect.Recorder) {
//	        fmt.Println(r.Snapshot())
//	    }),
//	)
//
// ServerModule 单独装配诊断服务，随应用生命周期启停。
//
// # 架构定位
//
// Tier: Core Layer Level 1（仅依赖 pkg 层）
//
// 依赖关系：
//   - 依赖：pkg/interfaces, pkg/types, golang-lru, benbjohnson/clock
//   - 被依赖：根门面（NewActivityRecorder 与 Fx 装配）
//
// # 并发安全
//
// 所有方法都是并发安全的：
//   - lru.Cache 内置锁保护
//   - 逐键记录使用独立互斥锁，投递路径互不阻塞
package introspect
