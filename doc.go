// Package eventbus 提供进程内键控多播事件总线
//
// go-eventbus 是一个轻量的进程内发布订阅库：每个字符串键对应一条
// 独立事件流，总线缓存每个键的最近值供新订阅者回放，并在此之上
// 提供一次性的对端发现握手协议。
//
// # 核心概念
//
// go-eventbus 围绕四个核心概念构建：
//
//   - Bus: 键控多播总线，Observe/Emit 的主入口
//   - Observable: 惰性观察句柄，Subscribe 产生独立订阅
//   - ScopeManager: 作用域总线注册表，按协调域隔离事件流
//   - DiscoveryPeer: 基于总线的一次性发现握手参与方
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventbus"
//
//	// 1. 创建总线
//	bus, err := eventbus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. 订阅（默认回放最近值）
//	sub := bus.Observe("config:changed").Subscribe(func(value interface{}) {
//	    fmt.Println("收到:", value)
//	})
//	defer sub.Cancel()
//
//	// 3. 发布
//	bus.Emit("config:changed", "v2")
//
// 投递是同步的：Emit 返回时当前全部订阅者都已被调用。没有订阅者时
// 值不会丢失，总线缓存后供后续订阅者回放。
//
// # 最近值回放
//
// 每个键缓存最近一次发布的值。新订阅者默认先收到该值再进入实时
// 投递，这使得"后来者"不会错过状态型事件：
//
//	bus.Emit("state", 1)
//	bus.Observe("state").Subscribe(fn)                            // fn 立即收到 1
//	bus.Observe("state", eventbus.WithoutReplay()).Subscribe(fn2) // fn2 只收实时值
//
// # 过滤
//
// Observable.Filter 返回附加谓词的新句柄，谓词状态按订阅独立维护：
//
//	bus.Observe("ticks").
//	    Filter(func(v interface{}, index int) bool { return index%2 == 0 }).
//	    Subscribe(fn)
//
// # 发现握手
//
// 两个共享作用域但无法互相引用的对端，通过镜像的宣告键/监听键
// 互相发现。回放保证激活顺序无关：
//
//	pair, _ := eventbus.NewDiscoveryPair(bus, nil)
//	_ = pair.Activate()
//	_ = pair.WaitDiscovered(ctx)
//
// # API 层次结构
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│  入口层                                                          │
//	│  ┌─────────┐ ┌──────────────┐ ┌──────────────────┐              │
//	│  │   Bus   │ │ ScopeManager │ │ DiscoveryPeer    │              │
//	│  └─────────┘ └──────────────┘ └──────────────────┘              │
//	│  eventbus.New() / NewScopeManager() / NewDiscoveryPeer()        │
//	├─────────────────────────────────────────────────────────────────┤
//	│  流层                                                            │
//	│  ┌────────────┐ ┌──────────────┐                                │
//	│  │ Observable │ │ Subscription │                                │
//	│  └────────────┘ └──────────────┘                                │
//	│  bus.Observe() / observable.Subscribe()                         │
//	├─────────────────────────────────────────────────────────────────┤
//	│  观测层                                                          │
//	│  ┌────────┐ ┌──────────────────┐ ┌─────────────┐                │
//	│  │ Tracer │ │ ActivityRecorder │ │ DebugServer │                │
//	│  └────────┘ └──────────────────┘ └─────────────┘                │
//	│  NewMetricsTracer() / NewActivityRecorder() / NewDebugServer()  │
//	└─────────────────────────────────────────────────────────────────┘
//
// # 文件组织
//
// 本包按功能领域组织代码：
//
//	eventbus/
//	├── eventbus.go   # 版本信息、构造入口
//	├── discovery.go  # 发现握手公共配置与构造
//	├── options.go    # WithXxx 配置选项
//	├── types.go      # 公共类型别名
//	├── errors.go     # 错误再导出
//	└── fx.go         # Fx 模块聚合
//
// # 三层软件架构
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  1. API Layer                                               │
//	│     eventbus.New(), Module(), App()                         │
//	│     用户入口，配置选项                                        │
//	├─────────────────────────────────────────────────────────────┤
//	│  2. Core Layer                                              │
//	│     Stream, Bus, Scope, Metrics, Introspect                 │
//	│     键控流、最近值缓存、作用域隔离、观测                       │
//	├─────────────────────────────────────────────────────────────┤
//	│  3. Discovery Layer                                         │
//	│     Handshake Peer / Pair                                   │
//	│     基于总线的一次性对端发现                                  │
//	└─────────────────────────────────────────────────────────────┘
//
// # 并发安全
//
// 所有公共入口都是并发安全的。投递在调用方 goroutine 上同步执行，
// 核心不启动任何后台 goroutine；单键内的投递顺序与发布顺序一致。
//
// # 更多资源
//
//   - 使用示例: examples/
//
// 更多信息请访问: https://github.com/dep2p/go-eventbus
package eventbus
