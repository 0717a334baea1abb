package eventbus

import (
	"github.com/prometheus/client_golang/prometheus"

	corebus "github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/introspect"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/internal/core/scope"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-eventbus " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造入口
// ════════════════════════════════════════════════════════════════════════════

// New 创建独立事件总线
//
// 返回的总线与其他实例不共享任何状态。不带选项时构造不会失败；
// 带 WithMetrics 等可失败选项时错误在此返回。
//
//	bus, err := eventbus.New(
//	    eventbus.WithMetrics(nil),
//	    eventbus.WithPanicHandler(handler),
//	)
func New(opts ...Option) (Bus, error) {
	busOpts, err := buildBusOpts(opts)
	if err != nil {
		return nil, err
	}
	return corebus.NewBus(busOpts...), nil
}

// NewFactory 创建总线工厂
//
// 工厂产出的每个总线都是全新的独立实例，但共享同一套构造选项：
// 通过 WithTracer/WithMetrics 注入的追踪器会观测到全部实例的活动。
func NewFactory(opts ...Option) (BusFactory, error) {
	busOpts, err := buildBusOpts(opts)
	if err != nil {
		return nil, err
	}
	return scope.NewFactory(busOpts...), nil
}

// NewScopeManager 创建作用域总线管理器
//
// 管理器按作用域标识维护总线注册表：同一作用域恰好对应一个总线，
// 不同作用域的事件流完全隔离。
func NewScopeManager(opts ...Option) (ScopeManager, error) {
	busOpts, err := buildBusOpts(opts)
	if err != nil {
		return nil, err
	}
	return scope.NewManager(scope.NewFactory(busOpts...)), nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              观测组件
// ════════════════════════════════════════════════════════════════════════════

// NewMetricsTracer 创建 prometheus 指标追踪器
//
// reg 为 nil 时使用 prometheus 默认注册器。返回的追踪器通过
// WithTracer 安装到总线上；指标经由注册器对外暴露。
func NewMetricsTracer(reg prometheus.Registerer) (Tracer, error) {
	return metrics.NewTracer(reg)
}

// NewActivityRecorder 创建活动记录器
//
// 记录器按键聚合总线活动（计数与最近发布时间），容量有上界，
// 最久未活跃的键先被淘汰。capacity 非正数时使用默认容量。
// 返回值同时实现 Tracer，通过 WithTracer 安装：
//
//	rec, _ := eventbus.NewActivityRecorder(256)
//	bus, _ := eventbus.New(eventbus.WithTracer(rec))
//	...
//	for _, act := range rec.Snapshot() { ... }
func NewActivityRecorder(capacity int) (ActivityRecorder, error) {
	cfg := introspect.DefaultConfig()
	if capacity > 0 {
		cfg.Capacity = capacity
	}
	return introspect.NewRecorder(cfg, nil)
}

// NewDebugServer 创建本地诊断服务
//
// 服务通过 HTTP 暴露总线统计与活动快照，仅用于开发调试。
// addr 为空时使用默认地址（本机回环）；recorder 可为 nil，
// 此时活动快照端点不可用。
func NewDebugServer(addr string, bus Bus, recorder ActivityRecorder) DebugServer {
	return introspect.NewServer(introspect.ServerConfig{
		Addr:     addr,
		Bus:      bus,
		Recorder: recorder,
	})
}

// buildBusOpts 将门面选项转换为总线构造选项
func buildBusOpts(opts []Option) ([]pkgif.BusOpt, error) {
	o := newOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}
	return o.toBusOpts()
}
