package eventbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	corebus "github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/introspect"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/internal/core/scope"
	"github.com/dep2p/go-eventbus/internal/discovery/handshake"
)

// ModuleConfig 聚合模块配置
//
// 驱动 Module/App 的条件装配。零值只加载核心模块
// （总线 + 作用域），观测与发现模块按需开启。
type ModuleConfig struct {
	// Metrics 加载 prometheus 指标追踪器模块
	Metrics bool

	// Registerer 指标注册器，nil 时使用 prometheus 默认注册器
	Registerer prometheus.Registerer

	// Introspect 加载活动记录器模块
	Introspect bool

	// IntrospectCapacity 活动记录容量，非正数时使用默认容量
	IntrospectCapacity int

	// DebugServer 加载本地诊断服务模块
	//
	// 服务随应用生命周期启停；同时隐含加载活动记录器，
	// 使活动快照端点可用。
	DebugServer bool

	// DebugAddr 诊断服务监听地址，空串时使用默认地址
	DebugAddr string

	// Discovery 发现握手配置，非 nil 时加载握手模块。
	// 握手对随应用启动激活、随应用停止关闭。
	Discovery *PairConfig
}

// Module 返回聚合 Fx 模块
//
// 组装内部模块，采用条件加载策略：
//   - 核心模块：必须加载（EventBus, Scope）
//   - 观测模块：根据配置加载（Metrics, Introspect, DebugServer）
//   - 发现模块：根据配置加载（Handshake）
//
// 追踪器经 "tracers" 组汇入总线与作用域工厂；宿主应用可以用
// fx.Provide 向该组追加自定义追踪器。
//
//	app := fx.New(
//	    eventbus.Module(&eventbus.ModuleConfig{Metrics: true}),
//	    fx.Invoke(func(bus eventbus.Bus) { ... }),
//	)
func Module(cfg *ModuleConfig) fx.Option {
	if cfg == nil {
		cfg = &ModuleConfig{}
	}

	// 核心模块（必须加载）
	modules := []fx.Option{
		corebus.Module(),
		scope.Module(),
	}

	// 指标模块（条件加载）
	if cfg.Metrics {
		modules = append(modules, metrics.Module())
		if cfg.Registerer != nil {
			reg := cfg.Registerer
			modules = append(modules, fx.Provide(func() prometheus.Registerer {
				return reg
			}))
		}
	}

	// 活动记录模块（条件加载，诊断服务隐含开启）
	if cfg.Introspect || cfg.DebugServer {
		modules = append(modules, introspect.Module())
		if cfg.IntrospectCapacity > 0 {
			modules = append(modules, fx.Supply(&introspect.Config{
				Capacity: cfg.IntrospectCapacity,
			}))
		}
	}

	// 诊断服务模块（条件加载）
	if cfg.DebugServer {
		modules = append(modules, introspect.ServerModule())
		if cfg.DebugAddr != "" {
			modules = append(modules, fx.Supply(&introspect.ServerConfig{
				Addr: cfg.DebugAddr,
			}))
		}
	}

	// 发现握手模块（条件加载）
	if cfg.Discovery != nil {
		modules = append(modules,
			handshake.Module(),
			fx.Supply(cfg.Discovery.toInternal()),
		)
	}

	return fx.Options(modules...)
}

// App 构建 Fx 应用
//
// 在 Module 的基础上追加用户自定义选项，并静默 Fx 自身的事件日志。
// 返回的应用由调用方启停：
//
//	app := eventbus.App(nil, fx.Invoke(run))
//	if err := app.Start(ctx); err != nil { ... }
//	defer app.Stop(ctx)
func App(cfg *ModuleConfig, extras ...fx.Option) *fx.App {
	modules := []fx.Option{Module(cfg)}
	modules = append(modules, extras...)
	modules = append(modules,
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)
	return fx.New(modules...)
}
