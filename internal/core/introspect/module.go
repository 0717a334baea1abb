package introspect

import (
	"context"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Params Fx 模块输入参数
type Params struct {
	fx.In

	// Config 记录器配置，可选，默认 DefaultConfig
	Config *Config `optional:"true"`

	// Clock 时钟，可选，默认系统时钟
	Clock clock.Clock `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	// Tracer 注入 tracers 组，由 eventbus 模块聚合
	Tracer pkgif.Tracer `group:"tracers"`

	// Recorder 具体类型，供需要读取快照的组件使用
	Recorder *Recorder
}

// Module 返回活动记录器 Fx 模块
func Module() fx.Option {
	return fx.Module("introspect",
		fx.Provide(ProvideRecorder),
	)
}

// ProvideRecorder 提供活动记录器
func ProvideRecorder(p Params) (Result, error) {
	recorder, err := NewRecorder(p.Config, p.Clock)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tracer:   recorder,
		Recorder: recorder,
	}, nil
}

// ============================================================================
// 自省服务模块
// ============================================================================

// ServerParams 自省服务输入参数
type ServerParams struct {
	fx.In

	Bus      pkgif.Bus
	Recorder *Recorder     `optional:"true"`
	Config   *ServerConfig `optional:"true"`
}

// ServerModule 返回自省服务 Fx 模块
//
// 服务随应用生命周期启停，依赖 Bus，Recorder 可选。
func ServerModule() fx.Option {
	return fx.Module("introspect-server",
		fx.Provide(ProvideServer),
		fx.Invoke(registerServerLifecycle),
	)
}

// ProvideServer 提供自省服务
func ProvideServer(p ServerParams) *Server {
	cfg := ServerConfig{Bus: p.Bus}
	if p.Config != nil {
		cfg.Addr = p.Config.Addr
	}
	if p.Recorder != nil {
		cfg.Recorder = p.Recorder
	}
	return NewServer(cfg)
}

// registerServerLifecycle 注册自省服务生命周期
func registerServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "introspect"
	// Description 模块描述
	Description = "活动内省模块，按键聚合总线活动并提供本地诊断服务"
)
