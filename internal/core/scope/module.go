package scope

import (
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块输入参数
type Params struct {
	fx.In

	// Tracers 汇集容器内注册的全部追踪器，
	// 作用域总线与主总线共享同一套装配
	Tracers []pkgif.Tracer `group:"tracers"`

	// PanicHandler 观察者 panic 处理回调，可选
	PanicHandler pkgif.PanicHandler `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Factory pkgif.BusFactory
	Manager pkgif.ScopeManager
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("scope",
		fx.Provide(ProvideScopes),
	)
}

// ProvideScopes 提供工厂与管理器实例
func ProvideScopes(p Params) Result {
	opts := make([]pkgif.BusOpt, 0, len(p.Tracers)+1)
	for _, t := range p.Tracers {
		opts = append(opts, pkgif.WithTracer(t))
	}
	if p.PanicHandler != nil {
		opts = append(opts, pkgif.WithPanicHandler(p.PanicHandler))
	}

	factory := NewFactory(opts...)
	return Result{
		Factory: factory,
		Manager: NewManager(factory),
	}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "scope"
	// Description 模块描述
	Description = "作用域总线模块，按协调域隔离事件流"
)
