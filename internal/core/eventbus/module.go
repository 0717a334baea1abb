// Package eventbus 实现键控多播总线
package eventbus

import (
	"context"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块输入参数
type Params struct {
	fx.In

	// Tracers 汇集容器内注册的全部追踪器
	Tracers []pkgif.Tracer `group:"tracers"`

	// PanicHandler 观察者 panic 处理回调，可选
	PanicHandler pkgif.PanicHandler `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Bus pkgif.Bus
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventbus",
		fx.Provide(ProvideBus),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideBus 提供 Bus 实例
func ProvideBus(p Params) Result {
	opts := make([]pkgif.BusOpt, 0, len(p.Tracers)+1)
	for _, t := range p.Tracers {
		opts = append(opts, pkgif.WithTracer(t))
	}
	if p.PanicHandler != nil {
		opts = append(opts, pkgif.WithPanicHandler(p.PanicHandler))
	}

	return Result{
		Bus: NewBus(opts...),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC  fx.Lifecycle
	Bus pkgif.Bus
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Bus 无需特殊启动逻辑，流按需创建
			return nil
		},
		OnStop: func(_ context.Context) error {
			stats := input.Bus.Stats()
			logger.Debug("事件总线停止",
				"keys", stats.Keys,
				"subscribers", stats.Subscribers,
				"emits", stats.Emits)
			return nil
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
	Name = "eventbus"
	// Description 模块描述
	Description = "键控多播总线模块，提供最近值回放与同步投递"
)
