package handshake

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Params Fx 模块输入参数
type Params struct {
	fx.In

	Bus pkgif.Bus

	// Config 镜像对配置，可选，默认 DefaultPairConfig
	Config *PairConfig `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Pair pkgif.DiscoveryPair
}

// Module 返回 Fx 模块
//
// 提供镜像握手对，随应用启动激活、随应用停止关闭。
func Module() fx.Option {
	return fx.Module("handshake",
		fx.Provide(ProvidePair),
		fx.Invoke(registerLifecycle),
	)
}

// ProvidePair 提供镜像握手对
func ProvidePair(p Params) (Result, error) {
	pair, err := NewPair(p.Bus, p.Config)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Pair: pair,
	}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC   fx.Lifecycle
	Pair pkgif.DiscoveryPair
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return input.Pair.Activate()
		},
		OnStop: func(_ context.Context) error {
			return input.Pair.Close()
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
	Name = "handshake"
	// Description 模块描述
	Description = "一次性发现握手模块，基于总线回放实现激活顺序无关的对端发现"
)
