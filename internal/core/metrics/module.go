package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Params Fx 模块输入参数
type Params struct {
	fx.In

	// Registerer 指标注册器，可选，默认 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	// Tracer 注入 tracers 组，由 eventbus 模块聚合
	Tracer pkgif.Tracer `group:"tracers"`

	// Metrics 具体类型，供需要直接访问指标的组件使用
	Metrics *Tracer
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideTracer),
	)
}

// ProvideTracer 提供 Prometheus 追踪器
func ProvideTracer(p Params) (Result, error) {
	tracer, err := NewTracer(p.Registerer)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tracer:  tracer,
		Metrics: tracer,
	}, nil
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "metrics"
	// Description 模块描述
	Description = "Prometheus 指标模块，将投递追踪钩子转换为指标"
)
