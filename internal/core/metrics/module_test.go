package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// provideTestRegistry 提供隔离的注册器
func provideTestRegistry() fx.Option {
	return fx.Provide(func() prometheus.Registerer {
		return prometheus.NewRegistry()
	})
}

// TestModule_Load 测试模块加载
func TestModule_Load(t *testing.T) {
	app := fxtest.New(t,
		provideTestRegistry(),
		Module(),
		fx.Invoke(func(m *Tracer) {
			require.NotNil(t, m, "Tracer 未注入")
		}),
	)
	defer app.RequireStart().RequireStop()
}

// TestModule_Provides 测试模块提供的类型
func TestModule_Provides(t *testing.T) {
	var m *Tracer

	app := fxtest.New(t,
		provideTestRegistry(),
		Module(),
		fx.Populate(&m),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, m, "Tracer 未填充")

	// 测试基本功能
	m.Emitted("peer:connected", 2)
	m.Delivered("peer:connected")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.emits.WithLabelValues("peer:connected")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.deliveries.WithLabelValues("peer:connected")))
}

// TestModule_TracerGroup 测试追踪器注入 tracers 组
func TestModule_TracerGroup(t *testing.T) {
	var tracers []pkgif.Tracer

	app := fxtest.New(t,
		provideTestRegistry(),
		Module(),
		fx.Invoke(fx.Annotate(func(ts []pkgif.Tracer) {
			tracers = ts
		}, fx.ParamTags(`group:"tracers"`))),
	)
	defer app.RequireStart().RequireStop()

	require.Len(t, tracers, 1, "tracers 组应包含一个追踪器")
	_, ok := tracers[0].(*Tracer)
	assert.True(t, ok, "组内追踪器应为 *Tracer")
}

// TestModule_Metadata 测试模块元信息
func TestModule_Metadata(t *testing.T) {
	assert.Equal(t, "metrics", Name)
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Description)
}
