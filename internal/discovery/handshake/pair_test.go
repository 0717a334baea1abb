package handshake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/types"
)

// ============================================================================
// 接口契约测试
// ============================================================================

var _ pkgif.DiscoveryPair = (*Pair)(nil)

// ============================================================================
// 构造测试
// ============================================================================

// TestNewPair 测试创建镜像对
func TestNewPair(t *testing.T) {
	bus := eventbus.NewBus()

	t.Run("默认配置", func(t *testing.T) {
		pair, err := NewPair(bus, nil)
		require.NoError(t, err)
		require.NotNil(t, pair.First())
		require.NotNil(t, pair.Second())
		assert.False(t, pair.First().Discovered())
		assert.False(t, pair.Second().Discovered())
	})

	t.Run("nil 总线", func(t *testing.T) {
		_, err := NewPair(nil, nil)
		assert.ErrorIs(t, err, ErrNilBus)
	})

	t.Run("非法配置", func(t *testing.T) {
		_, err := NewPair(bus, &PairConfig{FirstKey: "k", SecondKey: "k"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

// ============================================================================
// 握手测试
// ============================================================================

// TestPair_Activate 测试镜像对激活后双方互相发现
func TestPair_Activate(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, nil)
	require.NoError(t, err)
	defer pair.Close()

	require.NoError(t, pair.Activate())

	// 投递全程同步：Activate 返回时握手已完成
	assert.True(t, pair.First().Discovered(), "甲方应已发现乙方")
	assert.True(t, pair.Second().Discovered(), "乙方应已发现甲方")

	assert.NoError(t, pair.WaitDiscovered(context.Background()))
}

// TestPair_SharedTokenIsolation 测试自动生成的共享令牌隔离无关流量
func TestPair_SharedTokenIsolation(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, nil)
	require.NoError(t, err)
	defer pair.Close()

	// 先激活甲方（经 First 句柄单独激活）
	require.NoError(t, pair.First().Activate())

	// 共享总线上的陌生公告不触发甲方
	bus.Emit(DefaultSecondKey, types.Announcement{
		Token: types.NewIdentityToken(),
		Role:  DefaultSecondRole,
		At:    time.Now(),
	})
	assert.False(t, pair.First().Discovered(), "陌生令牌的公告应被过滤")

	// 激活乙方后双方互相发现
	require.NoError(t, pair.Second().Activate())
	assert.True(t, pair.First().Discovered())
	assert.True(t, pair.Second().Discovered())
}

// TestPair_CustomConfig 测试自定义键与角色
func TestPair_CustomConfig(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, &PairConfig{
		FirstKey:   "ready:left",
		SecondKey:  "ready:right",
		FirstRole:  "left",
		SecondRole: "right",
	})
	require.NoError(t, err)
	defer pair.Close()

	require.NoError(t, pair.Activate())

	assert.True(t, bus.HasLastValue("ready:left"))
	assert.True(t, bus.HasLastValue("ready:right"))
	assert.Equal(t, types.StateDiscovered, pair.First().State())
	assert.Equal(t, types.StateDiscovered, pair.Second().State())
}

// TestPair_ActivateTwice 测试重复激活聚合错误
func TestPair_ActivateTwice(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, nil)
	require.NoError(t, err)
	defer pair.Close()

	require.NoError(t, pair.Activate())

	err = pair.Activate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyActivated)
}

// TestPair_WaitDiscoveredTimeout 测试等待超时
func TestPair_WaitDiscoveredTimeout(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, nil)
	require.NoError(t, err)
	defer pair.Close()

	// 未激活时无人公告，等待应超时
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, pair.WaitDiscovered(ctx), context.DeadlineExceeded)
}

// TestPair_Close 测试关闭幂等
func TestPair_Close(t *testing.T) {
	bus := eventbus.NewBus()

	pair, err := NewPair(bus, nil)
	require.NoError(t, err)

	require.NoError(t, pair.Activate())
	assert.NoError(t, pair.Close())
	assert.NoError(t, pair.Close(), "重复关闭应为空操作")
}
