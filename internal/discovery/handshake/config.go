package handshake

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-eventbus/pkg/types"
)

// 默认键与角色
const (
	// DefaultFirstKey 第一个参与方的宣告键
	DefaultFirstKey = "discovery:first"

	// DefaultSecondKey 第二个参与方的宣告键
	DefaultSecondKey = "discovery:second"

	// DefaultFirstRole 第一个参与方的角色
	DefaultFirstRole = types.PeerRole("first")

	// DefaultSecondRole 第二个参与方的角色
	DefaultSecondRole = types.PeerRole("second")
)

// Config 单个参与方配置
type Config struct {
	// AnnounceKey 宣告键，激活时在此键上发布公告
	AnnounceKey string

	// ListenKey 监听键，激活时在此键上订阅对端公告
	ListenKey string

	// Role 本方角色，随公告一起发布
	Role types.PeerRole

	// Token 身份令牌；为空时匹配任意公告（私有总线模式）
	Token types.IdentityToken

	// Clock 时钟，默认系统时钟；公告的时间戳取自该时钟
	Clock clock.Clock

	// OnDiscovered 首次发现对端时的回调，携带对端公告；可选。
	// 回调在投递 goroutine 上同步执行，恰好调用一次。
	OnDiscovered func(types.Announcement)
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if c.AnnounceKey == "" {
		return fmt.Errorf("%w: announce key is empty", ErrInvalidConfig)
	}
	if c.ListenKey == "" {
		return fmt.Errorf("%w: listen key is empty", ErrInvalidConfig)
	}
	if c.AnnounceKey == c.ListenKey {
		return fmt.Errorf("%w: announce key and listen key must differ", ErrInvalidConfig)
	}
	return nil
}

// clone 复制配置并填充默认值
func (c *Config) clone() *Config {
	out := *c
	if out.Clock == nil {
		out.Clock = clock.New()
	}
	return &out
}

// ============================================================================
//                              镜像对配置
// ============================================================================

// PairConfig 镜像对配置
//
// 两个参与方交叉布线：第一方在 FirstKey 上宣告、在 SecondKey 上监听，
// 第二方相反。令牌为空时生成一个共享令牌，确保两方只匹配彼此。
type PairConfig struct {
	// FirstKey 第一个参与方的宣告键，默认 DefaultFirstKey
	FirstKey string

	// SecondKey 第二个参与方的宣告键，默认 DefaultSecondKey
	SecondKey string

	// FirstRole 第一个参与方的角色，默认 DefaultFirstRole
	FirstRole types.PeerRole

	// SecondRole 第二个参与方的角色，默认 DefaultSecondRole
	SecondRole types.PeerRole

	// Token 共享身份令牌；为空时自动生成
	Token types.IdentityToken

	// Clock 时钟，默认系统时钟
	Clock clock.Clock
}

// DefaultPairConfig 返回默认镜像对配置
func DefaultPairConfig() *PairConfig {
	return &PairConfig{
		FirstKey:   DefaultFirstKey,
		SecondKey:  DefaultSecondKey,
		FirstRole:  DefaultFirstRole,
		SecondRole: DefaultSecondRole,
	}
}

// Validate 验证配置
func (c *PairConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: pair config is nil", ErrInvalidConfig)
	}
	if c.FirstKey == "" {
		return fmt.Errorf("%w: first key is empty", ErrInvalidConfig)
	}
	if c.SecondKey == "" {
		return fmt.Errorf("%w: second key is empty", ErrInvalidConfig)
	}
	if c.FirstKey == c.SecondKey {
		return fmt.Errorf("%w: first key and second key must differ", ErrInvalidConfig)
	}
	return nil
}

// normalize 复制配置并填充默认值
func (c *PairConfig) normalize() *PairConfig {
	out := *c
	if out.FirstKey == "" {
		out.FirstKey = DefaultFirstKey
	}
	if out.SecondKey == "" {
		out.SecondKey = DefaultSecondKey
	}
	if out.FirstRole.IsEmpty() {
		out.FirstRole = DefaultFirstRole
	}
	if out.SecondRole.IsEmpty() {
		out.SecondRole = DefaultSecondRole
	}
	if out.Token.IsEmpty() {
		out.Token = types.NewIdentityToken()
	}
	if out.Clock == nil {
		out.Clock = clock.New()
	}
	return &out
}
