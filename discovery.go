package eventbus

import (
	"github.com/dep2p/go-eventbus/internal/discovery/handshake"
)

// ════════════════════════════════════════════════════════════════════════════
//                              发现握手
// ════════════════════════════════════════════════════════════════════════════

// 默认握手键与角色
const (
	// DefaultFirstKey 第一个参与方的宣告键
	DefaultFirstKey = handshake.DefaultFirstKey

	// DefaultSecondKey 第二个参与方的宣告键
	DefaultSecondKey = handshake.DefaultSecondKey

	// DefaultFirstRole 第一个参与方的角色
	DefaultFirstRole = handshake.DefaultFirstRole

	// DefaultSecondRole 第二个参与方的角色
	DefaultSecondRole = handshake.DefaultSecondRole
)

// PeerConfig 握手参与方配置
type PeerConfig struct {
	// AnnounceKey 宣告键，激活时在此键上发布公告
	AnnounceKey string

	// ListenKey 监听键，激活时在此键上订阅对端公告
	ListenKey string

	// Role 本方角色，随公告一起发布
	Role PeerRole

	// Token 身份令牌；为空时匹配任意公告（私有总线模式）
	Token IdentityToken

	// OnDiscovered 首次发现对端时的回调，携带对端公告；可选。
	// 回调在投递 goroutine 上同步执行，恰好调用一次。
	OnDiscovered func(Announcement)
}

// toInternal 转换为内部配置
func (c *PeerConfig) toInternal() *handshake.Config {
	if c == nil {
		return nil
	}
	return &handshake.Config{
		AnnounceKey:  c.AnnounceKey,
		ListenKey:    c.ListenKey,
		Role:         c.Role,
		Token:        c.Token,
		OnDiscovered: c.OnDiscovered,
	}
}

// PairConfig 镜像握手对配置
//
// 两个参与方交叉布线：第一方在 FirstKey 上宣告、在 SecondKey 上监听，
// 第二方相反。所有字段都可留空，留空时使用默认键、默认角色，
// 并自动生成一个共享令牌。
type PairConfig struct {
	// FirstKey 第一个参与方的宣告键，默认 DefaultFirstKey
	FirstKey string

	// SecondKey 第二个参与方的宣告键，默认 DefaultSecondKey
	SecondKey string

	// FirstRole 第一个参与方的角色，默认 DefaultFirstRole
	FirstRole PeerRole

	// SecondRole 第二个参与方的角色，默认 DefaultSecondRole
	SecondRole PeerRole

	// Token 共享身份令牌；为空时自动生成
	Token IdentityToken
}

// toInternal 转换为内部配置
func (c *PairConfig) toInternal() *handshake.PairConfig {
	if c == nil {
		return nil
	}
	return &handshake.PairConfig{
		FirstKey:   c.FirstKey,
		SecondKey:  c.SecondKey,
		FirstRole:  c.FirstRole,
		SecondRole: c.SecondRole,
		Token:      c.Token,
	}
}

// NewDiscoveryPeer 创建握手参与方
//
// 参与方创建后处于未激活状态，不产生任何总线流量；
// 调用 Activate 后先订阅监听键（带回放）、再发布首次公告。
//
//	peer, err := eventbus.NewDiscoveryPeer(bus, &eventbus.PeerConfig{
//	    AnnounceKey: "discovery:first",
//	    ListenKey:   "discovery:second",
//	    Token:       token,
//	})
func NewDiscoveryPeer(bus Bus, cfg *PeerConfig) (DiscoveryPeer, error) {
	return handshake.NewPeer(bus, cfg.toInternal())
}

// NewDiscoveryPair 创建镜像握手对
//
// 两个参与方共享一个身份令牌并交叉布线，Activate 后无论激活
// 顺序如何都能互相发现。cfg 为 nil 时使用默认配置。
//
//	pair, err := eventbus.NewDiscoveryPair(bus, nil)
//	if err != nil { ... }
//	_ = pair.Activate()
//	_ = pair.WaitDiscovered(ctx)
func NewDiscoveryPair(bus Bus, cfg *PairConfig) (DiscoveryPair, error) {
	return handshake.NewPair(bus, cfg.toInternal())
}
