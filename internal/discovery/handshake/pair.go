package handshake

import (
	"context"

	"go.uber.org/multierr"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// Pair 镜像握手对
//
// 将两个互为镜像的参与方作为整体管理：第一方在 FirstKey 上宣告、
// 在 SecondKey 上监听，第二方相反，双方共享同一身份令牌。
type Pair struct {
	first  *Peer
	second *Peer
}

// 确保 Pair 实现 DiscoveryPair 接口
var _ pkgif.DiscoveryPair = (*Pair)(nil)

// NewPair 创建镜像握手对
//
// cfg 为 nil 时使用 DefaultPairConfig；令牌为空时自动生成共享令牌。
func NewPair(bus pkgif.Bus, cfg *PairConfig) (*Pair, error) {
	if bus == nil {
		return nil, ErrNilBus
	}
	if cfg == nil {
		cfg = DefaultPairConfig()
	}
	norm := cfg.normalize()
	if err := norm.Validate(); err != nil {
		return nil, err
	}

	first, err := NewPeer(bus, &Config{
		AnnounceKey: norm.FirstKey,
		ListenKey:   norm.SecondKey,
		Role:        norm.FirstRole,
		Token:       norm.Token,
		Clock:       norm.Clock,
	})
	if err != nil {
		return nil, err
	}

	second, err := NewPeer(bus, &Config{
		AnnounceKey: norm.SecondKey,
		ListenKey:   norm.FirstKey,
		Role:        norm.SecondRole,
		Token:       norm.Token,
		Clock:       norm.Clock,
	})
	if err != nil {
		return nil, err
	}

	return &Pair{first: first, second: second}, nil
}

// Activate 依次激活两个参与方
//
// 任一失败不阻止另一方激活，错误聚合返回。
func (p *Pair) Activate() error {
	return multierr.Append(p.first.Activate(), p.second.Activate())
}

// First 返回第一个参与方
func (p *Pair) First() pkgif.DiscoveryPeer {
	return p.first
}

// Second 返回第二个参与方
func (p *Pair) Second() pkgif.DiscoveryPeer {
	return p.second
}

// WaitDiscovered 阻塞等待双方都发现对端
func (p *Pair) WaitDiscovered(ctx context.Context) error {
	if err := p.first.WaitDiscovered(ctx); err != nil {
		return err
	}
	return p.second.WaitDiscovered(ctx)
}

// Close 关闭两个参与方，聚合返回错误
func (p *Pair) Close() error {
	return multierr.Append(p.first.Close(), p.second.Close())
}
