package handshake

import (
	"context"
	"sync"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
	"github.com/dep2p/go-eventbus/pkg/types"
)

var logger = log.Logger("discovery/handshake")

// Peer 握手参与方
//
// 状态机：Announcing（初始）→ Discovered（终态）。
// 激活时先以回放模式订阅监听键，再在宣告键上发布公告，
// 因此与对端的激活顺序无关。首次匹配后监听订阅立即取消。
type Peer struct {
	bus pkgif.Bus
	cfg *Config

	mu        sync.Mutex
	state     types.PeerState
	activated bool
	closed    bool
	sub       pkgif.Subscription

	discovered chan struct{} // 发现对端时关闭
	done       chan struct{} // Close 时关闭
}

// 确保 Peer 实现 DiscoveryPeer 接口
var _ pkgif.DiscoveryPeer = (*Peer)(nil)

// NewPeer 创建握手参与方
//
// 创建不产生任何总线流量，订阅与公告都发生在 Activate 时。
func NewPeer(bus pkgif.Bus, cfg *Config) (*Peer, error) {
	if bus == nil {
		return nil, ErrNilBus
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Peer{
		bus:        bus,
		cfg:        cfg.clone(),
		state:      types.StateAnnouncing,
		discovered: make(chan struct{}),
		done:       make(chan struct{}),
	}, nil
}

// ============================================================================
//                              激活与公告
// ============================================================================

// Activate 激活参与方
//
// 先订阅监听键（带回放），再发布首次公告。两步之间到达的对端公告
// 经实时投递收到，更早的公告经回放补收。只能调用一次。
func (p *Peer) Activate() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.activated {
		p.mu.Unlock()
		return ErrAlreadyActivated
	}
	p.activated = true
	p.mu.Unlock()

	// 订阅在锁外进行：回放可能在 Subscribe 返回前同步触发 handleAnnouncement
	token := p.cfg.Token
	handle := p.bus.Observe(p.cfg.ListenKey).Filter(func(value interface{}, _ int) bool {
		ann, ok := value.(types.Announcement)
		return ok && ann.Matches(token)
	})
	sub := handle.Subscribe(p.handleAnnouncement)

	p.mu.Lock()
	p.sub = sub
	discovered := p.state.IsDiscovered()
	closed := p.closed
	p.mu.Unlock()

	// 回放已完成发现（此时 handleAnnouncement 看到的句柄还是 nil），
	// 或激活期间被关闭：监听订阅已无用处
	if discovered || closed {
		sub.Cancel()
	}
	if closed {
		return ErrClosed
	}

	logger.Debug("参与方已激活",
		"announce", p.cfg.AnnounceKey,
		"listen", p.cfg.ListenKey,
		"role", p.cfg.Role.String())

	return p.announce()
}

// Announce 重新发布公告
//
// 对端的一次性语义不受影响：已发现的对端不会因重复公告再次触发。
func (p *Peer) Announce() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if !p.activated {
		p.mu.Unlock()
		return ErrNotActivated
	}
	p.mu.Unlock()

	return p.announce()
}

// announce 发布公告，调用方保证已激活
func (p *Peer) announce() error {
	ann := types.Announcement{
		Token: p.cfg.Token,
		Role:  p.cfg.Role,
		At:    p.cfg.Clock.Now(),
	}
	p.bus.Emit(p.cfg.AnnounceKey, ann)

	logger.Debug("已发布公告",
		"key", p.cfg.AnnounceKey,
		"role", ann.Role.String())
	return nil
}

// handleAnnouncement 处理对端公告
//
// 状态迁移恰好一次：后续到达的公告（重复公告、回放与实时竞争）
// 在已发现状态下直接忽略。
func (p *Peer) handleAnnouncement(value interface{}) {
	ann, ok := value.(types.Announcement)
	if !ok {
		return
	}

	p.mu.Lock()
	if p.closed || p.state.IsDiscovered() {
		p.mu.Unlock()
		return
	}
	p.state = types.StateDiscovered
	sub := p.sub
	onDiscovered := p.cfg.OnDiscovered
	close(p.discovered)
	p.mu.Unlock()

	// 一次性订阅：首次匹配后立即取消。回放在 Activate 存入句柄前
	// 触发时 sub 为 nil，由 Activate 在存入句柄后补偿取消。
	if sub != nil {
		sub.Cancel()
	}

	logger.Debug("发现对端",
		"listen", p.cfg.ListenKey,
		"peerRole", ann.Role.String(),
		"token", ann.Token.ShortString())

	if onDiscovered != nil {
		onDiscovered(ann)
	}
}

// ============================================================================
//                              状态查询
// ============================================================================

// Discovered 检查是否已发现对端
func (p *Peer) Discovered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IsDiscovered()
}

// State 返回当前状态
func (p *Peer) State() types.PeerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// WaitDiscovered 阻塞等待发现对端
//
// 对端缺席时将一直等待，调用方通过 ctx 控制期限。
func (p *Peer) WaitDiscovered(ctx context.Context) error {
	select {
	case <-p.discovered:
		return nil
	case <-p.done:
		// 关闭与发现并发时以发现为准
		select {
		case <-p.discovered:
			return nil
		default:
		}
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ============================================================================
//                              关闭
// ============================================================================

// Close 关闭参与方，取消监听订阅
//
// 幂等：重复调用返回 nil。已缓存在总线上的公告不会被撤回。
func (p *Peer) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	sub := p.sub
	p.sub = nil
	close(p.done)
	p.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}

	logger.Debug("参与方已关闭", "announce", p.cfg.AnnounceKey)
	return nil
}
