package eventbus

import (
	"github.com/dep2p/go-eventbus/internal/discovery/handshake"
)

// 公共错误定义
//
// 握手包的哨兵错误在此再导出，调用方可以用 errors.Is 判定，
// 无需引用内部包路径。
var (
	// ────────────────────────────────────────────────────────────────────────
	// 发现握手错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrAlreadyActivated 参与方已激活
	ErrAlreadyActivated = handshake.ErrAlreadyActivated

	// ErrNotActivated 参与方尚未激活
	ErrNotActivated = handshake.ErrNotActivated

	// ErrClosed 参与方已关闭
	ErrClosed = handshake.ErrClosed

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = handshake.ErrInvalidConfig

	// ErrNilBus 总线为 nil
	ErrNilBus = handshake.ErrNilBus
)
