package types

// ============================================================================
//                              PeerState
// ============================================================================

// PeerState 握手参与方的状态
//
// 状态机只有一次单向迁移：
//
//	StateAnnouncing ──发现对端──▶ StateDiscovered
//
// 迁移恰好发生一次，之后状态永久保持 StateDiscovered。
type PeerState int

const (
	// StateAnnouncing 已宣告自身存在，尚未发现对端
	StateAnnouncing PeerState = iota

	// StateDiscovered 已发现对端，监听订阅已取消
	StateDiscovered
)

// String 返回状态的字符串形式
func (s PeerState) String() string {
	switch s {
	case StateAnnouncing:
		return "announcing"
	case StateDiscovered:
		return "discovered"
	default:
		return "unknown"
	}
}

// IsDiscovered 检查是否已发现对端
func (s PeerState) IsDiscovered() bool {
	return s == StateDiscovered
}
