package types

import (
	"github.com/google/uuid"
)

// ============================================================================
//                              IdentityToken
// ============================================================================

// IdentityToken 身份令牌
//
// 不透明的身份标识，嵌入发现公告的载荷中，
// 用于在共享总线上区分"属于本协调域的公告"与其他流量。
//
// 令牌内容对总线完全透明：总线不解析、不校验，
// 只有握手双方用它做相等比较。空令牌表示"不过滤"。
type IdentityToken string

// EmptyIdentityToken 空身份令牌
var EmptyIdentityToken = IdentityToken("")

// NewIdentityToken 生成随机身份令牌
//
// 使用 UUID v4 作为令牌值，保证全局唯一。
// 同一协调域的双方必须共享同一令牌，而非各自生成。
func NewIdentityToken() IdentityToken {
	return IdentityToken(uuid.New().String())
}

// String 返回令牌的字符串形式
func (t IdentityToken) String() string {
	return string(t)
}

// ShortString 返回令牌的短格式（前 8 个字符），用于日志
func (t IdentityToken) ShortString() string {
	if len(t) <= 8 {
		return string(t)
	}
	return string(t[:8])
}

// IsEmpty 检查令牌是否为空
func (t IdentityToken) IsEmpty() bool {
	return t == ""
}

// Equal 比较两个令牌是否相等
func (t IdentityToken) Equal(other IdentityToken) bool {
	return t == other
}

// ============================================================================
//                              ScopeID
// ============================================================================

// ScopeID 作用域标识
//
// 标识一个独立的协调域。作用域管理器为每个 ScopeID
// 维护恰好一个私有总线实例，实现完全的事件隔离。
type ScopeID string

// NewScopeID 生成随机作用域标识
func NewScopeID() ScopeID {
	return ScopeID(uuid.New().String())
}

// String 返回作用域标识的字符串形式
func (s ScopeID) String() string {
	return string(s)
}

// ShortString 返回作用域标识的短格式（前 8 个字符），用于日志
func (s ScopeID) ShortString() string {
	if len(s) <= 8 {
		return string(s)
	}
	return string(s[:8])
}

// IsEmpty 检查作用域标识是否为空
func (s ScopeID) IsEmpty() bool {
	return s == ""
}

// ============================================================================
//                              PeerRole
// ============================================================================

// PeerRole 握手参与方的角色
//
// 角色是调用方自定义的标签（如 "tooltip" 与 "trigger"），
// 仅随公告透传给对端，协议本身不解释其含义。
type PeerRole string

// String 返回角色的字符串形式
func (r PeerRole) String() string {
	return string(r)
}

// IsEmpty 检查角色是否为空
func (r PeerRole) IsEmpty() bool {
	return r == ""
}
