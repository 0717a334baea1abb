package types

import (
	"fmt"
	"time"
)

// ============================================================================
//                              Announcement
// ============================================================================

// Announcement 发现公告
//
// 握手参与方在宣告键上发布的载荷。对总线而言这只是
// 一个普通事件值；只有握手双方解释其中的字段。
type Announcement struct {
	// Token 协调域的身份令牌，双方共享同一值
	Token IdentityToken

	// Role 宣告方的角色标签，随公告透传给对端
	Role PeerRole

	// At 公告的发布时间
	At time.Time
}

// Matches 检查公告是否属于给定令牌的协调域
//
// 本方的令牌为空时表示不过滤（私有总线场景，
// 监听键上的任何公告都视为相关）；否则要求令牌严格相等。
func (a Announcement) Matches(token IdentityToken) bool {
	if token.IsEmpty() {
		return true
	}
	return a.Token == token
}

// String 返回公告的可读形式，用于日志
func (a Announcement) String() string {
	return fmt.Sprintf("Announcement{role: %s, token: %s}", a.Role, a.Token.ShortString())
}
