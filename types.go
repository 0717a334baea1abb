package eventbus

import (
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              总线接口（从 pkg/interfaces 导出）
// ════════════════════════════════════════════════════════════════════════════

// Bus 键控多播总线
type Bus = pkgif.Bus

// Observable 惰性观察句柄
type Observable = pkgif.Observable

// Subscription 订阅句柄
type Subscription = pkgif.Subscription

// Observer 事件观察者回调
type Observer = pkgif.Observer

// Predicate 过滤谓词
type Predicate = pkgif.Predicate

// ObserveOpt 观察选项函数
type ObserveOpt = pkgif.ObserveOpt

// ════════════════════════════════════════════════════════════════════════════
//                              作用域接口
// ════════════════════════════════════════════════════════════════════════════

// BusFactory 总线工厂
type BusFactory = pkgif.BusFactory

// ScopeManager 作用域总线管理器
type ScopeManager = pkgif.ScopeManager

// ════════════════════════════════════════════════════════════════════════════
//                              观测接口
// ════════════════════════════════════════════════════════════════════════════

// Tracer 投递追踪器
type Tracer = pkgif.Tracer

// PanicHandler 观察者 panic 的处理回调
type PanicHandler = pkgif.PanicHandler

// ActivityRecorder 活动记录器
type ActivityRecorder = pkgif.ActivityRecorder

// DebugServer 本地诊断服务
type DebugServer = pkgif.DebugServer

// CombineTracers 合并多个追踪器
func CombineTracers(tracers ...Tracer) Tracer {
	return pkgif.CombineTracers(tracers...)
}

// ════════════════════════════════════════════════════════════════════════════
//                              发现握手接口
// ════════════════════════════════════════════════════════════════════════════

// DiscoveryPeer 握手参与方
type DiscoveryPeer = pkgif.DiscoveryPeer

// DiscoveryPair 镜像握手对
type DiscoveryPair = pkgif.DiscoveryPair

// ════════════════════════════════════════════════════════════════════════════
//                              值类型（从 pkg/types 导出）
// ════════════════════════════════════════════════════════════════════════════

// IdentityToken 身份令牌
type IdentityToken = types.IdentityToken

// ScopeID 作用域标识
type ScopeID = types.ScopeID

// PeerRole 握手参与方角色
type PeerRole = types.PeerRole

// PeerState 握手参与方状态
type PeerState = types.PeerState

// 握手状态常量
const (
	StateAnnouncing = types.StateAnnouncing
	StateDiscovered = types.StateDiscovered
)

// Announcement 发现公告
type Announcement = types.Announcement

// BusStats 总线统计快照
type BusStats = types.BusStats

// KeyStats 单键统计快照
type KeyStats = types.KeyStats

// KeyActivity 单键活动快照
type KeyActivity = types.KeyActivity

// NewIdentityToken 生成随机身份令牌
func NewIdentityToken() IdentityToken {
	return types.NewIdentityToken()
}

// NewScopeID 生成随机作用域标识
func NewScopeID() ScopeID {
	return types.NewScopeID()
}
