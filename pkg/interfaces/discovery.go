// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义基于总线的一次性发现握手接口。
package interfaces

import (
	"context"

	"github.com/dep2p/go-eventbus/pkg/types"
)

// DiscoveryPeer 定义握手参与方接口
//
// 参与方在激活时先订阅监听键（带回放），再在宣告键上发布公告。
// 由于回放的存在，双方以任意顺序激活都能互相发现。
// 首次匹配后监听订阅立即取消，状态永久迁移为已发现。
type DiscoveryPeer interface {
	// Activate 激活参与方：先订阅监听键，再发布首次公告
	//
	// 只能调用一次，重复调用返回 ErrAlreadyActivated。
	Activate() error

	// Announce 重新发布公告
	//
	// 激活之前调用返回 ErrNotActivated。
	Announce() error

	// Discovered 检查是否已发现对端
	Discovered() bool

	// State 返回当前状态
	State() types.PeerState

	// WaitDiscovered 阻塞等待发现对端
	//
	// ctx 取消时返回 ctx.Err()。
	WaitDiscovered(ctx context.Context) error

	// Close 关闭参与方，取消监听订阅
	//
	// 幂等：重复调用返回 nil。
	Close() error
}

// DiscoveryPair 定义镜像键握手对接口
//
// 将两个互为镜像的参与方（甲方的宣告键是乙方的监听键，
// 反之亦然）作为整体管理。
type DiscoveryPair interface {
	// Activate 依次激活两个参与方
	Activate() error

	// First 返回第一个参与方
	First() DiscoveryPeer

	// Second 返回第二个参与方
	Second() DiscoveryPeer

	// WaitDiscovered 阻塞等待双方都发现对端
	WaitDiscovered(ctx context.Context) error

	// Close 关闭两个参与方，聚合返回错误
	Close() error
}
