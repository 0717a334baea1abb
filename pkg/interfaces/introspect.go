// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义本地诊断服务接口。
package interfaces

import (
	"context"
)

// DebugServer 定义本地诊断服务接口
//
// 服务通过 HTTP 暴露总线统计与活动快照，仅用于开发调试，
// 监听地址应限定在本机回环接口。
type DebugServer interface {
	// Start 启动服务
	//
	// 监听失败时返回错误；服务已在运行时为幂等空操作。
	Start(ctx context.Context) error

	// Stop 停止服务
	//
	// 幂等：服务未运行时直接返回 nil。
	Stop() error

	// Addr 返回实际监听地址
	//
	// 服务未启动时返回配置地址。
	Addr() string
}
