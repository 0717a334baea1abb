// Package eventbus 实现键控多播总线
package eventbus

import (
	"log/slog"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 本地选项函数
// ============================================================================

// WithoutReplay 关闭订阅时的最近值回放
//
// 这是一个便利函数，与 pkg/interfaces.WithoutReplay 等效
func WithoutReplay() pkgif.ObserveOpt {
	return pkgif.WithoutReplay()
}

// WithTracer 注册投递追踪器
//
// 这是一个便利函数，与 pkg/interfaces.WithTracer 等效
func WithTracer(t pkgif.Tracer) pkgif.BusOpt {
	return pkgif.WithTracer(t)
}

// WithPanicHandler 设置观察者 panic 的处理回调
//
// 这是一个便利函数，与 pkg/interfaces.WithPanicHandler 等效
func WithPanicHandler(h pkgif.PanicHandler) pkgif.BusOpt {
	return pkgif.WithPanicHandler(h)
}

// WithLogger 设置总线日志器
//
// 这是一个便利函数，与 pkg/interfaces.WithLogger 等效
func WithLogger(l *slog.Logger) pkgif.BusOpt {
	return pkgif.WithLogger(l)
}
