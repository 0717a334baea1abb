package handshake

import "errors"

// 预定义错误
var (
	// ErrAlreadyActivated 参与方已激活
	ErrAlreadyActivated = errors.New("handshake: peer already activated")

	// ErrNotActivated 参与方尚未激活
	ErrNotActivated = errors.New("handshake: peer not activated")

	// ErrClosed 参与方已关闭
	ErrClosed = errors.New("handshake: peer closed")

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("handshake: invalid config")

	// ErrNilBus 总线为 nil
	ErrNilBus = errors.New("handshake: bus is nil")
)
