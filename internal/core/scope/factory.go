package scope

import (
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/scope")

// ============================================================================
//                              Factory
// ============================================================================

// Factory 总线工厂
//
// 持有一组总线构造选项（追踪器、panic 处理器），
// 保证每个创建出的实例装配一致。
type Factory struct {
	opts []pkgif.BusOpt
}

var _ pkgif.BusFactory = (*Factory)(nil)

// NewFactory 创建总线工厂
//
// opts 会应用到之后创建的每个总线实例。
func NewFactory(opts ...pkgif.BusOpt) *Factory {
	return &Factory{opts: opts}
}

// Create 创建新的独立总线实例
func (f *Factory) Create() pkgif.Bus {
	return eventbus.NewBus(f.opts...)
}
