// Package eventbus 实现键控多播总线
package eventbus

import (
	"sync/atomic"

	"github.com/dep2p/go-eventbus/internal/core/stream"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Observable 实现
// ============================================================================

// observable 冷观察句柄
//
// 持有流引用与订阅配置（回放开关、过滤链），本身不注册
// 任何订阅；每次 Subscribe 产生一个独立订阅。
type observable struct {
	st     *stream.Stream
	replay bool
	preds  []pkgif.Predicate
}

var _ pkgif.Observable = (*observable)(nil)

// Subscribe 注册观察者
//
// fn 为 nil 时记录警告并返回已取消的惰性句柄，不会 panic。
func (o *observable) Subscribe(fn pkgif.Observer) pkgif.Subscription {
	if fn == nil {
		logger.Warn("忽略空观察者订阅", "key", o.st.Key())
		return inertSubscription{}
	}
	return o.st.Subscribe(o.compose(fn), o.replay)
}

// Filter 返回附加过滤谓词的新句柄
//
// 原句柄不受影响。nil 谓词原样返回。
func (o *observable) Filter(pred pkgif.Predicate) pkgif.Observable {
	if pred == nil {
		logger.Warn("忽略空过滤谓词", "key", o.st.Key())
		return o
	}

	preds := make([]pkgif.Predicate, 0, len(o.preds)+1)
	preds = append(preds, o.preds...)
	preds = append(preds, pred)

	return &observable{
		st:     o.st,
		replay: o.replay,
		preds:  preds,
	}
}

// compose 将过滤链包装到观察者外层
//
// 谓词按添加顺序依次求值，任一拒绝即丢弃该值。
// 序号计数按订阅独立：每次 Subscribe 重新构建闭包状态，
// 被拒绝的值同样消耗序号。回放值走同一条过滤链。
func (o *observable) compose(fn pkgif.Observer) pkgif.Observer {
	deliver := fn
	for i := len(o.preds) - 1; i >= 0; i-- {
		pred := o.preds[i]
		next := deliver
		var index atomic.Int64
		deliver = func(value interface{}) {
			n := int(index.Add(1) - 1)
			if pred(value, n) {
				next(value)
			}
		}
	}
	return deliver
}

// ============================================================================
// 惰性订阅
// ============================================================================

// inertSubscription 已取消的空订阅句柄
type inertSubscription struct{}

var _ pkgif.Subscription = inertSubscription{}

func (inertSubscription) Cancel()      {}
func (inertSubscription) Active() bool { return false }
