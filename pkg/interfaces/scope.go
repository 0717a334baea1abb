// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义作用域总线工厂接口，支持按协调域隔离事件流。
package interfaces

import (
	"github.com/dep2p/go-eventbus/pkg/types"
)

// BusFactory 定义总线工厂接口
//
// 每次 Create 返回全新的独立总线实例：键空间、最近值缓存
// 与订阅者集合互不共享。
type BusFactory interface {
	// Create 创建新的总线实例
	Create() Bus
}

// ScopeManager 定义作用域管理器接口
//
// 为每个作用域标识维护恰好一个总线实例。
type ScopeManager interface {
	// Get 返回作用域对应的总线，不存在时创建
	//
	// 并发调用同一作用域保证返回同一实例。
	Get(scope types.ScopeID) Bus

	// Drop 移除作用域及其总线
	//
	// 之后对同一作用域的 Get 返回全新实例。
	// 已存在的旧总线引用仍可使用，只是不再被管理器追踪。
	Drop(scope types.ScopeID)

	// Count 返回当前管理的作用域数量
	Count() int

	// Scopes 返回当前管理的全部作用域标识
	Scopes() []types.ScopeID
}
