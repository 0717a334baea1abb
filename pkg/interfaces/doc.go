// Package interfaces 定义 go-eventbus 的公共接口
//
// 本包采用扁平命名组织接口定义（一个接口文件 = 一个实现目录）：
//
// # Core Layer 接口
//
// 事件总线核心能力：
//   - eventbus.go   - 键控多播总线（Bus、Observable、Subscription）
//   - tracer.go     - 投递追踪钩子（Tracer、PanicHandler、ActivityRecorder）
//   - scope.go      - 作用域总线工厂（BusFactory、ScopeManager）
//   - introspect.go - 本地诊断服务（DebugServer）
//
// # Discovery Layer 接口
//
// 基于总线的一次性发现握手：
//   - discovery.go  - 握手参与方（DiscoveryPeer、DiscoveryPair）
//
// # 依赖方向
//
//	Discovery → Core
//
// 禁止反向依赖。
//
// # 设计原则
//
// 本包仅包含纯接口定义与选项函数，数据结构定义在 pkg/types 包中。
//
// 采用扁平命名结构：
//   - 简化导入：一次性导入所有接口
//   - 避免循环依赖：清晰的依赖关系
//   - 降低包层级：提高可维护性
package interfaces
