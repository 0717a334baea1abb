// Package stream 实现键控事件流
//
// Stream 是总线的最小构件：一条流对应一个字符串键，
// 维护最近值缓存与订阅者集合，提供同步多播投递。
//
// # 核心语义
//
//   - 发布：先在锁内更新最近值并快照订阅者集合，
//     再在锁外按订阅顺序同步调用各观察者
//   - 订阅：读取最近值与追加订阅者在同一临界区内完成，
//     与并发发布之间不会丢值或重复投递
//   - 回放：带回放的订阅在进入实时投递前，恰好一次地
//     收到订阅时刻缓存的最近值
//   - 取消：幂等；取消后的订阅在下一次投递快照中被跳过，
//     已在执行中的回调不受影响
//
// # 投递模型
//
// 投递在发布方的调用栈上同步执行，锁外进行，
// 因此观察者回调内允许再次订阅、取消或发布。
// 观察者 panic 被逐次恢复：一个观察者崩溃不影响
// 同一次发布中其余观察者的投递。
//
// # 并发安全
//
// 所有公开方法并发安全。流内部使用单把互斥锁保护
// 最近值与订阅者集合，计数器使用原子操作。
//
// 接口定义：pkg/interfaces/eventbus.go
package stream
