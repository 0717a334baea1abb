// Package types 定义 go-eventbus 的公共类型
//
// 本包是类型体系的最底层，只依赖标准库与基础工具库，
// 供 pkg/interfaces 与 internal/ 各实现包共同引用。
//
// # 类型分类
//
//   - ids.go: 标识类型（IdentityToken、ScopeID、PeerRole）
//   - enums.go: 枚举类型（PeerState）
//   - announcement.go: 发现公告载荷（Announcement）
//   - stats.go: 统计快照（BusStats、KeyStats、KeyActivity）
//
// # 设计原则
//
//   - 值语义：所有类型均可安全复制，不携带锁或通道
//   - 无行为依赖：类型方法只做格式化、比较与派生计算
//   - 稳定性：本包类型出现在公共 API 签名中，变更需保持兼容
package types
