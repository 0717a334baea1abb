// Package handshake 实现基于总线的一次性发现握手
//
// handshake 完全构建在总线的 observe/emit 之上，让共享同一作用域的
// 两个角色在不持有对方引用的情况下，恰好一次地发现彼此的存在。
//
// # 核心功能
//
// 1. 公告 (Announce)
//   - 激活时在宣告键上发布携带身份令牌的公告
//   - 公告被总线缓存为最近值，后激活的对端通过回放补收
//   - 支持激活后重新公告（不会造成对端重复触发）
//
// 2. 监听 (Listen)
//   - 激活时先以回放模式订阅监听键，再发布公告
//   - 过滤器按身份令牌匹配，共享总线上的无关流量不会触发
//   - 首次匹配后订阅自行取消（一次性语义）
//
// 3. 状态机
//   - Announcing（初始）→ Discovered（终态）
//   - 对端始终缺席时永远停留在 Announcing，这是正常稳态而非错误
//
// # 使用示例
//
//	bus := eventbus.NewBus()
//
//	first, err := handshake.NewPeer(bus, &handshake.Config{
//	    AnnounceKey: "discovery:first",
//	    ListenKey:   "discovery:second",
//	    Role:        "first",
//	    Token:       token,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer first.Close()
//
//	if err := first.Activate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	if err := first.WaitDiscovered(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # 激活顺序无关性
//
// 握手对激活顺序不敏感：
//   - 后激活的一方通过回放收到先激活方缓存的公告
//   - 先激活的一方在对端公告时实时收到
//   - 双方最终都迁移到 Discovered
//
// # 身份令牌
//
// 令牌用于在共享总线上区分"与我同作用域的公告"和无关流量：
//   - 令牌非空时，过滤器只放行令牌一致的公告
//   - 令牌为空时匹配任意公告（适用于作用域私有总线，
//     此时监听键上的任何流量必然相关）
//
// # 镜像对 (Pair)
//
// Pair 把两个互为镜像的参与方作为整体管理，
// 自动交叉布线（甲方的宣告键即乙方的监听键）并共享令牌：
//
//	pair, err := handshake.NewPair(bus, &handshake.PairConfig{
//	    FirstKey:  "discovery:first",
//	    SecondKey: "discovery:second",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pair.Close()
//
//	if err := pair.Activate(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = pair.WaitDiscovered(ctx) // 双方都已发现
//
// # 并发安全
//
// handshake 是并发安全的：
//   - sync.Mutex 保护状态机迁移
//   - 发现通知通过 channel 广播（WaitDiscovered 可多处等待）
//   - 状态迁移与订阅取消恰好一次，公告重复到达不产生副作用
//
// # Fx 模块
//
// 通过 Fx 依赖注入使用：
//
//	app := fx.New(
//	    eventbus.Module(),
//	    handshake.Module(),
//	    fx.Supply(&handshake.PairConfig{...}),
//	)
//	app.Run()
//
// Pair 随应用生命周期激活与关闭。
//
// # 适用场景
//
//   - 同一作用域内两个组件互相感知（无共同上级协调）
//   - 组件就绪信号（先就绪的一方不会错过后就绪的一方）
//   - 测试中等待两个子系统完成互联
package handshake
