package introspect

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/pprof"
	"sort"
	"sync"
	"time"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
	"github.com/dep2p/go-eventbus/pkg/types"
)

var logger = log.Logger("core/introspect")

// DefaultAddr 默认监听地址
const DefaultAddr = "127.0.0.1:6060"

// Server 本地自省 HTTP 服务
//
// 该服务运行在本地端口，提供 JSON 格式的总线诊断信息，用于调试和监控。
// 默认绑定到 127.0.0.1，不暴露到网络。
//
// 端点：
//   - GET /debug/eventbus          - 完整诊断报告 (JSON)
//   - GET /debug/eventbus/stats    - 总线统计
//   - GET /debug/eventbus/activity - 活动快照（需要 Recorder）
//   - GET /debug/eventbus/keys     - 已创建的流键列表
//   - GET /debug/pprof/*           - Go pprof 端点
//   - GET /health                  - 健康检查
type Server struct {
	// 依赖组件
	bus      pkgif.Bus
	recorder pkgif.ActivityRecorder // 可选

	// 配置
	addr string

	// HTTP 服务器
	server   *http.Server
	listener net.Listener

	// 状态
	running bool
	mu      sync.Mutex
}

var _ pkgif.DebugServer = (*Server)(nil)

// ServerConfig 服务配置
type ServerConfig struct {
	// Addr 监听地址，默认 "127.0.0.1:6060"
	Addr string

	// Bus 必需的总线组件
	Bus pkgif.Bus

	// Recorder 可选的活动记录器
	Recorder pkgif.ActivityRecorder
}

// NewServer 创建自省服务
func NewServer(cfg ServerConfig) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	return &Server{
		bus:      cfg.Bus,
		recorder: cfg.Recorder,
		addr:     addr,
	}
}

// Start 启动服务
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	// 创建路由
	mux := http.NewServeMux()

	// 自省端点
	mux.HandleFunc("/debug/eventbus", s.handleReport)
	mux.HandleFunc("/debug/eventbus/stats", s.handleStats)
	mux.HandleFunc("/debug/eventbus/activity", s.handleActivity)
	mux.HandleFunc("/debug/eventbus/keys", s.handleKeys)

	// pprof 端点
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// 健康检查
	mux.HandleFunc("/health", s.handleHealth)

	// 创建监听器
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	// 创建 HTTP 服务器
	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 启动服务
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("自省服务异常退出", "error", err)
		}
	}()

	s.running = true
	logger.Info("自省服务已启动", "addr", listener.Addr().String())
	return nil
}

// Stop 停止服务
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("关闭自省服务失败", "error", err)
		return err
	}

	s.running = false
	logger.Info("自省服务已停止")
	return nil
}

// Addr 返回实际监听地址
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// ============================================================================
//                              HTTP 处理器
// ============================================================================

// BusReport 完整诊断响应
type BusReport struct {
	// Stats 总线统计
	Stats BusStatsInfo `json:"stats"`

	// Activity 活动快照（如果配置了 Recorder）
	Activity []KeyActivityInfo `json:"activity,omitempty"`

	// Timestamp 报告生成时间
	Timestamp time.Time `json:"timestamp"`
}

// BusStatsInfo 总线统计信息
type BusStatsInfo struct {
	Keys        int            `json:"keys"`
	Subscribers int            `json:"subscribers"`
	Emits       uint64         `json:"emits"`
	Deliveries  uint64         `json:"deliveries"`
	Replays     uint64         `json:"replays"`
	Panics      uint64         `json:"panics"`
	PerKey      []KeyStatsInfo `json:"per_key,omitempty"`
}

// KeyStatsInfo 逐键统计信息
type KeyStatsInfo struct {
	Key         string `json:"key"`
	Emits       uint64 `json:"emits"`
	Deliveries  uint64 `json:"deliveries"`
	Replays     uint64 `json:"replays"`
	Panics      uint64 `json:"panics"`
	Subscribers int    `json:"subscribers"`
	HasLast     bool   `json:"has_last"`
}

// KeyActivityInfo 逐键活动信息
type KeyActivityInfo struct {
	Key         string    `json:"key"`
	Emits       uint64    `json:"emits"`
	Deliveries  uint64    `json:"deliveries"`
	Replays     uint64    `json:"replays"`
	Panics      uint64    `json:"panics"`
	Subscribers int       `json:"subscribers"`
	LastEmitAt  time.Time `json:"last_emit_at"`
}

// handleReport 处理完整诊断请求
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report := BusReport{Timestamp: time.Now()}

	if s.bus != nil {
		report.Stats = newBusStatsInfo(s.bus.Stats())
	}
	if s.recorder != nil {
		report.Activity = newKeyActivityInfos(s.recorder.Snapshot())
	}

	s.writeJSON(w, report)
}

// handleStats 处理总线统计请求
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.bus == nil {
		http.Error(w, "Bus not available", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, newBusStatsInfo(s.bus.Stats()))
}

// handleActivity 处理活动快照请求
func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.recorder == nil {
		http.Error(w, "Recorder not available", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, newKeyActivityInfos(s.recorder.Snapshot()))
}

// handleKeys 处理流键列表请求
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.bus == nil {
		http.Error(w, "Bus not available", http.StatusServiceUnavailable)
		return
	}

	keys := s.bus.Keys()
	sort.Strings(keys)
	s.writeJSON(w, keys)
}

// handleHealth 处理健康检查请求
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}{
		Status:    "ok",
		Timestamp: time.Now(),
	}

	// 检查核心组件
	if s.bus == nil {
		health.Status = "degraded"
	}

	s.writeJSON(w, health)
}

// ============================================================================
//                              辅助方法
// ============================================================================

// newBusStatsInfo 转换总线统计
func newBusStatsInfo(stats types.BusStats) BusStatsInfo {
	info := BusStatsInfo{
		Keys:        stats.Keys,
		Subscribers: stats.Subscribers,
		Emits:       stats.Emits,
		Deliveries:  stats.Deliveries,
		Replays:     stats.Replays,
		Panics:      stats.Panics,
		PerKey:      make([]KeyStatsInfo, len(stats.PerKey)),
	}
	for i, ks := range stats.PerKey {
		info.PerKey[i] = KeyStatsInfo{
			Key:         ks.Key,
			Emits:       ks.Emits,
			Deliveries:  ks.Deliveries,
			Replays:     ks.Replays,
			Panics:      ks.Panics,
			Subscribers: ks.Subscribers,
			HasLast:     ks.HasLast,
		}
	}
	return info
}

// newKeyActivityInfos 转换活动快照
func newKeyActivityInfos(acts []types.KeyActivity) []KeyActivityInfo {
	infos := make([]KeyActivityInfo, len(acts))
	for i, a := range acts {
		infos[i] = KeyActivityInfo{
			Key:         a.Key,
			Emits:       a.Emits,
			Deliveries:  a.Deliveries,
			Replays:     a.Replays,
			Panics:      a.Panics,
			Subscribers: a.Subscribers,
			LastEmitAt:  a.LastEmitAt,
		}
	}
	return infos
}

// writeJSON 写入 JSON 响应
func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		logger.Error("JSON 编码失败", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
