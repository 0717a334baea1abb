package introspect

import "fmt"

// DefaultCapacity 默认保留的最大键数
const DefaultCapacity = 1024

// Config 活动记录器配置
type Config struct {
	// Capacity 保留的最大键数，超出后按 LRU 淘汰
	Capacity int
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("introspect: 容量必须为正数: %d", c.Capacity)
	}
	return nil
}
