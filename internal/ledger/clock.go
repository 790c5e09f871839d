package ledger

import (
	"sync"
	"time"
)

// Clock 账本时间源（unix 秒）
type Clock interface {
	Now() uint64
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 当前 unix 时间
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// ManualClock 手动推进的时间源，测试与本地模拟使用
type ManualClock struct {
	mu  sync.Mutex
	now uint64
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start uint64) *ManualClock {
	return &ManualClock{now: start}
}

// Now 当前时间
func (c *ManualClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set 设置绝对时间
func (c *ManualClock) Set(ts uint64) {
	c.mu.Lock()
	c.now = ts
	c.mu.Unlock()
}

// Advance 时间前进 seconds 秒
func (c *ManualClock) Advance(seconds uint64) {
	c.mu.Lock()
	c.now += seconds
	c.mu.Unlock()
}
