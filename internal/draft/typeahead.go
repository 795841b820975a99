package draft

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultDebounce 防抖静默期
	DefaultDebounce = 250 * time.Millisecond
	// MinQueryLen 触发后端搜索的最小查询长度（去除首尾空白后）
	MinQueryLen = 3
)

// SearchFunc 执行一次后端搜索
type SearchFunc func(ctx context.Context, query string) ([]Option, error)

// Typeahead 单个搜索流的防抖搜索器。
// 每个逻辑流一个实例（经销商一个、每个草稿行一个），各自独立取消，
// 互不干扰。连续击键折叠为静默期后的至多一次后端调用；
// 触发时读取流的当前查询而不是调度时的快照；过期响应被丢弃
type Typeahead struct {
	mu     sync.Mutex
	search SearchFunc
	apply  func([]Option)
	delay  time.Duration
	timer  *time.Timer
	query  string
	gen    int
	closed bool
}

// NewTypeahead 创建防抖搜索器。delay为0时使用DefaultDebounce。
// 每当一次搜索完成且结果仍然新鲜时调用apply
func NewTypeahead(search SearchFunc, apply func([]Option), delay time.Duration) *Typeahead {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Typeahead{search: search, apply: apply, delay: delay}
}

// Update 记录新的查询文本并重置防抖计时。
// 过短的查询立即得到空结果，不发起后端调用
func (t *Typeahead) Update(query string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.query = query
	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if len([]rune(strings.TrimSpace(query))) >= MinQueryLen {
		t.timer = time.AfterFunc(t.delay, t.fire)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()
	t.deliver(gen, nil)
}

// fire 防抖到期。评估的是此刻的当前查询
func (t *Typeahead) fire() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	query := strings.TrimSpace(t.query)
	gen := t.gen
	t.mu.Unlock()

	if len([]rune(query)) < MinQueryLen {
		t.deliver(gen, nil)
		return
	}

	results, err := t.search(context.Background(), query)
	if err != nil {
		// 搜索失败静默降级为空结果
		results = nil
	}
	t.deliver(gen, results)
}

// deliver 仅当结果仍对应当前查询且流未关闭时应用
func (t *Typeahead) deliver(gen int, results []Option) {
	t.mu.Lock()
	if t.closed || gen != t.gen {
		t.mu.Unlock()
		return
	}
	apply := t.apply
	t.mu.Unlock()

	if results == nil {
		results = []Option{}
	}
	if apply != nil {
		apply(results)
	}
}

// Close 取消未决的防抖计时，此后不再投递任何结果
func (t *Typeahead) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
