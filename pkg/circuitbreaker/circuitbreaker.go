// Package circuitbreaker 熔断器
//
// 三种状态：
//   - CLOSED：请求正常通过，连续失败达到阈值后转为OPEN
//   - OPEN：请求直接返回ErrOpenState，超过Timeout后转为HALF_OPEN
//   - HALF_OPEN：只放行MaxRequests个探测请求，成功则CLOSED，失败则回到OPEN
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时返回
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// MaxFailures 连续失败多少次后熔断，默认5
	MaxFailures uint32
	// Timeout OPEN状态持续时间，默认30s
	Timeout time.Duration
	// MaxRequests 半开状态允许的探测请求数，默认1
	MaxRequests uint32
	// OnStateChange 状态变化回调（在锁内调用，不要阻塞）
	OnStateChange func(name string, from, to State)
}

// CircuitBreaker 并发安全
type CircuitBreaker struct {
	name   string
	config Config

	mu         sync.Mutex
	state      State
	generation uint64 // 每次状态切换递增，丢弃切换前发出的请求结果
	failures   uint32 // CLOSED状态下的连续失败数
	inFlight   uint32 // HALF_OPEN状态下已放行的请求数
	openUntil  time.Time
	now        func() time.Time
}

// NewCircuitBreaker 创建熔断器
//
//	cb := NewCircuitBreaker("book-cache", Config{MaxFailures: 5, Timeout: 30 * time.Second})
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	if config.MaxFailures == 0 {
		config.MaxFailures = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	return &CircuitBreaker{name: name, config: config, now: time.Now}
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute 在熔断器保护下执行req
// 熔断时不调用req，直接返回ErrOpenState；否则返回req的错误
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = req()
	cb.afterRequest(generation, err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.currentState()
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.currentState() {
	case StateOpen:
		return cb.generation, ErrOpenState
	case StateHalfOpen:
		if cb.inFlight >= cb.config.MaxRequests {
			return cb.generation, ErrOpenState
		}
		cb.inFlight++
	}
	return cb.generation, nil
}

func (cb *CircuitBreaker) afterRequest(generation uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.currentState()
	if generation != cb.generation {
		return
	}

	switch {
	case success && state == StateHalfOpen:
		cb.setState(StateClosed)
	case success:
		cb.failures = 0
	case state == StateHalfOpen:
		cb.setState(StateOpen)
	default:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.setState(StateOpen)
		}
	}
}

// currentState OPEN超时后转为HALF_OPEN，调用方需持有锁
func (cb *CircuitBreaker) currentState() State {
	if cb.state == StateOpen && !cb.now().Before(cb.openUntil) {
		cb.setState(StateHalfOpen)
	}
	return cb.state
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.generation++
	cb.failures = 0
	cb.inFlight = 0
	if state == StateOpen {
		cb.openUntil = cb.now().Add(cb.config.Timeout)
	}

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.name, prev, state)
	}
}
