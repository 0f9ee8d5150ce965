package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Store 上游响应的短期缓存，相当于前端框架的 revalidate
// 实现需要并发安全，Set失败时静默忽略
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Nop 不缓存，默认使用
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (Nop) Set(context.Context, string, []byte, time.Duration) {}

type entry struct {
	value   []byte
	expires time.Time
}

// MemoryStore 进程内LRU缓存，超过容量淘汰最久未使用的
type MemoryStore struct {
	lru *lru.Cache
	now func() time.Time
}

func NewMemoryStore(size int) (*MemoryStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{lru: c, now: time.Now}, nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if !m.now().Before(e.expires) {
		m.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.lru.Add(key, entry{value: value, expires: m.now().Add(ttl)})
}
