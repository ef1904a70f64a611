package entitlement

import (
	"context"
	"sync"
)

// Backend 权益数据的持久化后端，每个键保存一个文档
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryBackend 进程内后端，用于开发与测试
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}
