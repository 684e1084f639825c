package repository

import (
	"context"
	"sync"

	"github.com/shenikar/crime_file_system/internal/service"
)

// MemorySlot хранит снимок в памяти процесса
type MemorySlot struct {
	mu      sync.RWMutex
	payload []byte
}

func NewMemorySlot() service.SnapshotRepository {
	return &MemorySlot{}
}

func (r *MemorySlot) Load(_ context.Context) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.payload == nil {
		return nil, nil
	}
	out := make([]byte, len(r.payload))
	copy(out, r.payload)
	return out, nil
}

func (r *MemorySlot) Save(_ context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = make([]byte, len(payload))
	copy(r.payload, payload)
	return nil
}
