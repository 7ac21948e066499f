package notify

import (
	"context"
	"sync"
)

// DefaultDeliveryCapacity bounds the in-process delivery log.
const DefaultDeliveryCapacity = 10000

// DeliveryLog remembers event ids that already produced a notification.
type DeliveryLog interface {
	Delivered(ctx context.Context, eventID string) (bool, error)
	MarkDelivered(ctx context.Context, eventID string) error
}

// MemoryLog keeps the most recent capacity ids. Once full, marking a new id
// forgets the oldest one.
type MemoryLog struct {
	mu       sync.Mutex
	capacity int
	ids      map[string]struct{}
	order    []string
	next     int
}

func NewMemoryLog(capacity int) *MemoryLog {
	if capacity <= 0 {
		capacity = DefaultDeliveryCapacity
	}
	return &MemoryLog{
		capacity: capacity,
		ids:      make(map[string]struct{}, capacity),
		order:    make([]string, 0, capacity),
	}
}

func (l *MemoryLog) Delivered(_ context.Context, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[eventID]
	return ok, nil
}

func (l *MemoryLog) MarkDelivered(_ context.Context, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[eventID]; ok {
		return nil
	}
	if len(l.order) < l.capacity {
		l.order = append(l.order, eventID)
	} else {
		delete(l.ids, l.order[l.next])
		l.order[l.next] = eventID
		l.next = (l.next + 1) % l.capacity
	}
	l.ids[eventID] = struct{}{}
	return nil
}

func (l *MemoryLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

var _ DeliveryLog = (*MemoryLog)(nil)
