package store

import "time"

// IDGenerator выдает идентификаторы для новых записей
type IDGenerator interface {
	Next() int64
}

// ClockIDs выдает миллисекундные метки времени, строго возрастающие в пределах процесса
type ClockIDs struct {
	now  func() time.Time
	last int64
}

// NewClockIDs создает генератор; now == nil означает time.Now
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (g *ClockIDs) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
