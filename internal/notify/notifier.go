package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_file_system/internal/models"
)

// DefaultTTL - через сколько уведомление исчезает само
const DefaultTTL = 5 * time.Second

// Notifier хранит временные уведомления для пользователя
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []models.Notification
}

// New создает Notifier; now == nil означает time.Now
func New(ttl time.Duration, now func() time.Time) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Notifier{ttl: ttl, now: now}
}

// Push добавляет уведомление и возвращает его
func (n *Notifier) Push(severity models.Severity, message string) models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	item := models.Notification{
		ID:        uuid.New(),
		Severity:  severity,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}
	n.prune(now)
	n.items = append(n.items, item)
	return item
}

func (n *Notifier) Success(message string) models.Notification {
	return n.Push(models.SeveritySuccess, message)
}

func (n *Notifier) Error(message string) models.Notification {
	return n.Push(models.SeverityError, message)
}

func (n *Notifier) Info(message string) models.Notification {
	return n.Push(models.SeverityInfo, message)
}

// Active возвращает еще не истекшие уведомления, от старых к новым
func (n *Notifier) Active() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.prune(n.now())
	out := make([]models.Notification, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Notifier) prune(now time.Time) {
	kept := n.items[:0]
	for _, item := range n.items {
		if now.Before(item.ExpiresAt) {
			kept = append(kept, item)
		}
	}
	n.items = kept
}
