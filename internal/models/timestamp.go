package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout - формат даты происшествия в хранилище и при экспорте
const TimestampLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	TimestampLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp - дата и время происшествия по настенным часам, с точностью до секунды.
// Нераспознанный текст сохраняется как есть, такая метка считается невалидной.
type Timestamp struct {
	t   time.Time
	raw string
}

// NewTimestamp приводит время к настенным часам UTC без долей секунды
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: wallClock(t)}
}

// ParseTimestamp разбирает строку в одном из поддерживаемых форматов
func ParseTimestamp(s string) Timestamp {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	return Timestamp{raw: s}
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Time возвращает разобранное время (нулевое для невалидной метки)
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// Valid сообщает, удалось ли разобрать дату
func (ts Timestamp) Valid() bool {
	return !ts.t.IsZero()
}

// IsZero сообщает, что дата не задана вовсе
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero() && ts.raw == ""
}

func (ts Timestamp) String() string {
	if ts.Valid() {
		return ts.t.Format(TimestampLayout)
	}
	return ts.raw
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	*ts = ParseTimestamp(s)
	return nil
}
