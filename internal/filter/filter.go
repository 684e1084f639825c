package filter

import (
	"strings"
	"time"

	"github.com/shenikar/crime_file_system/internal/models"
)

// Apply возвращает записи, удовлетворяющие всем заданным условиям, в исходном порядке
func Apply(records []models.Record, criteria models.FilterCriteria) []models.Record {
	out := make([]models.Record, 0, len(records))
	search := strings.ToLower(criteria.Search)
	for _, r := range records {
		if Match(r, criteria, search) {
			out = append(out, r)
		}
	}
	return out
}

// Match проверяет одну запись; search - уже приведенная к нижнему регистру строка поиска
func Match(r models.Record, criteria models.FilterCriteria, search string) bool {
	if search != "" && !matchesSearch(r, search) {
		return false
	}
	if criteria.Type != "" && r.Type != criteria.Type {
		return false
	}
	if criteria.Status != "" && r.Status != criteria.Status {
		return false
	}
	if criteria.StartDate != nil || criteria.EndDate != nil {
		if !r.OccurredAt.Valid() {
			return false
		}
		at := r.OccurredAt.Time()
		if criteria.StartDate != nil && at.Before(StartOfDay(*criteria.StartDate)) {
			return false
		}
		if criteria.EndDate != nil && at.After(EndOfDay(*criteria.EndDate)) {
			return false
		}
	}
	return true
}

func matchesSearch(r models.Record, search string) bool {
	for _, field := range r.SearchText() {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// StartOfDay - 00:00:00 указанного дня по настенным часам
func StartOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay - 23:59:59 указанного дня, граница включительная
func EndOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
}
