package models

import "time"

// FilterCriteria - текущие условия поиска и фильтрации. Пустые поля не ограничивают выборку.
type FilterCriteria struct {
	Search    string     `json:"search,omitempty"`
	Type      string     `json:"type,omitempty"`
	Status    string     `json:"status,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// IsEmpty сообщает, что ни одно условие не задано
func (c FilterCriteria) IsEmpty() bool {
	return c.Search == "" && c.Type == "" && c.Status == "" && c.StartDate == nil && c.EndDate == nil
}
