package filter

import "github.com/shenikar/crime_file_system/internal/models"

// Engine хранит текущие условия фильтрации
type Engine struct {
	criteria models.FilterCriteria
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Set(criteria models.FilterCriteria) {
	e.criteria = criteria
}

func (e *Engine) Clear() {
	e.criteria = models.FilterCriteria{}
}

func (e *Engine) Criteria() models.FilterCriteria {
	return e.criteria
}

// Apply фильтрует записи по текущим условиям
func (e *Engine) Apply(records []models.Record) []models.Record {
	return Apply(records, e.criteria)
}
