package view

import (
	"github.com/shenikar/crime_file_system/internal/aggregate"
	"github.com/shenikar/crime_file_system/internal/filter"
	"github.com/shenikar/crime_file_system/internal/models"
)

// ListSink получает отфильтрованный список записей
type ListSink interface {
	RenderList(records []models.Record, criteria models.FilterCriteria)
}

// StatsSink получает счетчики статистики
type StatsSink interface {
	RenderStats(stats models.Stats)
}

// MapSink получает полный набор маркеров, заменяющий предыдущий
type MapSink interface {
	RenderMarkers(markers []models.Marker)
}

// ChartSink получает данные всех графиков
type ChartSink interface {
	RenderCharts(charts models.Charts)
}

// Coordinator пересчитывает все производные представления и отдает их приемникам.
// Своего состояния, кроме приемников и правил районов, не хранит.
type Coordinator struct {
	list   ListSink
	stats  StatsSink
	mapper MapSink
	charts ChartSink
	rules  aggregate.AreaRules
}

func NewCoordinator(list ListSink, stats StatsSink, mapper MapSink, charts ChartSink, rules aggregate.AreaRules) *Coordinator {
	if rules == nil {
		rules = aggregate.DefaultAreaRules
	}
	return &Coordinator{
		list:   list,
		stats:  stats,
		mapper: mapper,
		charts: charts,
		rules:  rules,
	}
}

// Refresh выполняет полный пересчет: список с учетом фильтра, статистику,
// маркеры и графики по всей коллекции
func (c *Coordinator) Refresh(records []models.Record, criteria models.FilterCriteria) {
	c.list.RenderList(filter.Apply(records, criteria), criteria)
	c.stats.RenderStats(aggregate.Stats(records))
	c.mapper.RenderMarkers(aggregate.Markers(records))
	c.charts.RenderCharts(aggregate.Charts(records, c.rules))
}

// RecordsChanged вызывается после любой мутации коллекции
func (c *Coordinator) RecordsChanged(records []models.Record, criteria models.FilterCriteria) {
	c.Refresh(records, criteria)
}

// FilterChanged вызывается после смены условий фильтрации
func (c *Coordinator) FilterChanged(records []models.Record, criteria models.FilterCriteria) {
	c.Refresh(records, criteria)
}
