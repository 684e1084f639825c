package view

import (
	"testing"

	"github.com/shenikar/crime_file_system/internal/aggregate"
	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink запоминает все вызовы приемников
type recordingSink struct {
	lists   [][]models.Record
	stats   []models.Stats
	markers [][]models.Marker
	charts  []models.Charts
}

func (s *recordingSink) RenderList(records []models.Record, _ models.FilterCriteria) {
	s.lists = append(s.lists, records)
}

func (s *recordingSink) RenderStats(stats models.Stats) {
	s.stats = append(s.stats, stats)
}

func (s *recordingSink) RenderMarkers(markers []models.Marker) {
	s.markers = append(s.markers, markers)
}

func (s *recordingSink) RenderCharts(charts models.Charts) {
	s.charts = append(s.charts, charts)
}

func floatPtr(v float64) *float64 {
	return &v
}

func testRecords() []models.Record {
	return []models.Record{
		{ID: models.NumericID(1), Title: "A", Type: "Theft", Status: "Open", Location: "X, Downtown",
			Latitude: floatPtr(1), Longitude: floatPtr(2)},
		{ID: models.NumericID(2), Title: "B", Type: "Fraud", Status: "Solved", Location: "Online"},
		{ID: models.NumericID(3), Title: "C", Type: "Theft", Status: "Closed", Location: "Y, Uptown",
			Latitude: floatPtr(3), Longitude: floatPtr(4)},
	}
}

func TestCoordinator_RecordsChangedUpdatesEverySink(t *testing.T) {
	sink := &recordingSink{}
	c := NewCoordinator(sink, sink, sink, sink, nil)

	c.RecordsChanged(testRecords(), models.FilterCriteria{})

	require.Len(t, sink.lists, 1)
	require.Len(t, sink.stats, 1)
	require.Len(t, sink.markers, 1)
	require.Len(t, sink.charts, 1)
	assert.Len(t, sink.lists[0], 3)
	assert.Equal(t, models.Stats{Total: 3, Open: 1, Solved: 1}, sink.stats[0])
	assert.Len(t, sink.markers[0], 2)
}

func TestCoordinator_FilterAffectsOnlyList(t *testing.T) {
	sink := &recordingSink{}
	c := NewCoordinator(sink, sink, sink, sink, aggregate.DefaultAreaRules)

	c.FilterChanged(testRecords(), models.FilterCriteria{Type: "Fraud"})

	require.Len(t, sink.lists, 1)
	require.Len(t, sink.lists[0], 1)
	assert.Equal(t, "B", sink.lists[0][0].Title)
	assert.Equal(t, 3, sink.stats[0].Total)
	assert.Len(t, sink.markers[0], 2)
	assert.Equal(t, 3, sink.charts[0].ByType.Series.Total())
}

func TestCoordinator_EmptyCollection(t *testing.T) {
	sink := &recordingSink{}
	c := NewCoordinator(sink, sink, sink, sink, nil)

	c.Refresh(nil, models.FilterCriteria{})

	assert.Empty(t, sink.lists[0])
	assert.Equal(t, models.Stats{}, sink.stats[0])
	assert.Empty(t, sink.markers[0])
}

func TestSnapshot_DashboardReturnsCopies(t *testing.T) {
	snap := NewSnapshot()
	c := NewCoordinator(snap, snap, snap, snap, nil)
	c.Refresh(testRecords(), models.FilterCriteria{Status: "Open"})

	d := snap.Dashboard()
	require.Len(t, d.Records, 1)
	assert.Equal(t, "Open", d.Criteria.Status)
	assert.Equal(t, 3, d.Stats.Total)
	d.Records[0].Title = "mutated"

	assert.Equal(t, "A", snap.Dashboard().Records[0].Title)
}

func TestSnapshot_InitialDashboardHasEmptySlices(t *testing.T) {
	d := NewSnapshot().Dashboard()

	assert.NotNil(t, d.Records)
	assert.NotNil(t, d.Markers)
	assert.Empty(t, d.Records)
}
