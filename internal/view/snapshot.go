package view

import (
	"sync"

	"github.com/shenikar/crime_file_system/internal/models"
)

// Snapshot реализует все приемники и хранит последние полученные данные,
// чтобы HTTP-слой мог отдавать их клиенту
type Snapshot struct {
	mu        sync.RWMutex
	dashboard models.Dashboard
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		dashboard: models.Dashboard{
			Records: []models.Record{},
			Markers: []models.Marker{},
		},
	}
}

func (s *Snapshot) RenderList(records []models.Record, criteria models.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.Records = records
	s.dashboard.Criteria = criteria
}

func (s *Snapshot) RenderStats(stats models.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.Stats = stats
}

func (s *Snapshot) RenderMarkers(markers []models.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.Markers = markers
}

func (s *Snapshot) RenderCharts(charts models.Charts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.Charts = charts
}

// Dashboard возвращает последнее состояние всех представлений
func (s *Snapshot) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.dashboard
	d.Records = make([]models.Record, len(s.dashboard.Records))
	copy(d.Records, s.dashboard.Records)
	d.Markers = make([]models.Marker, len(s.dashboard.Markers))
	copy(d.Markers, s.dashboard.Markers)
	return d
}
