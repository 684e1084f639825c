package aggregate

import (
	"fmt"
	"sort"

	"github.com/shenikar/crime_file_system/internal/models"
)

// UnknownMonth - метка для записей с нераспознанной датой
const UnknownMonth = "Unknown"

// counter считает метки в порядке первого появления
type counter struct {
	labels []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.counts[label]++
}

func (c *counter) series() models.Series {
	s := models.Series{Labels: make([]string, len(c.labels)), Values: make([]int, len(c.labels))}
	for i, l := range c.labels {
		s.Labels[i] = l
		s.Values[i] = c.counts[l]
	}
	return s
}

// ByType - количество записей по типу
func ByType(records []models.Record) models.Series {
	c := newCounter()
	for _, r := range records {
		c.add(r.Type)
	}
	return c.series()
}

// ByStatus - количество записей по статусу
func ByStatus(records []models.Record) models.Series {
	c := newCounter()
	for _, r := range records {
		c.add(r.Status)
	}
	return c.series()
}

// ByArea - количество записей по району, определенному правилами
func ByArea(records []models.Record, rules AreaRules) models.Series {
	c := newCounter()
	for _, r := range records {
		c.add(rules.Area(r.Location))
	}
	return c.series()
}

type monthKey struct {
	year  int
	month int
}

// ByMonth - количество записей по месяцам в хронологическом порядке.
// Записи с нераспознанной датой попадают в последнюю группу Unknown.
func ByMonth(records []models.Record) models.Series {
	counts := make(map[monthKey]int)
	unknown := 0
	for _, r := range records {
		if !r.OccurredAt.Valid() {
			unknown++
			continue
		}
		t := r.OccurredAt.Time()
		counts[monthKey{year: t.Year(), month: int(t.Month())}]++
	}

	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	s := models.Series{Labels: make([]string, 0, len(keys)+1), Values: make([]int, 0, len(keys)+1)}
	for _, k := range keys {
		s.Labels = append(s.Labels, monthLabel(k))
		s.Values = append(s.Values, counts[k])
	}
	if unknown > 0 {
		s.Labels = append(s.Labels, UnknownMonth)
		s.Values = append(s.Values, unknown)
	}
	return s
}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func monthLabel(k monthKey) string {
	return fmt.Sprintf("%s %d", monthNames[k.month-1], k.year)
}

// Stats считает общее число записей, открытые и раскрытые дела
func Stats(records []models.Record) models.Stats {
	stats := models.Stats{Total: len(records)}
	for _, r := range records {
		switch models.CaseStatus(r.Status) {
		case models.StatusOpen:
			stats.Open++
		case models.StatusSolved:
			stats.Solved++
		}
	}
	return stats
}

// Markers возвращает по маркеру на каждую запись с обеими координатами
func Markers(records []models.Record) []models.Marker {
	markers := make([]models.Marker, 0, len(records))
	for _, r := range records {
		if !r.Mappable() {
			continue
		}
		markers = append(markers, models.Marker{
			ID:         r.ID,
			Latitude:   *r.Latitude,
			Longitude:  *r.Longitude,
			Title:      r.Title,
			Type:       r.Type,
			Status:     r.Status,
			Location:   r.Location,
			OccurredAt: r.OccurredAt,
		})
	}
	return markers
}
