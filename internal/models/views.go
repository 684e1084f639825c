package models

// Stats - счетчики для панели статистики
type Stats struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Solved int `json:"solved"`
}

// Marker - точка на карте для записи с координатами
type Marker struct {
	ID         RecordID  `json:"id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	OccurredAt Timestamp `json:"date"`
}

// Series - подписи и значения, выровненные по индексу
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// Total возвращает сумму значений
func (s Series) Total() int {
	total := 0
	for _, v := range s.Values {
		total += v
	}
	return total
}

// ChartKind - вид графика
type ChartKind string

const (
	ChartProportion ChartKind = "proportion"
	ChartTrendLine  ChartKind = "trend-line"
	ChartBarStatus  ChartKind = "bar-by-status"
	ChartBarArea    ChartKind = "bar-by-area"
)

// ChartData - данные одного графика
type ChartData struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Series Series    `json:"series"`
	Colors []string  `json:"colors"`
}

// Charts - все четыре графика аналитики
type Charts struct {
	ByType   ChartData `json:"byType"`
	ByMonth  ChartData `json:"byMonth"`
	ByStatus ChartData `json:"byStatus"`
	ByArea   ChartData `json:"byArea"`
}

// Dashboard - последнее состояние всех производных представлений
type Dashboard struct {
	Records  []Record       `json:"records"`
	Criteria FilterCriteria `json:"criteria"`
	Stats    Stats          `json:"stats"`
	Markers  []Marker       `json:"markers"`
	Charts   Charts         `json:"charts"`
}

// ExportFile - файл экспорта коллекции
type ExportFile struct {
	Name string
	Data []byte
}
