package aggregate

import "github.com/shenikar/crime_file_system/internal/models"

// neutralColor - цвет для меток вне известного набора
const neutralColor = "#95A5A6"

const trendColor = "#3498db"

var typeColors = map[models.CrimeType]string{
	models.CrimeTheft:     "#FF6B6B",
	models.CrimeAssault:   "#4ECDC4",
	models.CrimeBurglary:  "#45B7D1",
	models.CrimeVandalism: "#96CEB4",
	models.CrimeFraud:     "#FFEAA7",
	models.CrimeOther:     "#DDA0DD",
}

var statusColors = map[models.CaseStatus]string{
	models.StatusOpen:               "#FFC107",
	models.StatusUnderInvestigation: "#17A2B8",
	models.StatusClosed:             "#DC3545",
	models.StatusSolved:             "#28A745",
}

var areaPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD",
	"#A8E6CF", "#FF8B94", "#FFC3A0", "#FFAFBD", "#C06C84", "#6C5B7B",
}

// Charts строит данные всех четырех графиков
func Charts(records []models.Record, rules AreaRules) models.Charts {
	byType := ByType(records)
	byMonth := ByMonth(records)
	byStatus := ByStatus(records)
	byArea := ByArea(records, rules)

	return models.Charts{
		ByType: models.ChartData{
			Kind:   models.ChartProportion,
			Title:  "Crimes by Type",
			Series: byType,
			Colors: TypeColors(byType.Labels),
		},
		ByMonth: models.ChartData{
			Kind:   models.ChartTrendLine,
			Title:  "Crimes per Month",
			Series: byMonth,
			Colors: []string{trendColor},
		},
		ByStatus: models.ChartData{
			Kind:   models.ChartBarStatus,
			Title:  "Cases by Status",
			Series: byStatus,
			Colors: StatusColors(byStatus.Labels),
		},
		ByArea: models.ChartData{
			Kind:   models.ChartBarArea,
			Title:  "Crimes by Area",
			Series: byArea,
			Colors: paletteColors(len(byArea.Labels)),
		},
	}
}

// TypeColors подбирает цвета для типов; неизвестные типы получают нейтральный цвет
func TypeColors(labels []string) []string {
	colors := make([]string, len(labels))
	for i, l := range labels {
		colors[i] = neutralColor
		if t, ok := models.ParseCrimeType(l); ok {
			colors[i] = typeColors[t]
		}
	}
	return colors
}

// StatusColors подбирает цвета для статусов; неизвестные статусы получают нейтральный цвет
func StatusColors(labels []string) []string {
	colors := make([]string, len(labels))
	for i, l := range labels {
		colors[i] = neutralColor
		if s, ok := models.ParseCaseStatus(l); ok {
			colors[i] = statusColors[s]
		}
	}
	return colors
}

func paletteColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = areaPalette[i%len(areaPalette)]
	}
	return colors
}
