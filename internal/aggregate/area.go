package aggregate

import "strings"

// UnknownArea - метка для записей без адреса
const UnknownArea = "Unknown Area"

// AreaRule сопоставляет ключевое слово в адресе с районом
type AreaRule struct {
	Keyword string
	Area    string
}

// AreaRules - упорядоченная таблица правил: побеждает первое совпавшее ключевое слово.
// Это приблизительная эвристика, а не геокодирование.
type AreaRules []AreaRule

// DefaultAreaRules - районы, которые знает приложение из коробки
var DefaultAreaRules = AreaRules{
	{Keyword: "Downtown", Area: "Downtown"},
	{Keyword: "Midtown", Area: "Midtown"},
	{Keyword: "Uptown", Area: "Uptown"},
	{Keyword: "Online", Area: "Online"},
}

// RulesFromKeywords строит таблицу, где район совпадает с ключевым словом
func RulesFromKeywords(keywords []string) AreaRules {
	rules := make(AreaRules, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		rules = append(rules, AreaRule{Keyword: k, Area: k})
	}
	return rules
}

// Area определяет район по адресу. Без совпадений берется вторая часть адреса
// через запятую, а если запятой нет - весь адрес.
func (rules AreaRules) Area(location string) string {
	if location == "" {
		return UnknownArea
	}
	for _, rule := range rules {
		if strings.Contains(location, rule.Keyword) {
			return rule.Area
		}
	}
	parts := strings.Split(location, ",")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(parts[0])
}
