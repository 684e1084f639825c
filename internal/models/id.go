package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordID - идентификатор записи. В файлах встречаются и числа, и строки,
// поэтому исходная форма сохраняется для обратной сериализации.
type RecordID struct {
	value   string
	numeric bool
}

// NumericID создает числовой идентификатор
func NumericID(n int64) RecordID {
	return RecordID{value: strconv.FormatInt(n, 10), numeric: true}
}

// StringID создает строковый идентификатор
func StringID(s string) RecordID {
	return RecordID{value: s}
}

// ParseRecordID разбирает идентификатор из пути запроса: число становится числовым id
func ParseRecordID(s string) RecordID {
	if json.Valid([]byte(s)) {
		if value, ok := canonicalNumber(s); ok {
			return RecordID{value: value, numeric: true}
		}
	}
	return StringID(s)
}

// canonicalNumber приводит запись числа к одной форме: 1e3, 1000.0 и 1000 дают "1000"
func canonicalNumber(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// Equal сравнивает идентификаторы по значению, без учета формы
func (id RecordID) Equal(other RecordID) bool {
	return id.value == other.value
}

// Int64 возвращает числовое значение, если оно целое
func (id RecordID) Int64() (int64, bool) {
	if !id.numeric {
		return 0, false
	}
	n, err := strconv.ParseInt(id.value, 10, 64)
	return n, err == nil
}

func (id RecordID) IsZero() bool {
	return id.value == ""
}

func (id RecordID) String() string {
	return id.value
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = RecordID{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id must be a number or a string: %w", err)
		}
		value, ok := canonicalNumber(n.String())
		if !ok {
			value = n.String()
		}
		*id = RecordID{value: value, numeric: true}
	}
	return nil
}
