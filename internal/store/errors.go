package store

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается, когда записи с указанным id нет в коллекции
var ErrNotFound = errors.New("record not found")

// MalformedDataError - импортируемые данные не являются массивом записей.
// Состояние хранилища при этой ошибке не меняется.
type MalformedDataError struct {
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed data: %s", e.Reason)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// IsMalformed проверяет, что ошибка вызвана некорректными данными импорта
func IsMalformed(err error) bool {
	var malformed *MalformedDataError
	return errors.As(err, &malformed)
}
