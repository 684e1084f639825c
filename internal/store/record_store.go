package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shenikar/crime_file_system/internal/models"
)

// RecordStore хранит коллекцию записей в памяти в порядке добавления.
// Не потокобезопасен: вызывающая сторона обеспечивает единственного писателя.
type RecordStore struct {
	records []models.Record
	ids     IDGenerator
}

// NewRecordStore создает пустое хранилище
func NewRecordStore(ids IDGenerator) *RecordStore {
	if ids == nil {
		ids = NewClockIDs(nil)
	}
	return &RecordStore{ids: ids}
}

// Create добавляет запись с новым уникальным id. Поля не проверяются.
func (s *RecordStore) Create(fields models.RecordFields) (models.Record, models.Change) {
	id := models.NumericID(s.ids.Next())
	for s.indexOf(id) >= 0 {
		id = models.NumericID(s.ids.Next())
	}
	record := fields.ToRecord(id)
	s.records = append(s.records, record)
	return record.Clone(), s.change(models.ChangeCreated, id)
}

// Get возвращает копию записи по id
func (s *RecordStore) Get(id models.RecordID) (models.Record, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Record{}, false
	}
	return s.records[i].Clone(), true
}

// Update накладывает патч на запись; id сохраняется
func (s *RecordStore) Update(id models.RecordID, patch models.RecordPatch) (models.Record, models.Change, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Record{}, models.Change{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	updated := patch.Apply(s.records[i])
	updated.ID = s.records[i].ID
	s.records[i] = updated
	return updated.Clone(), s.change(models.ChangeUpdated, updated.ID), nil
}

// Delete удаляет все записи с данным id и сообщает, было ли что-то удалено
func (s *RecordStore) Delete(id models.RecordID) (bool, models.Change) {
	kept := s.records[:0:0]
	for _, r := range s.records {
		if !r.ID.Equal(id) {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(s.records) {
		return false, models.Change{}
	}
	s.records = kept
	return true, s.change(models.ChangeDeleted, id)
}

// All возвращает копию коллекции в порядке добавления
func (s *RecordStore) All() []models.Record {
	out := make([]models.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

func (s *RecordStore) Len() int {
	return len(s.records)
}

// Replace целиком заменяет коллекцию
func (s *RecordStore) Replace(records []models.Record) models.Change {
	next := make([]models.Record, len(records))
	ids := make([]models.RecordID, len(records))
	for i, r := range records {
		next[i] = r.Clone()
		ids[i] = r.ID
	}
	s.records = next
	return models.Change{Kind: models.ChangeReplaced, RecordIDs: ids, Total: len(next)}
}

// Import разбирает данные и заменяет ими коллекцию. При ошибке состояние не меняется.
func (s *RecordStore) Import(blob []byte) (models.Change, error) {
	records, err := Deserialize(blob)
	if err != nil {
		return models.Change{}, err
	}
	return s.Replace(records), nil
}

// Serialize возвращает коллекцию в формате экспорта
func (s *RecordStore) Serialize() ([]byte, error) {
	return Serialize(s.records)
}

func (s *RecordStore) indexOf(id models.RecordID) int {
	for i, r := range s.records {
		if r.ID.Equal(id) {
			return i
		}
	}
	return -1
}

func (s *RecordStore) change(kind models.ChangeKind, id models.RecordID) models.Change {
	return models.Change{Kind: kind, RecordIDs: []models.RecordID{id}, Total: len(s.records)}
}

// Serialize кодирует записи JSON-массивом с отступом в два пробела
func Serialize(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize records: %w", err)
	}
	return data, nil
}

// Deserialize разбирает JSON-массив объектов записей
func Deserialize(blob []byte) ([]models.Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, &MalformedDataError{Reason: "expected an array of records", Err: err}
	}
	if items == nil {
		return nil, &MalformedDataError{Reason: "expected an array of records"}
	}

	records := make([]models.Record, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &MalformedDataError{Reason: fmt.Sprintf("element %d is not an object", i)}
		}
		var r models.Record
		if err := json.Unmarshal(item, &r); err != nil {
			return nil, &MalformedDataError{Reason: fmt.Sprintf("element %d", i), Err: err}
		}
		records = append(records, r)
	}
	return records, nil
}
