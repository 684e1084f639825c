package models

import "encoding/json"

// Record - одна запись о происшествии
type Record struct {
	ID          RecordID  `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	OccurredAt  Timestamp `json:"date"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Description string    `json:"description"`
	VictimName  string    `json:"victimName"`
	SuspectName string    `json:"suspectName"`
	OfficerName string    `json:"officerName"`
	CaseNumber  string    `json:"caseNumber"`
}

// UnmarshalJSON принимает также ключ occurredAt вместо date
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	aux := struct {
		*plain
		OccurredAtAlias *Timestamp `json:"occurredAt"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.OccurredAtAlias != nil && r.OccurredAt.IsZero() {
		r.OccurredAt = *aux.OccurredAtAlias
	}
	return nil
}

// Mappable сообщает, есть ли у записи обе координаты
func (r Record) Mappable() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// SearchText возвращает текстовые поля, по которым работает поиск
func (r Record) SearchText() []string {
	return []string{
		r.Title,
		r.Description,
		r.Location,
		r.VictimName,
		r.SuspectName,
		r.OfficerName,
		r.CaseNumber,
	}
}

// Clone возвращает копию записи, не разделяющую указатели на координаты
func (r Record) Clone() Record {
	c := r
	if r.Latitude != nil {
		lat := *r.Latitude
		c.Latitude = &lat
	}
	if r.Longitude != nil {
		lon := *r.Longitude
		c.Longitude = &lon
	}
	return c
}

// RecordFields - набор полей для создания записи
type RecordFields struct {
	Title       string
	Type        string
	OccurredAt  Timestamp
	Status      string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Description string
	VictimName  string
	SuspectName string
	OfficerName string
	CaseNumber  string
}

// ToRecord собирает запись с заданным идентификатором
func (f RecordFields) ToRecord(id RecordID) Record {
	return Record{
		ID:          id,
		Title:       f.Title,
		Type:        f.Type,
		OccurredAt:  f.OccurredAt,
		Status:      f.Status,
		Location:    f.Location,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		Description: f.Description,
		VictimName:  f.VictimName,
		SuspectName: f.SuspectName,
		OfficerName: f.OfficerName,
		CaseNumber:  f.CaseNumber,
	}.Clone()
}
