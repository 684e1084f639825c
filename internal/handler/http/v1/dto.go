package v1

import (
	"encoding/json"

	"github.com/shenikar/crime_file_system/internal/models"
)

// CreateRecordRequest DTO для создания записи
// @Description DTO для создания записи о происшествии
type CreateRecordRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Type        string   `json:"type" validate:"required,max=100"`
	Date        string   `json:"date" validate:"required,incident_date"`
	Status      string   `json:"status" validate:"required,max=100"`
	Location    string   `json:"location" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description string   `json:"description,omitempty"`
	VictimName  string   `json:"victimName,omitempty"`
	SuspectName string   `json:"suspectName,omitempty"`
	OfficerName string   `json:"officerName,omitempty"`
	CaseNumber  string   `json:"caseNumber,omitempty"`
}

// UnmarshalJSON принимает дату и под ключом occurredAt, если date не передан
func (r *CreateRecordRequest) UnmarshalJSON(data []byte) error {
	type plain CreateRecordRequest
	aux := struct {
		*plain
		OccurredAt *string `json:"occurredAt"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.Date == "" && aux.OccurredAt != nil {
		r.Date = *aux.OccurredAt
	}
	return nil
}

// UpdateRecordRequest DTO для частичного обновления: меняются только переданные поля
// @Description DTO для частичного обновления записи
type UpdateRecordRequest = models.RecordPatch

// FilterRequest DTO для условий фильтрации
// @Description DTO для условий поиска и фильтрации
type FilterRequest struct {
	Search    string `json:"search"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// ImportResponse DTO для ответа на импорт
// @Description DTO для ответа на импорт
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
