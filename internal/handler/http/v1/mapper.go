package v1

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_file_system/internal/models"
)

// DTOToRecordFields преобразует DTO создания в поля записи
func DTOToRecordFields(dto CreateRecordRequest) models.RecordFields {
	return models.RecordFields{
		Title:       dto.Title,
		Type:        dto.Type,
		OccurredAt:  models.ParseTimestamp(dto.Date),
		Status:      dto.Status,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Description: dto.Description,
		VictimName:  dto.VictimName,
		SuspectName: dto.SuspectName,
		OfficerName: dto.OfficerName,
		CaseNumber:  dto.CaseNumber,
	}
}

// validatePatch проверяет только то, что можно проверить однозначно:
// дату и диапазон координат. Пустые строки допустимы и перезаписывают поле.
func validatePatch(validate *validator.Validate, patch UpdateRecordRequest) error {
	if patch.Empty() {
		return errors.New("patch has no fields")
	}
	if patch.OccurredAt.Set && !patch.OccurredAt.Value.Valid() {
		return errors.New("date must be a valid date-time")
	}
	if patch.Latitude.Set && patch.Latitude.Value != nil {
		if err := validate.Var(*patch.Latitude.Value, "latitude"); err != nil {
			return errors.New("latitude is out of range")
		}
	}
	if patch.Longitude.Set && patch.Longitude.Value != nil {
		if err := validate.Var(*patch.Longitude.Value, "longitude"); err != nil {
			return errors.New("longitude is out of range")
		}
	}
	return nil
}

// DTOToCriteria преобразует DTO фильтра в условия; даты уже проверены валидатором
func DTOToCriteria(dto FilterRequest) models.FilterCriteria {
	return models.FilterCriteria{
		Search:    dto.Search,
		Type:      dto.Type,
		Status:    dto.Status,
		StartDate: parseDay(dto.StartDate),
		EndDate:   parseDay(dto.EndDate),
	}
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &day
}
