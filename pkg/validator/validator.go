package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_file_system/internal/models"
)

// New создает валидатор с дополнительными правилами приложения
func New() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("incident_date", validateIncidentDate)
	return validate
}

// validateIncidentDate проверяет, что строку можно разобрать как дату происшествия
func validateIncidentDate(fl validator.FieldLevel) bool {
	return models.ParseTimestamp(fl.Field().String()).Valid()
}
