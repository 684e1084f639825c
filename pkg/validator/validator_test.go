package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidentDate(t *testing.T) {
	validate := New()

	assert.NoError(t, validate.Var("2024-01-15T14:30", "incident_date"))
	assert.NoError(t, validate.Var("2024-01-15T14:30:00", "incident_date"))
	assert.NoError(t, validate.Var("2024-01-15", "incident_date"))
	assert.Error(t, validate.Var("15/01/2024", "incident_date"))
	assert.Error(t, validate.Var("", "incident_date"))
}

func TestBuiltinCoordinates(t *testing.T) {
	validate := New()

	assert.NoError(t, validate.Var(40.7128, "latitude"))
	assert.Error(t, validate.Var(91.0, "latitude"))
	assert.NoError(t, validate.Var(-74.006, "longitude"))
	assert.Error(t, validate.Var(-181.0, "longitude"))
}
