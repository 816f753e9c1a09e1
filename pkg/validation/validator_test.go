package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/internal/dto"
	apperrors "asset-system/pkg/errors"
)

func TestValidateSupportTicketCategory(t *testing.T) {
	v := New()

	valid := dto.CreateSupportTicketDTO{Title: "Printer jam", Category: "Hardware"}
	require.NoError(t, v.Validate(&valid))

	invalid := dto.CreateSupportTicketDTO{Title: "Printer jam", Category: "Jardinagem"}
	err := v.Validate(&invalid)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
}

func TestValidateEnumFields(t *testing.T) {
	v := New()

	ok := dto.CreateEquipmentDTO{Name: "PC", Type: "desktop", Status: "ativo"}
	require.NoError(t, v.Validate(&ok))

	badType := dto.CreateEquipmentDTO{Name: "PC", Type: "mainframe"}
	assert.Error(t, v.Validate(&badType))

	badStatus := dto.CreateMaintenanceDTO{Title: "x", Type: "corretiva", Status: "quebrado"}
	assert.Error(t, v.Validate(&badStatus))
}

func TestValidateRequiredFields(t *testing.T) {
	v := New()

	missingTitle := dto.CreateSupportTicketDTO{Category: "Hardware"}
	assert.Error(t, v.Validate(&missingTitle))

	missingEmail := dto.SignUpDTO{Password: "secret123", FullName: "Fulano"}
	assert.Error(t, v.Validate(&missingEmail))
}
