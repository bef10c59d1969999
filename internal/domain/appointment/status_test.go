package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

func value(v float64) *float64 { return &v }

func TestComplete_WithStoredValue(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: "confirmed", ServiceValue: value(80)}

	err := Complete(ap, nil, now)
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, 80.0, *ap.ServiceValue)
}

func TestComplete_RequiresValueWhenMissing(t *testing.T) {
	ap := &models.Appointment{Status: "pending"}

	err := Complete(ap, nil, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_service_value"))
	assert.Equal(t, "pending", ap.Status, "agendamento não muda quando a regra barra")

	err = Complete(ap, value(0), time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_service_value"))

	err = Complete(ap, value(120), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.Equal(t, 120.0, *ap.ServiceValue)
}

func TestSetStatus_FlatTransitions(t *testing.T) {
	now := time.Now()

	// Qualquer status alcança qualquer outro por ação explícita
	ap := &models.Appointment{Status: "cancelled"}
	require.NoError(t, SetStatus(ap, StatusPending, now))
	assert.Equal(t, "pending", ap.Status)

	require.NoError(t, SetStatus(ap, StatusMissed, now))
	assert.Equal(t, "missed", ap.Status)

	require.NoError(t, SetStatus(ap, StatusConfirmed, now))
	assert.Equal(t, "confirmed", ap.Status)
}

func TestSetStatus_CompletedGoesThroughValueRule(t *testing.T) {
	ap := &models.Appointment{Status: "confirmed"}

	err := SetStatus(ap, StatusCompleted, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_service_value"))

	ap.ServiceValue = value(50)
	require.NoError(t, SetStatus(ap, StatusCompleted, time.Now()))
	assert.Equal(t, "completed", ap.Status)
}

func TestSetStatus_ClearsStaleTimestamps(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: "confirmed", ServiceValue: value(90)}

	require.NoError(t, SetStatus(ap, StatusCompleted, now))
	require.NotNil(t, ap.CompletedAt)

	// Voltou para pendente: o carimbo de conclusão não pode sobrar
	require.NoError(t, SetStatus(ap, StatusPending, now))
	assert.Nil(t, ap.CompletedAt)

	require.NoError(t, SetStatus(ap, StatusCancelled, now))
	require.NotNil(t, ap.CancelledAt)
	assert.Nil(t, ap.CompletedAt)

	require.NoError(t, SetStatus(ap, StatusCompleted, now))
	require.NotNil(t, ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	ap := &models.Appointment{Status: "pending"}
	err := SetStatus(ap, Status("agendado"), time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
