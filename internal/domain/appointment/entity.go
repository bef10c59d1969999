package appointment

import (
	"time"

	"github.com/tiadeasalon/salon-manager/internal/httperr"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete conclui o agendamento. Se value vier preenchido, ele passa a
// ser o valor de serviço; caso contrário vale o já gravado.
func Complete(ap *models.Appointment, value *float64, now time.Time) error {
	effective := ap.ServiceValue
	if value != nil {
		effective = value
	}

	if err := CanComplete(effective); err != nil {
		return err
	}

	ap.ServiceValue = effective
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.CancelledAt = nil
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.CompletedAt = nil
}

// SetStatus aplica um status arbitrário escolhido na interface. A
// conclusão passa por Complete para não furar a regra do valor; sair de
// concluído ou cancelado limpa o carimbo correspondente.
func SetStatus(ap *models.Appointment, s Status, now time.Time) error {
	if !IsValidStatus(s) {
		return httperr.ErrBusiness("invalid_status")
	}

	switch s {
	case StatusCompleted:
		return Complete(ap, nil, now)
	case StatusCancelled:
		Cancel(ap, now)
	default:
		ap.Status = string(s)
		ap.CompletedAt = nil
		ap.CancelledAt = nil
	}
	return nil
}
