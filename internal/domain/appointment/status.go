package appointment

import "github.com/tiadeasalon/salon-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================
//
// Os status são rótulos planos: qualquer um pode ser definido por ação
// explícita da administradora, não há grafo de transição. A única regra
// guardada é a de conclusão, que exige valor de serviço.

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusMissed,
	StatusCancelled,
}

func IsValidStatus(s Status) bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// CanComplete valida a regra de conclusão: precisa existir um valor de
// serviço positivo, já gravado ou informado na confirmação.
func CanComplete(value *float64) error {
	if value == nil || *value <= 0 {
		return httperr.ErrBusiness("missing_service_value")
	}
	return nil
}
