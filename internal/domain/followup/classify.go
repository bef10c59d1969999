package followup

import (
	"time"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

const (
	DefaultDays = 45
	MinDays     = 1
	MaxDays     = 365

	DefaultMessage = "Oi {cliente}! Que tal agendar um novo cortinho para {pronome}? Já faz um tempinho! 💇‍♀️✨"
)

type Urgency string

const (
	UrgencyVeryOverdue Urgency = "very_overdue" // acima do limite + 30
	UrgencyOverdue     Urgency = "overdue"      // acima do limite + 14
	UrgencyDue         Urgency = "due"          // atingiu o limite
	UrgencyUpcoming    Urgency = "upcoming"     // a 7 dias do limite
	UrgencyRecent      Urgency = "recent"
	UrgencyReminded    Urgency = "reminded" // lembrete já enviado hoje
)

// Summary é a visão derivada de retorno de um cliente.
type Summary struct {
	Client models.Client `json:"client"`

	HasHistory      bool   `json:"has_history"`
	LastServiceDate string `json:"last_service_date,omitempty"`
	DaysSince       int    `json:"days_since_service"`

	IsOverdue  bool    `json:"is_overdue"`
	IsUpcoming bool    `json:"is_upcoming"`
	Urgency    Urgency `json:"urgency"`
}

// DaysBetween conta dias inteiros entre duas datas, ambas normalizadas
// para a meia-noite (a hora do serviço não entra na conta).
func DaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())
	return int(to.Sub(from).Hours() / 24)
}

// UrgencyFor aplica a escada de urgência sobre os dias desde o serviço.
func UrgencyFor(daysSince, followupDays int) Urgency {
	switch {
	case daysSince > followupDays+30:
		return UrgencyVeryOverdue
	case daysSince > followupDays+14:
		return UrgencyOverdue
	case daysSince >= followupDays:
		return UrgencyDue
	case daysSince >= followupDays-7:
		return UrgencyUpcoming
	default:
		return UrgencyRecent
	}
}

// Classify calcula a visão de retorno de cada cliente a partir da lista
// completa de agendamentos. Apenas agendamentos concluídos contam;
// cliente sem histórico nunca aparece como atrasado ou próximo.
func Classify(
	clients []models.Client,
	appointments []models.Appointment,
	followupDays int,
	now time.Time,
) []Summary {

	if followupDays < MinDays || followupDays > MaxDays {
		followupDays = DefaultDays
	}

	upcomingFloor := followupDays - 7
	if upcomingFloor < 0 {
		upcomingFloor = 0
	}

	out := make([]Summary, 0, len(clients))
	for i := range clients {
		c := clients[i]

		last, ok := LastCompletedService(&c, appointments, now.Location())
		if !ok {
			out = append(out, Summary{Client: c, HasHistory: false})
			continue
		}

		days := DaysBetween(last, now)

		out = append(out, Summary{
			Client:          c,
			HasHistory:      true,
			LastServiceDate: last.Format("2006-01-02"),
			DaysSince:       days,
			IsOverdue:       days >= followupDays,
			IsUpcoming:      days >= upcomingFloor && days < followupDays,
			Urgency:         UrgencyFor(days, followupDays),
		})
	}

	return out
}
