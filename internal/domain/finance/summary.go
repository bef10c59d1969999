package finance

import (
	"fmt"
	"time"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

// Summary agrega a receita de um mês: lançamentos manuais mais valores de
// serviço de agendamentos concluídos.
type Summary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	RecordsTotal      float64 `json:"records_total"`
	AppointmentsTotal float64 `json:"appointments_total"`
	TotalRevenue      float64 `json:"total_revenue"`

	CompletedServices int     `json:"completed_services"`
	ValuedServices    int     `json:"valued_services"`
	AverageTicket     float64 `json:"average_ticket"`
}

// monthPrefix produz o prefixo "2006-01" usado nas comparações de data.
func monthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

func inMonth(date string, prefix string) bool {
	return len(date) >= len(prefix) && date[:len(prefix)] == prefix
}

// Monthly calcula o resumo do período. location vazio considera todos os
// locais; o ticket médio divide apenas a receita de agendamentos pelo
// número de concluídos com valor, e é zero quando não há nenhum.
func Monthly(
	records []models.FinancialRecord,
	appointments []models.Appointment,
	year int,
	month time.Month,
	location string,
) Summary {

	prefix := monthPrefix(year, month)
	s := Summary{Year: year, Month: int(month)}

	for i := range records {
		if inMonth(records[i].Date, prefix) {
			s.RecordsTotal += records[i].Amount
		}
	}

	for i := range appointments {
		ap := &appointments[i]
		if ap.Status != "completed" {
			continue
		}
		if !inMonth(ap.Date, prefix) {
			continue
		}
		if location != "" && ap.Location != location {
			continue
		}

		s.CompletedServices++
		if ap.ServiceValue != nil && *ap.ServiceValue > 0 {
			s.ValuedServices++
			s.AppointmentsTotal += *ap.ServiceValue
		}
	}

	s.TotalRevenue = s.RecordsTotal + s.AppointmentsTotal

	if s.ValuedServices > 0 {
		s.AverageTicket = s.AppointmentsTotal / float64(s.ValuedServices)
	}

	return s
}
