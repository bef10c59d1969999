package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

func value(v float64) *float64 { return &v }

func TestMonthly_CombinesRecordsAndAppointments(t *testing.T) {
	records := []models.FinancialRecord{
		{Date: "2026-08-05", Amount: 50},
		{Date: "2026-07-30", Amount: 999}, // fora do mês
	}
	appointments := []models.Appointment{
		{Date: "2026-08-10", Status: "completed", ServiceValue: value(120)},
		{Date: "2026-08-11", Status: "pending", ServiceValue: value(300)},
		{Date: "2026-09-01", Status: "completed", ServiceValue: value(300)},
	}

	s := Monthly(records, appointments, 2026, time.August, "")

	assert.Equal(t, 170.0, s.TotalRevenue)
	assert.Equal(t, 50.0, s.RecordsTotal)
	assert.Equal(t, 120.0, s.AppointmentsTotal)
	assert.Equal(t, 1, s.ValuedServices)
	assert.Equal(t, 120.0, s.AverageTicket, "lançamentos manuais ficam fora do denominador")
}

func TestMonthly_NoValuedServices(t *testing.T) {
	records := []models.FinancialRecord{{Date: "2026-08-05", Amount: 50}}
	appointments := []models.Appointment{
		{Date: "2026-08-10", Status: "completed"}, // concluído sem valor
	}

	s := Monthly(records, appointments, 2026, time.August, "")

	assert.Equal(t, 50.0, s.TotalRevenue)
	assert.Equal(t, 1, s.CompletedServices)
	assert.Equal(t, 0, s.ValuedServices)
	assert.Equal(t, 0.0, s.AverageTicket, "sem serviços com valor o ticket médio é zero")
}

func TestMonthly_LocationFilter(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2026-08-10", Status: "completed", Location: "Salão", ServiceValue: value(100)},
		{Date: "2026-08-12", Status: "completed", Location: "Domicílio", ServiceValue: value(150)},
	}

	all := Monthly(nil, appointments, 2026, time.August, "")
	assert.Equal(t, 250.0, all.TotalRevenue)

	home := Monthly(nil, appointments, 2026, time.August, "Domicílio")
	assert.Equal(t, 150.0, home.TotalRevenue)
	assert.Equal(t, 150.0, home.AverageTicket)
}

func TestMonthly_EmptyPeriod(t *testing.T) {
	s := Monthly(nil, nil, 2026, time.January, "")
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AverageTicket)
}
