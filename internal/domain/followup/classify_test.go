package followup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

var classifyNow = time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

func completedOn(label, date string) models.Appointment {
	return models.Appointment{ClientName: label, Date: date, Status: "completed"}
}

func daysAgo(n int) string {
	return classifyNow.AddDate(0, 0, -n).Format("2006-01-02")
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		daysAgo    int
		isOverdue  bool
		isUpcoming bool
		urgency    Urgency
	}{
		{"recente", 10, false, false, UrgencyRecent},
		{"37 dias ainda é recente", 37, false, false, UrgencyRecent},
		{"38 dias entra na janela", 38, false, true, UrgencyUpcoming},
		{"44 dias ainda na janela", 44, false, true, UrgencyUpcoming},
		{"45 dias é atrasado, limite inclusivo", 45, true, false, UrgencyDue},
		{"60 dias", 60, true, false, UrgencyOverdue},
		{"80 dias é muito atrasado", 80, true, false, UrgencyVeryOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := []models.Client{{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"}}
			apps := []models.Appointment{completedOn("Ana (Maria)", daysAgo(tt.daysAgo))}

			out := Classify(clients, apps, 45, classifyNow)
			require.Len(t, out, 1)

			s := out[0]
			assert.True(t, s.HasHistory)
			assert.Equal(t, tt.daysAgo, s.DaysSince)
			assert.Equal(t, tt.isOverdue, s.IsOverdue)
			assert.Equal(t, tt.isUpcoming, s.IsUpcoming)
			assert.Equal(t, tt.urgency, s.Urgency)
		})
	}
}

func TestClassify_NoHistoryNeverOverdue(t *testing.T) {
	clients := []models.Client{{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"}}

	// Só há agendamentos não concluídos
	apps := []models.Appointment{
		{ClientName: "Ana (Maria)", Date: daysAgo(100), Status: "pending"},
		{ClientName: "Ana (Maria)", Date: daysAgo(90), Status: "missed"},
	}

	out := Classify(clients, apps, 45, classifyNow)
	require.Len(t, out, 1)

	s := out[0]
	assert.False(t, s.HasHistory)
	assert.False(t, s.IsOverdue)
	assert.False(t, s.IsUpcoming)
	assert.Empty(t, s.LastServiceDate)
}

func TestClassify_SmallThresholdFloorsAtZero(t *testing.T) {
	clients := []models.Client{{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"}}
	apps := []models.Appointment{completedOn("Ana (Maria)", daysAgo(0))}

	// limite 3: janela de "em breve" começaria em -4, mas o piso é zero
	out := Classify(clients, apps, 3, classifyNow)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsUpcoming)
	assert.False(t, out[0].IsOverdue)
}

func TestClassify_InvalidThresholdFallsBackToDefault(t *testing.T) {
	clients := []models.Client{{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"}}
	apps := []models.Appointment{completedOn("Ana (Maria)", daysAgo(46))}

	out := Classify(clients, apps, 0, classifyNow)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsOverdue, "limite inválido usa o padrão de 45 dias")

	out = Classify(clients, apps, 1000, classifyNow)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsOverdue)
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 8, 27, 23, 50, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(from, to))
}
