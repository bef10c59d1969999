package handlers

import (
	"time"

	"github.com/tiadeasalon/salon-manager/internal/timezone"
)

// --------------------------------------------------
// Datas e horários dos formulários
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func isValidTime(timeStr string) bool {
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// isHalfHourSlot valida a grade de meia em meia hora usada na tela de
// agendamento (a edição aceita horário livre).
func isHalfHourSlot(timeStr string) bool {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return false
	}
	return t.Minute()%30 == 0
}
