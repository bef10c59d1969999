package followup

import (
	"time"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

// IsBirthday compara dia e mês do nascimento com a data de referência,
// ignorando o ano.
func IsBirthday(birthdate string, now time.Time) bool {
	b, err := time.ParseInLocation("2006-01-02", birthdate, now.Location())
	if err != nil {
		return false
	}
	return b.Day() == now.Day() && b.Month() == now.Month()
}

// BirthdayClients filtra os aniversariantes do dia.
func BirthdayClients(clients []models.Client, now time.Time) []models.Client {
	var out []models.Client
	for i := range clients {
		if IsBirthday(clients[i].Birthdate, now) {
			out = append(out, clients[i])
		}
	}
	return out
}
