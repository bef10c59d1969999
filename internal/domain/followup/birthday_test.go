package followup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

func TestIsBirthday(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsBirthday("2019-08-28", now), "o ano não entra na comparação")
	assert.False(t, IsBirthday("2019-08-27", now))
	assert.False(t, IsBirthday("2019-09-28", now))
	assert.False(t, IsBirthday("não é data", now))
	assert.False(t, IsBirthday("", now))
}

func TestBirthdayClients(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	clients := []models.Client{
		{ID: 1, ChildName: "Ana", Birthdate: "2020-08-28"},
		{ID: 2, ChildName: "Bruno", Birthdate: "2021-02-10"},
		{ID: 3, ChildName: "Lia", Birthdate: "2018-08-28"},
	}

	out := BirthdayClients(clients, now)
	assert.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
}
