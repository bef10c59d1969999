package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tiadeasalon/salon-manager/internal/domain/followup"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestConfigLoad_FallsBackToDefaultsWhenDBFails(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "config_entries"`).
		WillReturnError(errors.New("connection refused"))

	cfg := NewConfigGormRepository(gdb).Load(context.Background())

	require.NotNil(t, cfg, "banco fora do ar não pode derrubar a configuração")
	assert.Equal(t, DefaultStylistName, cfg.StylistName)
	assert.Equal(t, DefaultWhatsAppNumber, cfg.WhatsAppNumber, "o link de agendamento depende deste número")
	assert.Equal(t, []int{1, 2}, cfg.HomeServiceDays)
	assert.Equal(t, followup.DefaultDays, cfg.FollowupDays)
	assert.Empty(t, cfg.AdminPasswordHash, "sem hash ninguém loga com a configuração padrão")
}

func TestConfigLoad_ReadsStoredValues(t *testing.T) {
	gdb, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "key", "value"}).
		AddRow(1, KeyStylistName, "Outra Estilista").
		AddRow(2, KeyFollowupDays, "60").
		AddRow(3, KeyHomeServiceDays, "[3,4]")
	mock.ExpectQuery(`SELECT \* FROM "config_entries"`).WillReturnRows(rows)

	cfg := NewConfigGormRepository(gdb).Load(context.Background())

	assert.Equal(t, "Outra Estilista", cfg.StylistName)
	assert.Equal(t, 60, cfg.FollowupDays)
	assert.Equal(t, []int{3, 4}, cfg.HomeServiceDays)
	assert.Equal(t, DefaultWhatsAppNumber, cfg.WhatsAppNumber, "chave ausente cai no padrão")
	assert.NoError(t, mock.ExpectationsWereMet())
}
