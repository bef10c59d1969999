package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDelete_UnlinksAppointments(t *testing.T) {
	gdb, mock := newMockDB(t)

	// Primeiro o desvínculo dos agendamentos, depois a exclusão. Com o
	// client_id limpo, um cliente recadastrado com o mesmo nome volta a
	// casar pelo rótulo textual.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "clients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewClientGormRepository(gdb).Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
