package repository

import (
	"regexp"
	"testing"

	"lmsmodules/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFirstOrCreate_ExistingUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepositoryWithDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(4, "admin", "admin@lms.local"))

	user := &models.User{Username: "admin"}
	require.NoError(t, repo.FirstOrCreate(nil, user))

	assert.Equal(t, uint(4), user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "admin@lms.local", *user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFirstOrCreate_InsertsMissingUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepositoryWithDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	user := &models.User{Username: "editor"}
	require.NoError(t, repo.FirstOrCreate(nil, user))

	assert.Equal(t, uint(9), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
