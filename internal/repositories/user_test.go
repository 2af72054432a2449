package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

func newUser(username, email string) *models.UserDB {
	return &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash-" + username,
		CreatedAt:    now(),
	}
}

func testUserRepositories(t *testing.T, db *sqlx.DB) {
	ctx := context.Background()
	readRepo := NewUserReadRepository(db, nil)
	writeRepo := NewUserWriteRepository(db, nil)

	charlie := newUser("charlie", "charlie@example.com")
	dave := newUser("dave", "dave@example.com")
	require.NoError(t, writeRepo.Save(ctx, charlie))
	require.NoError(t, writeRepo.Save(ctx, dave))

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "charlie", "nobody@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, charlie.UserID, user.UserID)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "nobody", "dave@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, charlie.Username, user.Username)
		assert.Equal(t, charlie.PasswordHash, user.PasswordHash)
		assert.True(t, charlie.CreatedAt.Equal(user.CreatedAt))

		user, err = readRepo.GetByEmail(ctx, "missing@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		err := writeRepo.Save(ctx, newUser("charlie", "other@example.com"))
		assert.ErrorIs(t, err, ErrDuplicateUser)
		err = writeRepo.Save(ctx, newUser("other", "dave@example.com"))
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestUserRepositories_SQLite(t *testing.T) {
	testUserRepositories(t, setupSQLite(t))
}

func TestUserRepositories_Postgres(t *testing.T) {
	testUserRepositories(t, setupPostgres(t))
}

func TestUserReadRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice@example.com").
		WillReturnError(errors.New("connection reset"))

	repo := NewUserReadRepository(sqlx.NewDb(db, "sqlmock"), nil)
	user, err := repo.GetByEmail(context.Background(), "alice@example.com")

	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UsesRequestTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	user := newUser("alice", "alice@example.com")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	repo := NewUserWriteRepository(sqlxDB, func(context.Context) *sqlx.Tx { return tx })
	require.NoError(t, repo.Save(context.Background(), user))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Errors(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "unique violation", execErr: &pgconn.PgError{Code: "23505"}, wantErr: ErrDuplicateUser},
		{name: "other constraint", execErr: &pgconn.PgError{Code: "23502"}},
		{name: "connection error", execErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.execErr)

			repo := NewUserWriteRepository(sqlx.NewDb(db, "sqlmock"), nil)
			err = repo.Save(context.Background(), newUser("alice", "alice@example.com"))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.ErrorIs(t, err, tt.execErr)
				assert.NotErrorIs(t, err, ErrDuplicateUser)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
