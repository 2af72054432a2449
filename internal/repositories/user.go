package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

// ErrDuplicateUser is returned when the username or email is already taken.
var ErrDuplicateUser = errors.New("duplicate username or email")

// pgUniqueViolation is the SQLSTATE of a unique constraint violation.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsernameOrEmail returns the first user matching either value, or nil when none does.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at
		FROM users
		WHERE username = ? OR email = ?
		LIMIT 1
	`
	return r.get(ctx, query, username, email)
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at
		FROM users
		WHERE email = ?
	`
	return r.get(ctx, query, email)
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), args...)

	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user row.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	ex := executor(ctx, r.db, r.txGetter)

	_, err := ex.ExecContext(ctx, ex.Rebind(query),
		user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)

	// the hash is left out of the log on purpose
	logQuery(query, []any{user.UserID, user.Username, user.Email}, nil, err)

	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
