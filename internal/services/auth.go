package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists   = errors.New("username or email already exists")
	ErrInvalidRegistration = errors.New("username, email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// SessionWriter stores and revokes server-side sessions.
type SessionWriter interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID, sessionID uuid.UUID) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionWriter
	tokens   TokenGenerator
	events   EventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	sessions SessionWriter,
	tokens TokenGenerator,
	events EventWriter,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
		events:   events,
	}
}

// Register creates a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return uuid.Nil, ErrInvalidRegistration
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username, "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			logger.Log.Warnw("user already exists", "username", username, "email", email)
			return uuid.Nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, svc.events, models.Event{
		Type:   models.EventUserRegistered,
		Key:    user.UserID.String(),
		UserID: user.UserID.String(),
	})

	return user.UserID, nil
}

// Authenticate checks the password of the user registered with email.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.UserDB, error) {
	email = strings.TrimSpace(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordDigest(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// passwordDigest maps a password of any length to the fixed-size input bcrypt
// hashes, which only reads the first 72 bytes.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// Login authenticates a user, opens a server-side session and returns its token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	sessionID := uuid.New()
	if err := svc.sessions.Save(ctx, sessionID, user.UserID); err != nil {
		logger.Log.Errorw("failed to save session", "userID", user.UserID, "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes a session.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "sessionID", sessionID, "err", err)
		return err
	}
	return nil
}
