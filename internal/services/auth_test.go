package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "duplicate username or email",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "duplicate detected on insert",
			username:  "dan",
			email:     "dan@example.com",
			password:  "pass123",
			writerErr: repositories.ErrDuplicateUser,
			wantErr:   services.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockSessions := services.NewMockSessionWriter(ctrl)
			mockTokens := services.NewMockTokenGenerator(ctrl)
			mockEvents := services.NewMockEventWriter(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens, mockEvents)

			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), tt.username, tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.UserDB) error {
						assert.Equal(t, tt.username, user.Username)
						assert.Equal(t, tt.email, user.Email)
						assert.NotEqual(t, tt.password, user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), services.PasswordDigest(tt.password)))
						return tt.writerErr
					})
			}
			if tt.wantErr == nil {
				mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			id, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockSessionWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
		nil,
	)

	cases := [][3]string{
		{"", "a@example.com", "pass"},
		{"alice", "   ", "pass"},
		{"alice", "a@example.com", ""},
	}
	for _, c := range cases {
		_, err := svc.Register(context.Background(), c[0], c[1], c[2])
		assert.ErrorIs(t, err, services.ErrInvalidRegistration)
	}
}

func TestAuthService_Register_WithoutEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockSessionWriter(ctrl), services.NewMockTokenGenerator(ctrl), nil)

	mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(nil, nil)
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	id, err := svc.Register(context.Background(), " alice ", "alice@example.com", "pass")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestAuthService_LongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockSessionWriter(ctrl), services.NewMockTokenGenerator(ctrl), nil)

	password := strings.Repeat("p", 80)

	var saved *models.UserDB
	mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), "long", "long@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserDB) error {
			saved = user
			return nil
		})

	_, err := svc.Register(context.Background(), "long", "long@example.com", password)
	require.NoError(t, err)
	require.NotNil(t, saved)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "long@example.com").Return(saved, nil).Times(2)

	user, err := svc.Authenticate(context.Background(), "long@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, user.UserID)

	// only the last byte differs, beyond bcrypt's 72-byte window
	_, err = svc.Authenticate(context.Background(), "long@example.com", strings.Repeat("p", 79)+"q")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword(services.PasswordDigest(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashed(t, "correct"),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{name: "correct password", email: user.Email, password: "correct", user: user},
		{name: "wrong password", email: user.Email, password: "wrong", user: user, wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "correct", wantErr: services.ErrInvalidCredentials},
		{name: "reader error", email: user.Email, password: "correct", readerErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockSessionWriter(ctrl), services.NewMockTokenGenerator(ctrl), nil)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)

			got, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.UserID, got.UserID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: hashed(t, "secret"),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockSessions := services.NewMockSessionWriter(ctrl)
		mockTokens := services.NewMockTokenGenerator(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockSessions, mockTokens, nil)

		var sessionID uuid.UUID
		mockReader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockSessions.EXPECT().
			Save(gomock.Any(), gomock.Any(), user.UserID).
			DoAndReturn(func(_ context.Context, id, _ uuid.UUID) error {
				sessionID = id
				return nil
			})
		mockTokens.EXPECT().
			Generate(gomock.Any(), user.UserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, id uuid.UUID) (string, error) {
				assert.Equal(t, sessionID, id)
				return "token", nil
			})

		token, err := svc.Login(context.Background(), user.Email, "secret")
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockSessionWriter(ctrl), services.NewMockTokenGenerator(ctrl), nil)

		mockReader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		token, err := svc.Login(context.Background(), user.Email, "nope")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("session error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockSessions := services.NewMockSessionWriter(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockSessions, services.NewMockTokenGenerator(ctrl), nil)

		mockReader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockSessions.EXPECT().Save(gomock.Any(), gomock.Any(), user.UserID).Return(errors.New("redis down"))

		_, err := svc.Login(context.Background(), user.Email, "secret")
		assert.EqualError(t, err, "redis down")
	})

	t.Run("token error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockSessions := services.NewMockSessionWriter(ctrl)
		mockTokens := services.NewMockTokenGenerator(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockSessions, mockTokens, nil)

		mockReader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockSessions.EXPECT().Save(gomock.Any(), gomock.Any(), user.UserID).Return(nil)
		mockTokens.EXPECT().Generate(gomock.Any(), user.UserID, gomock.Any()).Return("", errors.New("sign error"))

		_, err := svc.Login(context.Background(), user.Email, "secret")
		assert.EqualError(t, err, "sign error")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionWriter(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockSessions, services.NewMockTokenGenerator(ctrl), nil)

	sessionID := uuid.New()
	mockSessions.EXPECT().Delete(gomock.Any(), sessionID).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), sessionID))

	mockSessions.EXPECT().Delete(gomock.Any(), sessionID).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), sessionID), "redis down")
}
