package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/service"
)

const testSecret = "test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()
	token, err := service.IssueAccessToken(testSecret, userID, model.RoleAccountant, "ru", time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := service.ParseAccessToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, model.RoleAccountant, claims.Role)
	assert.Equal(t, "ru", claims.Locale)
}

func TestAccessToken_Rejected(t *testing.T) {
	t.Parallel()

	valid, err := service.IssueAccessToken(testSecret, uuid.NewString(), model.RoleViewer, "", time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := service.IssueAccessToken(testSecret, uuid.NewString(), model.RoleViewer, "", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	noSubject, err := service.IssueAccessToken(testSecret, "", model.RoleViewer, "", time.Hour, time.Now())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, service.AccessClaims{
		Role:             model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other-secret", valid},
		{"expired", testSecret, expired},
		{"missing subject", testSecret, noSubject},
		{"unsigned", testSecret, none},
		{"garbage", testSecret, "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := service.ParseAccessToken(tt.secret, tt.token)
			require.Error(t, err)
		})
	}
}

func newUserService(t *testing.T) (service.UserService, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, passthroughTx(ctrl), discardLogger(), service.AuthOptions{
		Secret:          testSecret,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	return svc, repo
}

func hashedUser(t *testing.T, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &model.User{
		ID:       uuid.New(),
		Username: "accountant",
		Email:    "acc@example.com",
		Password: string(hash),
		Role:     model.RoleAccountant,
		Locale:   model.LocaleRussian,
	}
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	t.Run("issues a token pair", func(t *testing.T) {
		t.Parallel()

		svc, repo := newUserService(t)
		user := hashedUser(t, "s3cret-pass")

		repo.EXPECT().GetByEmail(gomock.Any(), "acc@example.com").Return(user, nil)
		repo.EXPECT().
			SaveRefreshToken(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *model.RefreshToken) error {
				assert.Equal(t, user.ID, token.UserID)
				assert.NotEmpty(t, token.Token)
				return nil
			})

		res, err := svc.Login(context.Background(), service.LoginUserRequest{Email: " ACC@example.com ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.RefreshToken)
		assert.EqualValues(t, 900, res.ExpiresIn)

		claims, err := service.ParseAccessToken(testSecret, res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, model.LocaleRussian, claims.Locale)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc, repo := newUserService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "acc@example.com").Return(hashedUser(t, "s3cret-pass"), nil)

		_, err := svc.Login(context.Background(), service.LoginUserRequest{Email: "acc@example.com", Password: "guess"})
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		svc, repo := newUserService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), service.LoginUserRequest{Email: "nobody@example.com", Password: "x"})
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestUserService_RefreshRotatesToken(t *testing.T) {
	t.Parallel()

	svc, repo := newUserService(t)
	user := hashedUser(t, "pw")

	gomock.InOrder(
		repo.EXPECT().FindRefreshToken(gomock.Any(), "old").Return(&model.RefreshToken{UserID: user.ID, Token: "old"}, nil),
		repo.EXPECT().DeleteRefreshToken(gomock.Any(), "old").Return(nil),
		repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil),
		repo.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil),
	)

	res, err := svc.Refresh(context.Background(), "old")
	require.NoError(t, err)
	assert.NotEqual(t, "old", res.RefreshToken)
	assert.Equal(t, user.Email, res.User.Email)
}

func TestUserService_RefreshUnknownToken(t *testing.T) {
	t.Parallel()

	svc, repo := newUserService(t)
	repo.EXPECT().FindRefreshToken(gomock.Any(), "stale").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Refresh(context.Background(), "stale")
	require.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = svc.Refresh(context.Background(), "")
	require.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestUserService_EnsureBootstrapAdmin(t *testing.T) {
	t.Parallel()

	t.Run("skipped without credentials", func(t *testing.T) {
		t.Parallel()

		svc, _ := newUserService(t)
		require.NoError(t, svc.EnsureBootstrapAdmin(context.Background(), "admin", "", ""))
	})

	t.Run("skipped when an admin exists", func(t *testing.T) {
		t.Parallel()

		svc, repo := newUserService(t)
		repo.EXPECT().CountByRole(gomock.Any(), model.RoleAdmin).Return(int64(1), nil)

		require.NoError(t, svc.EnsureBootstrapAdmin(context.Background(), "admin", "admin@example.com", "changeme1"))
	})

	t.Run("creates the first admin", func(t *testing.T) {
		t.Parallel()

		svc, repo := newUserService(t)
		repo.EXPECT().CountByRole(gomock.Any(), model.RoleAdmin).Return(int64(0), nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, model.RoleAdmin, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("changeme1")))
				return nil
			})

		require.NoError(t, svc.EnsureBootstrapAdmin(context.Background(), "admin", "admin@example.com", "changeme1"))
	})
}
