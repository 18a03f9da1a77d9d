package user

import (
	"context"
	"testing"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User // keyed by email
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, user := range f.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Property Custodian",
		Email:    "custodian@example.edu",
		Password: "correct-horse-battery",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates an operator account", func(t *testing.T) {
		repo := newFakeUserRepository()
		service := NewUserService(repo, jwt.NewJWTService())

		res, err := service.Register(context.Background(), registerRequest())
		require.NoError(t, err)

		assert.Equal(t, domain.RoleOperator, res.Role)
		assert.Equal(t, "custodian@example.edu", res.Email)

		stored := repo.users["custodian@example.edu"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "correct-horse-battery", stored.Password)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		service := NewUserService(repo, jwt.NewJWTService())

		_, err := service.Register(context.Background(), registerRequest())
		require.NoError(t, err)

		_, err = service.Register(context.Background(), registerRequest())
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	t.Run("issues a token carrying the account identity", func(t *testing.T) {
		res, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "custodian@example.edu",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		assert.Equal(t, domain.RoleOperator, res.Role)

		userID, role, err := jwtService.GetUserIDByToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, repo.users["custodian@example.edu"].ID.String(), userID)
		assert.Equal(t, domain.RoleOperator, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "custodian@example.edu",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.LoginRequest{
			Email:    "nobody@example.edu",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	created, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := service.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, res.Email)

	_, err = service.Me(context.Background(), "5d8f8a2e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
