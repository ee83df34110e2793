package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	userRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/user"
)

type fakeRepo struct {
	users     map[int64]*domain.User
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.ID]; ok {
		return userRepo.ErrDuplicateID
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range f.users {
		if u.UserName == login {
			return u, nil
		}
		if u.PhoneNumber != nil && *u.PhoneNumber == login {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signupRequest() *SignupRequest {
	phone := "+79991234567"
	return &SignupRequest{
		UserID:      7,
		FirstName:   "Анна",
		LastName:    "Иванова",
		UserName:    "anna",
		PhoneNumber: &phone,
		Password:    "secret-password",
	}
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Signup(context.Background(), signupRequest()))

	created := repo.users[7]
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleUser, created.Role)
	// Пароль хранится только хешем
	assert.NotContains(t, created.PasswordHash, "secret-password")

	t.Run("login by user name", func(t *testing.T) {
		auth, err := svc.Login(context.Background(), "anna", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, int64(7), auth.UserID)
		assert.Equal(t, string(domain.RoleUser), auth.Role)
	})

	t.Run("login by phone", func(t *testing.T) {
		auth, err := svc.Login(context.Background(), "+79991234567", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "anna", auth.UserName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "anna", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignupValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*SignupRequest)
	}{
		{"zero user id", func(r *SignupRequest) { r.UserID = 0 }},
		{"blank first name", func(r *SignupRequest) { r.FirstName = "  " }},
		{"short user name", func(r *SignupRequest) { r.UserName = "ab" }},
		{"short password", func(r *SignupRequest) { r.Password = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signupRequest()
			tt.mutate(req)
			err := svc.Signup(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSignupDuplicates(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Signup(context.Background(), signupRequest()))
		err := svc.Signup(context.Background(), signupRequest())
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("duplicate user name", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = userRepo.ErrDuplicateUserName
		svc := NewService(repo, nopLogger{})

		err := svc.Signup(context.Background(), signupRequest())
		assert.ErrorIs(t, err, ErrDuplicateUserName)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = userRepo.ErrDuplicatePhone
		svc := NewService(repo, nopLogger{})

		err := svc.Signup(context.Background(), signupRequest())
		assert.ErrorIs(t, err, ErrDuplicatePhone)
	})
}

func TestGetDisplayName(t *testing.T) {
	repo := newFakeRepo()
	repo.users[7] = &domain.User{ID: 7, UserName: "anna"}
	svc := NewService(repo, nopLogger{})

	assert.Equal(t, "anna", svc.GetDisplayName(context.Background(), 7))
	// Незарегистрированный пользователь представляется числовым id
	assert.Equal(t, "99", svc.GetDisplayName(context.Background(), 99))
}

func TestGetRole(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = &domain.User{ID: 1, UserName: "manager", Role: domain.RoleManager}
	svc := NewService(repo, nopLogger{})

	role, err := svc.GetRole(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, role)

	role, err = svc.GetRole(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)
}
