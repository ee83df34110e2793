package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	userRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/user"
)

// Стоимость bcrypt-хеширования паролей
const bcryptCost = 12

// Service сервис пользователей: регистрация, вход, справки для бронирования
type Service struct {
	repo   UserRepository
	logger Logger
}

// NewService создает новый сервис пользователей
func NewService(repo UserRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Signup регистрирует нового пользователя
func (s *Service) Signup(ctx context.Context, req *SignupRequest) error {
	// 1. Валидация входных данных
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	userName := strings.TrimSpace(req.UserName)

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if firstName == "" || lastName == "" || userName == "" || req.Password == "" {
		return fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}
	if len(userName) < domain.MinUserNameLength {
		return fmt.Errorf("%w: userName must be at least %d characters", ErrInvalidInput, domain.MinUserNameLength)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	// 2. Хешируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("Signup: bcrypt failed for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: Signup - hash password: %v", ErrInternal, err)
	}

	var phone *string
	if req.PhoneNumber != nil {
		if p := strings.TrimSpace(*req.PhoneNumber); p != "" {
			phone = &p
		}
	}

	// 3. Создаем пользователя
	err = s.repo.Create(ctx, &domain.User{
		ID:           req.UserID,
		UserName:     userName,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  phone,
		DateOfBirth:  req.DateOfBirth,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})

	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrDuplicateID):
			s.logger.Warn("Signup: duplicate user id=%d", req.UserID)
			return ErrDuplicateID
		case errors.Is(err, userRepo.ErrDuplicateUserName):
			s.logger.Warn("Signup: duplicate user name %q", userName)
			return ErrDuplicateUserName
		case errors.Is(err, userRepo.ErrDuplicatePhone):
			s.logger.Warn("Signup: duplicate phone for user id=%d", req.UserID)
			return ErrDuplicatePhone
		default:
			s.logger.Error("Signup: repository error for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Signup: user id=%d registered", req.UserID)
	return nil
}

// Login проверяет логин (имя пользователя или телефон) и пароль
// При любом несовпадении возвращает одну и ту же ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*AuthenticatedUser, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrInvalidInput)
	}

	u, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for login=%q: %v", login, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: bad password for user id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d authenticated", u.ID)
	return &AuthenticatedUser{
		UserID:   u.ID,
		UserName: u.UserName,
		Role:     string(u.Role),
	}, nil
}

// GetDisplayName возвращает отображаемое имя пользователя
// Имя пользователя, при отсутствии пользователя или пустом имени -
// числовой id. Именно эта строка пишется в ячейки реестра занятости.
func (s *Service) GetDisplayName(ctx context.Context, userID int64) string {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return domain.FormatUserID(userID)
	}
	return u.DisplayName()
}

// GetRole возвращает роль пользователя (несуществующий пользователь - user)
func (s *Service) GetRole(ctx context.Context, userID int64) (domain.UserRole, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("%w: GetRole - repository error: %v", ErrInternal, err)
	}
	return u.Role, nil
}
