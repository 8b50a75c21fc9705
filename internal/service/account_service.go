package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/david8219501/leader-app-server-08-09-25/internal/auth"
	"github.com/david8219501/leader-app-server-08-09-25/internal/config"
	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
	"github.com/david8219501/leader-app-server-08-09-25/internal/repository"
	apperrors "github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// AccountService coordinates registration, login and profile flows for
// manager accounts.
type AccountService struct {
	managers   repository.ManagerRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.AuthConfig, managers repository.ManagerRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{
		managers:   managers,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
	}
}

// Register creates a new manager account. A phone or email collision is
// surfaced with the generic conflict message the wire contract expects.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, phone, email, password string) (*domain.Manager, error) {
	manager := &domain.Manager{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
		Password:  password,
	}
	if err := s.managers.Create(ctx, manager); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("manager already exists or database error")
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventManagerRegistered,
		ManagerID: manager.ID,
		Payload:   events.ManagerRegisteredPayload{Email: manager.Email},
	})
	return manager, nil
}

// Login authenticates a manager and issues a bearer token. A missing account
// and a wrong password produce the same response so nothing about the
// account leaks.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Manager, string, time.Time, error) {
	manager, err := s.managers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("email or password does not match")
		}
		return nil, "", time.Time{}, err
	}
	if !auth.VerifyCredential(manager.Password, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("email or password does not match")
	}

	token, exp, err := s.tokenMgr.GenerateToken(manager.ID, manager.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return manager, token, exp, nil
}

// GetProfile returns the authenticated manager's own row.
func (s *AccountService) GetProfile(ctx context.Context, managerID int64) (*domain.Manager, error) {
	manager, err := s.managers.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("manager", nil)
		}
		return nil, err
	}
	return manager, nil
}

// UpdateProfile overwrites the four profile fields unconditionally. A nil
// phone clears the stored value.
func (s *AccountService) UpdateProfile(ctx context.Context, managerID int64, firstName, lastName string, phone *string, email string) error {
	return s.managers.UpdateProfile(ctx, managerID, firstName, lastName, phone, email)
}

// ChangePassword verifies the current password before storing the new one.
func (s *AccountService) ChangePassword(ctx context.Context, managerID int64, currentPassword, newPassword string) error {
	manager, err := s.managers.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("manager", nil)
		}
		return err
	}
	if !auth.VerifyCredential(manager.Password, currentPassword) {
		return apperrors.NewUnauthorized("current password is incorrect")
	}
	return s.managers.UpdatePassword(ctx, managerID, newPassword)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
