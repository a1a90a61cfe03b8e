package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/auth/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = 30 * time.Minute
)

// LoginAttemptRecorder receives the outcome of every login so the
// security module can flag repeated failures.
type LoginAttemptRecorder interface {
	RecordAttempt(ctx context.Context, employeeID, clientIP string, success bool)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, employeeID, password, clientIP string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	SetupAccount(ctx context.Context, req SetupAccountRequest) (AuthResponse, error)
	ForgotPassword(ctx context.Context, employeeID string) (resetToken string, err error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type service struct {
	users    user.Repository
	attempts LoginAttemptRecorder
	logger   *zap.Logger
}

func NewService(users user.Repository, attempts LoginAttemptRecorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, attempts: attempts, logger: l}
}

func (s *service) Login(ctx context.Context, employeeID, password, clientIP string) (string, string, AuthResponse, error) {
	u, err := s.users.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	if u == nil {
		s.recordAttempt(ctx, employeeID, clientIP, false)
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.recordAttempt(ctx, employeeID, clientIP, false)
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(u, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.recordAttempt(ctx, employeeID, clientIP, true)
	s.logger.Info("login success",
		zap.String("user_id", u.ID.String()),
		zap.String("employee_id", u.EmployeeID),
	)

	return accessToken, refreshToken, mapToAuthResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	if u == nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccess, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(u, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, mapToAuthResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, autherrors.ErrUserNotFound
	}
	resp := mapToAuthResponse(u)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	u.MustChangePassword = false
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) SetupAccount(ctx context.Context, req SetupAccountRequest) (AuthResponse, error) {
	u, err := s.users.FindByInvitationToken(ctx, req.InvitationToken)
	if err != nil {
		return AuthResponse{}, err
	}
	if u == nil {
		return AuthResponse{}, autherrors.ErrInvalidInvitation
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u.Password = string(hashed)
	u.MustChangePassword = false
	u.InvitationToken = nil
	if err := s.users.Update(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("account setup complete",
		zap.String("user_id", u.ID.String()),
		zap.String("employee_id", u.EmployeeID),
	)
	return mapToAuthResponse(u), nil
}

func (s *service) ForgotPassword(ctx context.Context, employeeID string) (string, error) {
	u, err := s.users.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", autherrors.ErrUserNotFound
	}

	token := newOpaqueToken()
	expiry := time.Now().UTC().Add(resetTokenTTL)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	if err := s.users.Update(ctx, u); err != nil {
		return "", err
	}

	s.logger.Info("reset token issued", zap.String("user_id", u.ID.String()))
	return token, nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	u, err := s.users.FindByResetToken(ctx, req.ResetToken)
	if err != nil {
		return err
	}
	if u == nil {
		return autherrors.ErrInvalidResetToken
	}
	if u.ResetTokenExpiry == nil || u.ResetTokenExpiry.Before(time.Now().UTC()) {
		return autherrors.ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	u.MustChangePassword = false
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("password reset", zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) recordAttempt(ctx context.Context, employeeID, clientIP string, success bool) {
	if s.attempts != nil {
		s.attempts.RecordAttempt(ctx, employeeID, clientIP, success)
	}
}

func (s *service) generateToken(u *user.User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"role":     u.Role,
		"facility": u.Facility,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:                 u.ID.String(),
		EmployeeID:         u.EmployeeID,
		Name:               u.Name,
		Facility:           u.Facility,
		Department:         u.Department,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}

func newOpaqueToken() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
