package auth_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/auth"
	autherrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/auth/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

type fakeUserRepository struct {
	findByIDFn              func(ctx context.Context, id string) (*user.User, error)
	findByEmployeeIDFn      func(ctx context.Context, employeeID string) (*user.User, error)
	findByInvitationTokenFn func(ctx context.Context, token string) (*user.User, error)
	findByResetTokenFn      func(ctx context.Context, token string) (*user.User, error)
	updateFn                func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) user.Repository              { return f }
func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	if f.findByEmployeeIDFn != nil {
		return f.findByEmployeeIDFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByInvitationToken(ctx context.Context, token string) (*user.User, error) {
	if f.findByInvitationTokenFn != nil {
		return f.findByInvitationTokenFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	if f.findByResetTokenFn != nil {
		return f.findByResetTokenFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByFacilityIn(ctx context.Context, facilities []string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error  { return nil }
func (f *fakeUserRepository) Restore(ctx context.Context, id string) error { return nil }

type loginAttempt struct {
	employeeID string
	clientIP   string
	success    bool
}

type fakeAttemptRecorder struct {
	attempts []loginAttempt
}

func (f *fakeAttemptRecorder) RecordAttempt(ctx context.Context, employeeID, clientIP string, success bool) {
	f.attempts = append(f.attempts, loginAttempt{employeeID: employeeID, clientIP: clientIP, success: success})
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	return &user.User{
		ID:         uuid.New(),
		EmployeeID: "N-1024",
		Password:   hashPassword(t, password),
		Name:       "Sato Hana",
		Facility:   "Sakura Clinic",
		Department: "Nursing",
		Role:       user.RoleUser,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	t.Run("success issues token pair and records the attempt", func(t *testing.T) {
		u := activeUser(t, "kangofu-2026")
		repo := &fakeUserRepository{
			findByEmployeeIDFn: func(ctx context.Context, employeeID string) (*user.User, error) {
				assert.Equal(t, "N-1024", employeeID)
				return u, nil
			},
		}
		recorder := &fakeAttemptRecorder{}
		svc := auth.NewService(repo, recorder)

		access, refresh, resp, err := svc.Login(ctx, "N-1024", "kangofu-2026", "10.0.0.5")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.Equal(t, "Sakura Clinic", resp.Facility)

		token, parseErr := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		assert.NoError(t, parseErr)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, user.RoleUser, claims["role"])

		assert.Equal(t, []loginAttempt{{employeeID: "N-1024", clientIP: "10.0.0.5", success: true}}, recorder.attempts)
	})

	t.Run("negative wrong password", func(t *testing.T) {
		u := activeUser(t, "kangofu-2026")
		repo := &fakeUserRepository{
			findByEmployeeIDFn: func(ctx context.Context, employeeID string) (*user.User, error) {
				return u, nil
			},
		}
		recorder := &fakeAttemptRecorder{}
		svc := auth.NewService(repo, recorder)

		_, _, _, err := svc.Login(ctx, "N-1024", "guess", "10.0.0.5")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Len(t, recorder.attempts, 1)
		assert.False(t, recorder.attempts[0].success)
	})

	t.Run("negative unknown employee id", func(t *testing.T) {
		recorder := &fakeAttemptRecorder{}
		svc := auth.NewService(&fakeUserRepository{}, recorder)

		_, _, _, err := svc.Login(ctx, "N-9999", "whatever", "10.0.0.5")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Len(t, recorder.attempts, 1)
		assert.False(t, recorder.attempts[0].success)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	t.Run("success rotates the pair", func(t *testing.T) {
		u := activeUser(t, "kangofu-2026")
		repo := &fakeUserRepository{
			findByEmployeeIDFn: func(ctx context.Context, employeeID string) (*user.User, error) {
				return u, nil
			},
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				assert.Equal(t, u.ID.String(), id)
				return u, nil
			},
		}
		svc := auth.NewService(repo, nil)

		_, refresh, _, err := svc.Login(ctx, "N-1024", "kangofu-2026", "10.0.0.5")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, u.EmployeeID, resp.EmployeeID)
	})

	t.Run("negative malformed token", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, nil)

		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("negative token signed with another secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := forged.SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		svc := auth.NewService(&fakeUserRepository{}, nil)

		_, _, _, err = svc.RefreshToken(ctx, signed)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears the first-login flag", func(t *testing.T) {
		u := activeUser(t, "old-pass")
		u.MustChangePassword = true
		var updated *user.User
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return u, nil },
			updateFn: func(ctx context.Context, got *user.User) error {
				updated = got
				return nil
			},
		}
		svc := auth.NewService(repo, nil)

		err := svc.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass-123",
		})

		assert.NoError(t, err)
		assert.False(t, updated.MustChangePassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass-123")))
	})

	t.Run("negative wrong current password", func(t *testing.T) {
		u := activeUser(t, "old-pass")
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return u, nil },
		}
		svc := auth.NewService(repo, nil)

		err := svc.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "guess",
			NewPassword:     "new-pass-123",
		})

		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, nil)

		err := svc.ChangePassword(ctx, uuid.New().String(), auth.ChangePasswordRequest{
			CurrentPassword: "x",
			NewPassword:     "y",
		})

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_SetupAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success consumes the invitation", func(t *testing.T) {
		u := activeUser(t, "temp")
		token := "invite-token"
		u.InvitationToken = &token
		u.MustChangePassword = true

		var updated *user.User
		repo := &fakeUserRepository{
			findByInvitationTokenFn: func(ctx context.Context, got string) (*user.User, error) {
				assert.Equal(t, "invite-token", got)
				return u, nil
			},
			updateFn: func(ctx context.Context, got *user.User) error {
				updated = got
				return nil
			},
		}
		svc := auth.NewService(repo, nil)

		resp, err := svc.SetupAccount(ctx, auth.SetupAccountRequest{
			InvitationToken: "invite-token",
			Password:        "chosen-pass-1",
		})

		assert.NoError(t, err)
		assert.Nil(t, updated.InvitationToken)
		assert.False(t, updated.MustChangePassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("chosen-pass-1")))
		assert.Equal(t, u.EmployeeID, resp.EmployeeID)
	})

	t.Run("negative unknown invitation", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, nil)

		_, err := svc.SetupAccount(ctx, auth.SetupAccountRequest{
			InvitationToken: "stale",
			Password:        "x",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidInvitation)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("forgot password issues an expiring token", func(t *testing.T) {
		u := activeUser(t, "pass")
		var updated *user.User
		repo := &fakeUserRepository{
			findByEmployeeIDFn: func(ctx context.Context, employeeID string) (*user.User, error) {
				return u, nil
			},
			updateFn: func(ctx context.Context, got *user.User) error {
				updated = got
				return nil
			},
		}
		svc := auth.NewService(repo, nil)

		token, err := svc.ForgotPassword(ctx, "N-1024")

		assert.NoError(t, err)
		assert.Len(t, token, 48)
		assert.Equal(t, token, *updated.ResetToken)
		assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), *updated.ResetTokenExpiry, time.Minute)
	})

	t.Run("forgot password unknown employee", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, nil)

		_, err := svc.ForgotPassword(ctx, "N-9999")

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("reset success clears the token", func(t *testing.T) {
		u := activeUser(t, "pass")
		token := "reset-token"
		expiry := time.Now().UTC().Add(10 * time.Minute)
		u.ResetToken = &token
		u.ResetTokenExpiry = &expiry

		var updated *user.User
		repo := &fakeUserRepository{
			findByResetTokenFn: func(ctx context.Context, got string) (*user.User, error) {
				return u, nil
			},
			updateFn: func(ctx context.Context, got *user.User) error {
				updated = got
				return nil
			},
		}
		svc := auth.NewService(repo, nil)

		err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{
			ResetToken: "reset-token",
			Password:   "fresh-pass-1",
		})

		assert.NoError(t, err)
		assert.Nil(t, updated.ResetToken)
		assert.Nil(t, updated.ResetTokenExpiry)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("fresh-pass-1")))
	})

	t.Run("negative reset token expired", func(t *testing.T) {
		u := activeUser(t, "pass")
		token := "reset-token"
		expiry := time.Now().UTC().Add(-time.Minute)
		u.ResetToken = &token
		u.ResetTokenExpiry = &expiry

		repo := &fakeUserRepository{
			findByResetTokenFn: func(ctx context.Context, got string) (*user.User, error) {
				return u, nil
			},
		}
		svc := auth.NewService(repo, nil)

		err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{ResetToken: "reset-token", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrResetTokenExpired)
	})

	t.Run("negative unknown reset token", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, nil)

		err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{ResetToken: "nope", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})
}
