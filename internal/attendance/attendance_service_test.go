package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/attendance"
	attendanceerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/attendance/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

type fakeAttendanceRepository struct {
	createFn           func(ctx context.Context, a *attendance.AttendanceRequest) error
	findByIDFn         func(ctx context.Context, id string) (*attendance.AttendanceRequest, error)
	findByUserFn       func(ctx context.Context, userID string) ([]attendance.RequestWithUser, error)
	findAllFn          func(ctx context.Context) ([]attendance.RequestWithUser, error)
	findByFacilitiesFn func(ctx context.Context, facilities []string) ([]attendance.RequestWithUser, error)
	hasDuplicateFn     func(ctx context.Context, userID string, day time.Time, requestType string, statuses []string) (bool, error)
	updateFn           func(ctx context.Context, a *attendance.AttendanceRequest) error
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository { return f }

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.AttendanceRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.AttendanceRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByUser(ctx context.Context, userID string) ([]attendance.RequestWithUser, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindAll(ctx context.Context) ([]attendance.RequestWithUser, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByFacilities(ctx context.Context, facilities []string) ([]attendance.RequestWithUser, error) {
	if f.findByFacilitiesFn != nil {
		return f.findByFacilitiesFn(ctx, facilities)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) HasDuplicate(ctx context.Context, userID string, day time.Time, requestType string, statuses []string) (bool, error) {
	if f.hasDuplicateFn != nil {
		return f.hasDuplicateFn(ctx, userID, day, requestType, statuses)
	}
	return false, nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.AttendanceRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

type fakeStaffReader struct {
	findByIDFn func(ctx context.Context, id string) (*attendance.StaffMember, error)
}

func (f *fakeStaffReader) WithTx(tx *sql.Tx) attendance.StaffReader { return f }

func (f *fakeStaffReader) FindByID(ctx context.Context, id string) (*attendance.StaffMember, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

type fakeAuthority struct {
	managedFacilitiesFn func(ctx context.Context, userID string) ([]string, error)
}

func (f *fakeAuthority) ManagedFacilities(ctx context.Context, userID string) ([]string, error) {
	if f.managedFacilitiesFn != nil {
		return f.managedFacilitiesFn(ctx, userID)
	}
	return nil, nil
}

type attendanceServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *fakeAttendanceRepository
	staff     *fakeStaffReader
	authority *fakeAuthority
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &attendanceServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      &fakeAttendanceRepository{},
		staff:     &fakeStaffReader{},
		authority: &fakeAuthority{},
	}
	deps.service = attendance.NewService(db, deps.repo, deps.staff, deps.authority)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func staffFixture(id uuid.UUID, role string) *attendance.StaffMember {
	return &attendance.StaffMember{
		ID:         id,
		Name:       "Tanaka Yuki",
		Facility:   "Sakura Clinic",
		Department: "Nursing",
		Role:       role,
	}
}

func TestAttendanceService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success absence over a range", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			assert.Equal(t, userID.String(), id)
			return staffFixture(userID, user.RoleUser), nil
		}
		deps.repo.hasDuplicateFn = func(ctx context.Context, uid string, day time.Time, requestType string, statuses []string) (bool, error) {
			assert.Equal(t, attendance.TypeAbsence, requestType)
			assert.ElementsMatch(t, []string{attendance.StatusPending, attendance.StatusApproved}, statuses)
			return false, nil
		}
		var persisted *attendance.AttendanceRequest
		deps.repo.createFn = func(ctx context.Context, a *attendance.AttendanceRequest) error {
			persisted = a
			return nil
		}

		resp, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeAbsence,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-08",
			Reason:      "sick child",
		})

		assert.NoError(t, err)
		assert.NotNil(t, persisted)
		assert.Equal(t, attendance.StatusPending, persisted.Status)
		assert.Nil(t, persisted.StartTime)
		assert.Equal(t, userID.String(), resp.UserID)
		assert.Equal(t, "2026-09-07", resp.StartDate)
		assert.Equal(t, attendance.StatusPending, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success late arrival with quarter-hour time", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(userID, user.RoleUser), nil
		}

		resp, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeLate,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
			StartTime:   "09:15",
			EndTime:     "10:30",
			Reason:      "train delay",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.StartTime)
		assert.Equal(t, "09:15", *resp.StartTime)
		assert.NotNil(t, resp.EndTime)
		assert.Equal(t, "10:30", *resp.EndTime)
	})

	t.Run("negative paid leave goes through the leave flow", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: "PAID_LEAVE",
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrPaidLeaveChannel)
	})

	t.Run("negative unknown request type", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: "OVERTIME",
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRequestType)
	})

	t.Run("negative start after end", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeAbsence,
			StartDate:   "2026-09-08",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
	})

	t.Run("negative late arrival without start time", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeLate,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrStartTimeRequired)
	})

	t.Run("negative time off the quarter-hour grid", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeEarlyDeparture,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
			StartTime:   "16:10",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrTimeInterval)
	})

	t.Run("negative start time after end time", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeLate,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
			StartTime:   "10:30",
			EndTime:     "09:15",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrTimeOrder)
	})

	t.Run("negative malformed time", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeLate,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
			StartTime:   "9 o'clock",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimeFormat)
	})

	t.Run("negative duplicate for the same day and type", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(userID, user.RoleUser), nil
		}
		deps.repo.hasDuplicateFn = func(ctx context.Context, uid string, day time.Time, requestType string, statuses []string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeAbsence,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateRequest)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown user", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return nil, nil
		}

		_, err := deps.service.Submit(ctx, userID.String(), attendance.CreateAttendanceRequest{
			RequestType: attendance.TypeAbsence,
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-07",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrUserNotFound)
	})
}

func TestAttendanceService_GetAllRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("developer sees everything", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		devID := uuid.New()
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(devID, user.RoleDeveloper), nil
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]attendance.RequestWithUser, error) {
			return []attendance.RequestWithUser{
				{
					AttendanceRequest: attendance.AttendanceRequest{
						ID:          uuid.New(),
						UserID:      uuid.New(),
						RequestType: attendance.TypeAbsence,
						Status:      attendance.StatusPending,
					},
					UserName:     "Sato Ren",
					UserFacility: "Aoba Home Care",
				},
			}, nil
		}

		resp, err := deps.service.GetAllRequests(ctx, devID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Sato Ren", resp[0].UserName)
		assert.Equal(t, "Aoba Home Care", resp[0].Facility)
	})

	t.Run("admin scope includes own facility", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		adminID := uuid.New()
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(adminID, user.RoleAdmin), nil
		}
		deps.authority.managedFacilitiesFn = func(ctx context.Context, uid string) ([]string, error) {
			return []string{"Aoba Home Care"}, nil
		}
		var askedFacilities []string
		deps.repo.findByFacilitiesFn = func(ctx context.Context, facilities []string) ([]attendance.RequestWithUser, error) {
			askedFacilities = facilities
			return nil, nil
		}

		_, err := deps.service.GetAllRequests(ctx, adminID.String())

		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"Aoba Home Care", "Sakura Clinic"}, askedFacilities)
	})

	t.Run("negative plain user forbidden", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		plainID := uuid.New()
		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(plainID, user.RoleUser), nil
		}

		_, err := deps.service.GetAllRequests(ctx, plainID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrForbidden)
	})
}

func TestAttendanceService_Decide(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	requestID := uuid.New()

	pendingRequest := func() *attendance.AttendanceRequest {
		return &attendance.AttendanceRequest{
			ID:          requestID,
			UserID:      userID,
			RequestType: attendance.TypeAbsence,
			StartDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Status:      attendance.StatusPending,
		}
	}

	t.Run("approve success", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.AttendanceRequest, error) {
			assert.Equal(t, requestID.String(), id)
			return pendingRequest(), nil
		}
		var updated *attendance.AttendanceRequest
		deps.repo.updateFn = func(ctx context.Context, a *attendance.AttendanceRequest) error {
			updated = a
			return nil
		}

		resp, err := deps.service.Approve(ctx, requestID.String())

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusApproved, resp.Status)
		assert.NotNil(t, updated)
		assert.Equal(t, attendance.StatusApproved, updated.Status)
		assert.Nil(t, updated.RejectionReason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject records the reason", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.AttendanceRequest, error) {
			return pendingRequest(), nil
		}

		resp, err := deps.service.Reject(ctx, requestID.String(), "shift already covered")

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusRejected, resp.Status)
		assert.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "shift already covered", *resp.RejectionReason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, requestID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrRequestNotFound)
	})

	t.Run("negative already decided", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*attendance.AttendanceRequest, error) {
			a := pendingRequest()
			a.Status = attendance.StatusApproved
			return a, nil
		}

		_, err := deps.service.Reject(ctx, requestID.String(), "")

		assert.ErrorIs(t, err, attendanceerrors.ErrNotPending)
	})
}

func TestAttendanceService_GetMyRequests(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.staff.findByIDFn = func(ctx context.Context, id string) (*attendance.StaffMember, error) {
			return staffFixture(userID, user.RoleUser), nil
		}
		startTime := "09:15"
		deps.repo.findByUserFn = func(ctx context.Context, uid string) ([]attendance.RequestWithUser, error) {
			assert.Equal(t, userID.String(), uid)
			return []attendance.RequestWithUser{
				{
					AttendanceRequest: attendance.AttendanceRequest{
						ID:          uuid.New(),
						UserID:      userID,
						RequestType: attendance.TypeLate,
						StartTime:   &startTime,
						Status:      attendance.StatusApproved,
					},
				},
			}, nil
		}

		resp, err := deps.service.GetMyRequests(ctx, userID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, attendance.TypeLate, resp[0].RequestType)
		assert.NotNil(t, resp[0].StartTime)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetMyRequests(ctx, userID.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrUserNotFound)
	})
}
