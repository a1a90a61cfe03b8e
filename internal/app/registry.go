package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/announcement"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/attendance"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/audit"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/auth"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/department"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/export"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/facility"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/leave"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/manual"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/messaging/kafka"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/nodestatus"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/security"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/training"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	clk := clock.System()

	// --- Repositories ---
	announcementRepo := announcement.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	facilityRepo := facility.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	accrualRepo := leave.NewAccrualRepository(gormDB)
	manualRepo := manual.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	securityRepo := security.NewRepository(gormDB)
	trainingRepo := training.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	securityService := security.NewService(securityRepo, clk)
	auditService := audit.NewService(auditRepo, outboxRepo)
	authService := auth.NewService(userRepo, securityService)
	userService := user.NewServiceWithOutbox(db, userRepo, outboxRepo)
	facilityService := facility.NewService(facilityRepo)
	departmentService := department.NewService(departmentRepo)
	announcementService := announcement.NewService(announcementRepo, clk)
	manualService := manual.NewService(manualRepo, userRepo, clk)
	trainingService := training.NewService(trainingRepo, clk)
	nodestatusService := nodestatus.NewService(rdb, clk)
	facilityAuthority := facility.NewAuthority(facilityRepo)
	attendanceService := attendance.NewService(
		db,
		attendanceRepo,
		attendance.NewStaffReader(gormDB),
		facilityAuthority,
	)
	leaveService := leave.NewServiceWithOutbox(
		db,
		leaveRepo,
		accrualRepo,
		leave.NewEmployeeReader(gormDB),
		facilityAuthority,
		auditService,
		outboxRepo,
		clk,
	)
	exportService := export.NewService(userRepo, manualRepo, leaveService)

	// --- Handlers ---
	announcementHandler := announcement.NewHandler(announcementService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	auditHandler := audit.NewHandler(auditService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	exportHandler := export.NewHandler(exportService)
	facilityHandler := facility.NewHandler(facilityService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	manualHandler := manual.NewHandler(manualService)
	nodestatusHandler := nodestatus.NewHandler(nodestatusService)
	rbacHandler := rbac.NewHandler(rbacService)
	securityHandler := security.NewHandler(securityService)
	trainingHandler := training.NewHandler(trainingService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		announcement.RegisterRoutes(api, announcementHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		audit.RegisterRoutes(api, auditHandler)
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler)
		export.RegisterRoutes(api, exportHandler, rbacService)
		facility.RegisterRoutes(api, facilityHandler)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		manual.RegisterRoutes(api, manualHandler, rbacService)
		nodestatus.RegisterRoutes(api, nodestatusHandler)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		security.RegisterRoutes(api, securityHandler)
		training.RegisterRoutes(api, trainingHandler, rbacService)
		user.RegisterRoutes(api, userHandler)
	}

	return nil
}
