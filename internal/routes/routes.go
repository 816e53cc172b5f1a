package routes

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// RegisterRoutes wires the whole API onto r. rdb is optional; without it
// booking endpoints are not rate limited. The returned dispatcher must be
// closed on shutdown so queued audit events get written.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *slog.Logger,
	rdb *redis.Client,
) (*audit.Dispatcher, error) {

	// ======================================================
	// TIME GRID
	// ======================================================
	grid, err := domain.NewTimeGrid(cfg.OpensAt, cfg.ClosesAt)
	if err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}
	if err := validators.RegisterTimeSlot(grid); err != nil {
		return nil, fmt.Errorf("register timeslot validator: %w", err)
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	// Without listed origins only same-origin callers are served.
	if len(cfg.CORSOrigins) > 0 {
		r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}
	r.Use(middleware.Authenticate(cfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	settingsRepo := infraRepo.NewSalonSettingsGormRepository(db)
	transactor := infraRepo.NewGormTransactor(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var bookingLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if rdb != nil {
		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "rl:booking", log)
		bookingLimit = limiter.Middleware()
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		transactor,
		settingsRepo,
		grid,
		auditDispatcher,
		log,
	)

	checkAvailabilityUC := ucAppointment.NewCheckAvailability(
		appointmentRepo,
		schedulingRepo,
		settingsRepo,
		grid,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		schedulingRepo,
		auditDispatcher,
		log,
		cfg.StrictStatusTransitions,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		transactor,
		settingsRepo,
		grid,
		auditDispatcher,
		log,
		cfg.Timezone,
	)

	deleteUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		schedulingRepo,
		auditDispatcher,
		log,
	)

	getSalonCapacityUC := ucSalon.NewGetSalonCapacity(settingsRepo)
	setSalonCapacityUC := ucSalon.NewSetSalonCapacity(settingsRepo, auditDispatcher, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		grid,
		createAppointmentUC,
		checkAvailabilityUC,
		ucAppointment.NewListAppointments(appointmentRepo),
		ucAppointment.NewGetAppointment(appointmentRepo),
		updateStatusUC,
		rescheduleUC,
		deleteUC,
	)

	adminHandler := handlers.NewAdminAppointmentsHandler(
		ucAppointment.NewListAppointmentsPage(appointmentRepo),
		updateStatusUC,
	)

	settingsHandler := handlers.NewSalonSettingsHandler(getSalonCapacityUC, setSalonCapacityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", middleware.RequireAuth(), meHandler.GetMe)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/timeslots", appointmentHandler.TimeSlots)
		api.GET("/salon-settings", settingsHandler.Get)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.POST("/appointments", bookingLimit, appointmentHandler.Create)

		// ------------------------------
		// APPOINTMENTS (owner or admin)
		// ------------------------------
		secured := api.Group("/appointments")
		secured.Use(middleware.RequireAuth())
		{
			secured.GET("", appointmentHandler.List)
			secured.GET("/:id", appointmentHandler.Get)
			secured.PUT("/:id", appointmentHandler.UpdateStatus)
			secured.DELETE("/:id", appointmentHandler.Delete)
			secured.PUT("/:id/reschedule", bookingLimit, appointmentHandler.Reschedule)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/appointments", adminHandler.List)
			admin.PUT("/appointments", adminHandler.UpdateStatus)

			admin.GET("/salon-settings", settingsHandler.Get)
			admin.PUT("/salon-settings", settingsHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher, nil
}
