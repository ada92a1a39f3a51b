package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/isj-group4/fingerprint-attendance-go/internal/config"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	appHTTP "github.com/isj-group4/fingerprint-attendance-go/internal/handler/http"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/clock"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/database"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/jwt"
	"github.com/isj-group4/fingerprint-attendance-go/internal/repository/memory"
	"github.com/isj-group4/fingerprint-attendance-go/internal/repository/postgresql"
	attendanceService "github.com/isj-group4/fingerprint-attendance-go/internal/service/attendance"
	reportService "github.com/isj-group4/fingerprint-attendance-go/internal/service/report"
	statsService "github.com/isj-group4/fingerprint-attendance-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	lateThreshold, err := attendance.ParseTimeOfDay(cfg.Attendance.LateThreshold)
	if err != nil {
		log.Fatal("Invalid late threshold: ", err)
	}

	var attendanceRepo attendance.Repository
	var staffRepo staff.Repository
	switch cfg.Store.Driver {
	case "postgresql":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		attendanceRepo = postgresql.NewAttendanceRepository(db, cfg.Attendance.LockTimeout)
		staffRepo = postgresql.NewStaffRepository(db)
	case "memory":
		attendanceRepo = memory.NewAttendanceRepository(cfg.Attendance.LockTimeout)
		staffRepo = memory.NewStaffRepository(nil)
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	JWTService := jwt.NewJWTService(cfg.Auth.Secret, "24h")
	engineClock := clock.System()

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		staffRepo,
		lateThreshold,
		cfg.Attendance.DedupWindow,
		logger,
	)
	statsSvc := statsService.NewStatsService(attendanceRepo, staffRepo, lateThreshold, engineClock)
	reportSvc := reportService.NewReportService(statsSvc, engineClock)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	staffHandler := appHTTP.NewStaffHandler(staffRepo)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		attendanceHandler,
		staffHandler,
		statsHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
