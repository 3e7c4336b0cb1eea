package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dezporcento/tipshare-backend-go/internal/config"
	appHTTP "github.com/dezporcento/tipshare-backend-go/internal/handler/http"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/cron"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/email"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/jwt"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/storage"
	"github.com/dezporcento/tipshare-backend-go/internal/repository/postgresql"
	auditService "github.com/dezporcento/tipshare-backend-go/internal/service/audit"
	authService "github.com/dezporcento/tipshare-backend-go/internal/service/auth"
	employeeService "github.com/dezporcento/tipshare-backend-go/internal/service/employee"
	recordService "github.com/dezporcento/tipshare-backend-go/internal/service/record"
	reportService "github.com/dezporcento/tipshare-backend-go/internal/service/report"
	settingsService "github.com/dezporcento/tipshare-backend-go/internal/service/settings"
	statsService "github.com/dezporcento/tipshare-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	recordRepo := postgresql.NewWorkRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dispatchRepo := postgresql.NewDispatchRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(cfg.Auth, jwtSvc)
	recordSvc := recordService.NewWorkRecordService(recordRepo, auditSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, auditSvc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, auditSvc)
	statsSvc := statsService.NewStatsService(recordRepo)
	reportSvc := reportService.NewReportService(recordRepo, settingsRepo, dispatchRepo, emailSvc, fileStorage, auditSvc)

	scheduler := cron.NewScheduler()
	cron.NewReportJobs(reportSvc, dispatchRepo, cfg.Report).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Record:   appHTTP.NewWorkRecordHandler(recordSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Stats:    appHTTP.NewStatsHandler(statsSvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
		Settings: appHTTP.NewSettingsHandler(settingsSvc),
		Audit:    appHTTP.NewAuditHandler(auditSvc),
	}, fileStorage)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
