package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/controller"
	"institute_backend/internal/repository"
	"institute_backend/internal/service"
	"institute_backend/pkg/database"
	"institute_backend/pkg/logger"
	"institute_backend/pkg/monitoring"
	"institute_backend/pkg/security"
	"institute_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	student     *repository.StudentRepository
	trade       *repository.TradeRepository
	course      *repository.CourseRepository
	fee         *repository.FeeRepository
	expense     *repository.ExpenseRepository
	enquiry     *repository.EnquiryRepository
	certificate *repository.CertificateRepository
	gallery     *repository.GalleryRepository
	exam        *repository.ExamRepository
	attempt     *repository.AttemptRepository
	dashboard   *repository.DashboardRepository
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	studentAuth *service.StudentAuthService
	student     *service.StudentService
	trade       *service.TradeService
	course      *service.CourseService
	fee         *service.FeeService
	expense     *service.ExpenseService
	enquiry     *service.EnquiryService
	certificate *service.CertificateService
	gallery     *service.GalleryService
	exam        *service.ExamService
	attempt     *service.AttemptService
	dashboard   *service.DashboardService
}

type controllers struct {
	auth        *controller.AuthController
	studentAuth *controller.StudentAuthController
	student     *controller.StudentController
	trade       *controller.TradeController
	course      *controller.CourseController
	fee         *controller.FeeController
	expense     *controller.ExpenseController
	enquiry     *controller.EnquiryController
	certificate *controller.CertificateController
	gallery     *controller.GalleryController
	exam        *controller.ExamController
	studentExam *controller.StudentExamController
	dashboard   *controller.DashboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		student:     repository.NewStudentRepository(db),
		trade:       repository.NewTradeRepository(db),
		course:      repository.NewCourseRepository(db),
		fee:         repository.NewFeeRepository(db),
		expense:     repository.NewExpenseRepository(db),
		enquiry:     repository.NewEnquiryRepository(db),
		certificate: repository.NewCertificateRepository(db),
		gallery:     repository.NewGalleryRepository(db),
		exam:        repository.NewExamRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		dashboard:   repository.NewDashboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.studentAuth = service.NewStudentAuthService(repos.student, cfg)
	s.student = service.NewStudentService(repos.student, s.storage, cfg)
	s.trade = service.NewTradeService(repos.trade)
	s.course = service.NewCourseService(repos.course)
	s.fee = service.NewFeeService(repos.fee, repos.student)
	s.expense = service.NewExpenseService(repos.expense)
	s.enquiry = service.NewEnquiryService(repos.enquiry)
	s.certificate = service.NewCertificateService(repos.certificate, repos.student, repos.course)
	s.gallery = service.NewGalleryService(repos.gallery, s.storage, cfg)
	s.exam = service.NewExamService(repos.exam)
	s.attempt = service.NewAttemptService(repos.exam, repos.attempt)
	s.dashboard = service.NewDashboardService(repos.dashboard, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		studentAuth: controller.NewStudentAuthController(s.studentAuth),
		student:     controller.NewStudentController(s.student),
		trade:       controller.NewTradeController(s.trade),
		course:      controller.NewCourseController(s.course),
		fee:         controller.NewFeeController(s.fee),
		expense:     controller.NewExpenseController(s.expense),
		enquiry:     controller.NewEnquiryController(s.enquiry),
		certificate: controller.NewCertificateController(s.certificate),
		gallery:     controller.NewGalleryController(s.gallery),
		exam:        controller.NewExamController(s.exam),
		studentExam: controller.NewStudentExamController(s.attempt),
		dashboard:   controller.NewDashboardController(s.dashboard),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Log.Info("Database migrations applied")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("institute-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
