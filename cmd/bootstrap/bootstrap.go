package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/delivery/console"
	"hospital-dashboard/internal/delivery/console/handler"
	"hospital-dashboard/internal/infrastructure/cache"
	"hospital-dashboard/internal/infrastructure/seed"
	"hospital-dashboard/internal/repository"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/currency"
	"hospital-dashboard/pkg/validator"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Cache  *gocache.Cache
	Router *console.Router
	Output io.Writer
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	return NewWithConfig(context.Background(), cfg)
}

// NewWithConfig wires the application from an already loaded configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Load seed records
	loader := seed.NewLoader(customValidator, log)
	dataset, err := loader.Load(ctx, seed.Source(cfg.Seed.Dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	serviceCharge, err := decimal.NewFromString(cfg.Billing.ServiceCharge)
	if err != nil {
		return nil, fmt.Errorf("invalid RENT_SERVICE_CHARGE %q: %w", cfg.Billing.ServiceCharge, err)
	}

	viewCache := cache.NewViewCache(cfg.Cache)
	money := currency.NewFormatter(cfg.Billing.CurrencySymbol)

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(dataset.Rooms)
	doctorRepo := repository.NewDoctorRepository(dataset.Doctors)
	appointmentRepo := repository.NewAppointmentRepository(dataset.Appointments)
	dashboardRepo := repository.NewDashboardRepository(dataset.Stats)

	// Initialize usecases
	roomUsecase := usecase.NewRoomUsecase(log, roomRepo, viewCache, money, cfg.Dashboard.Floors, serviceCharge)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, appointmentRepo, money)
	dashboardUsecase := usecase.NewDashboardUsecase(log, dashboardRepo, roomRepo, appointmentRepo, money, cfg.Dashboard.RecentAppointments)

	// Initialize handlers
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize router
	router := console.NewRouter(roomHandler, doctorHandler, dashboardHandler).Setup()

	return &App{
		Config: cfg,
		Cache:  viewCache,
		Router: router,
		Output: os.Stdout,
	}, nil
}

// setupLogger configures the logrus logger.
// Logs go to stderr; stdout carries the rendered pages.
func setupLogger(cfg config.LogConfig) {
	if strings.EqualFold(cfg.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Run renders the page named in args and stops early on SIGINT or SIGTERM.
func (app *App) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.Debugf("Environment: %s", app.Config.App.Env)
	return app.Router.Dispatch(ctx, app.Output, args)
}

// Close releases the view cache.
func (app *App) Close() {
	app.Cache.Flush()
	logrus.Debug("View cache flushed")
}
