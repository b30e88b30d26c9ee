package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"parceltrack/cmd"
	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/events"
	"parceltrack/internal/jobs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to compose application: %v", err)
	}

	subscribeEventLog(&app, logger)

	jobManager := jobs.NewJobManager(
		app.CreateNotifyUpcomingDeliveriesCommandHandler(),
		configs.ReminderSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(&app)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Web server shutdown failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		ReminderSchedule: goDotEnvVariable("REMINDER_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// subscribeEventLog logs every domain event. This is where notification
// channels (mail, push) would hook in.
func subscribeEventLog(app *cmd.CompositionRoot, logger *slog.Logger) {
	app.EventBus().Subscribe(func(event events.Event) {
		logger.Info("domain event", "name", string(event.Name))
	})
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	server := httpin.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateLoginCommandHandler(),
		app.CreateLogoutCommandHandler(),
		app.CreateExtractShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateAddTagCommandHandler(),
		app.CreateRemoveTagCommandHandler(),
		app.CreateGetShipmentsQueryHandler(),
		app.CreateFilterShipmentsByStatusQueryHandler(),
		app.CreateSearchShipmentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}
