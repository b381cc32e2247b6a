// Package server initializes and runs the authentication server.
// It constructs the in-memory stores, the auth service, and the HTTP
// endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	httpServer  *httpapi.Server
}

// NewApp wires the application explicitly: stores are constructed here and
// injected, never reached through package-level state.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	usersRepo := users.NewMemoryRepository()
	revocationsRepo := revocations.NewMemoryRepository()

	userService := services.NewUserService(usersRepo, revocationsRepo, cfg, logger)
	httpServer := httpapi.NewServer(cfg, logger, userService, revocationsRepo)

	return &App{
		config:      cfg,
		logger:      logger,
		userService: userService,
		httpServer:  httpServer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
