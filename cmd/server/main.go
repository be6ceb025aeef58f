package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/pathviz/internal/config"
	"github.com/Mshel/pathviz/internal/history"
	"github.com/Mshel/pathviz/internal/layout"
	"github.com/Mshel/pathviz/internal/server"
	"github.com/Mshel/pathviz/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.Level())

	patterns, err := layout.NewPatternService(cfg.PatternDir)
	if err != nil {
		log.Fatal("Failed to load wall patterns", "error", err)
	}

	services := ui.Services{Config: cfg, Patterns: patterns}
	if cfg.HistoryDBPath != "" {
		runHistory, err := history.NewRunHistoryService(cfg.HistoryDBPath)
		if err != nil {
			log.Fatal("Failed to open run history", "error", err)
		}
		defer runHistory.Close()
		services.History = runHistory
	}

	limiter := server.NewConnectionLimiter(cfg.MaxConnectionsPerIP)

	sshServer, serverCreateErr := wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(newViewHandler(services)),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware(),
		),
	)
	if serverCreateErr != nil {
		log.Fatal("Failed to create ssh server", "error", serverCreateErr)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", cfg.Host, "port", cfg.Port)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer func() { cancel() }()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

// newViewHandler gives every session its own controller and therefore its own grid.
func newViewHandler(services ui.Services) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		controllerModel := ui.NewControllerModel(sshSession.Context(), services, pty.Window.Width, pty.Window.Height)
		return controllerModel, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	}
}
