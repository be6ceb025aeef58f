package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Mshel/pathviz/internal/config"
	"github.com/Mshel/pathviz/internal/history"
	"github.com/Mshel/pathviz/internal/layout"
	"github.com/Mshel/pathviz/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.Level())

	// the alt screen owns stdout, so logs go to a file when asked for
	if logPath := os.Getenv("PATHVIZ_LOG_FILE"); logPath != "" {
		logFile, err := tea.LogToFile(logPath, "pathviz")
		if err != nil {
			fmt.Printf("error %v", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetLevel(log.FatalLevel)
	}

	patterns, err := layout.NewPatternService(cfg.PatternDir)
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}

	services := ui.Services{Config: cfg, Patterns: patterns}
	if cfg.HistoryDBPath != "" {
		runHistory, err := history.NewRunHistoryService(cfg.HistoryDBPath)
		if err != nil {
			fmt.Printf("error %v", err)
			os.Exit(1)
		}
		defer runHistory.Close()
		services.History = runHistory
	}

	p := tea.NewProgram(ui.NewControllerModel(context.Background(), services, 0, 0), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
