package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/amanagarwal13/Binanace-Trading/internal/dashboard"
)

func main() {
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	cfg := loadConfig(confFileName)

	// The terminal belongs to the UI; logs go to a file or nowhere.
	logger := logrus.New()
	if f, err := os.OpenFile("dashboard.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	client := dashboard.NewClient(cfg.ServerURL, defaultHTTPTimeout, logger)
	ctrl := dashboard.NewController(client, cfg.PollInterval, logger)

	p := tea.NewProgram(newModel(ctrl, cfg.Symbols), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
