package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func logLevel() string {
	return os.Getenv("LOG_LEVEL")
}

func (a *App) initLogger() {
	a.Logger = logrus.New()

	switch logLevel() {
	case "DEBUG":
		a.Logger.SetLevel(logrus.DebugLevel)
	case "ERROR":
		a.Logger.SetLevel(logrus.ErrorLevel)
	default:
		a.Logger.SetLevel(logrus.InfoLevel)
	}
}
