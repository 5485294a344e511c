package main

import (
	"os"

	"realestate-valley/pkg/logger"
)

func main() {
	cfg := LoadConfiguration()

	app, err := NewApp(cfg)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize application: %v", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
