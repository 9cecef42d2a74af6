package main

import (
	"os"

	"hospital-dashboard/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	// Render the requested page
	if err := app.Run(os.Args[1:]); err != nil {
		app.Close()
		logrus.Fatalf("Failed to render page: %v", err)
	}
}
