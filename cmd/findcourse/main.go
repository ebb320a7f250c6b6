package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ibroximov13/FindCourse/internal/app"
	"github.com/ibroximov13/FindCourse/internal/config"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

func main() {
	_ = godotenv.Load()

	logging.Setup(os.Getenv("DEBUG") == "true")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
