package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"PocketFormsBot/internal/adapters/app"
	"PocketFormsBot/internal/logz"
)

func main() {
	_ = godotenv.Load()

	if err := logz.Init(); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logz.Sync()

	a, err := app.New()
	if err != nil {
		logz.Log.Fatal("start app", zap.Error(err))
	}
	a.Start()
}
