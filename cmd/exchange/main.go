package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/fsdevblog/groph-exchange/internal/logger"

	"github.com/fsdevblog/groph-exchange/internal/app"
	"github.com/fsdevblog/groph-exchange/internal/config"
)

func main() {
	// .env файл опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.LogLevel)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
