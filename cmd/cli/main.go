package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/mjimenezh/coursekeeper/internal/buildinfo"
	"github.com/mjimenezh/coursekeeper/internal/client/cli"
	"github.com/mjimenezh/coursekeeper/internal/client/config"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

func newLogger(level string) logging.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
	return logging.NewZerologLogger(zl)
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, newLogger(cfg.LogLevel))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
