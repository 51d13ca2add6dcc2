package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/config"
	repmcp "github.com/claude/repsense/internal/mcp"
	"github.com/claude/repsense/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("url", "", "repsense server URL; history is read over its REST API")
	configPath := flag.String("config", "", "config file for direct database access (ignored with -url)")
	langFlag := flag.String("lang", "", "message language (fr|en), defaults to the config's coach.language")
	flag.Parse()

	// stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds repmcp.DataSource
	lang := coachtext.DefaultLanguage

	switch {
	case *serverURL != "":
		ds = repmcp.NewHTTPClient(*serverURL)
		log.Info("using remote data source", "url", *serverURL)
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		lang = coachtext.ParseLanguage(cfg.Coach.Language)
		if cfg.Database.Enabled {
			db, err := storage.New(context.Background(), cfg.Database.DSN())
			if err != nil {
				log.Error("failed to connect database", "error", err)
				os.Exit(1)
			}
			defer db.Close()
			ds = db
		}
	default:
		log.Info("no data source: only stateless tools are available")
	}
	if *langFlag != "" {
		lang = coachtext.ParseLanguage(*langFlag)
	}

	s := repmcp.New(ds, Version, lang, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
