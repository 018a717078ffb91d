package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/handler"
	"git.unix.lgbt/diamondburned/dashmet/internal/badgerlog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// config is read from the environment (and a .env file, if any) first, then
// overridden by flags.
type config struct {
	Listen   string          `env:"DASHMET_LISTEN,default=:8080"`
	DBPath   string          `env:"DASHMET_DB"`
	Prefs    string          `env:"DASHMET_PREFS"`
	LogLevel badgerlog.Level `env:"DASHMET_LOG_LEVEL,default=warning"`
}

func loadConfig(ctx context.Context) config {
	// A missing .env file is fine.
	godotenv.Load()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.Fatalln("failed to process environment:", err)
	}

	p := func(v ...interface{}) { fmt.Fprintln(flag.CommandLine.Output(), v...) }
	flag.Usage = func() {
		p("Usage:")
		p("  dashmet-http [-db <bbolt path>] [-prefs <badger dir>] [http address]")
		p("")
		p("Without -db, mock data is shown. Without -prefs, themes are kept in memory.")
		p("")
		p("Flags:")
		flag.PrintDefaults()
		p("")
		p("Environment:")
		p("  DASHMET_LISTEN, DASHMET_DB, DASHMET_PREFS, DASHMET_LOG_LEVEL")
	}

	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "bbolt sample database path")
	flag.StringVar(&cfg.Prefs, "prefs", cfg.Prefs, "badger preferences directory")
	flag.Var(&cfg.LogLevel, "log", "badger log level: debug, info, warning, error or none")
	flag.Parse()

	if listen := flag.Arg(0); listen != "" {
		cfg.Listen = listen
	}

	return cfg
}

func main() {
	cfg := loadConfig(context.Background())

	var src dashmet.Source = dashmet.MockSource{}
	if cfg.DBPath != "" {
		src = dashmet.FileSource(cfg.DBPath)
	}

	prefs, err := dashmet.OpenPrefs(cfg.Prefs, cfg.LogLevel)
	if err != nil {
		log.Fatalln("failed to open preferences:", err)
	}
	defer prefs.Close()

	h := handler.New(handler.Config{
		Source:   src,
		Prefs:    prefs,
		DataPath: cfg.DBPath,
	})

	log.Println("listening at", cfg.Listen)

	if err := http.ListenAndServe(cfg.Listen, h); err != nil {
		log.Fatalln("failed to serve:", err)
	}
}
