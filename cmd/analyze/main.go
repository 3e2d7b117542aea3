package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"ChartsAgent/internal/domain/models"
	"ChartsAgent/internal/handler/cli"
	"ChartsAgent/internal/usecase"
	"ChartsAgent/pkg/config"
	"ChartsAgent/pkg/logger"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "optional config file path")
	flag.Parse()

	// Load config (pure defaults when no file is given)
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Logs go to stderr by default; stdout carries only the JSON result.
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 {
		exitWith(models.MalformedRequest("no candle data provided; usage: analyze '<json candle array>'"))
	}

	handler := cli.NewAnalyzeHandler(l, usecase.NewAnalyzer(l, cfg))
	body, appErr := handler.Handle([]byte(args[0]))
	if appErr != nil {
		l.Error("analysis failed", logger.Error(appErr))
		exitWith(appErr)
	}

	fmt.Println(string(body))
}

// exitWith prints the structured failure payload on stdout and exits
// non-zero, so callers can rely on both the payload and the status code.
func exitWith(appErr *models.AppError) {
	body, err := json.Marshal(appErr)
	if err != nil {
		fmt.Printf("{\"error\":%q,\"type\":%q}\n", appErr.Message, appErr.Kind)
		os.Exit(1)
	}
	fmt.Println(string(body))
	os.Exit(1)
}
