package main

import (
	"log/slog"
	"os"

	"ratein-backend/config"
	"ratein-backend/controller"
	"ratein-backend/router"
	"ratein-backend/service/assistant"
	"ratein-backend/service/chat"
	"ratein-backend/service/summarization"
	"ratein-backend/service/vision"
	"ratein-backend/store"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	visionClient, err := vision.NewClient()
	if err != nil {
		slog.Error("Failed to create vision client", "err", err)
		os.Exit(1)
	}

	orchestrator := chat.NewOrchestrator(assistant.NewClient(), visionClient, store.Sessions)
	controller.Init(orchestrator)

	if err := summarization.Init(); err != nil {
		slog.Error("Failed to init summarizer", "err", err)
		os.Exit(1)
	}
	summarization.SummarizerInstance.Run()

	r := router.Register()
	addr := ":" + config.Cfg.Server.Port
	slog.Info("Starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server exited", "err", err)
		os.Exit(1)
	}
}
