package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/ai-interviewer/internal/cli"
	"alfredoptarigan/ai-interviewer/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if err := cli.Execute(ctx, cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
