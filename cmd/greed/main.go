// Package main provides the greed scoring CLI.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/greed/internal/platform/config"
	"github.com/louisbranch/greed/internal/tools/score"
)

func main() {
	cfg, err := score.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[GREED] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := score.Run(ctx, cfg, os.Stdout, nil); err != nil {
		config.Exitf("score: %v", err)
	}
}
