// Package main seeds a local sqlite database with a demo meeting.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/MochamaB/eboard/internal/cmd/seed"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SEED] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	meetingID, err := seedcmd.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded meeting %s", meetingID)
}
