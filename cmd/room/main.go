// Package main starts the live meeting room service and handles termination.
//
// The process hosts one meeting's session engine behind its realtime sync
// boundary; meeting preparation and post-meeting workflows stay with their
// own services.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	roomcmd "github.com/MochamaB/eboard/internal/cmd/room"
)

func main() {
	cfg, err := roomcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ROOM] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := roomcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
