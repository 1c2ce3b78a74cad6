// Package room parses room command flags and composes the live session
// service for one meeting.
package room

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/MochamaB/eboard/internal/platform/cmd"
	"github.com/MochamaB/eboard/internal/room/app"
)

// Config holds room command configuration.
type Config struct {
	DBPath      string `env:"EBOARD_ROOM_DB_PATH"      envDefault:"eboard.db"`
	MeetingID   string `env:"EBOARD_ROOM_MEETING_ID"`
	TokenSecret string `env:"EBOARD_ROOM_TOKEN_SECRET"`
	SyncBuffer  int    `env:"EBOARD_ROOM_SYNC_BUFFER"  envDefault:"64"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.MeetingID, "meeting", cfg.MeetingID, "meeting id to open a room for")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "secret for validating room access tokens")
	fs.IntVar(&cfg.SyncBuffer, "sync-buffer", cfg.SyncBuffer, "realtime sync channel buffer size")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.MeetingID == "" {
		return Config{}, fmt.Errorf("meeting id is required")
	}
	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("room token secret is required")
	}
	return cfg, nil
}

// Run opens the room and pumps its sync gateway until shutdown.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoom, func(ctx context.Context) error {
		room, err := app.Open(ctx, app.Config{
			DBPath:      cfg.DBPath,
			MeetingID:   cfg.MeetingID,
			TokenSecret: cfg.TokenSecret,
			SyncBuffer:  cfg.SyncBuffer,
		})
		if err != nil {
			return fmt.Errorf("open room: %w", err)
		}
		defer func() {
			if err := room.Close(); err != nil {
				log.Printf("close room: %v", err)
			}
		}()

		if err := room.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("run room: %w", err)
		}
		return nil
	})
}
