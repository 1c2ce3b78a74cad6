// Package seed populates a sqlite database with a demo meeting so a room
// can be opened against it locally.
package seed

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/MochamaB/eboard/internal/platform/cmd"
	"github.com/MochamaB/eboard/internal/platform/id"
	"github.com/MochamaB/eboard/internal/storage"
	"github.com/MochamaB/eboard/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath    string `env:"EBOARD_ROOM_DB_PATH" envDefault:"eboard.db"`
	MeetingID string `env:"EBOARD_ROOM_MEETING_ID"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.MeetingID, "meeting", cfg.MeetingID, "meeting id to seed (default: generated)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the demo meeting and returns its id.
func Run(ctx context.Context, cfg Config) (string, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	meetingID := cfg.MeetingID
	if meetingID == "" {
		meetingID, err = id.NewID()
		if err != nil {
			return "", fmt.Errorf("generate meeting id: %w", err)
		}
	}

	now := time.Now().UTC()
	meeting := storage.MeetingRecord{
		ID:            meetingID,
		Title:         "Q3 Board Meeting",
		Location:      "Boardroom A",
		ScheduledAt:   now.Add(time.Hour),
		QuorumPercent: 50,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.PutMeeting(ctx, meeting); err != nil {
		return "", fmt.Errorf("seed meeting: %w", err)
	}

	roster := []struct {
		name  string
		role  string
		guest bool
	}{
		{"Amara Okafor", "chair", false},
		{"Daniel Kimani", "secretary", false},
		{"Grace Wanjiru", "member", false},
		{"Peter Otieno", "member", false},
		{"Lucy Njeri", "member", false},
		{"External Auditor", "observer", true},
	}
	for _, entry := range roster {
		participantID, err := id.NewID()
		if err != nil {
			return "", fmt.Errorf("generate participant id: %w", err)
		}
		userID, err := id.NewID()
		if err != nil {
			return "", fmt.Errorf("generate user id: %w", err)
		}
		record := storage.ParticipantRecord{
			ID:          participantID,
			MeetingID:   meetingID,
			UserID:      userID,
			DisplayName: entry.name,
			Role:        entry.role,
			Guest:       entry.guest,
			CreatedAt:   now,
		}
		if err := store.PutParticipant(ctx, record); err != nil {
			return "", fmt.Errorf("seed participant: %w", err)
		}
	}

	agenda := []string{
		"Approval of previous minutes",
		"Financial report",
		"Strategic plan review",
		"Any other business",
	}
	for i, title := range agenda {
		itemID, err := id.NewID()
		if err != nil {
			return "", fmt.Errorf("generate agenda item id: %w", err)
		}
		record := storage.AgendaItemRecord{
			ID:        itemID,
			MeetingID: meetingID,
			Title:     title,
			Presenter: "Amara Okafor",
			Position:  i + 1,
			Status:    "pending",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutAgendaItem(ctx, record); err != nil {
			return "", fmt.Errorf("seed agenda item: %w", err)
		}
	}

	documents := []struct {
		name         string
		pages        int
		confidential bool
	}{
		{"FY2026 Financial Report.pdf", 24, true},
		{"Strategic Plan 2027.pdf", 12, false},
	}
	for _, doc := range documents {
		docID, err := id.NewID()
		if err != nil {
			return "", fmt.Errorf("generate document id: %w", err)
		}
		record := storage.DocumentRecord{
			ID:           docID,
			MeetingID:    meetingID,
			Name:         doc.name,
			Type:         "pdf",
			PageCount:    doc.pages,
			Confidential: doc.confidential,
			Watermark:    doc.confidential,
			CreatedAt:    now,
		}
		if err := store.PutDocument(ctx, record); err != nil {
			return "", fmt.Errorf("seed document: %w", err)
		}
	}

	return meetingID, nil
}
