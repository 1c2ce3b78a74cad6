package engine

import (
	"context"
	"testing"

	apperrors "github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

func TestStartRequiresQuorum(t *testing.T) {
	room := newTestRoom(t)
	ctx := context.Background()
	chair := chairCaller()

	// Only the chair is admitted: one of four members present, two required.
	if err := room.engine.Admit(ctx, chair, "p-chair"); err != nil {
		t.Fatalf("Admit() error = %v", err)
	}

	err := room.engine.Start(ctx, chair)
	wantCode(t, err, apperrors.CodeRoomQuorumNotMet)

	meta := apperrors.GetMetadata(err)
	if meta["Present"] != "1" || meta["Required"] != "2" {
		t.Errorf("quorum metadata = %v, want Present=1 Required=2", meta)
	}
	if got := room.engine.Snapshot().Session.Status; got != domain.StatusWaiting {
		t.Errorf("status after failed start = %v, want waiting", got)
	}
}

func TestStartQuorumCheckedBeforeCapability(t *testing.T) {
	room := newTestRoom(t)
	ctx := context.Background()

	// A member without the start permission, with quorum not met: the
	// missing quorum wins over the missing capability.
	err := room.engine.Start(ctx, memberCaller("p-m1"))
	wantCode(t, err, apperrors.CodeRoomQuorumNotMet)
}

func TestStartRequiresCapability(t *testing.T) {
	room := newTestRoom(t)
	ctx := context.Background()
	chair := chairCaller()

	if err := room.engine.Admit(ctx, chair, "p-m1"); err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if err := room.engine.Admit(ctx, chair, "p-m2"); err != nil {
		t.Fatalf("Admit() error = %v", err)
	}

	err := room.engine.Start(ctx, memberCaller("p-m1"))
	wantCode(t, err, apperrors.CodeRoomForbidden)
}

func TestStartIsAtomic(t *testing.T) {
	room := newTestRoom(t)
	subID, changes := room.engine.Subscribe()
	defer room.engine.Unsubscribe(subID)

	room.startSession(t)

	for {
		select {
		case n := <-changes:
			status := n.Snapshot.Session.Status
			if status == domain.StatusStarting || status == domain.StatusEnding {
				t.Fatalf("subscriber observed pass-through status %v", status)
			}
			if n.Event == EventSessionStarted {
				if status != domain.StatusInProgress {
					t.Fatalf("started notification carries status %v, want in_progress", status)
				}
				if n.Snapshot.Session.StartedAt == nil {
					t.Fatal("started notification carries no StartedAt")
				}
				return
			}
		default:
			t.Fatal("no session.started notification received")
		}
	}
}

func TestStartFromRunningSession(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)

	err := room.engine.Start(context.Background(), chairCaller())
	wantCode(t, err, apperrors.CodeRoomInvalidTransition)
}

func TestPauseResume(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	ctx := context.Background()
	chair := chairCaller()

	if err := room.engine.Pause(ctx, chair); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if got := room.engine.Snapshot().Session.Status; got != domain.StatusPaused {
		t.Fatalf("status = %v, want paused", got)
	}

	// Pausing a paused session is an invalid transition, not idempotent.
	wantCode(t, room.engine.Pause(ctx, chair), apperrors.CodeRoomInvalidTransition)

	if err := room.engine.Resume(ctx, chair); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if got := room.engine.Snapshot().Session.Status; got != domain.StatusInProgress {
		t.Fatalf("status = %v, want in_progress", got)
	}
}

func TestPauseRequiresCapability(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)

	err := room.engine.Pause(context.Background(), memberCaller("p-m1"))
	wantCode(t, err, apperrors.CodeRoomForbidden)
}

func TestEndClearsLiveSubState(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()
	chair := chairCaller()

	if err := room.engine.StartCasting(ctx, chair, "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}
	if _, err := room.engine.CreateVote(ctx, chair, "Approve the budget"); err != nil {
		t.Fatalf("CreateVote() error = %v", err)
	}

	if err := room.engine.End(ctx, chair); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	snapshot := room.engine.Snapshot()
	if snapshot.Session.Status != domain.StatusEnded {
		t.Errorf("status = %v, want ended", snapshot.Session.Status)
	}
	if snapshot.Session.Casting != nil {
		t.Error("casting not released on end")
	}
	if snapshot.Session.ActiveVote != nil {
		t.Error("active vote handle not released on end")
	}
	if snapshot.Session.EndedAt == nil {
		t.Error("EndedAt not stamped on end")
	}
}

func TestEndIsIdempotent(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	ctx := context.Background()
	chair := chairCaller()

	if err := room.engine.End(ctx, chair); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := room.engine.End(ctx, chair); err != nil {
		t.Fatalf("End() on ended session error = %v, want nil", err)
	}
}

func TestEndFromWaiting(t *testing.T) {
	room := newTestRoom(t)

	err := room.engine.End(context.Background(), chairCaller())
	wantCode(t, err, apperrors.CodeRoomInvalidTransition)
}

func TestEndedSessionFreezesActions(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()
	chair := chairCaller()

	if err := room.engine.End(ctx, chair); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	wantCode(t, room.engine.StartCasting(ctx, chair, "doc-1"), apperrors.CodeRoomSessionEnded)
	wantCode(t, room.engine.Admit(ctx, chair, "p-sec"), apperrors.CodeRoomSessionEnded)
	wantCode(t, room.engine.NavigateToItem(ctx, chair, "item-1"), apperrors.CodeRoomSessionEnded)
	_, err := room.engine.CreateVote(ctx, chair, "Late motion")
	wantCode(t, err, apperrors.CodeRoomSessionEnded)
	_, err = room.engine.RecordMinute(ctx, secretaryCaller(), "late entry")
	wantCode(t, err, apperrors.CodeRoomSessionEnded)
}
