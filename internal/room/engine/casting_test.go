package engine

import (
	"context"
	"testing"

	apperrors "github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

func TestStartCasting(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()

	if err := room.engine.StartCasting(ctx, chairCaller(), "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}

	casting := room.engine.Snapshot().Session.Casting
	if casting == nil {
		t.Fatal("no casting state after StartCasting")
	}
	if casting.DocumentID != "doc-1" || casting.Page != 1 {
		t.Errorf("casting = %+v, want doc-1 at page 1", casting)
	}
	if casting.CasterID != "p-chair" || casting.CasterName != "Chair" {
		t.Errorf("caster = %s (%s), want the chair", casting.CasterID, casting.CasterName)
	}
}

func TestStartCastingExclusive(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()

	if err := room.engine.StartCasting(ctx, chairCaller(), "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}

	err := room.engine.StartCasting(ctx, memberCaller("p-m1"), "doc-2")
	wantCode(t, err, apperrors.CodeRoomAlreadyCasting)
	if meta := apperrors.GetMetadata(err); meta["CasterName"] != "Chair" {
		t.Errorf("metadata = %v, want CasterName=Chair", meta)
	}

	// The first cast is untouched by the rejected second one.
	if got := room.engine.Snapshot().Session.Casting.DocumentID; got != "doc-1" {
		t.Errorf("casting document = %s, want doc-1", got)
	}
}

func TestStartCastingPhysicalMode(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	ctx := context.Background()

	// All presence is in-room, so the session is physical and there is no
	// virtual surface to cast onto.
	if err := room.engine.UpdatePresence(ctx, PresenceUpdate{ParticipantID: "p-chair", Connection: domain.ConnectionInRoom}); err != nil {
		t.Fatalf("UpdatePresence() error = %v", err)
	}

	err := room.engine.StartCasting(ctx, chairCaller(), "doc-1")
	wantCode(t, err, apperrors.CodeRoomForbidden)
}

func TestStartCastingCollaboratorFailure(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()

	room.documents.err = apperrors.New(apperrors.CodeCollaboratorFailure, "document service down")

	err := room.engine.StartCasting(ctx, chairCaller(), "doc-1")
	wantCode(t, err, apperrors.CodeCollaboratorFailure)
	if room.engine.Snapshot().Session.Casting != nil {
		t.Error("failed resolve left casting state behind")
	}
}

func TestStopCasting(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()

	if err := room.engine.StartCasting(ctx, memberCaller("p-m1"), "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}

	// Another member without the stop permission cannot stop someone
	// else's cast.
	wantCode(t, room.engine.StopCasting(ctx, memberCaller("p-m2")), apperrors.CodeRoomForbidden)

	// The caster always can.
	if err := room.engine.StopCasting(ctx, memberCaller("p-m1")); err != nil {
		t.Fatalf("StopCasting() by caster error = %v", err)
	}
	if room.engine.Snapshot().Session.Casting != nil {
		t.Error("casting state remains after stop")
	}

	wantCode(t, room.engine.StopCasting(ctx, memberCaller("p-m1")), apperrors.CodeRoomInvalidState)
}

func TestStopCastingByPrivilegedCaller(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()

	if err := room.engine.StartCasting(ctx, memberCaller("p-m1"), "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}
	if err := room.engine.StopCasting(ctx, chairCaller()); err != nil {
		t.Fatalf("StopCasting() by chair error = %v", err)
	}
}

func TestNavigatePage(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)
	room.goHybrid(t)
	ctx := context.Background()
	caster := memberCaller("p-m1")

	if err := room.engine.StartCasting(ctx, caster, "doc-1"); err != nil {
		t.Fatalf("StartCasting() error = %v", err)
	}

	// Out-of-range requests clamp instead of failing.
	if err := room.engine.NavigatePage(ctx, caster, 99); err != nil {
		t.Fatalf("NavigatePage(99) error = %v", err)
	}
	if got := room.engine.Snapshot().Session.Casting.Page; got != 10 {
		t.Fatalf("page = %d, want clamped to 10", got)
	}

	// Only the caster steers the pages.
	wantCode(t, room.engine.NavigatePage(ctx, chairCaller(), 3), apperrors.CodeRoomForbidden)

	// A navigation landing on the current page stays silent.
	subID, changes := room.engine.Subscribe()
	defer room.engine.Unsubscribe(subID)
	if err := room.engine.NavigatePage(ctx, caster, 15); err != nil {
		t.Fatalf("NavigatePage(15) error = %v", err)
	}
	if got := drain(changes); len(got) != 0 {
		t.Fatalf("no-op navigation notified %d times", len(got))
	}
}

func TestNavigatePageWithoutCast(t *testing.T) {
	room := newTestRoom(t)
	room.startSession(t)

	err := room.engine.NavigatePage(context.Background(), chairCaller(), 2)
	wantCode(t, err, apperrors.CodeRoomInvalidState)
}
