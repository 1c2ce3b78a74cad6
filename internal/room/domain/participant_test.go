package domain

import (
	"errors"
	"testing"
)

func TestCreateParticipant(t *testing.T) {
	idGen := func() (string, error) { return "participant-1", nil }

	participant, err := CreateParticipant(CreateParticipantInput{
		MeetingID:   "meeting-1",
		UserID:      "user-1",
		DisplayName: "  Amara Okafor  ",
		Role:        "chair",
	}, idGen)
	if err != nil {
		t.Fatalf("CreateParticipant() error = %v", err)
	}

	if participant.ID != "participant-1" {
		t.Errorf("ID = %q, want %q", participant.ID, "participant-1")
	}
	if participant.DisplayName != "Amara Okafor" {
		t.Errorf("DisplayName = %q, want trimmed name", participant.DisplayName)
	}
	if participant.Attendance != AttendanceExpected {
		t.Errorf("Attendance = %v, want expected", participant.Attendance)
	}
	if participant.Connection != ConnectionDisconnected {
		t.Errorf("Connection = %v, want disconnected", participant.Connection)
	}
}

func TestCreateParticipantValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateParticipantInput
		wantErr error
	}{
		{
			name:    "missing meeting id",
			input:   CreateParticipantInput{DisplayName: "Amara"},
			wantErr: ErrEmptyMeetingID,
		},
		{
			name:    "missing display name",
			input:   CreateParticipantInput{MeetingID: "meeting-1"},
			wantErr: ErrEmptyDisplayName,
		},
		{
			name:    "whitespace display name",
			input:   CreateParticipantInput{MeetingID: "meeting-1", DisplayName: "   "},
			wantErr: ErrEmptyDisplayName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateParticipant(tt.input, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateParticipant() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCountsTowardPresence(t *testing.T) {
	tests := []struct {
		name        string
		participant Participant
		want        bool
	}{
		{"joined member counts", Participant{Attendance: AttendanceJoined}, true},
		{"joined guest does not count", Participant{Attendance: AttendanceJoined, Guest: true}, false},
		{"waiting member does not count", Participant{Attendance: AttendanceWaiting}, false},
		{"expected member does not count", Participant{Attendance: AttendanceExpected}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.participant.CountsTowardPresence(); got != tt.want {
				t.Fatalf("CountsTowardPresence() = %v, want %v", got, tt.want)
			}
		})
	}
}
