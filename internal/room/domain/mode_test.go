package domain

import "testing"

func joined(conn ConnectionStatus, guest bool) Participant {
	return Participant{
		Attendance: AttendanceJoined,
		Connection: conn,
		Guest:      guest,
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		participants []Participant
		previous     Mode
		want         Mode
	}{
		{
			name: "all in room is physical",
			participants: []Participant{
				joined(ConnectionInRoom, false),
				joined(ConnectionInRoom, false),
			},
			previous: ModePhysical,
			want:     ModePhysical,
		},
		{
			name: "all remote is virtual",
			participants: []Participant{
				joined(ConnectionConnected, false),
				joined(ConnectionConnecting, false),
			},
			previous: ModePhysical,
			want:     ModeVirtual,
		},
		{
			name: "mixed presence is hybrid",
			participants: []Participant{
				joined(ConnectionInRoom, false),
				joined(ConnectionConnected, false),
			},
			previous: ModePhysical,
			want:     ModeHybrid,
		},
		{
			name: "connecting counts as virtual presence",
			participants: []Participant{
				joined(ConnectionInRoom, false),
				joined(ConnectionConnecting, false),
			},
			previous: ModePhysical,
			want:     ModeHybrid,
		},
		{
			name: "nobody joined retains previous mode",
			participants: []Participant{
				{Attendance: AttendanceExpected, Connection: ConnectionDisconnected},
				{Attendance: AttendanceWaiting, Connection: ConnectionConnected},
			},
			previous: ModeHybrid,
			want:     ModeHybrid,
		},
		{
			name:         "empty roster retains previous mode",
			participants: nil,
			previous:     ModeVirtual,
			want:         ModeVirtual,
		},
		{
			name: "disconnected joined participants do not flip the mode",
			participants: []Participant{
				joined(ConnectionDisconnected, false),
			},
			previous: ModePhysical,
			want:     ModePhysical,
		},
		{
			name: "guests are excluded from the derivation",
			participants: []Participant{
				joined(ConnectionInRoom, false),
				joined(ConnectionConnected, true),
			},
			previous: ModePhysical,
			want:     ModePhysical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.participants, tt.previous)
			if got != tt.want {
				t.Fatalf("ResolveMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModePhysical, "physical"},
		{ModeVirtual, "virtual"},
		{ModeHybrid, "hybrid"},
		{ModeUnspecified, "unspecified"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
