package domain

import "testing"

func TestComputeQuorum(t *testing.T) {
	member := func(attendance AttendanceStatus) Participant {
		return Participant{Attendance: attendance}
	}
	guest := func(attendance AttendanceStatus) Participant {
		return Participant{Attendance: attendance, Guest: true}
	}

	tests := []struct {
		name         string
		participants []Participant
		percent      int
		wantPresent  int
		wantExpected int
		wantRequired int
		wantMet      bool
	}{
		{
			name: "five members at fifty percent need three",
			participants: []Participant{
				member(AttendanceJoined),
				member(AttendanceJoined),
				member(AttendanceExpected),
				member(AttendanceExpected),
				member(AttendanceExpected),
			},
			percent:      50,
			wantPresent:  2,
			wantExpected: 5,
			wantRequired: 3,
			wantMet:      false,
		},
		{
			name: "third member joining meets quorum",
			participants: []Participant{
				member(AttendanceJoined),
				member(AttendanceJoined),
				member(AttendanceJoined),
				member(AttendanceExpected),
				member(AttendanceExpected),
			},
			percent:      50,
			wantPresent:  3,
			wantExpected: 5,
			wantRequired: 3,
			wantMet:      true,
		},
		{
			name: "guests count toward neither side",
			participants: []Participant{
				member(AttendanceJoined),
				guest(AttendanceJoined),
				guest(AttendanceExpected),
			},
			percent:      100,
			wantPresent:  1,
			wantExpected: 1,
			wantRequired: 1,
			wantMet:      true,
		},
		{
			name: "waiting participants are expected but not present",
			participants: []Participant{
				member(AttendanceWaiting),
				member(AttendanceWaiting),
			},
			percent:      50,
			wantPresent:  0,
			wantExpected: 2,
			wantRequired: 1,
			wantMet:      false,
		},
		{
			name:         "empty roster trivially meets quorum",
			participants: nil,
			percent:      50,
			wantPresent:  0,
			wantExpected: 0,
			wantRequired: 0,
			wantMet:      true,
		},
		{
			name: "rounding goes up not down",
			participants: []Participant{
				member(AttendanceJoined),
				member(AttendanceExpected),
				member(AttendanceExpected),
			},
			percent:      34,
			wantPresent:  1,
			wantExpected: 3,
			wantRequired: 2,
			wantMet:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuorum(tt.participants, tt.percent)
			if got.PresentCount != tt.wantPresent {
				t.Errorf("PresentCount = %d, want %d", got.PresentCount, tt.wantPresent)
			}
			if got.ExpectedCount != tt.wantExpected {
				t.Errorf("ExpectedCount = %d, want %d", got.ExpectedCount, tt.wantExpected)
			}
			if got.RequiredCount != tt.wantRequired {
				t.Errorf("RequiredCount = %d, want %d", got.RequiredCount, tt.wantRequired)
			}
			if got.Met != tt.wantMet {
				t.Errorf("Met = %v, want %v", got.Met, tt.wantMet)
			}
		})
	}
}
