package domain

// Quorum holds the derived presence counts for the session. The fields are
// recomputed after every registry mutation; nothing outside ComputeQuorum
// writes them.
type Quorum struct {
	PresentCount  int
	ExpectedCount int
	RequiredCount int
	Met           bool
}

// ComputeQuorum derives quorum state from the roster and the configured
// quorum percentage. Present counts joined non-guests of either connection
// flavor; expected counts every non-guest on the roster. Guests never count
// toward either side of the ratio.
func ComputeQuorum(participants []Participant, percent int) Quorum {
	var present, expected int
	for _, p := range participants {
		if p.Guest {
			continue
		}
		switch p.Attendance {
		case AttendanceExpected, AttendanceWaiting, AttendanceJoined:
			expected++
		}
		if p.Attendance == AttendanceJoined {
			present++
		}
	}

	required := (expected*percent + 99) / 100
	return Quorum{
		PresentCount:  present,
		ExpectedCount: expected,
		RequiredCount: required,
		Met:           present >= required,
	}
}
