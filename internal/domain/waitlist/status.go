package waitlist

import "github.com/apexcricket/academy-api/internal/httperr"

// ===============================
// Waitlist Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusContacted Status = "contacted"
	StatusRejected  Status = "rejected"
)

// transitions is the only place allowed edges are defined. Rejected and
// contacted have no outgoing edges.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusContacted},
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusContacted, StatusRejected:
		return true
	}
	return false
}

// CanTransition guards every status write, not just the buttons the admin
// UI happens to show.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}
