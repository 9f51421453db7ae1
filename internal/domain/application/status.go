package application

import "errors"

var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// transitions encodes the review funnel. Accepted, rejected and withdrawn
// are terminal; in particular accepted can never go back to pending.
var transitions = map[Status][]Status{
	StatusPending:     {StatusShortlisted, StatusInterview, StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusShortlisted: {StatusInterview, StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusInterview:   {StatusAccepted, StatusRejected, StatusWithdrawn},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusInterview, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
