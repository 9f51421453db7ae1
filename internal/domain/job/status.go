package job

import "errors"

var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

// statusTransitions is the lifecycle table. Closed and expired are terminal;
// an employer may pause (inactive) and resume a posting.
var statusTransitions = map[Status][]Status{
	StatusDraft:    {StatusActive},
	StatusActive:   {StatusClosed, StatusInactive, StatusExpired},
	StatusInactive: {StatusActive, StatusClosed},
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed, StatusInactive, StatusExpired:
		return true
	}
	return false
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// CanTransition only allows pending -> approved|rejected. A decision is final:
// there is no path back to pending and no flipping between outcomes.
func (s ApprovalStatus) CanTransition(to ApprovalStatus) bool {
	if s != ApprovalPending {
		return false
	}
	return to == ApprovalApproved || to == ApprovalRejected
}
