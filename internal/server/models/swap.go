package models

import "time"

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted out of s.
func (s SwapStatus) Terminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// Valid reports whether s is one of the five known statuses.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected,
		SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// SwapRequest is a proposal by the requester to exchange a skill with the
// target user. The status moves one way only:
//
//	pending -> accepted -> completed
//	pending -> rejected
//	pending -> cancelled
type SwapRequest struct {
	ID             string     `json:"id"`
	RequesterID    string     `json:"requester_id"`
	TargetUserID   string     `json:"target_user_id"`
	RequestedSkill string     `json:"requested_skill"`
	OfferedSkill   string     `json:"offered_skill"`
	Message        string     `json:"message,omitempty"`
	Status         SwapStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CanTransition reports whether the actor identified by userID may move the
// request from its current status to next. This is the single authority for
// the lifecycle table; handlers and services delegate to it.
func (r *SwapRequest) CanTransition(next SwapStatus, userID string) bool {
	switch next {
	case SwapStatusAccepted, SwapStatusRejected:
		return r.Status == SwapStatusPending && r.TargetUserID == userID
	case SwapStatusCancelled:
		return r.Status == SwapStatusPending && r.RequesterID == userID
	case SwapStatusCompleted:
		return r.Status == SwapStatusAccepted &&
			(r.RequesterID == userID || r.TargetUserID == userID)
	}
	return false
}
