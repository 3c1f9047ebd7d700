package models

import "time"

// SwapStatus mirrors the server's lifecycle states.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

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

type Rating struct {
	ID            string    `json:"id"`
	SwapRequestID string    `json:"swap_request_id"`
	RaterID       string    `json:"rater_id"`
	RatedUserID   string    `json:"rated_user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
