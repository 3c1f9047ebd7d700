package models

import "time"

// Rating is feedback left by one participant of a completed swap about the
// other. At most one rating per (swap, rater) pair.
type Rating struct {
	ID            string    `json:"id"`
	SwapRequestID string    `json:"swap_request_id"`
	RaterID       string    `json:"rater_id"`
	RatedUserID   string    `json:"rated_user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
