// Package models holds the client-side view of the API's wire types plus
// the form snapshots the CLI edits.
package models

import "time"

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location,omitempty"`
	ProfilePhoto  string    `json:"profile_photo,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  string    `json:"availability,omitempty"`
	IsPublic      bool      `json:"is_public"`
	Role          string    `json:"role"`
	IsBanned      bool      `json:"is_banned"`
	RatingAverage float64   `json:"rating_average"`
	TotalSwaps    int       `json:"total_swaps"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserProfile is the detail payload of GET /api/users/:id.
type UserProfile struct {
	User        *User          `json:"user"`
	Ratings     []*Rating      `json:"ratings"`
	RecentSwaps []*SwapRequest `json:"recent_swaps"`
}

// ProfileUpdate is the partial-update payload of PUT /api/users/me.
// Nil pointers leave the field unchanged on the server.
type ProfileUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Bio           *string  `json:"bio,omitempty"`
	SkillsOffered []string `json:"skills_offered,omitempty"`
	SkillsWanted  []string `json:"skills_wanted,omitempty"`
	Availability  *string  `json:"availability,omitempty"`
	IsPublic      *bool    `json:"is_public,omitempty"`
}

// RegisterForm is what the registration prompt collects. Skill fields are
// free text and are comma-split before transmission.
type RegisterForm struct {
	Name          string
	Email         string
	Password      string
	Location      string
	Bio           string
	SkillsOffered string
	SkillsWanted  string
	Availability  string
}

// ProfileForm is the editable snapshot shown by the profile editor. Skills
// are comma-joined strings so the user can edit them as plain text.
type ProfileForm struct {
	Name          string
	Location      string
	Bio           string
	SkillsOffered string
	SkillsWanted  string
	Availability  string
	IsPublic      bool
}
