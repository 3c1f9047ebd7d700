// Package models contains the server-side domain structures persisted in
// Postgres and serialized on the REST surface.
package models

import "time"

// User is a member of the skill-exchange platform. PasswordHash never
// leaves the server.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
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

// UserUpdate carries the mutable profile fields for PUT /api/users/me.
// Nil pointers mean "leave unchanged".
type UserUpdate struct {
	Name          *string  `json:"name"`
	Location      *string  `json:"location"`
	Bio           *string  `json:"bio"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  *string  `json:"availability"`
	IsPublic      *bool    `json:"is_public"`
}

// UserProfile is the detail view returned by GET /api/users/:id.
type UserProfile struct {
	User        *User          `json:"user"`
	Ratings     []*Rating      `json:"ratings"`
	RecentSwaps []*SwapRequest `json:"recent_swaps"`
}
