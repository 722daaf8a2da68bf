package domain

import "time"

type Party struct {
	ID          int32     `json:"id"`
	Title       string    `json:"title"`
	Platform    string    `json:"platform"`
	DateTime    time.Time `json:"date_time"`
	Description string    `json:"description"`
	CreatorID   int32     `json:"creator_id"`
	Attendees   []User    `json:"attendees,omitempty"` // Populated when needed
	CreatedOn   time.Time `json:"created_on"`
}

// PartyUpdate carries a partial update; nil fields are left untouched.
type PartyUpdate struct {
	Title       *string    `json:"title"`
	Platform    *string    `json:"platform"`
	DateTime    *time.Time `json:"date_time"`
	Description *string    `json:"description"`
}
