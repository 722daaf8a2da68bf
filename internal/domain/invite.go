package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusDeclined InviteStatus = "DECLINED"
)

// Invite is keyed by (user, party); at most one row per pair.
type Invite struct {
	UserID    int32        `json:"user_id"`
	PartyID   int32        `json:"party_id"`
	Status    InviteStatus `json:"status"`
	CreatedOn time.Time    `json:"created_on"`
}

// Attendance marks confirmed membership in a party's attendee set.
// Presence of the row is the whole state.
type Attendance struct {
	UserID  int32 `json:"user_id"`
	PartyID int32 `json:"party_id"`
}
