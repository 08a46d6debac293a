package models

import "time"

type Proposal struct {
	ID          string     `json:"id"` // UUID
	Owner       string     `json:"owner"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Voters      []string   `json:"voters"`
	YesVotes    int64      `json:"yes_votes"`
	NoVotes     int64      `json:"no_votes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// HasVoted reports whether user already voted yes or no.
func (p Proposal) HasVoted(user string) bool {
	for _, v := range p.Voters {
		if v == user {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with p.
func (p Proposal) Clone() Proposal {
	out := p
	out.Voters = append([]string(nil), p.Voters...)
	if out.Voters == nil {
		out.Voters = []string{}
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
