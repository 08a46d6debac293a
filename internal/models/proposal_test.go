package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProposal_HasVoted(t *testing.T) {
	p := Proposal{Voters: []string{"2", "3"}}
	assert.True(t, p.HasVoted("2"))
	assert.False(t, p.HasVoted("1"))
	assert.False(t, Proposal{}.HasVoted("1"))
}

func TestProposal_Clone(t *testing.T) {
	now := time.Now()
	p := Proposal{ID: "a", Voters: []string{"2"}, UpdatedAt: &now}

	c := p.Clone()
	c.Voters[0] = "9"
	*c.UpdatedAt = now.Add(time.Hour)

	assert.Equal(t, "2", p.Voters[0])
	assert.Equal(t, now, *p.UpdatedAt)
	assert.NotNil(t, Proposal{}.Clone().Voters)
}

func TestFindUser(t *testing.T) {
	u, ok := FindUser("user1", "pass1")
	assert.True(t, ok)
	assert.Equal(t, "1", u.ID)

	_, ok = FindUser("user1", "wrong")
	assert.False(t, ok)
}
