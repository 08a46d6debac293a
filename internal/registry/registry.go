// Package registry implements the proposal registry: creating, editing,
// deleting and voting on proposals kept in a store.Store.
//
// Every operation holds the registry lock for its whole duration, so two
// calls never interleave against the same record.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
	"github.com/saxenaaman628/proposal-voting-system/internal/store"
)

type Registry struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
	newID func() string
}

type Option func(*Registry)

// WithClock replaces the default UTC microsecond clock as the source of created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithIDGenerator replaces random UUIDs as proposal ids.
func WithIDGenerator(newID func() string) Option {
	return func(r *Registry) { r.newID = newID }
}

// defaultClock is UTC, cut to the microsecond precision every
// store keeps, so a record reads back exactly as it was returned.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func New(s store.Store, opts ...Option) *Registry {
	r := &Registry{
		store: s,
		now:   defaultClock,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) GetProposals(ctx context.Context) ([]models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.store.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return all, nil
}

// ProposalsByOwner returns the proposals created by owner, in store order.
func (r *Registry) ProposalsByOwner(ctx context.Context, owner string) ([]models.Proposal, error) {
	all, err := r.GetProposals(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Proposal, 0)
	for _, p := range all {
		if p.Owner == owner {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *Registry) GetProposal(ctx context.Context, id string) (models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(ctx, id)
}

func (r *Registry) CreateProposal(ctx context.Context, caller, title, description string) (models.Proposal, error) {
	if caller == "" {
		return models.Proposal{}, ErrUnauthenticated
	}
	if err := validate(title, description); err != nil {
		return models.Proposal{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, ok, err := r.store.Get(ctx, id); err != nil {
		return models.Proposal{}, fmt.Errorf("check proposal id %s: %w", id, err)
	} else if ok {
		return models.Proposal{}, fmt.Errorf("generated proposal id %s already in use", id)
	}

	p := models.Proposal{
		ID:          id,
		Owner:       caller,
		Title:       title,
		Description: description,
		Voters:      []string{},
		CreatedAt:   r.now(),
	}
	if err := r.store.Insert(ctx, p); err != nil {
		return models.Proposal{}, fmt.Errorf("create proposal: %w", err)
	}

	slog.Info("proposal created", "id", p.ID, "owner", caller)
	return p, nil
}

func (r *Registry) VoteYes(ctx context.Context, caller, id string) (models.Proposal, error) {
	return r.vote(ctx, caller, id, true)
}

func (r *Registry) VoteNo(ctx context.Context, caller, id string) (models.Proposal, error) {
	return r.vote(ctx, caller, id, false)
}

func (r *Registry) vote(ctx context.Context, caller, id string, yes bool) (models.Proposal, error) {
	if caller == "" {
		return models.Proposal{}, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(ctx, id)
	if err != nil {
		return models.Proposal{}, err
	}
	if p.Owner == caller {
		return models.Proposal{}, fmt.Errorf("%w: owner cannot vote on own proposal", ErrForbidden)
	}
	if p.HasVoted(caller) {
		return models.Proposal{}, ErrAlreadyVoted
	}

	p.Voters = append(p.Voters, caller)
	if yes {
		p.YesVotes++
	} else {
		p.NoVotes++
	}
	now := r.now()
	p.UpdatedAt = &now

	if err := r.store.Insert(ctx, p); err != nil {
		return models.Proposal{}, fmt.Errorf("record vote on %s: %w", id, err)
	}

	slog.Info("vote recorded", "id", id, "voter", caller, "yes", yes)
	return p, nil
}

// UpdateProposal replaces title and description. Both must be non-empty,
// the same rule CreateProposal applies.
func (r *Registry) UpdateProposal(ctx context.Context, caller, id, title, description string) (models.Proposal, error) {
	if caller == "" {
		return models.Proposal{}, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(ctx, id)
	if err != nil {
		return models.Proposal{}, err
	}
	if p.Owner != caller {
		return models.Proposal{}, fmt.Errorf("%w: only the owner can update a proposal", ErrForbidden)
	}
	if err := validate(title, description); err != nil {
		return models.Proposal{}, err
	}

	p.Title = title
	p.Description = description
	now := r.now()
	p.UpdatedAt = &now

	if err := r.store.Insert(ctx, p); err != nil {
		return models.Proposal{}, fmt.Errorf("update proposal %s: %w", id, err)
	}

	slog.Info("proposal updated", "id", id, "owner", caller)
	return p, nil
}

// DeleteProposal removes the proposal whoever the caller is. Unlike
// UpdateProposal it performs no ownership check.
func (r *Registry) DeleteProposal(ctx context.Context, caller, id string) (models.Proposal, error) {
	if caller == "" {
		return models.Proposal{}, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok, err := r.store.Remove(ctx, id)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("delete proposal %s: %w", id, err)
	}
	if !ok {
		return models.Proposal{}, ErrNotFound
	}

	slog.Info("proposal deleted", "id", id, "owner", p.Owner, "deleted_by", caller)
	return p, nil
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(ctx context.Context, id string) (models.Proposal, error) {
	p, ok, err := r.store.Get(ctx, id)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("fetch proposal %s: %w", id, err)
	}
	if !ok {
		return models.Proposal{}, ErrNotFound
	}
	return p, nil
}

func validate(title, description string) error {
	if title == "" || description == "" {
		return ErrInvalidInput
	}
	return nil
}
