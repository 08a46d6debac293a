package redishandler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
	"github.com/saxenaaman628/proposal-voting-system/internal/store"
)

const (
	proposalPrefix = "proposal:"
	indexKey       = "proposals:index" // zset of ids scored by insertion sequence
	seqKey         = "proposals:seq"
)

var _ store.Store = (*ProposalStore)(nil)

// proposalHash is the flat layout of a proposal hash. Voters live in a
// separate list under proposal:<id>:voters.
type proposalHash struct {
	ID          string `mapstructure:"id"`
	Owner       string `mapstructure:"owner"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	YesVotes    int64  `mapstructure:"yes_votes"`
	NoVotes     int64  `mapstructure:"no_votes"`
	CreatedAt   string `mapstructure:"created_at"`
	UpdatedAt   string `mapstructure:"updated_at"`
}

type ProposalStore struct {
	rdb *redis.Client
}

func NewProposalStore(rdb *redis.Client) *ProposalStore {
	return &ProposalStore{rdb: rdb}
}

func proposalKey(id string) string { return proposalPrefix + id }

func votersKey(id string) string { return proposalPrefix + id + ":voters" }

func (s *ProposalStore) Get(ctx context.Context, id string) (models.Proposal, bool, error) {
	pipe := s.rdb.Pipeline()
	hash := pipe.HGetAll(ctx, proposalKey(id))
	voters := pipe.LRange(ctx, votersKey(id), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Proposal{}, false, fmt.Errorf("fetch proposal %s: %w", id, err)
	}
	if len(hash.Val()) == 0 {
		return models.Proposal{}, false, nil
	}

	p, err := decodeProposal(hash.Val(), voters.Val())
	if err != nil {
		return models.Proposal{}, false, err
	}
	return p, true, nil
}

// Insert rewrites the hash and voter list in one MULTI/EXEC. A first insert
// appends the id to the index; later ones keep its position.
func (s *ProposalStore) Insert(ctx context.Context, p models.Proposal) error {
	score, err := s.rdb.ZScore(ctx, indexKey, p.ID).Result()
	if errors.Is(err, redis.Nil) {
		seq, err := s.rdb.Incr(ctx, seqKey).Result()
		if err != nil {
			return fmt.Errorf("allocate sequence for proposal %s: %w", p.ID, err)
		}
		score = float64(seq)
	} else if err != nil {
		return fmt.Errorf("look up proposal %s in index: %w", p.ID, err)
	}

	fields := map[string]interface{}{
		"id":          p.ID,
		"owner":       p.Owner,
		"title":       p.Title,
		"description": p.Description,
		"yes_votes":   p.YesVotes,
		"no_votes":    p.NoVotes,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	if p.UpdatedAt != nil {
		fields["updated_at"] = p.UpdatedAt.Format(time.RFC3339Nano)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, proposalKey(p.ID), votersKey(p.ID))
	pipe.HSet(ctx, proposalKey(p.ID), fields)
	if len(p.Voters) > 0 {
		voters := make([]interface{}, len(p.Voters))
		for i, v := range p.Voters {
			voters[i] = v
		}
		pipe.RPush(ctx, votersKey(p.ID), voters...)
	}
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: score, Member: p.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save proposal %s: %w", p.ID, err)
	}
	return nil
}

func (s *ProposalStore) Remove(ctx context.Context, id string) (models.Proposal, bool, error) {
	p, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		return models.Proposal{}, false, err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, proposalKey(id), votersKey(id))
	pipe.ZRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Proposal{}, false, fmt.Errorf("delete proposal %s: %w", id, err)
	}
	return p, true, nil
}

func (s *ProposalStore) Values(ctx context.Context) ([]models.Proposal, error) {
	ids, err := s.rdb.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list proposal ids: %w", err)
	}
	allProposals := make([]models.Proposal, 0, len(ids))
	if len(ids) == 0 {
		return allProposals, nil
	}

	type pending struct {
		hash   *redis.MapStringStringCmd
		voters *redis.StringSliceCmd
	}
	cmds := make([]pending, len(ids))
	pipe := s.rdb.Pipeline()
	for i, id := range ids {
		cmds[i] = pending{
			hash:   pipe.HGetAll(ctx, proposalKey(id)),
			voters: pipe.LRange(ctx, votersKey(id), 0, -1),
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("fetch proposals: %w", err)
	}

	for _, c := range cmds {
		if len(c.hash.Val()) == 0 {
			continue // index entry without a hash
		}
		p, err := decodeProposal(c.hash.Val(), c.voters.Val())
		if err != nil {
			return nil, err
		}
		allProposals = append(allProposals, p)
	}
	return allProposals, nil
}

func decodeProposal(data map[string]string, voters []string) (models.Proposal, error) {
	var h proposalHash
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &h,
	})
	if err != nil {
		return models.Proposal{}, err
	}
	if err := dec.Decode(data); err != nil {
		return models.Proposal{}, fmt.Errorf("decode proposal hash: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, h.CreatedAt)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("proposal %s: bad created_at: %w", h.ID, err)
	}
	p := models.Proposal{
		ID:          h.ID,
		Owner:       h.Owner,
		Title:       h.Title,
		Description: h.Description,
		Voters:      append([]string{}, voters...),
		YesVotes:    h.YesVotes,
		NoVotes:     h.NoVotes,
		CreatedAt:   createdAt,
	}
	if h.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, h.UpdatedAt)
		if err != nil {
			return models.Proposal{}, fmt.Errorf("proposal %s: bad updated_at: %w", h.ID, err)
		}
		p.UpdatedAt = &t
	}
	return p, nil
}
