package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saxenaaman628/proposal-voting-system/config"
	"github.com/saxenaaman628/proposal-voting-system/internal/registry"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{StoreDriver: "memory"}},
		{"redis", config.Config{StoreDriver: "redis", RedisURI: mr.Addr()}},
		{"sqlite", config.Config{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "p.db")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closer, err := openStore(ctx, tt.cfg)
			require.NoError(t, err)
			defer closer.Close()

			reg := registry.New(s)
			p, err := reg.CreateProposal(ctx, "1", "T", "D")
			require.NoError(t, err)
			p, err = reg.VoteNo(ctx, "2", p.ID)
			require.NoError(t, err)

			got, err := reg.GetProposal(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.NoVotes)
			assert.Equal(t, []string{"2"}, got.Voters)
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := openStore(ctx, config.Config{StoreDriver: "cassandra"})
	assert.Error(t, err)

	_, _, err = openStore(ctx, config.Config{StoreDriver: "mysql"})
	assert.Error(t, err)
}
