// Package sqlstore keeps proposals in a relational table through GORM.
// MySQL is the production target; SQLite serves local runs and tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
	"github.com/saxenaaman628/proposal-voting-system/internal/store"
)

var _ store.Store = (*ProposalStore)(nil)

// proposalRow timestamps keep microseconds (datetime(6) on MySQL).
// Seq records insertion order and survives replaces.
type proposalRow struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Seq         int64      `gorm:"not null;uniqueIndex"`
	Owner       string     `gorm:"size:64;not null;index"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	Voters      []string   `gorm:"type:text;serializer:json"`
	YesVotes    int64      `gorm:"not null"`
	NoVotes     int64      `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;precision:6;not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false;precision:6"`
}

func (proposalRow) TableName() string { return "proposals" }

// Open connects with the named driver ("mysql" or "sqlite").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		if dsn == "" {
			return nil, errors.New("MYSQL_DSN is not set")
		}
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown sql driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", driver, err)
	}
	return db, nil
}

type ProposalStore struct {
	db *gorm.DB
}

// NewProposalStore migrates the proposals table and returns a store over it.
func NewProposalStore(db *gorm.DB) (*ProposalStore, error) {
	if err := db.AutoMigrate(&proposalRow{}); err != nil {
		return nil, fmt.Errorf("migrate proposals: %w", err)
	}
	return &ProposalStore{db: db}, nil
}

func (s *ProposalStore) Get(ctx context.Context, id string) (models.Proposal, bool, error) {
	var row proposalRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Proposal{}, false, nil
	}
	if err != nil {
		return models.Proposal{}, false, fmt.Errorf("fetch proposal %s: %w", id, err)
	}
	return row.toModel(), true, nil
}

// Insert rewrites an existing row in place, keeping its Seq, or appends a
// new row after the current highest Seq.
func (s *ProposalStore) Insert(ctx context.Context, p models.Proposal) error {
	row := fromModel(p)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing proposalRow
		err := tx.Select("seq").First(&existing, "id = ?", p.ID).Error
		switch {
		case err == nil:
			row.Seq = existing.Seq
			return tx.Select("*").Save(&row).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			var last int64
			if err := tx.Model(&proposalRow{}).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
				return err
			}
			row.Seq = last + 1
			return tx.Create(&row).Error
		default:
			return err
		}
	})
	if err != nil {
		return fmt.Errorf("save proposal %s: %w", p.ID, err)
	}
	return nil
}

func (s *ProposalStore) Remove(ctx context.Context, id string) (models.Proposal, bool, error) {
	var removed proposalRow
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&removed, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return tx.Delete(&proposalRow{}, "id = ?", id).Error
	})
	if err != nil {
		return models.Proposal{}, false, fmt.Errorf("delete proposal %s: %w", id, err)
	}
	if !found {
		return models.Proposal{}, false, nil
	}
	return removed.toModel(), true, nil
}

func (s *ProposalStore) Values(ctx context.Context) ([]models.Proposal, error) {
	var rows []proposalRow
	err := s.db.WithContext(ctx).Order("seq asc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	out := make([]models.Proposal, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func fromModel(p models.Proposal) proposalRow {
	voters := append([]string{}, p.Voters...)
	return proposalRow{
		ID:          p.ID,
		Owner:       p.Owner,
		Title:       p.Title,
		Description: p.Description,
		Voters:      voters,
		YesVotes:    p.YesVotes,
		NoVotes:     p.NoVotes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r proposalRow) toModel() models.Proposal {
	return models.Proposal{
		ID:          r.ID,
		Owner:       r.Owner,
		Title:       r.Title,
		Description: r.Description,
		Voters:      append([]string{}, r.Voters...),
		YesVotes:    r.YesVotes,
		NoVotes:     r.NoVotes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
