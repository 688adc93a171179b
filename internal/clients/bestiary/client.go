// Package bestiary looks up monster stat blocks in the D&D 5e SRD API so a DM
// can add an enemy by monster key
package bestiary

//go:generate mockgen -destination=mock/mock_client.go -package=bestiarymock github.com/KirkDiggler/fight-tracker/internal/clients/bestiary Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/fight-tracker/internal/errors"
)

// Client defines the bestiary lookups combat needs
type Client interface {
	// GetMonster returns the stat block for a monster key such as "goblin"
	// Returns errors.NotFound for unknown keys
	// Returns errors.Unavailable when the SRD API cannot be reached
	GetMonster(ctx context.Context, key string) (*StatBlock, error)

	// ListMonsters returns the keys and names of every monster
	ListMonsters(ctx context.Context) ([]*MonsterRef, error)
}

// StatBlock is the slice of a monster's stats an enemy row is built from
type StatBlock struct {
	Key        string
	Name       string
	HitPoints  int32
	ArmorClass int32
	Dexterity  int32
}

// DexterityModifier returns the ability modifier for Dexterity
func (s *StatBlock) DexterityModifier() int32 {
	score := s.Dexterity
	if score == 0 {
		score = 10
	}
	// floor division so 9 maps to -1
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// MonsterRef names a monster in the SRD index
type MonsterRef struct {
	Key  string
	Name string
}

// monsterSource is the part of dnd5e.Interface the client calls
type monsterSource interface {
	GetMonster(key string) (*entities.Monster, error)
	ListMonsters() ([]*entities.ReferenceItem, error)
}

// Config contains configuration options for the bestiary client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	source monsterSource
}

// New creates a bestiary client backed by the cached SRD API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{source: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)}, nil
}

func (c *client) GetMonster(ctx context.Context, key string) (*StatBlock, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, errors.InvalidArgument("monster key cannot be empty")
	}

	monster, err := c.source.GetMonster(key)
	if err != nil {
		return nil, translateError(err, "failed to get monster "+key)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", key)
	}

	raw, err := json.Marshal(monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode monster %s", key)
	}
	block, err := parseStatBlock(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stat block for %s", key)
	}
	if block.Key == "" {
		block.Key = key
	}

	slog.DebugContext(ctx, "fetched monster stat block",
		"monster", block.Key,
		"hp", block.HitPoints,
		"ac", block.ArmorClass)

	return block, nil
}

func (c *client) ListMonsters(_ context.Context) ([]*MonsterRef, error) {
	refs, err := c.source.ListMonsters()
	if err != nil {
		return nil, translateError(err, "failed to list monsters")
	}

	out := make([]*MonsterRef, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, &MonsterRef{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

func translateError(err error, message string) error {
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "404") || strings.Contains(lower, "not found") {
		return errors.WrapWithCode(err, errors.CodeNotFound, message)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, message)
}
