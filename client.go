package carematch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carelinkgh/carematch/internal/db"
	dbRedis "github.com/carelinkgh/carematch/internal/db/redis"
	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/repository/embcache"
	profilerepo "github.com/carelinkgh/carematch/internal/repository/profile"
	openaiEmb "github.com/carelinkgh/carematch/internal/transport/openai"
	healthuc "github.com/carelinkgh/carematch/internal/usecase/health"
	matchinguc "github.com/carelinkgh/carematch/internal/usecase/matching"
)

const defaultReadinessTimeout = 10 * time.Second

// EmbedderConfig holds OpenAI-compatible embedding provider settings.
type EmbedderConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
	Provider   string
}

type clientConfig struct {
	addrs       []string
	password    string
	embedder    domain.Embedder
	openaiCfg   *EmbedderConfig
	cacheTTL    time.Duration
	cache       bool
	concurrency int
	logger      *zap.Logger
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithRedis connects to Redis at the given addresses.
func WithRedis(addr, password string, more ...string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.addrs = append([]string{addr}, more...)
		cfg.password = password
	})
}

// WithEmbedder uses a custom embedder implementation.
func WithEmbedder(e domain.Embedder) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.embedder = e })
}

// WithOpenAIEmbedder uses an OpenAI-compatible embedding provider.
func WithOpenAIEmbedder(ec EmbedderConfig) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.openaiCfg = &ec })
}

// WithEmbeddingCache caches embeddings in Redis. ttl of 0 caches without expiry.
func WithEmbeddingCache(ttl time.Duration) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.cache = true
		cfg.cacheTTL = ttl
	})
}

// WithConcurrency bounds parallel candidate scoring.
func WithConcurrency(n int) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.concurrency = n })
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.logger = l })
}

// Client is the embedded carematch entry point.
type Client struct {
	store    db.Store
	profiles *profilerepo.Repo
	matcher  *matchinguc.Service
	health   *healthuc.Service
}

// New creates a carematch Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("carematch: database address required (use WithRedis)")
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("carematch: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("carematch: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	embedder := cfg.embedder
	if embedder == nil && cfg.openaiCfg != nil {
		embedder = openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.openaiCfg.APIKey,
			BaseURL:    cfg.openaiCfg.BaseURL,
			Model:      cfg.openaiCfg.Model,
			Dimensions: cfg.openaiCfg.Dimensions,
			Provider:   cfg.openaiCfg.Provider,
			Logger:     cfg.logger,
		})
	}
	if embedder == nil {
		embedder = &noopEmbedder{}
	}
	if cfg.cache {
		embedder = embcache.New(embedder, store, cfg.cacheTTL, nil, cfg.logger)
	}

	profiles := profilerepo.New(store)

	return &Client{
		store:    store,
		profiles: profiles,
		matcher:  matchinguc.New(profiles, profiles, embedder, cfg.concurrency),
		health:   healthuc.New(store, nil),
	}
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

// Match ranks eligible caregivers against the patient's profile.
// Results are sorted by score descending; minScore filters low matches.
func (c *Client) Match(ctx context.Context, patientID string, minScore float64) ([]Match, error) {
	matches, err := c.matcher.Match(ctx, patientID, minScore)
	if err != nil {
		return nil, err
	}

	out := make([]Match, len(matches))
	for i := range matches {
		cg := matches[i].Caregiver()
		out[i] = Match{
			Caregiver: caregiverFromDomain(&cg),
			Score:     matches[i].Score(),
		}
	}
	return out, nil
}

// PutPatient creates or replaces a patient record.
func (c *Client) PutPatient(ctx context.Context, p Patient) error {
	if p.ID == "" {
		return fmt.Errorf("patient id required: %w", domain.ErrInvalidInput)
	}
	dp := patientToDomain(p)
	return c.profiles.PutPatient(ctx, &dp)
}

// GetPatient returns a patient record by ID.
func (c *Client) GetPatient(ctx context.Context, id string) (Patient, error) {
	p, err := c.profiles.GetPatient(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	return patientFromDomain(&p), nil
}

// PutCaregiver creates or replaces a caregiver record.
func (c *Client) PutCaregiver(ctx context.Context, cg Caregiver) error {
	if cg.ID == "" {
		return fmt.Errorf("caregiver id required: %w", domain.ErrInvalidInput)
	}
	dc := caregiverToDomain(cg)
	return c.profiles.PutCaregiver(ctx, &dc)
}

// GetCaregiver returns a caregiver record by ID.
func (c *Client) GetCaregiver(ctx context.Context, id string) (Caregiver, error) {
	cg, err := c.profiles.GetCaregiver(ctx, id)
	if err != nil {
		return Caregiver{}, err
	}
	return caregiverFromDomain(&cg), nil
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.health.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// noopEmbedder rejects embedding calls when no provider is configured.
type noopEmbedder struct{}

func (n *noopEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{},
		fmt.Errorf("no embedder configured (use WithOpenAIEmbedder or WithEmbedder): %w",
			domain.ErrEmbeddingProviderError)
}
