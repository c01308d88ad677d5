package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/domain/geo"
	"github.com/carelinkgh/carematch/internal/domain/match"
	"github.com/carelinkgh/carematch/internal/domain/profile"
	"github.com/carelinkgh/carematch/internal/metrics"
)

// Combined score weights. Semantic similarity dominates; location nudges.
const (
	semanticWeight = 0.7
	locationWeight = 0.3
)

const defaultConcurrency = 4

// Service ranks eligible caregivers against a patient profile.
type Service struct {
	patients    PatientReader
	caregivers  CaregiverReader
	embed       Embedder
	concurrency int
}

// New creates a matching service. concurrency bounds parallel candidate
// scoring; values below 1 fall back to the default.
func New(patients PatientReader, caregivers CaregiverReader, embed Embedder, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Service{
		patients:    patients,
		caregivers:  caregivers,
		embed:       embed,
		concurrency: concurrency,
	}
}

// Match resolves the patient and the eligible caregiver pool, then ranks.
func (s *Service) Match(ctx context.Context, patientID string, minScore float64) ([]match.Match, error) {
	start := time.Now()

	patient, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get patient: %w", err)
	}

	candidates, err := s.caregivers.ListAvailableCaregivers(ctx)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list caregivers: %w", err)
	}

	matches, err := s.Rank(ctx, &patient, candidates, minScore)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.MatchRequestsTotal.WithLabelValues("success").Inc()
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.MatchCandidatePoolSize.Observe(float64(len(candidates)))

	return matches, nil
}

// Rank scores every candidate against the patient and returns matches with
// combined score >= minScore, sorted by score descending. Equal scores order
// by ascending caregiver id so results are stable across runs. Any embedding
// failure aborts the whole call; there are no partial results.
func (s *Service) Rank(
	ctx context.Context, patient *profile.Patient, candidates []profile.Caregiver, minScore float64,
) ([]match.Match, error) {
	if len(candidates) == 0 {
		return []match.Match{}, nil
	}

	patientEmb, err := s.embed.Embed(ctx, PatientText(patient))
	if err != nil {
		return nil, fmt.Errorf("embed patient: %w", err)
	}

	scores := make([]float64, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range candidates {
		i := i
		g.Go(func() error {
			c := &candidates[i]
			emb, err := s.embed.Embed(gctx, CaregiverText(c))
			if err != nil {
				return fmt.Errorf("embed caregiver %s: %w", c.ID(), err)
			}

			semantic := domain.CosineSimilarity(patientEmb.Embedding, emb.Embedding)
			location := geo.Similarity(patient.Location(), c.Location())
			scores[i] = semantic*semanticWeight + location*locationWeight
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]match.Match, 0, len(candidates))
	for i := range candidates {
		if scores[i] >= minScore {
			matches = append(matches, match.New(candidates[i], scores[i]))
		}
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Score() != matches[b].Score() {
			return matches[a].Score() > matches[b].Score()
		}
		ca, cb := matches[a].Caregiver(), matches[b].Caregiver()
		return ca.ID() < cb.ID()
	})

	return matches, nil
}
