package matching

import (
	"context"

	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/domain/profile"
)

// PatientReader resolves patient records for matching.
type PatientReader interface {
	GetPatient(ctx context.Context, id string) (profile.Patient, error)
}

// CaregiverReader lists the eligible candidate pool.
type CaregiverReader interface {
	ListAvailableCaregivers(ctx context.Context) ([]profile.Caregiver, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
