package carematch

import "github.com/carelinkgh/carematch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrPatientNotFound        = domain.ErrPatientNotFound
	ErrCaregiverNotFound      = domain.ErrCaregiverNotFound
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)
