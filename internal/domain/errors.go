package domain

import "errors"

var (
	// ErrPatientNotFound signals a missing patient record.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrCaregiverNotFound signals a missing caregiver record.
	ErrCaregiverNotFound = errors.New("caregiver not found")
	// ErrInvalidInput signals malformed or missing required input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden signals an authenticated principal without access rights.
	ErrForbidden = errors.New("forbidden")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
