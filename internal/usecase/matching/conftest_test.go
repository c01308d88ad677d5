package matching

import (
	"context"
	"sync"

	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/domain/profile"
)

// mockPatientReader is a test double for PatientReader.
type mockPatientReader struct {
	GetPatientFunc func(ctx context.Context, id string) (profile.Patient, error)
}

func (m *mockPatientReader) GetPatient(ctx context.Context, id string) (profile.Patient, error) {
	return m.GetPatientFunc(ctx, id)
}

// mockCaregiverReader is a test double for CaregiverReader.
type mockCaregiverReader struct {
	ListFunc func(ctx context.Context) ([]profile.Caregiver, error)
}

func (m *mockCaregiverReader) ListAvailableCaregivers(ctx context.Context) ([]profile.Caregiver, error) {
	return m.ListFunc(ctx)
}

// mockEmbedder returns canned vectors by summary text and counts calls.
// Safe for concurrent use.
type mockEmbedder struct {
	mu       sync.Mutex
	calls    int
	vectors  map[string][]float32
	fallback []float32
	err      error
	errText  string // when set, only this text fails
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.err != nil && (m.errText == "" || m.errText == text) {
		return domain.EmbeddingResult{}, m.err
	}

	vec, ok := m.vectors[text]
	if !ok {
		vec = m.fallback
	}
	return domain.EmbeddingResult{Embedding: vec, PromptTokens: 1, TotalTokens: 1}, nil
}

func (m *mockEmbedder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// testPatient builds a patient with only the fields relevant to matching.
func testPatient(id, condition, location string) profile.Patient {
	return profile.NewPatient(
		id, "Test Patient", condition, "2", "full-time",
		"", "", "", location, "",
	)
}

// testCaregiver builds an eligible caregiver.
func testCaregiver(id, bio, location string) profile.Caregiver {
	return profile.NewCaregiver(
		id, "Test Caregiver", "nurse", bio, "diploma", "full-time", location,
		nil, "", "", true, true, true,
	)
}
