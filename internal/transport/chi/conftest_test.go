package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/carelinkgh/carematch/internal/domain/match"
	"github.com/carelinkgh/carematch/internal/domain/profile"
	healthuc "github.com/carelinkgh/carematch/internal/usecase/health"
)

// mockMatcher is a test double for Matcher.
type mockMatcher struct {
	MatchFunc func(ctx context.Context, patientID string, minScore float64) ([]match.Match, error)
}

func (m *mockMatcher) Match(ctx context.Context, patientID string, minScore float64) ([]match.Match, error) {
	return m.MatchFunc(ctx, patientID, minScore)
}

// mockProfileStore is a test double for ProfileStore.
type mockProfileStore struct {
	GetPatientFunc   func(ctx context.Context, id string) (profile.Patient, error)
	PutPatientFunc   func(ctx context.Context, p *profile.Patient) error
	GetCaregiverFunc func(ctx context.Context, id string) (profile.Caregiver, error)
	PutCaregiverFunc func(ctx context.Context, c *profile.Caregiver) error
}

func (m *mockProfileStore) GetPatient(ctx context.Context, id string) (profile.Patient, error) {
	return m.GetPatientFunc(ctx, id)
}

func (m *mockProfileStore) PutPatient(ctx context.Context, p *profile.Patient) error {
	return m.PutPatientFunc(ctx, p)
}

func (m *mockProfileStore) GetCaregiver(ctx context.Context, id string) (profile.Caregiver, error) {
	return m.GetCaregiverFunc(ctx, id)
}

func (m *mockProfileStore) PutCaregiver(ctx context.Context, c *profile.Caregiver) error {
	return m.PutCaregiverFunc(ctx, c)
}

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

// testPrincipals used across handler tests.
var testPrincipals = map[string]Principal{
	"patient-token": {Role: RolePatient, UserID: "u-1", PatientID: "pt-1"},
	"admin-token":   {Role: RoleAdmin, UserID: "u-admin"},
	"odd-token":     {Role: "caregiver"},
}

func newTestRouter(t *testing.T, matcher Matcher, profiles ProfileStore) http.Handler {
	t.Helper()
	srv := NewServer(Config{
		Matcher:  matcher,
		Profiles: profiles,
		Health:   healthuc.New(okPinger{}, nil),
		URLs:     NewURLBuilder("https://cdn.carelink.example"),
		Logger:   zap.NewNop(),
		MaxLimit: 50,
	})

	r := chirouter.NewRouter()
	r.Use(BearerAuthMiddleware(testPrincipals))
	srv.Routes(r)
	return r
}

func doRequest(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func eligibleCaregiver(id, name, location string) profile.Caregiver {
	return profile.NewCaregiver(
		id, name, "nurse", "bio", "diploma", "full-time", location,
		[]profile.Qualification{profile.NewQualification("Registered Nurse", "docs/rn.pdf")},
		"photos/"+id+".jpg", "docs/"+id+".pdf", true, true, true,
	)
}
