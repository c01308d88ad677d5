package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/carelinkgh/carematch/internal/db"
	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/domain/profile"
)

// store is the consumer interface for profile documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo stores patients and caregivers as JSON documents.
type Repo struct {
	store store
}

// New creates a profile repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func patientKey(id string) string   { return domain.KeyPrefix + "patient:" + id }
func caregiverKey(id string) string { return domain.KeyPrefix + "caregiver:" + id }

// GetPatient returns a patient by ID.
func (r *Repo) GetPatient(ctx context.Context, id string) (profile.Patient, error) {
	key := patientKey(id)
	raw, err := r.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return profile.Patient{}, domain.ErrPatientNotFound
		}
		return profile.Patient{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	var doc patientDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return profile.Patient{}, fmt.Errorf("unmarshal patient %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

// PutPatient creates or replaces a patient document.
func (r *Repo) PutPatient(ctx context.Context, p *profile.Patient) error {
	data, err := json.Marshal(toPatientDoc(p))
	if err != nil {
		return fmt.Errorf("marshal patient: %w", err)
	}

	key := patientKey(p.ID())
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// GetCaregiver returns a caregiver by ID.
func (r *Repo) GetCaregiver(ctx context.Context, id string) (profile.Caregiver, error) {
	key := caregiverKey(id)
	raw, err := r.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return profile.Caregiver{}, domain.ErrCaregiverNotFound
		}
		return profile.Caregiver{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	var doc caregiverDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return profile.Caregiver{}, fmt.Errorf("unmarshal caregiver %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

// PutCaregiver creates or replaces a caregiver document.
func (r *Repo) PutCaregiver(ctx context.Context, c *profile.Caregiver) error {
	data, err := json.Marshal(toCaregiverDoc(c))
	if err != nil {
		return fmt.Errorf("marshal caregiver: %w", err)
	}

	key := caregiverKey(c.ID())
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// ListAvailableCaregivers returns caregivers that are active, available, and
// verified, ordered by full name ascending (id breaks name ties).
func (r *Repo) ListAvailableCaregivers(ctx context.Context) ([]profile.Caregiver, error) {
	keys, err := r.store.Scan(ctx, domain.KeyPrefix+"caregiver:*")
	if err != nil {
		return nil, fmt.Errorf("scan caregivers: %w", err)
	}

	caregivers := make([]profile.Caregiver, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue // deleted between SCAN and GET
			}
			return nil, fmt.Errorf("json.get %s: %w", key, err)
		}

		var doc caregiverDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal caregiver %s: %w", key, err)
		}

		c := doc.toDomain()
		if c.Eligible() {
			caregivers = append(caregivers, c)
		}
	}

	sort.Slice(caregivers, func(a, b int) bool {
		if caregivers[a].FullName() != caregivers[b].FullName() {
			return caregivers[a].FullName() < caregivers[b].FullName()
		}
		return caregivers[a].ID() < caregivers[b].ID()
	})

	return caregivers, nil
}
