package domain

import (
	"math"
	"testing"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.6, 0.8}
	got := CosineSimilarity(v, v)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected 1.0 for identical vectors, got %v", got)
	}
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if math.Abs(got) > 1e-9 {
		t.Errorf("expected 0 for orthogonal vectors, got %v", got)
	}
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{-1, 0})
	if math.Abs(got+1.0) > 1e-9 {
		t.Errorf("expected -1.0 for opposite vectors, got %v", got)
	}
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	got := CosineSimilarity([]float32{0, 0}, []float32{1, 0})
	if got != 0 {
		t.Errorf("expected 0 for zero-norm vector, got %v", got)
	}
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
	if got != 0 {
		t.Errorf("expected 0 for mismatched dimensions, got %v", got)
	}
}

func TestCosineSimilarity_IgnoresMagnitude(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{2, 4, 6}
	got := CosineSimilarity(a, b)
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("expected 1.0 for parallel vectors, got %v", got)
	}
}

func TestNormalizeVector(t *testing.T) {
	v := []float32{3, 4}
	NormalizeVector(v)

	var norm float64
	for _, f := range v {
		norm += float64(f) * float64(f)
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-6 {
		t.Errorf("expected unit norm, got %v", math.Sqrt(norm))
	}
	if math.Abs(float64(v[0])-0.6) > 1e-6 || math.Abs(float64(v[1])-0.8) > 1e-6 {
		t.Errorf("unexpected normalized vector: %v", v)
	}
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	NormalizeVector(v)
	for i, f := range v {
		if f != 0 {
			t.Errorf("zero vector changed at [%d]: %v", i, f)
		}
	}
}
