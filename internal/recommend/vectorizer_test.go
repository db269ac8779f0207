package recommend

import (
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestFit_VocabularyFirstSeenOrder(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, []string{"python, sql", "python, excel"})

	want := []string{"python", "sql", "excel"}
	if !reflect.DeepEqual(m.Vocabulary, want) {
		t.Fatalf("vocabulary = %v, want %v", m.Vocabulary, want)
	}
}

func TestFit_SmoothedIDF(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, []string{"python, sql", "python, excel"})

	// term in every doc: log((1+2)/(1+2)) + 1 = 1
	v := m.Transform([]string{"python"})
	if !almostEqual(v[0], 1.0) {
		t.Fatalf("idf(python) = %v, want 1.0", v[0])
	}

	// term in one of two docs: log(3/2) + 1
	v = m.Transform([]string{"sql"})
	want := math.Log(1.5) + 1
	if !almostEqual(v[1], want) {
		t.Fatalf("idf(sql) = %v, want %v", v[1], want)
	}
}

func TestFit_DuplicateTokensCountOnce(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, []string{"go, Go, GO", "python"})

	if df := m.DocumentFrequency("go"); df != 1 {
		t.Fatalf("df(go) = %d, want 1", df)
	}
}

func TestFit_Deterministic(t *testing.T) {
	tok := NewTokenizer(",")
	docs := []string{"python, sql, docker", "go, docker", "", "sql"}

	a := Fit(tok, docs)
	b := Fit(tok, docs)

	if !reflect.DeepEqual(a.Vocabulary, b.Vocabulary) {
		t.Fatalf("vocabularies differ: %v vs %v", a.Vocabulary, b.Vocabulary)
	}
	for _, doc := range docs {
		va := a.Transform(tok.Tokens(doc))
		vb := b.Transform(tok.Tokens(doc))
		if !reflect.DeepEqual(va, vb) {
			t.Fatalf("vectors differ for %q: %v vs %v", doc, va, vb)
		}
	}
}

func TestFit_EmptyCorpus(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, nil)

	if len(m.Vocabulary) != 0 {
		t.Fatalf("expected empty vocabulary, got %v", m.Vocabulary)
	}
	if v := m.Transform([]string{"python"}); len(v) != 0 {
		t.Fatalf("expected zero vector, got %v", v)
	}
}

func TestTransform_DropsUnknownTokens(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, []string{"python, sql"})

	v := m.Transform([]string{"python", "haskell"})
	if len(v) != 1 {
		t.Fatalf("expected 1 component, got %v", v)
	}
	if _, ok := v[0]; !ok {
		t.Fatalf("expected python component, got %v", v)
	}
}

func TestTransform_EmptySkillsYieldsZeroVector(t *testing.T) {
	tok := NewTokenizer(",")
	m := Fit(tok, []string{"python", ""})

	v := m.Transform(tok.Tokens(""))
	if len(v) != 0 {
		t.Fatalf("expected zero vector, got %v", v)
	}
	if v.Norm() != 0 {
		t.Fatalf("expected zero norm, got %v", v.Norm())
	}
}

func TestCosine_IdenticalVectors(t *testing.T) {
	v := Vector{0: 1.0, 1: 1.4}
	if sim := Cosine(v, v); !almostEqual(sim, 1.0) {
		t.Fatalf("cosine(v, v) = %v, want 1.0", sim)
	}
}

func TestCosine_ZeroNorm(t *testing.T) {
	v := Vector{0: 1.0}
	zero := Vector{}

	if sim := Cosine(v, zero); sim != 0 {
		t.Fatalf("cosine with zero vector = %v, want 0", sim)
	}
	if sim := Cosine(zero, zero); sim != 0 {
		t.Fatalf("cosine of zero vectors = %v, want 0", sim)
	}
}

func TestCosine_Disjoint(t *testing.T) {
	a := Vector{0: 1.0}
	b := Vector{1: 1.0}
	if sim := Cosine(a, b); sim != 0 {
		t.Fatalf("cosine of disjoint vectors = %v, want 0", sim)
	}
}

func TestCosine_Range(t *testing.T) {
	tok := NewTokenizer(",")
	docs := []string{"a, b, c", "b, c, d", "a", "d, e, f"}
	m := Fit(tok, docs)

	q := m.Transform(tok.Tokens("a, c, e"))
	for _, doc := range docs {
		sim := Cosine(q, m.Transform(tok.Tokens(doc)))
		if sim < 0 || sim > 1 {
			t.Fatalf("cosine out of range for %q: %v", doc, sim)
		}
	}
}
