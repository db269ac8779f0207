package recommend

import "math"

// Vector is a sparse TF-IDF vector: vocabulary index -> weight.
type Vector map[int]float64

func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Model is the fitted vectorizer for one corpus snapshot: the vocabulary in
// first-seen order plus the IDF table computed over that corpus. A Model is
// immutable after Fit; queries are transformed against it without updating it.
type Model struct {
	Vocabulary []string

	index map[string]int
	df    []int
	idf   []float64
	docs  int
}

// Fit builds the vocabulary and IDF table over docs. Each doc is one
// posting's skill text; tokens are deduplicated per doc before counting, so
// document frequency is "number of postings mentioning the term". IDF uses
// the smoothed form log((1+N)/(1+df)) + 1, which never divides by zero and
// never goes negative. An empty docs slice yields an empty vocabulary, which
// is a valid model: every transform against it produces a zero vector.
func Fit(tok Tokenizer, docs []string) *Model {
	m := &Model{
		Vocabulary: make([]string, 0),
		index:      make(map[string]int),
		docs:       len(docs),
	}

	for _, doc := range docs {
		for _, term := range tok.Tokens(doc) {
			idx, ok := m.index[term]
			if !ok {
				idx = len(m.Vocabulary)
				m.index[term] = idx
				m.Vocabulary = append(m.Vocabulary, term)
				m.df = append(m.df, 0)
			}
			m.df[idx]++
		}
	}

	m.idf = make([]float64, len(m.Vocabulary))
	for i, df := range m.df {
		m.idf[i] = math.Log(float64(1+m.docs)/float64(1+df)) + 1
	}
	return m
}

// Transform projects an already-tokenized document into the fitted space
// using binary term frequency times the fitted IDF. Tokens outside the
// vocabulary are dropped; the IDF table is never recomputed here, so a user
// query is scored as a pseudo-document against the corpus it is compared to.
func (m *Model) Transform(tokens []string) Vector {
	v := make(Vector, len(tokens))
	for _, term := range tokens {
		if idx, ok := m.index[term]; ok {
			v[idx] = m.idf[idx]
		}
	}
	return v
}

// DocumentFrequency returns how many fitted documents contained term.
func (m *Model) DocumentFrequency(term string) int {
	if idx, ok := m.index[term]; ok {
		return m.df[idx]
	}
	return 0
}

// Cosine returns the cosine similarity of two non-negative sparse vectors,
// in [0,1]. Either vector having zero norm yields 0, never NaN.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	var dot float64
	for idx, wa := range a {
		if wb, ok := b[idx]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}

	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (na * nb)
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}
