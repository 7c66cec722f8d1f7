// Package index answers top-k nearest-neighbor queries over a precomputed
// set of passage embeddings. The index is read-only after load; rebuilding
// requires a full artifact replacement and a restart.
package index

// #region imports
import (
	"fmt"
	"math"
	"sort"
)

// #endregion

// #region index-struct

// Index holds parallel vectors and passages: vectors[i] embeds passages[i].
type Index struct {
	dim      int
	vectors  [][]float32
	passages []string
}

// New builds an index from parallel sequences.
func New(vectors [][]float32, passages []string) (*Index, error) {
	if len(vectors) != len(passages) {
		return nil, fmt.Errorf("vector/passage count mismatch: %d vectors, %d passages",
			len(vectors), len(passages))
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	return &Index{dim: dim, vectors: vectors, passages: passages}, nil
}

// Len returns the number of indexed passages.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.passages)
}

// Dim returns the embedding dimensionality.
func (ix *Index) Dim() int {
	if ix == nil {
		return 0
	}
	return ix.dim
}

// #endregion index-struct

// #region search

// Search returns up to k passages nearest to query under euclidean
// distance, nearest first, ties broken by ascending insertion position.
// An empty or nil index yields an empty result, never an error. Rows whose
// stored dimensionality does not match the query are skipped.
func (ix *Index) Search(query []float32, k int) []Result {
	if ix == nil || k <= 0 || len(ix.vectors) == 0 {
		return nil
	}

	results := make([]Result, 0, len(ix.vectors))
	for i, vec := range ix.vectors {
		if len(vec) != len(query) {
			continue
		}
		if i < 0 || i >= len(ix.passages) {
			continue
		}
		results = append(results, Result{
			Position: i,
			Passage:  ix.passages[i],
			Distance: euclidean(query, vec),
		})
	}

	// Results were appended in insertion order, so a stable sort keeps
	// ascending positions within equal distances.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

func euclidean(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// #endregion search
