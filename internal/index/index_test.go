package index

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustNew(t *testing.T, vectors [][]float32, passages []string) *Index {
	t.Helper()
	ix, err := New(vectors, passages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ix
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	_, err := New([][]float32{{1, 0}}, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestSearchOrdering(t *testing.T) {
	ix := mustNew(t,
		[][]float32{
			{10, 0}, // far
			{1, 0},  // near
			{3, 0},  // middle
		},
		[]string{"far", "near", "middle"},
	)

	results := ix.Search([]float32{0, 0}, 3)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	got := []string{results[0].Passage, results[1].Passage, results[2].Passage}
	want := []string{"near", "middle", "far"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Fatalf("distances not non-decreasing: %v", results)
		}
	}
}

func TestSearchTiesBreakByPosition(t *testing.T) {
	ix := mustNew(t,
		[][]float32{
			{0, 1},
			{1, 0}, // same distance to origin as above
		},
		[]string{"first", "second"},
	)

	results := ix.Search([]float32{0, 0}, 2)
	if results[0].Position != 0 || results[1].Position != 1 {
		t.Fatalf("tie not broken by insertion position: %+v", results)
	}
}

func TestSearchRespectsK(t *testing.T) {
	ix := mustNew(t,
		[][]float32{{1, 0}, {2, 0}, {3, 0}},
		[]string{"a", "b", "c"},
	)

	if got := ix.Search([]float32{0, 0}, 2); len(got) != 2 {
		t.Fatalf("k=2: got %d results", len(got))
	}
	if got := ix.Search([]float32{0, 0}, 10); len(got) != 3 {
		t.Fatalf("k=10: got %d results", len(got))
	}
	if got := ix.Search([]float32{0, 0}, 0); got != nil {
		t.Fatalf("k=0: expected nil, got %v", got)
	}
}

func TestSearchEmptyAndNilIndex(t *testing.T) {
	empty := mustNew(t, nil, nil)
	if got := empty.Search([]float32{1}, 1); got != nil {
		t.Fatalf("empty index: expected nil, got %v", got)
	}

	var nilIx *Index
	if got := nilIx.Search([]float32{1}, 1); got != nil {
		t.Fatalf("nil index: expected nil, got %v", got)
	}
	if nilIx.Len() != 0 {
		t.Fatal("nil index Len should be 0")
	}
}

func TestSearchSkipsMismatchedDimensions(t *testing.T) {
	ix := mustNew(t,
		[][]float32{
			{1, 0},
			{1, 0, 0}, // degenerate row
		},
		[]string{"good", "bad"},
	)

	results := ix.Search([]float32{0, 0}, 5)
	if len(results) != 1 || results[0].Passage != "good" {
		t.Fatalf("expected only the matching-dim row, got %+v", results)
	}
}

func TestSearchDeterministic(t *testing.T) {
	ix := mustNew(t,
		[][]float32{{1, 2}, {3, 4}, {0.5, 0.5}, {2, 2}},
		[]string{"a", "b", "c", "d"},
	)
	query := []float32{1, 1}

	first := ix.Search(query, 3)
	for i := 0; i < 20; i++ {
		if got := ix.Search(query, 3); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectors.bin")
	pasPath := filepath.Join(dir, "passages.txt")

	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{0.9, 0.8, 0.7},
	}
	passages := []string{"Must be 18+ to open an account.", "Cards arrive in 5-7 days."}

	if err := WriteArtifact(vecPath, pasPath, vectors, passages); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}

	ix, err := LoadArtifact(vecPath, pasPath)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if ix.Len() != 2 || ix.Dim() != 3 {
		t.Fatalf("len=%d dim=%d, want 2 and 3", ix.Len(), ix.Dim())
	}

	results := ix.Search([]float32{0.9, 0.8, 0.7}, 1)
	if len(results) != 1 || results[0].Position != 1 {
		t.Fatalf("expected exact match at position 1, got %+v", results)
	}
	if results[0].Distance != 0 {
		t.Fatalf("expected zero distance for identical vector, got %f", results[0].Distance)
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadArtifact(filepath.Join(dir, "nope.bin"), filepath.Join(dir, "nope.txt"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected os.IsNotExist error, got %v", err)
	}
}

func TestLoadArtifactCountMismatch(t *testing.T) {
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectors.bin")
	pasPath := filepath.Join(dir, "passages.txt")

	if err := WriteArtifact(vecPath, pasPath, [][]float32{{1}}, []string{"one"}); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
	if err := os.WriteFile(pasPath, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadArtifact(vecPath, pasPath); err == nil {
		t.Fatal("expected count mismatch error")
	}
}

func TestWriteArtifactRejectsBadPassages(t *testing.T) {
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectors.bin")
	pasPath := filepath.Join(dir, "passages.txt")

	if err := WriteArtifact(vecPath, pasPath, [][]float32{{1}}, []string{"a\nb"}); err == nil {
		t.Fatal("expected error for passage with line break")
	}
	if err := WriteArtifact(vecPath, pasPath, [][]float32{{1}, {2}}, []string{"ok"}); err == nil {
		t.Fatal("expected error for mismatched counts")
	}
}
