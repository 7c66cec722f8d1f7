package index

// #region imports
import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"
)

// #endregion

// #region write-artifact

// WriteArtifact persists an index as two parallel files: a binary vector
// file (uint32 dim, uint32 count, then row-major little-endian float32
// data) and a passages text file with one passage per line.
func WriteArtifact(vectorsPath, passagesPath string, vectors [][]float32, passages []string) error {
	if len(vectors) != len(passages) {
		return fmt.Errorf("vector/passage count mismatch: %d vectors, %d passages",
			len(vectors), len(passages))
	}

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i, vec := range vectors {
		if len(vec) != dim {
			return fmt.Errorf("vector %d has dim %d, want %d", i, len(vec), dim)
		}
	}
	for i, p := range passages {
		if strings.ContainsAny(p, "\r\n") {
			return fmt.Errorf("passage %d contains a line break", i)
		}
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("passage %d is blank", i)
		}
	}

	buf := make([]byte, 8+len(vectors)*dim*4)
	binary.LittleEndian.PutUint32(buf[0:], uint32(dim))
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(vectors)))
	off := 8
	for _, vec := range vectors {
		for _, f := range vec {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	if err := os.WriteFile(vectorsPath, buf, 0o644); err != nil {
		return fmt.Errorf("write vectors: %w", err)
	}

	var sb strings.Builder
	for _, p := range passages {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(passagesPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write passages: %w", err)
	}
	return nil
}

// #endregion write-artifact

// #region load-artifact

// LoadArtifact reads the artifact pair back into an Index. A missing file
// surfaces as an os.IsNotExist error so callers can choose to run with the
// knowledge route offline.
func LoadArtifact(vectorsPath, passagesPath string) (*Index, error) {
	raw, err := os.ReadFile(vectorsPath)
	if err != nil {
		return nil, err
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("vectors file %s: truncated header", vectorsPath)
	}
	dim := int(binary.LittleEndian.Uint32(raw[0:]))
	count := int(binary.LittleEndian.Uint32(raw[4:]))
	want := 8 + count*dim*4
	if len(raw) != want {
		return nil, fmt.Errorf("vectors file %s: %d bytes, want %d for %d x %d",
			vectorsPath, len(raw), want, count, dim)
	}

	vectors := make([][]float32, count)
	off := 8
	for i := range vectors {
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[off:]))
			off += 4
		}
		vectors[i] = vec
	}

	text, err := os.ReadFile(passagesPath)
	if err != nil {
		return nil, err
	}
	var passages []string
	for _, line := range strings.Split(string(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			passages = append(passages, line)
		}
	}
	if len(passages) != count {
		return nil, fmt.Errorf("passages file %s: %d passages, vectors file has %d",
			passagesPath, len(passages), count)
	}

	return New(vectors, passages)
}

// #endregion load-artifact
