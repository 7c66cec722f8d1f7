// Command buildindex embeds each line of a knowledge-base text file via
// the model sidecar and writes the vectors/passages artifact pair that
// bankd loads at startup.
package main

// #region imports
import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mockbank/bankagent/internal/index"
	"github.com/mockbank/bankagent/internal/nlu"
)

// #endregion

// #region main
func main() {
	input := flag.String("input", "data/knowledge_base.txt", "knowledge base text file, one passage per line")
	vectorsPath := flag.String("vectors", "data/vectors.bin", "output vectors file")
	passagesPath := flag.String("passages", "data/passages.txt", "output passages file")
	modelsURL := flag.String("models", envOr("BANKAGENT_MODELS", "http://localhost:9090"), "model sidecar base URL")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open knowledge base: %v", err)
	}
	defer f.Close()

	var passages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			passages = append(passages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("failed to read knowledge base: %v", err)
	}
	if len(passages) == 0 {
		log.Fatalf("knowledge base %s has no passages", *input)
	}

	models := nlu.NewClient(*modelsURL, 60*time.Second)

	// Any embed failure aborts the build: a partial artifact is worse
	// than none.
	vectors := make([][]float32, len(passages))
	for i, passage := range passages {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		vec, err := models.Embed(ctx, passage)
		cancel()
		if err != nil {
			log.Fatalf("failed to embed passage %d: %v", i, err)
		}
		vectors[i] = vec
	}

	if err := index.WriteArtifact(*vectorsPath, *passagesPath, vectors, passages); err != nil {
		log.Fatalf("failed to write artifact: %v", err)
	}
	log.Printf("wrote %d passages to %s / %s", len(passages), *vectorsPath, *passagesPath)
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
