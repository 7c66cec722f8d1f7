package dispatch

// #region imports
import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mockbank/bankagent/internal/extract"
)

// #endregion

// #region source

// Source identifies which branch produced a reply.
type Source string

const (
	SourceLedger    Source = "ledger"
	SourceKnowledge Source = "knowledge"
	SourceLogic     Source = "logic"
)

// #endregion source

// #region request

// Request is one classified utterance to route. Entities and the
// extracted amount were produced upstream; Amount is only meaningful when
// HasAmount is set.
type Request struct {
	RequestID  string
	RawIntent  string
	Confidence float64
	Entities   extract.Entities
	Text       string
	Amount     decimal.Decimal
	HasAmount  bool
}

// #endregion request

// #region reply

// Reply is the structured dispatch outcome. Intent carries the corrected
// intent, which may differ from the request's raw intent.
type Reply struct {
	Intent     string
	Confidence float64
	Message    string
	Source     Source
}

// #endregion reply

// #region embedder

// Embedder produces a fixed-length vector for a query string, with the
// same dimensionality as the vectors stored in the knowledge index.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// #endregion embedder
