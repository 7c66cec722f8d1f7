// Package dispatch turns a classified utterance into a user-visible
// reply: it corrects noisy intent labels, categorizes them, and routes to
// the ledger, the knowledge index, or a canned response.
package dispatch

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mockbank/bankagent/internal/catalog"
	"github.com/mockbank/bankagent/internal/extract"
	"github.com/mockbank/bankagent/internal/index"
	"github.com/mockbank/bankagent/internal/ledger"
)

// #endregion

// #region canned-replies

// actionReplies are the canned acknowledgments for action intents that
// need no ledger work. Unmapped action intents get a generic reply.
var actionReplies = map[string]string{
	"lost_or_stolen_card":  "Security alert: your account has been temporarily frozen to prevent fraud.",
	"lost_or_stolen_phone": "Security alert: your account has been temporarily frozen to prevent fraud.",
	"change_pin":           "A PIN reset link has been sent to your mobile.",
	"order_physical_card":  "Order received: your new card will arrive in 5-7 business days.",
	"terminate_account":    "Account closure request submitted. We are sorry to see you go.",
}

// #endregion canned-replies

// #region engine

// Engine routes requests. It owns no persistent state; the ledger store
// and the knowledge index are shared across requests. A nil knowledge
// index means the artifact was never loaded and the knowledge route
// degrades to an offline reply.
type Engine struct {
	catalog   *catalog.Catalog
	ledger    *ledger.Store
	knowledge *index.Index
	embedder  Embedder
	accountID int64
}

// NewEngine wires an engine. knowledge may be nil (offline).
func NewEngine(cat *catalog.Catalog, store *ledger.Store, knowledge *index.Index, embedder Embedder, accountID int64) *Engine {
	return &Engine{
		catalog:   cat,
		ledger:    store,
		knowledge: knowledge,
		embedder:  embedder,
		accountID: accountID,
	}
}

// KnowledgeReady reports whether the retrieval index was loaded. A loaded
// but empty index still counts as ready; it answers with "no answer".
func (e *Engine) KnowledgeReady() bool {
	return e.knowledge != nil
}

// #endregion engine

// #region handle

// Handle processes one request: correction, categorization, routing.
// Domain outcomes (insufficient funds, missing amount, empty retrieval,
// offline knowledge, unknown intent) come back as replies; only
// infrastructure failures return an error.
func (e *Engine) Handle(ctx context.Context, req Request) (Reply, error) {
	intent, rewritten := correctIntent(req.RawIntent, req.Text, req.Entities)
	if rewritten {
		log.Printf("[DISPATCH] override: %q -> %q", req.RawIntent, intent)
	}

	reply := Reply{Intent: intent, Confidence: req.Confidence, Source: SourceLogic}

	switch e.catalog.Categorize(intent) {
	case catalog.CategoryAction:
		return e.handleAction(intent, req, reply)
	case catalog.CategoryKnowledge:
		return e.handleKnowledge(ctx, req, reply)
	default:
		reply.Message = fmt.Sprintf("I understood %q but I don't have a workflow for it.", intent)
		return reply, nil
	}
}

// #endregion handle

// #region handle-action

func (e *Engine) handleAction(intent string, req Request, reply Reply) (Reply, error) {
	reply.Source = SourceLedger

	if intent != intentTransfer {
		msg, ok := actionReplies[intent]
		if !ok {
			msg = fmt.Sprintf("Processing request for %q.", intent)
		}
		reply.Message = msg
		return reply, nil
	}

	recipient, ok := req.Entities.Get(extract.KindPerson)
	if !ok {
		recipient = "Unknown Recipient"
	}

	if !req.HasAmount {
		balance, err := e.ledger.GetBalance(e.accountID)
		if err != nil {
			return Reply{}, fmt.Errorf("read balance: %w", err)
		}
		reply.Message = fmt.Sprintf(
			"I can help transfer funds to %s. Please specify an amount (e.g. $500). Current balance: $%s.",
			recipient, balance.StringFixed(2))
		return reply, nil
	}

	result, err := e.ledger.Transfer(e.accountID, req.Amount, recipient)
	if err != nil {
		var insufficient *ledger.InsufficientFundsError
		if errors.As(err, &insufficient) {
			reply.Message = fmt.Sprintf("Insufficient funds: your balance is $%s.",
				insufficient.Balance.StringFixed(2))
			return reply, nil
		}
		return Reply{}, fmt.Errorf("transfer: %w", err)
	}

	reply.Message = fmt.Sprintf("Sent $%s to %s. New balance: $%s.",
		req.Amount.StringFixed(2), recipient, result.NewBalance.StringFixed(2))
	return reply, nil
}

// #endregion handle-action

// #region handle-knowledge

func (e *Engine) handleKnowledge(ctx context.Context, req Request, reply Reply) (Reply, error) {
	if e.knowledge == nil {
		// Not loaded is distinct from loaded-but-empty: the source stays
		// logic so callers can tell the two apart.
		reply.Message = "The knowledge base is currently offline."
		return reply, nil
	}

	vec, err := e.embedder.Embed(ctx, req.Text)
	if err != nil {
		return Reply{}, fmt.Errorf("embed query: %w", err)
	}

	reply.Source = SourceKnowledge
	results := e.knowledge.Search(vec, 1)
	if len(results) == 0 {
		reply.Message = "I checked the policy but found no specific answer."
		return reply, nil
	}
	reply.Message = results[0].Passage
	return reply, nil
}

// #endregion handle-knowledge
