package dispatch

// #region imports
import (
	"strings"

	"github.com/mockbank/bankagent/internal/extract"
)

// #endregion

// #region correction-rules

const intentTransfer = "transfer_into_account"

// misclassifiedAsTransfer lists intents the classifier confuses with an
// actual transfer command when the utterance names a recipient or reads
// like an imperative.
var misclassifiedAsTransfer = map[string]bool{
	"balance_not_updated_after_bank_transfer": true,
	"top_up_by_bank_transfer_charge":          true,
	"transfer_fee_charged":                    true,
	"transaction_charged_twice":               true,
}

var imperativeVerbs = []string{"transfer", "send", "pay"}

// #endregion correction-rules

// #region correct-intent

// correctIntent applies the one-shot transfer override. The rewrite never
// chains into further correction rules.
func correctIntent(rawIntent, text string, ents extract.Entities) (string, bool) {
	if !misclassifiedAsTransfer[rawIntent] {
		return rawIntent, false
	}
	if ents.Has(extract.KindPerson) {
		return intentTransfer, true
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, verb := range imperativeVerbs {
		if strings.HasPrefix(lower, verb) {
			return intentTransfer, true
		}
	}
	return rawIntent, false
}

// #endregion correct-intent
