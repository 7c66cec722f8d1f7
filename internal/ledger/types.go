package ledger

// #region imports
import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// #endregion

// #region account

// Account is a bank account row. Version increases monotonically with
// every balance mutation.
type Account struct {
	ID      int64
	Name    string
	Balance decimal.Decimal
	Version int64
}

// #endregion account

// #region transaction

// TransactionType tags a transaction record.
type TransactionType string

const TransactionTransfer TransactionType = "TRANSFER"

// TransactionRecord is one append-only audit row. Immutable once written.
type TransactionRecord struct {
	ID        string
	AccountID int64
	Type      TransactionType
	Amount    decimal.Decimal
	Recipient string
	CreatedAt time.Time
}

// #endregion transaction

// #region transfer-result

// TransferResult is the outcome of a successful transfer.
type TransferResult struct {
	NewBalance decimal.Decimal
	Record     TransactionRecord
}

// #endregion transfer-result

// #region errors

// ErrAccountNotFound is returned for operations on an unknown account id.
var ErrAccountNotFound = errors.New("account not found")

// ErrNonPositiveAmount signals a precondition violation: callers must
// validate the amount before asking for a transfer.
var ErrNonPositiveAmount = errors.New("transfer amount must be positive")

// InsufficientFundsError is a domain outcome, not an infrastructure
// failure: the transfer was refused and no state changed. It carries the
// unchanged balance for the user-facing reply.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance is %s", e.Balance.StringFixed(2))
}

// #endregion errors
