// Package ledger owns account balances and the append-only transaction
// log. It is the only writer of monetary state.
package ledger

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	balance  TEXT NOT NULL,
	version  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	account_id INTEGER NOT NULL,
	type       TEXT NOT NULL,
	amount     TEXT NOT NULL,
	recipient  TEXT NOT NULL,
	created_at TEXT NOT NULL,
	FOREIGN KEY (account_id) REFERENCES accounts(id)
);
`

// #endregion schema

// #region store-struct

// Store manages accounts and their transaction logs in SQLite.
// The mutex serializes the read-check-write-log section of Transfer so
// racing transfers observe a consistent balance instead of SQLITE_BUSY.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region ensure-account

// EnsureAccount seeds an account with an opening balance if it does not
// exist yet. Existing accounts are left untouched.
func (s *Store) EnsureAccount(accountID int64, name string, opening decimal.Decimal) error {
	if opening.IsNegative() {
		return fmt.Errorf("opening balance must not be negative: %s", opening)
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE id = ?`, accountID).Scan(&count)
	if err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = s.db.Exec(
		`INSERT INTO accounts (id, name, balance, version) VALUES (?, ?, ?, 0)`,
		accountID, name, opening.String(),
	)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	return nil
}

// #endregion ensure-account

// #region get-account

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(accountID int64) (Account, error) {
	var acct Account
	var balStr string
	err := s.db.QueryRow(
		`SELECT id, name, balance, version FROM accounts WHERE id = ?`, accountID,
	).Scan(&acct.ID, &acct.Name, &balStr, &acct.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("get account %d: %w", accountID, err)
	}
	acct.Balance, err = decimal.NewFromString(balStr)
	if err != nil {
		return Account{}, fmt.Errorf("parse balance for account %d: %w", accountID, err)
	}
	return acct, nil
}

// GetBalance returns the current balance of an account.
func (s *Store) GetBalance(accountID int64) (decimal.Decimal, error) {
	acct, err := s.GetAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance, nil
}

// #endregion get-account

// #region transfer

// Transfer deducts amount from the account and appends one TRANSFER
// record, atomically: either both the balance write and the log row become
// visible or neither does. Insufficient funds is a domain outcome returned
// as *InsufficientFundsError with no state change.
//
// Transfer is not idempotent in effect: calling it twice with identical
// arguments deducts twice. Deduplication of retried submissions is the
// caller's responsibility.
func (s *Store) Transfer(accountID int64, amount decimal.Decimal, recipient string) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return TransferResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var balStr string
	var version int64
	err = tx.QueryRow(
		`SELECT balance, version FROM accounts WHERE id = ?`, accountID,
	).Scan(&balStr, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return TransferResult{}, ErrAccountNotFound
	}
	if err != nil {
		return TransferResult{}, fmt.Errorf("read balance: %w", err)
	}

	balance, err := decimal.NewFromString(balStr)
	if err != nil {
		return TransferResult{}, fmt.Errorf("parse balance: %w", err)
	}

	if amount.GreaterThan(balance) {
		return TransferResult{}, &InsufficientFundsError{Balance: balance}
	}

	newBalance := balance.Sub(amount)
	res, err := tx.Exec(
		`UPDATE accounts SET balance = ?, version = ? WHERE id = ? AND version = ?`,
		newBalance.String(), version+1, accountID, version,
	)
	if err != nil {
		return TransferResult{}, fmt.Errorf("update balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return TransferResult{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected != 1 {
		return TransferResult{}, fmt.Errorf("concurrent modification of account %d", accountID)
	}

	rec := TransactionRecord{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Type:      TransactionTransfer,
		Amount:    amount,
		Recipient: recipient,
		CreatedAt: time.Now().UTC(),
	}
	_, err = tx.Exec(
		`INSERT INTO transactions (id, account_id, type, amount, recipient, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.AccountID, string(rec.Type), rec.Amount.String(), rec.Recipient,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return TransferResult{}, fmt.Errorf("append transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return TransferResult{}, fmt.Errorf("commit: %w", err)
	}

	return TransferResult{NewBalance: newBalance, Record: rec}, nil
}

// #endregion transfer

// #region transactions

// Transactions lists an account's records in insertion order.
func (s *Store) Transactions(accountID int64) ([]TransactionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, account_id, type, amount, recipient, created_at
		 FROM transactions WHERE account_id = ? ORDER BY seq`, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []TransactionRecord
	for rows.Next() {
		var rec TransactionRecord
		var typeStr, amtStr, createdStr string
		if err := rows.Scan(&rec.ID, &rec.AccountID, &typeStr, &amtStr, &rec.Recipient, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.Type = TransactionType(typeStr)
		rec.Amount, err = decimal.NewFromString(amtStr)
		if err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion transactions
