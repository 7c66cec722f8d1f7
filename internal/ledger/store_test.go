package ledger

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedAccount(t *testing.T, s *Store, balance string) {
	t.Helper()
	if err := s.EnsureAccount(1, "Admin", dec(balance)); err != nil {
		t.Fatalf("EnsureAccount: %v", err)
	}
}

func TestEnsureAccountIdempotent(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "5000")

	// A second seed with a different balance must not overwrite.
	if err := s.EnsureAccount(1, "Admin", dec("9999")); err != nil {
		t.Fatalf("EnsureAccount: %v", err)
	}

	bal, err := s.GetBalance(1)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !bal.Equal(dec("5000")) {
		t.Fatalf("balance = %s, want 5000", bal)
	}
}

func TestGetBalanceUnknownAccount(t *testing.T) {
	s := tempStore(t)
	_, err := s.GetBalance(42)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransferSuccess(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "5000")

	result, err := s.Transfer(1, dec("500"), "Saketh")
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if !result.NewBalance.Equal(dec("4500")) {
		t.Fatalf("new balance = %s, want 4500", result.NewBalance)
	}

	records, err := s.Transactions(1)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Type != TransactionTransfer {
		t.Fatalf("type = %s, want TRANSFER", rec.Type)
	}
	if !rec.Amount.Equal(dec("500")) {
		t.Fatalf("amount = %s, want 500", rec.Amount)
	}
	if rec.Recipient != "Saketh" {
		t.Fatalf("recipient = %s, want Saketh", rec.Recipient)
	}

	acct, err := s.GetAccount(1)
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if acct.Version != 1 {
		t.Fatalf("version = %d, want 1", acct.Version)
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "100")

	_, err := s.Transfer(1, dec("500"), "Saketh")
	var insufficient *InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if !insufficient.Balance.Equal(dec("100")) {
		t.Fatalf("reported balance = %s, want 100", insufficient.Balance)
	}

	// No state change, no log entry.
	bal, _ := s.GetBalance(1)
	if !bal.Equal(dec("100")) {
		t.Fatalf("balance = %s, want 100 unchanged", bal)
	}
	records, _ := s.Transactions(1)
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestTransferExactBalance(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "250")

	result, err := s.Transfer(1, dec("250"), "Saketh")
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if !result.NewBalance.IsZero() {
		t.Fatalf("new balance = %s, want 0", result.NewBalance)
	}
}

func TestTransferNonPositiveAmount(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "5000")

	for _, amt := range []string{"0", "-10"} {
		_, err := s.Transfer(1, dec(amt), "Saketh")
		if !errors.Is(err, ErrNonPositiveAmount) {
			t.Fatalf("amount %s: expected ErrNonPositiveAmount, got %v", amt, err)
		}
	}
	records, _ := s.Transactions(1)
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestTransferUnknownAccount(t *testing.T) {
	s := tempStore(t)
	_, err := s.Transfer(7, dec("10"), "Saketh")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransferNotIdempotent(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "1000")

	for i := 0; i < 2; i++ {
		if _, err := s.Transfer(1, dec("100"), "Saketh"); err != nil {
			t.Fatalf("Transfer %d: %v", i, err)
		}
	}

	bal, _ := s.GetBalance(1)
	if !bal.Equal(dec("800")) {
		t.Fatalf("balance = %s, want 800 after two deductions", bal)
	}
	records, _ := s.Transactions(1)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestConcurrentTransfersNeverOverdraw(t *testing.T) {
	s := tempStore(t)
	seedAccount(t, s, "100")

	// Ten racing transfers of 60 against a balance of 100: only one can
	// be funded.
	const workers = 10
	var wg sync.WaitGroup
	successes := make(chan TransferResult, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.Transfer(1, dec("60"), "Saketh")
			if err == nil {
				successes <- result
				return
			}
			var insufficient *InsufficientFundsError
			if !errors.As(err, &insufficient) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	close(successes)

	var won int
	for range successes {
		won++
	}
	if won != 1 {
		t.Fatalf("expected exactly 1 successful transfer, got %d", won)
	}

	bal, err := s.GetBalance(1)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !bal.Equal(dec("40")) {
		t.Fatalf("balance = %s, want 40", bal)
	}
	if bal.IsNegative() {
		t.Fatal("balance went negative under concurrent load")
	}

	records, _ := s.Transactions(1)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}
