package ledger

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
)

// AccountBalance computes the current balance of an account: beginning
// balance, plus or minus every record on the account, plus transfers
// arriving into it, adjusted by the paid splits that settle against it.
//
// Records and splits are accounted independently and never double
// counted: an expense's delegated portion is not subtracted here because
// the payer account already absorbed the full amount; a paid split only
// adjusts the settlement account it names. Unpaid splits have no balance
// effect at all.
//
// The balance is as of now, not period-scoped. Callers needing a
// point-in-time figure must build the Book from pre-filtered records.
func (l *Ledger) AccountBalance(accountID int64) (decimal.Decimal, error) {
	account, ok := l.book.Account(accountID)
	if !ok {
		return decimal.Zero, &UnknownAccountError{AccountID: accountID}
	}

	balance := account.BeginningBalance

	for _, r := range l.book.recordsByAccount[accountID] {
		switch {
		case r.IsTransfer:
			// Money leaving via transfer.
			balance = balance.Sub(r.Amount)
		case r.IsIncome:
			balance = balance.Add(r.Amount)
		default:
			// Plain expense; the full amount leaves this account even
			// when portions are delegated to persons via splits.
			balance = balance.Sub(r.Amount)
		}
	}

	// Money arriving via transfer.
	for _, r := range l.book.transfersInto[accountID] {
		balance = balance.Add(r.Amount)
	}

	for _, s := range l.book.splitsByAccount[accountID] {
		if !s.IsPaid {
			continue
		}
		record, ok := l.book.Record(s.RecordID)
		if !ok {
			slog.Warn("split references missing record", "split", s.ID, "record", s.RecordID)
		}
		if ok && record.IsIncome {
			// Paying out a person's share of a shared income.
			balance = balance.Sub(s.Amount)
		} else {
			// Receiving settlement for a shared expense. A split whose
			// record row has gone missing still settles as an expense
			// split; the amount must not silently vanish.
			balance = balance.Add(s.Amount)
		}
	}

	return l.cfg.round(balance), nil
}

// AccountsWithBalance returns every account paired with its derived
// balance, sorted by account id. Hidden and soft-deleted accounts are
// skipped unless includeHidden is set; deleted accounts are never
// returned.
func (l *Ledger) AccountsWithBalance(includeHidden bool) ([]AccountBalance, error) {
	out := make([]AccountBalance, 0, len(l.book.accounts))
	for id, account := range l.book.accounts {
		if account.DeletedAt != nil {
			continue
		}
		if account.Hidden && !includeHidden {
			continue
		}
		balance, err := l.AccountBalance(id)
		if err != nil {
			return nil, err
		}
		out = append(out, AccountBalance{Account: *account, Balance: balance})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Account.ID < out[j].Account.ID
	})

	return out, nil
}
