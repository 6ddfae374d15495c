// Package ledger implements the aggregation engine of the tracker: the
// rules that turn accounts, records, transfers and shared-expense splits
// into balances, period-scoped net figures, category breakdowns and
// budget assessments.
//
// The engine is a pure function of its inputs. Every entry point reads a
// Book (an immutable snapshot of the entity rows) and a Config, and
// returns plain values; nothing is cached between calls and no I/O
// happens inside the package. All monetary arithmetic uses decimal
// values to avoid floating point drift, rounded to the configured
// precision on the way out.
//
// Example usage:
//
//	book := ledger.NewBook(accounts, categories, persons, records, splits)
//	l := ledger.New(book, ledger.NewConfig())
//
//	period, err := ledger.ResolvePeriod(0, ledger.PeriodMonth, cfg.FirstDayOfWeek, time.Now())
//	if err != nil {
//	    return err
//	}
//	net := l.PeriodNet(ledger.NetFilter{Period: &period})
package ledger

// Ledger evaluates aggregation queries against one Book snapshot with
// one Config. It holds no other state; construct a fresh Ledger per
// snapshot rather than mutating one in place.
type Ledger struct {
	book *Book
	cfg  *Config
}

// New creates a Ledger over a snapshot. A nil config falls back to the
// tracker defaults.
func New(book *Book, cfg *Config) *Ledger {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Ledger{book: book, cfg: cfg}
}

// Book returns the underlying snapshot.
func (l *Ledger) Book() *Book {
	return l.book
}

// Config returns the aggregation configuration.
func (l *Ledger) Config() *Config {
	return l.cfg
}
