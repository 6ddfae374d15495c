// Package store persists ledger entities in a single-file SQLite database
// and materializes them into an in-memory ledger.Book for computation.
//
// All validation happens at the write boundary: a record or split that
// violates the ledger rules is rejected before it reaches disk, so every
// snapshot read back is well-formed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/pennyledger/penny/ledger"
	"github.com/pennyledger/penny/telemetry"
)

// Store wraps a SQLite database holding accounts, categories, persons,
// records and splits.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating parent directories and
// running migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Debug("opened database", "path", path)

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	slog.Debug("closing database")
	return s.db.Close()
}

// CreateAccount inserts a new account and sets its ID.
func (s *Store) CreateAccount(ctx context.Context, a *ledger.Account) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (name, description, beginning_balance, repayment_date, hidden, deleted_at) VALUES (?, ?, ?, ?, ?, NULL)",
		a.Name, a.Description, a.BeginningBalance.String(), intPtrValue(a.RepaymentDate), a.Hidden,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	a.ID, err = res.LastInsertId()
	return err
}

// Accounts returns all accounts that have not been deleted, in ID order.
// Hidden accounts are included; filtering them is a display concern.
func (s *Store) Accounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, beginning_balance, repayment_date, hidden, deleted_at FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		if a.DeletedAt != nil {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateAccount overwrites the mutable fields of an existing account.
func (s *Store) UpdateAccount(ctx context.Context, a ledger.Account) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET name = ?, description = ?, beginning_balance = ?, repayment_date = ?, hidden = ? WHERE id = ? AND deleted_at IS NULL",
		a.Name, a.Description, a.BeginningBalance.String(), intPtrValue(a.RepaymentDate), a.Hidden, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res, &ledger.UnknownAccountError{AccountID: a.ID})
}

// DeleteAccount soft-deletes an account. Its records stay in the
// database and keep contributing to history.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		encodeTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireRow(res, &ledger.UnknownAccountError{AccountID: id})
}

// CreateCategory inserts a new category and sets its ID.
func (s *Store) CreateCategory(ctx context.Context, c *ledger.Category) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (parent_id, name, color, nature, deleted_at) VALUES (?, ?, ?, ?, NULL)",
		int64PtrValue(c.ParentID), c.Name, c.Color, c.Nature.String(),
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

// Categories returns all categories that have not been deleted, in ID order.
func (s *Store) Categories(ctx context.Context) ([]ledger.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, parent_id, name, color, nature, deleted_at FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []ledger.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		if c.DeletedAt != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory soft-deletes a category. Records that reference it are
// left untouched and fall out of category rollups.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		encodeTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res, fmt.Errorf("category %d not found", id))
}

// CreatePerson inserts a new person and sets their ID.
func (s *Store) CreatePerson(ctx context.Context, p *ledger.Person) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO persons (name) VALUES (?)", p.Name)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Persons returns all persons in ID order.
func (s *Store) Persons(ctx context.Context) ([]ledger.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM persons ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	var persons []ledger.Person
	for rows.Next() {
		var p ledger.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

// CreateRecord validates and inserts a record together with its splits
// in one transaction. The record's ID and each split's ID and RecordID
// are set on success.
func (s *Store) CreateRecord(ctx context.Context, r *ledger.Record, splits []ledger.Split) error {
	if err := ledger.ValidateRecord(*r); err != nil {
		return err
	}
	if err := ledger.ValidateSplits(*r, splits); err != nil {
		return err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO records (label, amount, is_income, is_transfer, date, account_id, category_id, transfer_to, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.Label, r.Amount.String(), r.IsIncome, r.IsTransfer, encodeTime(r.Date),
		r.AccountID, int64PtrValue(r.CategoryID), int64PtrValue(r.TransferTo), encodeTime(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	for i := range splits {
		sp := &splits[i]
		sp.RecordID = r.ID
		res, err := tx.ExecContext(ctx,
			"INSERT INTO splits (record_id, person_id, amount, is_paid, paid_date, account_id) VALUES (?, ?, ?, ?, ?, ?)",
			sp.RecordID, sp.PersonID, sp.Amount.String(), sp.IsPaid, timePtrValue(sp.PaidDate), int64PtrValue(sp.AccountID),
		)
		if err != nil {
			return fmt.Errorf("insert split: %w", err)
		}
		if sp.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Records returns every record in date order.
func (s *Store) Records(ctx context.Context) ([]ledger.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, label, amount, is_income, is_transfer, date, account_id, category_id, transfer_to, created_at FROM records ORDER BY date, id")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []ledger.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteRecord removes a record and, via the schema's cascade, its splits.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return requireRow(res, fmt.Errorf("record %d not found", id))
}

// Splits returns every split.
func (s *Store) Splits(ctx context.Context) ([]ledger.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, record_id, person_id, amount, is_paid, paid_date, account_id FROM splits ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query splits: %w", err)
	}
	defer rows.Close()

	var splits []ledger.Split
	for rows.Next() {
		sp, err := scanSplit(rows)
		if err != nil {
			return nil, err
		}
		splits = append(splits, sp)
	}
	return splits, rows.Err()
}

// PaySplit marks a split as settled on paidDate into the given account.
// A nil accountID records the settlement without touching any balance.
func (s *Store) PaySplit(ctx context.Context, splitID int64, paidDate time.Time, accountID *int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE splits SET is_paid = 1, paid_date = ?, account_id = ? WHERE id = ?",
		encodeTime(paidDate), int64PtrValue(accountID), splitID,
	)
	if err != nil {
		return fmt.Errorf("pay split: %w", err)
	}
	return requireRow(res, fmt.Errorf("split %d not found", splitID))
}

// Snapshot loads the whole database into an immutable ledger.Book.
// Soft-deleted accounts and categories are included so that historical
// records keep resolving; the engine filters them from listings itself.
func (s *Store) Snapshot(ctx context.Context) (*ledger.Book, error) {
	timer := telemetry.FromContext(ctx).Start("load snapshot")
	defer timer.End()

	accounts, err := s.allAccounts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.allCategories(ctx)
	if err != nil {
		return nil, err
	}
	persons, err := s.Persons(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	splits, err := s.Splits(ctx)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded snapshot",
		"accounts", len(accounts),
		"records", len(records),
		"splits", len(splits),
	)

	return ledger.NewBook(accounts, categories, persons, records, splits), nil
}

func (s *Store) allAccounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, beginning_balance, repayment_date, hidden, deleted_at FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *Store) allCategories(ctx context.Context) ([]ledger.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, parent_id, name, color, nature, deleted_at FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []ledger.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanAccount(rows *sql.Rows) (ledger.Account, error) {
	var (
		a         ledger.Account
		balance   string
		repayment sql.NullInt64
		deletedAt sql.NullString
	)
	if err := rows.Scan(&a.ID, &a.Name, &a.Description, &balance, &repayment, &a.Hidden, &deletedAt); err != nil {
		return a, fmt.Errorf("scan account: %w", err)
	}
	var err error
	if a.BeginningBalance, err = decimal.NewFromString(balance); err != nil {
		return a, fmt.Errorf("account %d balance: %w", a.ID, err)
	}
	if repayment.Valid {
		day := int(repayment.Int64)
		a.RepaymentDate = &day
	}
	if a.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return a, fmt.Errorf("account %d deleted_at: %w", a.ID, err)
	}
	return a, nil
}

func scanCategory(rows *sql.Rows) (ledger.Category, error) {
	var (
		c         ledger.Category
		parentID  sql.NullInt64
		nature    string
		deletedAt sql.NullString
	)
	if err := rows.Scan(&c.ID, &parentID, &c.Name, &c.Color, &nature, &deletedAt); err != nil {
		return c, fmt.Errorf("scan category: %w", err)
	}
	if parentID.Valid {
		c.ParentID = &parentID.Int64
	}
	var err error
	if c.Nature, err = ledger.ParseNature(nature); err != nil {
		return c, fmt.Errorf("category %d: %w", c.ID, err)
	}
	if c.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return c, fmt.Errorf("category %d deleted_at: %w", c.ID, err)
	}
	return c, nil
}

func scanRecord(rows *sql.Rows) (ledger.Record, error) {
	var (
		r          ledger.Record
		amount     string
		date       string
		categoryID sql.NullInt64
		transferTo sql.NullInt64
		createdAt  string
	)
	if err := rows.Scan(&r.ID, &r.Label, &amount, &r.IsIncome, &r.IsTransfer, &date, &r.AccountID, &categoryID, &transferTo, &createdAt); err != nil {
		return r, fmt.Errorf("scan record: %w", err)
	}
	var err error
	if r.Amount, err = decimal.NewFromString(amount); err != nil {
		return r, fmt.Errorf("record %d amount: %w", r.ID, err)
	}
	if r.Date, err = decodeTime(date); err != nil {
		return r, fmt.Errorf("record %d date: %w", r.ID, err)
	}
	if r.CreatedAt, err = decodeTime(createdAt); err != nil {
		return r, fmt.Errorf("record %d created_at: %w", r.ID, err)
	}
	if categoryID.Valid {
		r.CategoryID = &categoryID.Int64
	}
	if transferTo.Valid {
		r.TransferTo = &transferTo.Int64
	}
	return r, nil
}

func scanSplit(rows *sql.Rows) (ledger.Split, error) {
	var (
		sp        ledger.Split
		amount    string
		paidDate  sql.NullString
		accountID sql.NullInt64
	)
	if err := rows.Scan(&sp.ID, &sp.RecordID, &sp.PersonID, &amount, &sp.IsPaid, &paidDate, &accountID); err != nil {
		return sp, fmt.Errorf("scan split: %w", err)
	}
	var err error
	if sp.Amount, err = decimal.NewFromString(amount); err != nil {
		return sp, fmt.Errorf("split %d amount: %w", sp.ID, err)
	}
	if sp.PaidDate, err = decodeTimePtr(paidDate); err != nil {
		return sp, fmt.Errorf("split %d paid_date: %w", sp.ID, err)
	}
	if accountID.Valid {
		sp.AccountID = &accountID.Int64
	}
	return sp, nil
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func decodeTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := decodeTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func int64PtrValue(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtrValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func timePtrValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return encodeTime(*t)
}
