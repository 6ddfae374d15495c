package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pennyledger/penny/ledger"
)

// CreateTemplate validates and inserts a record template, appending it
// to the end of the ordering. The template's ID and Position are set on
// success.
func (s *Store) CreateTemplate(ctx context.Context, t *ledger.Template) error {
	if err := ledger.ValidateTemplate(*t); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM templates").Scan(&t.Position); err != nil {
		return fmt.Errorf("next template position: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO templates (label, amount, is_income, is_transfer, account_id, category_id, transfer_to, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		t.Label, t.Amount.String(), t.IsIncome, t.IsTransfer,
		t.AccountID, int64PtrValue(t.CategoryID), int64PtrValue(t.TransferTo), t.Position,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Templates returns every template in position order.
func (s *Store) Templates(ctx context.Context) ([]ledger.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, label, amount, is_income, is_transfer, account_id, category_id, transfer_to, position FROM templates ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []ledger.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Template returns a single template by ID.
func (s *Store) Template(ctx context.Context, id int64) (ledger.Template, error) {
	templates, err := s.Templates(ctx)
	if err != nil {
		return ledger.Template{}, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return ledger.Template{}, fmt.Errorf("template %d not found", id)
}

// DeleteTemplate removes a template and closes the gap it leaves in the
// ordering, keeping positions dense.
func (s *Store) DeleteTemplate(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int64
	err = tx.QueryRowContext(ctx, "SELECT position FROM templates WHERE id = ?", id).Scan(&position)
	if err == sql.ErrNoRows {
		return fmt.Errorf("template %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("query template position: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE templates SET position = position - 1 WHERE position > ?", position); err != nil {
		return fmt.Errorf("repack template positions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func scanTemplate(rows *sql.Rows) (ledger.Template, error) {
	var (
		t          ledger.Template
		amount     string
		categoryID sql.NullInt64
		transferTo sql.NullInt64
	)
	if err := rows.Scan(&t.ID, &t.Label, &amount, &t.IsIncome, &t.IsTransfer, &t.AccountID, &categoryID, &transferTo, &t.Position); err != nil {
		return t, fmt.Errorf("scan template: %w", err)
	}
	var err error
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return t, fmt.Errorf("template %d amount: %w", t.ID, err)
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if transferTo.Valid {
		t.TransferTo = &transferTo.Int64
	}
	return t, nil
}
