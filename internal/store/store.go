// Package store provides SQLite-backed persistence for budget trackings.
//
// Only the immutable inputs are persisted: category allocations and the raw
// expense ledger. Every derived figure is recomputed on load, so the stored
// form can never drift out of consistency with the engine.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/fliptrack/internal/budget"
	"github.com/theirongolddev/fliptrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists budget trackings in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTracking writes the full aggregate in one transaction, replacing any
// previous state for the project. The single transaction also serializes
// concurrent writers against the same database.
func (s *Store) SaveTracking(t *model.BudgetTracking) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT INTO projects (project_id, project_name, total_budget, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			project_name = excluded.project_name,
			total_budget = excluded.total_budget,
			updated_at   = excluded.updated_at`,
		t.ProjectID, t.ProjectName, t.TotalBudget, now, now,
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM categories WHERE project_id = ?", t.ProjectID); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM expenses WHERE project_id = ?", t.ProjectID); err != nil {
		return err
	}

	for pos, c := range t.Categories {
		_, err = tx.Exec(`INSERT INTO categories (project_id, category, name, budgeted, position)
			VALUES (?, ?, ?, ?, ?)`,
			t.ProjectID, string(c.Category), c.Name, c.Budgeted, pos,
		)
		if err != nil {
			return err
		}

		for i, e := range c.Expenses {
			date := ""
			if !e.Date.IsZero() {
				date = e.Date.UTC().Format(time.RFC3339)
			}
			_, err = tx.Exec(`INSERT INTO expenses
				(project_id, category, expense_id, description, amount, expense_date,
				 vendor, invoice_number, payment_status, notes, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ProjectID, string(c.Category), e.ID, e.Description, e.Amount, date,
				e.Vendor, e.InvoiceNumber, string(e.PaymentStatus), e.Notes, i,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// ErrProjectNotFound is returned by LoadTracking for an unknown project.
var ErrProjectNotFound = errors.New("project not found")

// LoadTracking reconstructs the aggregate for a project and recalculates all
// derived figures.
func (s *Store) LoadTracking(projectID string) (*model.BudgetTracking, error) {
	t := &model.BudgetTracking{ProjectID: projectID}

	err := s.db.QueryRow(
		"SELECT project_name, total_budget FROM projects WHERE project_id = ?",
		projectID,
	).Scan(&t.ProjectName, &t.TotalBudget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT category, name, budgeted FROM categories WHERE project_id = ? ORDER BY position",
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tag, name string
		var budgeted float64
		if err := rows.Scan(&tag, &name, &budgeted); err != nil {
			return nil, err
		}
		t.Categories = append(t.Categories, &model.BudgetCategory{
			Category: model.ExpenseCategory(tag),
			Name:     name,
			Budgeted: budgeted,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	expRows, err := s.db.Query(`SELECT category, expense_id, description, amount, expense_date,
		vendor, invoice_number, payment_status, notes
		FROM expenses WHERE project_id = ? ORDER BY category, position`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = expRows.Close() }()

	for expRows.Next() {
		var tag, dateStr string
		var e model.Expense
		var status string
		err := expRows.Scan(&tag, &e.ID, &e.Description, &e.Amount, &dateStr,
			&e.Vendor, &e.InvoiceNumber, &status, &e.Notes)
		if err != nil {
			return nil, err
		}
		e.Category = model.ExpenseCategory(tag)
		e.PaymentStatus = model.PaymentStatus(status)
		if dateStr != "" {
			e.Date, _ = time.Parse(time.RFC3339, dateStr)
		}

		c := t.Category(e.Category)
		if c == nil {
			// Orphaned row; the category was never budgeted. Skip it rather
			// than invent a category the engine would not have created.
			continue
		}
		c.Expenses = append(c.Expenses, e)
		if e.Paid() {
			c.Spent += e.Amount
		} else {
			c.Committed += e.Amount
		}
	}
	if err := expRows.Err(); err != nil {
		return nil, err
	}

	budget.Recalculate(t)
	return t, nil
}

// ProjectSummary is one row of the project listing.
type ProjectSummary struct {
	ProjectID   string
	ProjectName string
	TotalBudget float64
	TotalUsed   float64 // spent + committed
	UpdatedAt   time.Time
}

// ListProjects returns headline figures for every stored project, most
// recently updated first.
func (s *Store) ListProjects() ([]ProjectSummary, error) {
	rows, err := s.db.Query(`SELECT p.project_id, p.project_name, p.total_budget, p.updated_at,
		COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.project_id = p.project_id), 0)
		FROM projects p
		ORDER BY p.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []ProjectSummary
	for rows.Next() {
		var ps ProjectSummary
		var updated string
		if err := rows.Scan(&ps.ProjectID, &ps.ProjectName, &ps.TotalBudget, &updated, &ps.TotalUsed); err != nil {
			return nil, err
		}
		ps.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		result = append(result, ps)
	}
	return result, rows.Err()
}

// DeleteProject removes a project and all of its data.
func (s *Store) DeleteProject(projectID string) error {
	_, err := s.db.Exec("DELETE FROM projects WHERE project_id = ?", projectID)
	return err
}
