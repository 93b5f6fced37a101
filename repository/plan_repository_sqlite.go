package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"property-plan/domain"
)

const createPlansTable = `
CREATE TABLE IF NOT EXISTS plans (
	id                TEXT PRIMARY KEY,
	cost              REAL NOT NULL,
	downpayment_rate  REAL NOT NULL,
	notary_rate       REAL NOT NULL,
	annual_rate       REAL NOT NULL,
	term_years        INTEGER NOT NULL,
	monthly_payment   REAL NOT NULL,
	monthly_principal REAL NOT NULL,
	monthly_interest  REAL NOT NULL,
	total_payment     REAL NOT NULL,
	downpayment       REAL NOT NULL,
	total_borrowed    REAL NOT NULL,
	total_interest    REAL NOT NULL,
	notary_fees       REAL NOT NULL,
	created_at        INTEGER NOT NULL
)`

const createPlansIndex = `CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`

// PlanRepositorySQLite stores plan records in a SQLite database file.
type PlanRepositorySQLite struct {
	db *sql.DB
}

// NewPlanRepositorySQLite opens (or creates) the database at path.
// ":memory:" gives a throwaway database.
func NewPlanRepositorySQLite(path string) (*PlanRepositorySQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{createPlansTable, createPlansIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: create schema: %w", err)
		}
	}

	return &PlanRepositorySQLite{db: db}, nil
}

func (r *PlanRepositorySQLite) Save(ctx context.Context, record domain.PlanRecord) error {
	p, res := record.Parameters, record.Result
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, cost, downpayment_rate, notary_rate, annual_rate, term_years,
			monthly_payment, monthly_principal, monthly_interest, total_payment, downpayment,
			total_borrowed, total_interest, notary_fees, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, p.Cost, p.DownpaymentRate, p.NotaryRate, p.AnnualRate, p.TermYears,
		res.MonthlyPayment, res.MonthlyPrincipal, res.MonthlyInterest, res.TotalPayment, res.Downpayment,
		res.TotalBorrowed, res.TotalInterest, res.NotaryFees, record.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("sqlite: insert plan %s: %w", record.ID, err)
	}
	return nil
}

func (r *PlanRepositorySQLite) List(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, cost, downpayment_rate, notary_rate, annual_rate, term_years,
			monthly_payment, monthly_principal, monthly_interest, total_payment, downpayment,
			total_borrowed, total_interest, notary_fees, created_at
		FROM plans ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query plans: %w", err)
	}
	defer rows.Close()

	records := []domain.PlanRecord{}
	for rows.Next() {
		var (
			rec       domain.PlanRecord
			createdAt int64
		)
		p, res := &rec.Parameters, &rec.Result
		if err := rows.Scan(&rec.ID, &p.Cost, &p.DownpaymentRate, &p.NotaryRate, &p.AnnualRate, &p.TermYears,
			&res.MonthlyPayment, &res.MonthlyPrincipal, &res.MonthlyInterest, &res.TotalPayment, &res.Downpayment,
			&res.TotalBorrowed, &res.TotalInterest, &res.NotaryFees, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan plan: %w", err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate plans: %w", err)
	}
	return records, nil
}

func (r *PlanRepositorySQLite) Close() error {
	return r.db.Close()
}
