package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"property-plan/domain"
)

// planRow is the gorm model behind the plans table.
type planRow struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	Cost             float64
	DownpaymentRate  float64
	NotaryRate       float64
	AnnualRate       float64
	TermYears        int
	MonthlyPayment   float64
	MonthlyPrincipal float64
	MonthlyInterest  float64
	TotalPayment     float64
	Downpayment      float64
	TotalBorrowed    float64
	TotalInterest    float64
	NotaryFees       float64
	CreatedAt        time.Time `gorm:"index"`
}

func (planRow) TableName() string {
	return "plans"
}

func toPlanRow(record domain.PlanRecord) planRow {
	p, res := record.Parameters, record.Result
	return planRow{
		ID:               record.ID,
		Cost:             p.Cost,
		DownpaymentRate:  p.DownpaymentRate,
		NotaryRate:       p.NotaryRate,
		AnnualRate:       p.AnnualRate,
		TermYears:        p.TermYears,
		MonthlyPayment:   res.MonthlyPayment,
		MonthlyPrincipal: res.MonthlyPrincipal,
		MonthlyInterest:  res.MonthlyInterest,
		TotalPayment:     res.TotalPayment,
		Downpayment:      res.Downpayment,
		TotalBorrowed:    res.TotalBorrowed,
		TotalInterest:    res.TotalInterest,
		NotaryFees:       res.NotaryFees,
		CreatedAt:        record.CreatedAt,
	}
}

func (row planRow) toRecord() domain.PlanRecord {
	return domain.PlanRecord{
		ID: row.ID,
		Parameters: domain.LoanParameters{
			Cost:            row.Cost,
			DownpaymentRate: row.DownpaymentRate,
			NotaryRate:      row.NotaryRate,
			AnnualRate:      row.AnnualRate,
			TermYears:       row.TermYears,
		},
		Result: domain.PlanResult{
			MonthlyPayment:   row.MonthlyPayment,
			MonthlyPrincipal: row.MonthlyPrincipal,
			MonthlyInterest:  row.MonthlyInterest,
			TotalPayment:     row.TotalPayment,
			Downpayment:      row.Downpayment,
			TotalBorrowed:    row.TotalBorrowed,
			TotalInterest:    row.TotalInterest,
			NotaryFees:       row.NotaryFees,
		},
		CreatedAt: row.CreatedAt.UTC(),
	}
}

// PlanRepositoryPostgres stores plan records in PostgreSQL through gorm.
type PlanRepositoryPostgres struct {
	db *gorm.DB
}

// NewPlanRepositoryPostgres connects with dsn and migrates the plans table.
func NewPlanRepositoryPostgres(dsn string) (*PlanRepositoryPostgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	if err := db.AutoMigrate(&planRow{}); err != nil {
		return nil, fmt.Errorf("postgres: migrate plans: %w", err)
	}

	return &PlanRepositoryPostgres{db: db}, nil
}

func (r *PlanRepositoryPostgres) Save(ctx context.Context, record domain.PlanRecord) error {
	row := toPlanRow(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("postgres: insert plan %s: %w", record.ID, err)
	}
	return nil
}

func (r *PlanRepositoryPostgres) List(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	var rows []planRow
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("postgres: query plans: %w", err)
	}

	records := make([]domain.PlanRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *PlanRepositoryPostgres) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
