package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultCalculationsTableName = "insurance_calculations"
	defaultPaymentsTableName     = "insurance_payments"
)

// PoolProvider yields the shared connection pool, created lazily on first use.
type PoolProvider interface {
	Get(ctx context.Context) (*pgxpool.Pool, error)
}

// TransactionPgxRepository persists orchestration records in Postgres.
//
// Table requirements:
//   - insurance_calculations: id uuid PK, ts timestamptz, price double
//     precision, request text, response text
//   - insurance_payments: id uuid PK, ts timestamptz, premium double
//     precision, policy_number text, external_id text, request text,
//     response text
//
// Both tables are append-only; records are keyed by a generated uuid so
// wall-clock collisions cannot overwrite past records.

type TransactionPgxRepository struct {
	pools             PoolProvider
	calculationsTable string
	paymentsTable     string
}

var _ interfaces.ITransactionRecorder = (*TransactionPgxRepository)(nil)

func NewTransactionPgxRepository(pools PoolProvider) *TransactionPgxRepository {
	return &TransactionPgxRepository{
		pools:             pools,
		calculationsTable: getenvDefault("CALCULATIONS_TABLE", defaultCalculationsTableName),
		paymentsTable:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *TransactionPgxRepository) Session(ctx context.Context) (interfaces.ITransactionSession, error) {
	pool, err := r.pools.Get(ctx)
	if err != nil {
		return nil, err
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Printf("[recorder] session acquire failed err=%v", err)
		return nil, err
	}
	return &pgxSession{conn: conn, repo: r}, nil
}

type pgxSession struct {
	conn *pgxpool.Conn
	repo *TransactionPgxRepository
}

func (s *pgxSession) RecordCalculation(ctx context.Context, rec entities.CalculationRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, ts, price, request, response)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, s.repo.calculationsTable)
	_, err := s.conn.Exec(ctx, query, rec.ID, rec.Ts, rec.Price, string(rec.Request), string(rec.Response))
	if err != nil {
		log.Printf("[recorder] calculation insert failed id=%s err=%v", rec.ID, err)
		return err
	}
	log.Printf("[recorder] calculation recorded id=%s price=%.2f", rec.ID, rec.Price)
	return nil
}

func (s *pgxSession) RecordPayment(ctx context.Context, rec entities.PaymentRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, ts, premium, policy_number, external_id, request, response)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, s.repo.paymentsTable)
	_, err := s.conn.Exec(ctx, query, rec.ID, rec.Ts, rec.Premium, rec.PolicyNumber, rec.ExternalID, string(rec.Request), string(rec.Response))
	if err != nil {
		log.Printf("[recorder] payment insert failed id=%s policy=%s err=%v", rec.ID, rec.PolicyNumber, err)
		return err
	}
	log.Printf("[recorder] payment recorded id=%s policy=%s premium=%.2f", rec.ID, rec.PolicyNumber, rec.Premium)
	return nil
}

func (s *pgxSession) Release() {
	s.conn.Release()
}
