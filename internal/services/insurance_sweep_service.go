package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/dnstock/realty-backend/utils"
)

// ────────────────────────────────────────────────────────────
// Retry policy – one retry on transient network errors (EOF,
// closed-connection) with a small back-off.
// ────────────────────────────────────────────────────────────
const sweepRetryDelay = 3 * time.Second

const flagExpiredInsurancesSQL = `
	UPDATE insurances
	SET is_flagged = true, updated_at = NOW()
	WHERE expiration_date < NOW() AND is_flagged = false`

// InsuranceSweepService flags lapsed insurance policies each night so
// managers see them surface in their dashboards.
type InsuranceSweepService interface {
	SweepDaily(ctx context.Context) error
}

type insuranceSweepService struct {
	pool *pgxpool.Pool
}

func NewInsuranceSweepService(pool *pgxpool.Pool) InsuranceSweepService {
	return &insuranceSweepService{pool: pool}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *insuranceSweepService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("insurance sweep hit transient DB error; retrying once")
			time.Sleep(sweepRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

// SweepDaily flags every policy whose expiration date has passed. The sweep
// runs across all managers; ownership scoping only applies to request paths.
func (s *insuranceSweepService) SweepDaily(ctx context.Context) error {
	return s.runWithRetry(ctx, func(ctx context.Context) error {
		tag, err := s.pool.Exec(ctx, flagExpiredInsurancesSQL)
		if err != nil {
			utils.Logger.WithError(err).Error("Failed to flag expired insurance policies")
			return err
		}
		utils.Logger.Infof("Daily insurance sweep completed; flagged %d lapsed policies.", tag.RowsAffected())
		return nil
	})
}
