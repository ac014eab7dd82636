package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portsrepo "github.com/karunya-trust/donation_backend/internal/core/ports/repositories"
	"github.com/karunya-trust/donation_backend/internal/models"
	"github.com/karunya-trust/donation_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

type PgxDonationRepository struct {
	BaseRepository
}

// newPgxDonationRepository creates a new repository for donation data.
func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

// SaveDonation inserts a new donation record. Donations are append-only;
// there is no update path. The amount check mirrors the table constraint so
// the error surfaces as a validation failure rather than a raw pg error.
func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	if donation.Amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrValidation
	}
	modelDonation := mapping.ToModelDonation(donation)

	query := `
		INSERT INTO donations (donation_id, name, email, amount, campaign_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelDonation.DonationID,
		modelDonation.Name,
		modelDonation.Email,
		modelDonation.Amount,
		modelDonation.CampaignID,
		modelDonation.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save donation %s: %w", modelDonation.DonationID, err)
	}
	return nil
}

// ListDonations retrieves all donations in creation order.
func (r *PgxDonationRepository) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	query := `
		SELECT donation_id, name, email, amount, campaign_id, created_at
		FROM donations
		ORDER BY created_at, donation_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var m models.Donation
		if err := rows.Scan(&m.DonationID, &m.Name, &m.Email, &m.Amount, &m.CampaignID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, mapping.ToDomainDonation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate donation rows: %w", err)
	}
	return donations, nil
}

// FindDonationByID retrieves a donation by its ID.
func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `
		SELECT donation_id, name, email, amount, campaign_id, created_at
		FROM donations
		WHERE donation_id = $1;
	`
	var m models.Donation
	err := r.Pool.QueryRow(ctx, query, donationID).Scan(
		&m.DonationID,
		&m.Name,
		&m.Email,
		&m.Amount,
		&m.CampaignID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donation by id %s: %w", donationID, err)
	}

	domainDonation := mapping.ToDomainDonation(m)
	return &domainDonation, nil
}

// DonationStats aggregates over the full table on every call.
func (r *PgxDonationRepository) DonationStats(ctx context.Context) (domain.DonationStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM donations;
	`
	var stats domain.DonationStats
	err := r.Pool.QueryRow(ctx, query).Scan(&stats.Count, &stats.TotalAmount)
	if err != nil {
		return domain.DonationStats{}, fmt.Errorf("failed to aggregate donation stats: %w", err)
	}
	stats.AverageAmount = decimal.Zero
	if stats.Count > 0 {
		stats.AverageAmount = stats.TotalAmount.Div(decimal.NewFromInt(stats.Count))
	}
	return stats, nil
}
