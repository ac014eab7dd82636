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
)

type PgxCampaignRepository struct {
	BaseRepository
}

// newPgxCampaignRepository creates a new repository for campaign data.
func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepositoryFacade {
	return &PgxCampaignRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CampaignRepositoryFacade = (*PgxCampaignRepository)(nil)

// SaveCampaign inserts a new campaign.
func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := mapping.ToModelCampaign(campaign)

	query := `
		INSERT INTO campaigns (campaign_id, title, description, target_amount, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CampaignID,
		m.Title,
		m.Description,
		m.TargetAmount,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save campaign %s: %w", m.CampaignID, err)
	}
	return nil
}

// ListCampaigns retrieves all campaigns in creation order.
func (r *PgxCampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `
		SELECT campaign_id, title, description, target_amount, created_at
		FROM campaigns
		ORDER BY created_at, campaign_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		var m models.Campaign
		if err := rows.Scan(&m.CampaignID, &m.Title, &m.Description, &m.TargetAmount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		campaigns = append(campaigns, mapping.ToDomainCampaign(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaign rows: %w", err)
	}
	return campaigns, nil
}

// FindCampaignByID retrieves a campaign by its ID.
func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query := `
		SELECT campaign_id, title, description, target_amount, created_at
		FROM campaigns
		WHERE campaign_id = $1;
	`
	var m models.Campaign
	err := r.Pool.QueryRow(ctx, query, campaignID).Scan(
		&m.CampaignID,
		&m.Title,
		&m.Description,
		&m.TargetAmount,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find campaign by id %s: %w", campaignID, err)
	}

	domainCampaign := mapping.ToDomainCampaign(m)
	return &domainCampaign, nil
}
