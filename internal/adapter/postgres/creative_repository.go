package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"club-ads/internal/core/domain"
)

const creativeColumns = `id, campaign_id, name, type, url, destination_url, format, width, height, file_size, number_of_views, status, created_at, updated_at`

// CreativeRepository implements port.CreativeRepository using pgxpool for PostgreSQL.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

func (r *CreativeRepository) CreateCreative(ctx context.Context, cr *domain.Creative) error {
	if cr.Status == "" {
		cr.Status = domain.CreativeActive
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO creatives
			(campaign_id, name, type, url, destination_url, format, width, height, file_size, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, number_of_views, created_at, updated_at`,
		cr.CampaignID, cr.Name, string(cr.Type), cr.URL, cr.DestinationURL, cr.Format,
		cr.Width, cr.Height, cr.FileSize, string(cr.Status),
	).Scan(&cr.ID, &cr.NumberOfViews, &cr.CreatedAt, &cr.UpdatedAt)
	return mapError(err, fmt.Sprintf("create creative for campaign %d", cr.CampaignID))
}

func (r *CreativeRepository) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	cr, err := scanCreative(r.pool.QueryRow(ctx, `SELECT `+creativeColumns+` FROM creatives WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("creative %d", id))
	}
	return &cr, nil
}

func (r *CreativeRepository) ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error) {
	return r.list(ctx, `SELECT `+creativeColumns+` FROM creatives WHERE campaign_id = $1 ORDER BY id`, campaignID)
}

// ListActiveCreatives loads the active creatives of many campaigns in one
// round trip; selection calls it once per request.
func (r *CreativeRepository) ListActiveCreatives(ctx context.Context, campaignIDs []int64) ([]domain.Creative, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT `+creativeColumns+` FROM creatives
		WHERE campaign_id = ANY($1) AND status = 'active'
		ORDER BY id`, campaignIDs)
}

func (r *CreativeRepository) SetCreativeStatus(ctx context.Context, id int64, status domain.CreativeStatus) (*domain.Creative, error) {
	cr, err := scanCreative(r.pool.QueryRow(ctx, `
		UPDATE creatives SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+creativeColumns, id, string(status)))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("creative %d", id))
	}
	return &cr, nil
}

func (r *CreativeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Creative, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list creatives")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		return scanCreative(row)
	})
	return out, mapError(err, "list creatives")
}

func scanCreative(row pgx.Row) (domain.Creative, error) {
	var (
		cr          domain.Creative
		typ, status string
	)
	err := row.Scan(
		&cr.ID,
		&cr.CampaignID,
		&cr.Name,
		&typ,
		&cr.URL,
		&cr.DestinationURL,
		&cr.Format,
		&cr.Width,
		&cr.Height,
		&cr.FileSize,
		&cr.NumberOfViews,
		&status,
		&cr.CreatedAt,
		&cr.UpdatedAt,
	)
	cr.Type = domain.CreativeType(typ)
	cr.Status = domain.CreativeStatus(status)
	return cr, err
}
