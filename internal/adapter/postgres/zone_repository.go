package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"club-ads/internal/core/domain"
)

const zoneColumns = `id, name, width, height, price_per_view, max_creative_size, allowed_tags, status, created_at, updated_at`

// ZoneRepository implements port.ZoneRepository using pgxpool for PostgreSQL.
type ZoneRepository struct {
	pool *pgxpool.Pool
}

// NewZoneRepository returns a new repository instance.
func NewZoneRepository(pool *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{pool: pool}
}

func (r *ZoneRepository) CreateZone(ctx context.Context, z *domain.Zone) error {
	if z.AllowedTags == nil {
		z.AllowedTags = []string{}
	}
	if z.Status == "" {
		z.Status = domain.ZoneActive
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO zones (name, width, height, price_per_view, max_creative_size, allowed_tags, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		z.Name, z.Width, z.Height, z.PricePerView, z.MaxCreativeSize, z.AllowedTags, string(z.Status),
	).Scan(&z.ID, &z.CreatedAt, &z.UpdatedAt)
	return mapError(err, "create zone")
}

func (r *ZoneRepository) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	z, err := scanZone(r.pool.QueryRow(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("zone %d", id))
	}
	return &z, nil
}

func (r *ZoneRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+zoneColumns+` FROM zones ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "list zones")
	}
	zones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Zone, error) {
		return scanZone(row)
	})
	return zones, mapError(err, "list zones")
}

func (r *ZoneRepository) SetZoneStatus(ctx context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error) {
	z, err := scanZone(r.pool.QueryRow(ctx, `
		UPDATE zones SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+zoneColumns, id, string(status)))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("zone %d", id))
	}
	return &z, nil
}

func scanZone(row pgx.Row) (domain.Zone, error) {
	var (
		z      domain.Zone
		status string
	)
	err := row.Scan(
		&z.ID,
		&z.Name,
		&z.Width,
		&z.Height,
		&z.PricePerView,
		&z.MaxCreativeSize,
		&z.AllowedTags,
		&status,
		&z.CreatedAt,
		&z.UpdatedAt,
	)
	z.Status = domain.ZoneStatus(status)
	return z, err
}
