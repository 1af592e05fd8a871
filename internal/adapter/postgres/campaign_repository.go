package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

const campaignColumns = `id, advertiser_id, zone_id, name, budget, spent, cpv,
	views_purchased, views_delivered, unique_views, clicks, targeting_tags,
	payment_status, payment_reference, payment_attempts, status,
	start_date, end_date, retired_at, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Counter and status updates are single conditional statements
// so concurrent serves never overspend a budget.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.StatusDraft
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = domain.PaymentPending
	}
	if c.TargetingTags == nil {
		c.TargetingTags = []string{}
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns
			(advertiser_id, zone_id, name, budget, spent, cpv, views_purchased,
			 targeting_tags, payment_status, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		c.AdvertiserID, c.ZoneID, c.Name, c.Budget, c.Spent, c.CPV, nullableViews(c.ViewsPurchased),
		c.TargetingTags, string(c.PaymentStatus), string(c.Status), c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapError(err, "create campaign")
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("campaign %d", id))
	}
	return &c, nil
}

func (r *CampaignRepository) GetCampaignByPaymentReference(ctx context.Context, ref string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE payment_reference = $1`, ref))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("payment reference %q", ref))
	}
	return &c, nil
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where = []string{"retired_at IS NULL"}
		args  []any
	)
	if filter.AdvertiserID != "" {
		args = append(args, filter.AdvertiserID)
		where = append(where, fmt.Sprintf("advertiser_id = $%d", len(args)))
	}
	if filter.ZoneID != 0 {
		args = append(args, filter.ZoneID)
		where = append(where, fmt.Sprintf("zone_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`
	return r.list(ctx, "list campaigns", query, args...)
}

// FindActiveForZone returns active, unretired campaigns of a zone whose
// schedule covers now. When tags is non-empty a campaign must share at
// least one of them.
func (r *CampaignRepository) FindActiveForZone(ctx context.Context, zoneID int64, tags []string, now time.Time) ([]domain.Campaign, error) {
	if tags == nil {
		tags = []string{}
	}
	return r.list(ctx, "find active campaigns", `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE zone_id = $1
		  AND status = 'active'
		  AND retired_at IS NULL
		  AND (start_date IS NULL OR start_date <= $2)
		  AND (end_date IS NULL OR end_date >= $2)
		  AND (COALESCE(cardinality($3::text[]), 0) = 0 OR targeting_tags && $3::text[])
		ORDER BY id`, zoneID, now, tags)
}

func (r *CampaignRepository) FindEnded(ctx context.Context, now time.Time, statuses []domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.list(ctx, "find ended campaigns", `
		SELECT `+campaignColumns+` FROM campaigns
		WHERE end_date IS NOT NULL AND end_date < $1 AND status = ANY($2)
		ORDER BY id`, now, statusStrings(statuses))
}

// ChangeStatus moves a campaign to change.To only when its current status
// is one of change.From. A lost race surfaces as port.ErrConflict.
func (r *CampaignRepository) ChangeStatus(ctx context.Context, change port.StatusChange) (*domain.Campaign, error) {
	var start *time.Time
	if !change.StartDate.IsZero() {
		start = &change.StartDate
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, `
		UPDATE campaigns SET
			status            = $3,
			payment_status    = COALESCE(NULLIF($4, ''), payment_status),
			payment_reference = COALESCE(NULLIF($5, ''), payment_reference),
			start_date        = COALESCE(start_date, $6),
			updated_at        = $7
		WHERE id = $1 AND status = ANY($2)
		RETURNING `+campaignColumns,
		change.CampaignID, statusStrings(change.From), string(change.To),
		string(change.PaymentStatus), change.PaymentReference, start, change.At))
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err, fmt.Sprintf("campaign %d", change.CampaignID))
	}
	return nil, r.conflictOrMissing(ctx, change.CampaignID)
}

func (r *CampaignRepository) RecordPaymentFailure(ctx context.Context, id int64, at time.Time) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `
		UPDATE campaigns SET
			payment_attempts = payment_attempts + 1,
			payment_status   = 'failed',
			updated_at       = $2
		WHERE id = $1 AND status = 'pending_payment'
		RETURNING `+campaignColumns, id, at))
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err, fmt.Sprintf("campaign %d", id))
	}
	return nil, r.conflictOrMissing(ctx, id)
}

// IncrementDelivery charges one impression. The campaign and creative
// counters move together in one transaction and the guard conditions live
// in the UPDATE itself, so two concurrent serves can never both take the
// last affordable impression.
func (r *CampaignRepository) IncrementDelivery(ctx context.Context, inc port.DeliveryIncrement) (port.DeliveryResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return port.DeliveryResult{}, mapError(err, "begin delivery")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result := port.DeliveryResult{}
	err = tx.QueryRow(ctx, `
		UPDATE campaigns SET
			spent           = spent + $2,
			views_delivered = views_delivered + 1,
			updated_at      = now()
		WHERE id = $1
		  AND status = 'active'
		  AND spent + $2 <= budget
		  AND (views_purchased IS NULL OR views_delivered < views_purchased)
		RETURNING spent, views_delivered`,
		inc.CampaignID, inc.Cost,
	).Scan(&result.NewSpent, &result.NewViews)
	if errors.Is(err, pgx.ErrNoRows) {
		return classifyRejectedDelivery(ctx, tx, inc)
	}
	if err != nil {
		return port.DeliveryResult{}, mapError(err, fmt.Sprintf("campaign %d", inc.CampaignID))
	}

	tag, err := tx.Exec(ctx, `
		UPDATE creatives SET number_of_views = number_of_views + 1, updated_at = now()
		WHERE id = $1 AND campaign_id = $2 AND status = 'active'`,
		inc.CreativeID, inc.CampaignID)
	if err != nil {
		return port.DeliveryResult{}, mapError(err, fmt.Sprintf("creative %d", inc.CreativeID))
	}
	if tag.RowsAffected() == 0 {
		return port.DeliveryResult{}, classifyRejectedCreative(ctx, tx, inc)
	}

	if err = tx.Commit(ctx); err != nil {
		return port.DeliveryResult{}, mapError(err, "commit delivery")
	}
	result.Applied = true
	return result, nil
}

// IncrementClicks counts a click unless the campaign reached a terminal
// state, whose counters stay frozen.
func (r *CampaignRepository) IncrementClicks(ctx context.Context, campaignID int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET clicks = clicks + 1
		WHERE id = $1 AND status NOT IN ('completed', 'expired', 'rejected')`, campaignID)
	if err != nil {
		return mapError(err, fmt.Sprintf("campaign %d", campaignID))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	c, err := r.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	return fmt.Errorf("campaign %d is %s: %w", campaignID, c.Status, port.ErrCampaignNotActive)
}

func (r *CampaignRepository) IncrementUniqueViews(ctx context.Context, campaignID int64) error {
	return r.bump(ctx, campaignID, `UPDATE campaigns SET unique_views = unique_views + 1 WHERE id = $1`)
}

// DeleteCampaign removes a campaign that never delivered anything.
// Creatives go with it through the foreign key cascade.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM campaigns
		WHERE id = $1 AND views_delivered = 0 AND clicks = 0 AND spent = 0`, id)
	if err != nil {
		return mapError(err, fmt.Sprintf("campaign %d", id))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err = r.GetCampaign(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("campaign %d has delivery history: %w", id, port.ErrConflict)
}

func (r *CampaignRepository) RetireCampaign(ctx context.Context, id int64, at time.Time) error {
	return r.bump(ctx, id, `
		UPDATE campaigns SET retired_at = COALESCE(retired_at, $2), updated_at = $2
		WHERE id = $1`, at)
}

func (r *CampaignRepository) bump(ctx context.Context, id int64, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return mapError(err, fmt.Sprintf("campaign %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	return nil
}

func (r *CampaignRepository) list(ctx context.Context, what, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, what)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	return out, mapError(err, what)
}

func (r *CampaignRepository) conflictOrMissing(ctx context.Context, id int64) error {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1`, id).Scan(&status)
	if err != nil {
		return mapError(err, fmt.Sprintf("campaign %d", id))
	}
	return fmt.Errorf("campaign %d is %s: %w", id, status, port.ErrConflict)
}

// classifyRejectedDelivery explains why the guarded UPDATE matched no row.
func classifyRejectedDelivery(ctx context.Context, tx pgx.Tx, inc port.DeliveryIncrement) (port.DeliveryResult, error) {
	var (
		status            string
		spent, budget     decimal.Decimal
		delivered, capped int64
	)
	err := tx.QueryRow(ctx, `
		SELECT status, spent, budget, views_delivered, COALESCE(views_purchased, 0)
		FROM campaigns WHERE id = $1`, inc.CampaignID,
	).Scan(&status, &spent, &budget, &delivered, &capped)
	if err != nil {
		return port.DeliveryResult{}, mapError(err, fmt.Sprintf("campaign %d", inc.CampaignID))
	}

	result := port.DeliveryResult{NewSpent: spent, NewViews: delivered}
	switch {
	case domain.CampaignStatus(status) != domain.StatusActive:
		return port.DeliveryResult{}, fmt.Errorf("campaign %d is %s: %w", inc.CampaignID, status, port.ErrCampaignNotActive)
	case spent.Add(inc.Cost).GreaterThan(budget):
		result.BudgetExceeded = true
	case capped > 0 && delivered >= capped:
		result.ViewCapReached = true
	default:
		return port.DeliveryResult{}, fmt.Errorf("campaign %d: %w", inc.CampaignID, port.ErrConflict)
	}
	return result, nil
}

func classifyRejectedCreative(ctx context.Context, tx pgx.Tx, inc port.DeliveryIncrement) error {
	var (
		campaignID int64
		status     string
	)
	err := tx.QueryRow(ctx, `SELECT campaign_id, status FROM creatives WHERE id = $1`, inc.CreativeID).
		Scan(&campaignID, &status)
	if err != nil {
		return mapError(err, fmt.Sprintf("creative %d", inc.CreativeID))
	}
	if campaignID != inc.CampaignID {
		return fmt.Errorf("creative %d of campaign %d: %w", inc.CreativeID, inc.CampaignID, port.ErrNotFound)
	}
	return fmt.Errorf("creative %d is %s: %w", inc.CreativeID, status, port.ErrConflict)
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                     domain.Campaign
		viewsPurchased        *int64
		paymentReference      *string
		paymentStatus, status string
	)
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.ZoneID,
		&c.Name,
		&c.Budget,
		&c.Spent,
		&c.CPV,
		&viewsPurchased,
		&c.ViewsDelivered,
		&c.UniqueViews,
		&c.Clicks,
		&c.TargetingTags,
		&paymentStatus,
		&paymentReference,
		&c.PaymentAttempts,
		&status,
		&c.StartDate,
		&c.EndDate,
		&c.RetiredAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if viewsPurchased != nil {
		c.ViewsPurchased = *viewsPurchased
	}
	if paymentReference != nil {
		c.PaymentReference = *paymentReference
	}
	c.PaymentStatus = domain.PaymentStatus(paymentStatus)
	c.Status = domain.CampaignStatus(status)
	return c, nil
}

func nullableViews(n int64) *int64 {
	if n <= 0 {
		return nil
	}
	return &n
}

func statusStrings(statuses []domain.CampaignStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
