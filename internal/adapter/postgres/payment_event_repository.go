package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"club-ads/internal/core/port"
)

// PaymentEventRepository deduplicates payment webhook deliveries.
type PaymentEventRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentEventRepository(pool *pgxpool.Pool) *PaymentEventRepository {
	return &PaymentEventRepository{pool: pool}
}

// RecordPaymentEvent stores ev and reports whether it was seen for the
// first time.
func (r *PaymentEventRepository) RecordPaymentEvent(ctx context.Context, ev port.PaymentEvent) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO payment_events (event_id, campaign_id, reference, succeeded, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING`,
		ev.EventID, ev.CampaignID, ev.Reference, ev.Succeeded, ev.ReceivedAt)
	if err != nil {
		return false, mapError(err, fmt.Sprintf("payment event %s", ev.EventID))
	}
	return tag.RowsAffected() == 1, nil
}

// ForgetPaymentEvent deletes the event row so a redelivery is processed
// again.
func (r *PaymentEventRepository) ForgetPaymentEvent(ctx context.Context, eventID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM payment_events WHERE event_id = $1`, eventID); err != nil {
		return mapError(err, fmt.Sprintf("payment event %s", eventID))
	}
	return nil
}
