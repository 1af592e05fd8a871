package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedZone struct {
	name          string
	width, height int
	price         string
	allowedTags   []string
}

var seedZones = []seedZone{
	{name: "Homepage leaderboard", width: 728, height: 90, price: "0.0200", allowedTags: []string{}},
	{name: "Match centre MPU", width: 300, height: 250, price: "0.0150", allowedTags: []string{"football", "rugby", "tickets"}},
	{name: "Members video pre-roll", width: 1280, height: 720, price: "0.0400", allowedTags: []string{}},
}

var seedTags = []string{"football", "rugby", "tickets"}

// Seed inserts demo zones, active campaigns and creatives so the serve
// endpoint returns something on a fresh database.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for zi, z := range seedZones {
		var zoneID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO zones (name, width, height, price_per_view, allowed_tags, status)
			VALUES ($1, $2, $3, $4, $5, 'active')
			RETURNING id`,
			z.name, z.width, z.height, z.price, z.allowedTags).Scan(&zoneID)
		if err != nil {
			return fmt.Errorf("seed zone %q: %w", z.name, err)
		}

		for ci := 1; ci <= 3; ci++ {
			cpv := decimal.RequireFromString(z.price)
			budget := cpv.Mul(decimal.NewFromInt(int64(1000 * ci)))
			tags := []string{seedTags[r.Intn(len(seedTags))]}
			start := now.AddDate(0, 0, -1)
			end := now.AddDate(0, 1, 0)

			var campaignID int64
			err = pool.QueryRow(ctx, `
				INSERT INTO campaigns
					(advertiser_id, zone_id, name, budget, cpv, targeting_tags,
					 payment_status, payment_reference, status, start_date, end_date)
				VALUES ($1, $2, $3, $4, $5, $6, 'paid', $7, 'active', $8, $9)
				RETURNING id`,
				fmt.Sprintf("advertiser-%d", ci), zoneID, fmt.Sprintf("Seed campaign %d.%d", zi+1, ci),
				budget, cpv, tags, "seed-"+uuid.NewString(), start, end).Scan(&campaignID)
			if err != nil {
				return fmt.Errorf("seed campaign for zone %d: %w", zoneID, err)
			}

			for k := 1; k <= 2; k++ {
				kind, format := "image", "png"
				if z.width >= 1280 {
					kind, format = "video", "mp4"
				}
				_, err = pool.Exec(ctx, `
					INSERT INTO creatives
						(campaign_id, name, type, url, destination_url, format, width, height, file_size)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
					campaignID, fmt.Sprintf("Creative %d", k), kind,
					fmt.Sprintf("https://cdn.example.com/%d/%d.%s", campaignID, k, format),
					fmt.Sprintf("https://example.com/landing/%d", campaignID),
					format, z.width, z.height, 20_000+r.Int63n(80_000))
				if err != nil {
					return fmt.Errorf("seed creative for campaign %d: %w", campaignID, err)
				}
			}
		}
	}
	return nil
}
