package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCampaign_Exhausted(t *testing.T) {
	c := Campaign{
		Budget: decimal.NewFromInt(1000),
		Spent:  decimal.NewFromInt(900),
		CPV:    decimal.NewFromInt(100),
	}
	assert.True(t, c.CanAffordImpression())
	assert.False(t, c.Exhausted())

	c.Spent = decimal.NewFromInt(1000)
	assert.False(t, c.CanAffordImpression())
	assert.True(t, c.Exhausted())
	assert.True(t, c.Remaining().IsZero())

	c = Campaign{
		Budget:         decimal.NewFromInt(1000),
		CPV:            decimal.NewFromInt(1),
		ViewsPurchased: 5,
		ViewsDelivered: 5,
	}
	assert.True(t, c.ViewTargetReached())
	assert.True(t, c.Exhausted())
}

func TestCampaign_Eligible(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	c := Campaign{
		Status:        StatusActive,
		Budget:        decimal.NewFromInt(10),
		CPV:           decimal.NewFromInt(1),
		TargetingTags: []string{"home", "sports"},
		StartDate:     &start,
		EndDate:       &end,
	}
	assert.True(t, c.Eligible(now, nil))
	assert.True(t, c.Eligible(now, []string{"sports"}))
	assert.False(t, c.Eligible(now, []string{"shop"}))
	assert.False(t, c.Eligible(end.Add(time.Second), nil))
	assert.False(t, c.Eligible(start.Add(-time.Second), nil))

	c.Status = StatusPaused
	assert.False(t, c.Eligible(now, nil))
}
