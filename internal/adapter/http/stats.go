package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type statsJSON struct {
	CampaignID     int64           `json:"campaign_id"`
	Status         string          `json:"status"`
	ViewsDelivered int64           `json:"views_delivered"`
	ViewsPurchased int64           `json:"views_purchased"`
	UniqueViews    int64           `json:"unique_views"`
	Clicks         int64           `json:"clicks"`
	CTR            float64         `json:"ctr"`
	Spent          decimal.Decimal `json:"spent"`
	Budget         decimal.Decimal `json:"budget"`
	Remaining      decimal.Decimal `json:"remaining"`
}

// handleCampaignStats returns the delivery counters of one campaign to
// its owner or an admin. Retired campaigns keep reporting.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	stats, err := h.lifecycle.GetStats(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsJSON{
		CampaignID:     stats.CampaignID,
		Status:         string(stats.Status),
		ViewsDelivered: stats.ViewsDelivered,
		ViewsPurchased: stats.ViewsPurchased,
		UniqueViews:    stats.UniqueViews,
		Clicks:         stats.Clicks,
		CTR:            stats.CTR,
		Spent:          stats.Spent,
		Budget:         stats.Budget,
		Remaining:      stats.Remaining,
	})
}
