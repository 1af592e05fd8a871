package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"club-ads/internal/core/port"
)

// handleAdClick records a click and, when the "url" query parameter holds
// an absolute http(s) URL, redirects the viewer there. Unknown campaigns
// result in HTTP 404. Other failures are logged and never block the
// redirect.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	campaignID, err := idParam(r, "campaignId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	var creativeID int64
	if raw := q.Get("creative"); raw != "" {
		creativeID, _ = strconv.ParseInt(raw, 10, 64)
	}

	err = h.delivery.RecordClick(r.Context(), port.ClickRequest{
		CampaignID: campaignID,
		CreativeID: creativeID,
		ViewerID:   q.Get("uid"),
	})
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "click error",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}

	if target := q.Get("url"); isHTTPURL(target) {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"recorded": err == nil})
}
