package httpadapter

import (
	"net/http"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

type adJSON struct {
	Creative creativeRefJSON `json:"creative"`
	Zone     zoneRefJSON     `json:"zone"`
}

type creativeRefJSON struct {
	ID             int64  `json:"id"`
	CampaignID     int64  `json:"campaign_id"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	DestinationURL string `json:"destination_url,omitempty"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type zoneRefJSON struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// handleServe picks an ad for the zone. Tags come from the comma
// separated "tags" query parameter and the viewer from "uid" or the
// X-Viewer-ID header. When nothing can be shown it answers 204.
func (h *Handler) handleServe(w http.ResponseWriter, r *http.Request) {
	zoneID, err := idParam(r, "zoneId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	viewer := q.Get("uid")
	if viewer == "" {
		viewer = r.Header.Get("X-Viewer-ID")
	}

	resp, err := h.delivery.ServeAd(r.Context(), port.ServeRequest{
		ZoneID:   zoneID,
		Tags:     domain.ParseTags(q.Get("tags")),
		ViewerID: viewer,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, adJSON{
		Creative: creativeRefJSON{
			ID:             resp.CreativeID,
			CampaignID:     resp.CampaignID,
			Type:           string(resp.Type),
			URL:            resp.URL,
			DestinationURL: resp.DestinationURL,
			Width:          resp.Width,
			Height:         resp.Height,
		},
		Zone: zoneRefJSON{
			ID:     resp.Zone.ID,
			Name:   resp.Zone.Name,
			Width:  resp.Zone.Width,
			Height: resp.Zone.Height,
		},
	})
}
