package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

type createZoneRequest struct {
	Name            string          `json:"name"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	PricePerView    decimal.Decimal `json:"price_per_view"`
	MaxCreativeSize int64           `json:"max_creative_size"`
	AllowedTags     []string        `json:"allowed_tags"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type createCreativeRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	DestinationURL string `json:"destination_url"`
	Format         string `json:"format"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	FileSize       int64  `json:"file_size"`
}

func (h *Handler) handleCreateZone(w http.ResponseWriter, r *http.Request) {
	var req createZoneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	z, err := h.inventory.CreateZone(r.Context(), port.CreateZoneReq{
		Name:            req.Name,
		Width:           req.Width,
		Height:          req.Height,
		PricePerView:    req.PricePerView,
		MaxCreativeSize: req.MaxCreativeSize,
		AllowedTags:     req.AllowedTags,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toZoneJSON(z))
}

func (h *Handler) handleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.inventory.ListZones(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]zoneJSON, 0, len(zones))
	for i := range zones {
		out = append(out, toZoneJSON(&zones[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetZone(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "zoneId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	z, err := h.inventory.GetZone(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneJSON(z))
}

func (h *Handler) handleSetZoneStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "zoneId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	z, err := h.inventory.SetZoneStatus(r.Context(), id, domain.ZoneStatus(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneJSON(z))
}

func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	var req createCreativeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	cr, err := h.inventory.CreateCreative(r.Context(), port.CreateCreativeReq{
		CampaignID:     c.ID,
		Name:           req.Name,
		Type:           domain.CreativeType(req.Type),
		URL:            req.URL,
		DestinationURL: req.DestinationURL,
		Format:         req.Format,
		Width:          req.Width,
		Height:         req.Height,
		FileSize:       req.FileSize,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCreativeJSON(cr))
}

func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	list, err := h.inventory.ListCreatives(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]creativeJSON, 0, len(list))
	for i := range list {
		out = append(out, toCreativeJSON(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSetCreativeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "creativeId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	cr, err := h.inventory.SetCreativeStatus(r.Context(), id, domain.CreativeStatus(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreativeJSON(cr))
}
