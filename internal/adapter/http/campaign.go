package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

type createCampaignRequest struct {
	// AdvertiserID is honoured for admins only; advertisers always
	// create campaigns for themselves.
	AdvertiserID   string          `json:"advertiser_id"`
	ZoneID         int64           `json:"zone_id"`
	Name           string          `json:"name"`
	Budget         decimal.Decimal `json:"budget"`
	CPV            decimal.Decimal `json:"cpv"`
	ViewsPurchased int64           `json:"views_purchased"`
	TargetingTags  []string        `json:"targeting_tags"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
}

type submitResponse struct {
	Campaign    campaignJSON `json:"campaign"`
	CheckoutURL string       `json:"checkout_url,omitempty"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	claims, _ := ClaimsFrom(r.Context())
	advertiser := claims.Subject
	if claims.IsAdmin() && req.AdvertiserID != "" {
		advertiser = req.AdvertiserID
	}

	c, err := h.lifecycle.CreateCampaign(r.Context(), port.CreateCampaignReq{
		AdvertiserID:   advertiser,
		ZoneID:         req.ZoneID,
		Name:           req.Name,
		Budget:         req.Budget,
		CPV:            req.CPV,
		ViewsPurchased: req.ViewsPurchased,
		TargetingTags:  req.TargetingTags,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignJSON(c))
}

// handleListCampaigns lists the caller's campaigns. Admins see every
// campaign and may filter by advertiser_id.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	q := r.URL.Query()
	filter := port.CampaignFilter{
		AdvertiserID: claims.Subject,
		Status:       domain.CampaignStatus(q.Get("status")),
	}
	if claims.IsAdmin() {
		filter.AdvertiserID = q.Get("advertiser_id")
	}
	if raw := q.Get("zone_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid zone_id")
			return
		}
		filter.ZoneID = id
	}

	list, err := h.lifecycle.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignJSON, 0, len(list))
	for i := range list {
		out = append(out, toCampaignJSON(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	res, err := h.lifecycle.Submit(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Campaign: toCampaignJSON(res.Campaign), CheckoutURL: res.CheckoutURL})
}

func (h *Handler) handleRequestPayment(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	res, err := h.lifecycle.RequestPayment(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Campaign: toCampaignJSON(res.Campaign), CheckoutURL: res.CheckoutURL})
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.lifecycle.Pause)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.lifecycle.Resume)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "campaignId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req rejectRequest
	if r.ContentLength != 0 {
		if err = decodeJSON(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	c, err := h.lifecycle.Reject(r.Context(), id, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignJSON(c))
}

// handleRetireCampaign deletes a never-delivered draft or hides a
// campaign with history from listings.
func (h *Handler) handleRetireCampaign(w http.ResponseWriter, r *http.Request) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	if err := h.lifecycle.Retire(r.Context(), c.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) (*domain.Campaign, error)) {
	c, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	updated, err := fn(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignJSON(updated))
}

// ownedCampaign loads the {campaignId} campaign and checks the caller may
// act on it. It writes the error response itself.
func (h *Handler) ownedCampaign(w http.ResponseWriter, r *http.Request) (*domain.Campaign, bool) {
	id, err := idParam(r, "campaignId")
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	c, err := h.lifecycle.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	claims, ok := ClaimsFrom(r.Context())
	if !ok || (!claims.IsAdmin() && claims.Subject != c.AdvertiserID) {
		h.writeError(w, r, fmt.Errorf("campaign %d: %w", id, port.ErrForbidden))
		return nil, false
	}
	return c, true
}
