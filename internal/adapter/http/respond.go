package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}

// writeError maps engine errors onto status codes. Unexpected errors are
// logged and answered with a generic body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, port.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, port.ErrInvalidTransition), errors.Is(err, port.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, port.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, port.ErrPaymentFailure):
		code = http.StatusBadGateway
	}
	if code == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeMessage(w, code, "internal error")
		return
	}
	writeMessage(w, code, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(port.ErrValidation, err)
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Join(port.ErrValidation, errors.New("invalid "+name))
	}
	return id, nil
}

type zoneJSON struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	PricePerView    decimal.Decimal `json:"price_per_view"`
	MaxCreativeSize int64           `json:"max_creative_size"`
	AllowedTags     []string        `json:"allowed_tags"`
	Status          string          `json:"status"`
}

func toZoneJSON(z *domain.Zone) zoneJSON {
	return zoneJSON{
		ID:              z.ID,
		Name:            z.Name,
		Width:           z.Width,
		Height:          z.Height,
		PricePerView:    z.PricePerView,
		MaxCreativeSize: z.MaxCreativeSize,
		AllowedTags:     nonNil(z.AllowedTags),
		Status:          string(z.Status),
	}
}

type campaignJSON struct {
	ID               int64           `json:"id"`
	AdvertiserID     string          `json:"advertiser_id"`
	ZoneID           int64           `json:"zone_id"`
	Name             string          `json:"name"`
	Budget           decimal.Decimal `json:"budget"`
	Spent            decimal.Decimal `json:"spent"`
	CPV              decimal.Decimal `json:"cpv"`
	ViewsPurchased   int64           `json:"views_purchased"`
	ViewsDelivered   int64           `json:"views_delivered"`
	UniqueViews      int64           `json:"unique_views"`
	Clicks           int64           `json:"clicks"`
	TargetingTags    []string        `json:"targeting_tags"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	PaymentAttempts  int             `json:"payment_attempts"`
	StartDate        *time.Time      `json:"start_date,omitempty"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	RetiredAt        *time.Time      `json:"retired_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toCampaignJSON(c *domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:               c.ID,
		AdvertiserID:     c.AdvertiserID,
		ZoneID:           c.ZoneID,
		Name:             c.Name,
		Budget:           c.Budget,
		Spent:            c.Spent,
		CPV:              c.CPV,
		ViewsPurchased:   c.ViewsPurchased,
		ViewsDelivered:   c.ViewsDelivered,
		UniqueViews:      c.UniqueViews,
		Clicks:           c.Clicks,
		TargetingTags:    nonNil(c.TargetingTags),
		Status:           string(c.Status),
		PaymentStatus:    string(c.PaymentStatus),
		PaymentReference: c.PaymentReference,
		PaymentAttempts:  c.PaymentAttempts,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		RetiredAt:        c.RetiredAt,
		CreatedAt:        c.CreatedAt,
	}
}

type creativeJSON struct {
	ID             int64  `json:"id"`
	CampaignID     int64  `json:"campaign_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	DestinationURL string `json:"destination_url,omitempty"`
	Format         string `json:"format"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	FileSize       int64  `json:"file_size"`
	NumberOfViews  int64  `json:"number_of_views"`
	Status         string `json:"status"`
}

func toCreativeJSON(c *domain.Creative) creativeJSON {
	return creativeJSON{
		ID:             c.ID,
		CampaignID:     c.CampaignID,
		Name:           c.Name,
		Type:           string(c.Type),
		URL:            c.URL,
		DestinationURL: c.DestinationURL,
		Format:         c.Format,
		Width:          c.Width,
		Height:         c.Height,
		FileSize:       c.FileSize,
		NumberOfViews:  c.NumberOfViews,
		Status:         string(c.Status),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
