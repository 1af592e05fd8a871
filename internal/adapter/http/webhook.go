package httpadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"club-ads/internal/core/port"
)

const signatureHeader = "X-Signature"

type paymentWebhook struct {
	EventID   string `json:"event_id"`
	Reference string `json:"reference"`
	Status    string `json:"status"` // "succeeded" or "failed"
	Reason    string `json:"reason"`
}

// handlePaymentWebhook applies a payment gateway notification. The body
// must carry a hex HMAC-SHA256 signature in X-Signature when a webhook
// secret is configured. Every delivery carries the gateway's event id;
// duplicate events are acknowledged with 200 so the gateway stops retrying.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64<<10))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if !h.validSignature(body, r.Header.Get(signatureHeader)) {
		writeMessage(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var ev paymentWebhook
	if err = json.Unmarshal(body, &ev); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if ev.EventID == "" {
		writeMessage(w, http.StatusBadRequest, "event_id is required")
		return
	}
	if ev.Status != "succeeded" && ev.Status != "failed" {
		writeMessage(w, http.StatusBadRequest, "status must be succeeded or failed")
		return
	}

	c, err := h.lifecycle.ConfirmPayment(r.Context(), port.PaymentNotification{
		EventID:   ev.EventID,
		Reference: ev.Reference,
		Succeeded: ev.Status == "succeeded",
		Reason:    ev.Reason,
	})
	if errors.Is(err, port.ErrInvalidTransition) {
		// Late success for a campaign that already moved on. The gateway
		// must not retry it.
		h.logger.WarnContext(r.Context(), "payment webhook ignored",
			slog.String("reference", ev.Reference), slog.Any("error", err))
		writeJSON(w, http.StatusOK, map[string]string{"result": "ignored"})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": c.ID,
		"status":      string(c.Status),
	})
}

func (h *Handler) validSignature(body []byte, signature string) bool {
	if len(h.webhookSecret) == 0 {
		return true
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, h.webhookSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// SignWebhook returns the X-Signature value for body.
func SignWebhook(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
