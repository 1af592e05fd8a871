package main

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

func TestStores_TracedInMemory(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	s := memoryStores().traced(tp.Tracer("test"))
	ctx := context.Background()

	z := &domain.Zone{Name: "sidebar", Width: 300, Height: 250, PricePerView: decimal.NewFromInt(1), Status: domain.ZoneActive}
	require.NoError(t, s.zones.CreateZone(ctx, z))
	_, err := s.campaigns.GetCampaign(ctx, 42)
	assert.ErrorIs(t, err, port.ErrNotFound)
	_, err = s.creatives.ListCreatives(ctx, 42)
	require.NoError(t, err)
	first, err := s.payments.RecordPaymentEvent(ctx, port.PaymentEvent{EventID: "evt-1"})
	require.NoError(t, err)
	assert.True(t, first)
	require.NoError(t, s.payments.ForgetPaymentEvent(ctx, "evt-1"))

	var names []string
	for _, span := range rec.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{
		"ZoneRepository.CreateZone",
		"CampaignRepository.GetCampaign",
		"CreativeRepository.ListCreatives",
		"PaymentEventRepository.RecordPaymentEvent",
		"PaymentEventRepository.ForgetPaymentEvent",
	}, names)
	assert.Equal(t, codes.Error, rec.Ended()[1].Status().Code)
}
