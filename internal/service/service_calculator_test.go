// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorService_CalculateOrderValue(t *testing.T) {
	svc := NewCalculatorService()

	got, err := svc.CalculateOrderValue(context.Background(), models.OrderValueRequest{
		RiskAmount:    models.NewNumber(100),
		EntryPrice:    models.NewNumber(50),
		StopLossPrice: models.NewNumber(45),
	})

	require.NoError(t, err)
	assert.Equal(t, "1000.00", got.OrderValue)
	assert.Equal(t, "11.11", got.PercentageDifference)
}

func TestCalculatorService_CalculateOrderValue_Short(t *testing.T) {
	got, err := NewCalculatorService().CalculateOrderValue(context.Background(), models.OrderValueRequest{
		RiskAmount:    models.NewNumber(50),
		EntryPrice:    models.NewNumber(100),
		StopLossPrice: models.NewNumber(110),
	})

	require.NoError(t, err)
	assert.Equal(t, "-500.00", got.OrderValue)
	assert.Equal(t, "-9.09", got.PercentageDifference)
}

func TestCalculatorService_CalculateOrderValue_Rejections(t *testing.T) {
	n := models.NewNumber
	notNumber := models.Number{Present: true}

	tests := []struct {
		name    string
		req     models.OrderValueRequest
		wantErr error
	}{
		{name: "missing risk", req: models.OrderValueRequest{EntryPrice: n(1), StopLossPrice: n(2)}, wantErr: ErrMissingOrderParameters},
		{name: "zero entry", req: models.OrderValueRequest{RiskAmount: n(1), EntryPrice: n(0), StopLossPrice: n(2)}, wantErr: ErrMissingOrderParameters},
		{name: "word", req: models.OrderValueRequest{RiskAmount: notNumber, EntryPrice: n(1), StopLossPrice: n(2)}, wantErr: ErrNonNumericParameter},
		{name: "infinite", req: models.OrderValueRequest{RiskAmount: n(math.Inf(1)), EntryPrice: n(1), StopLossPrice: n(2)}, wantErr: ErrNonNumericParameter},
		{name: "negative stop", req: models.OrderValueRequest{RiskAmount: n(1), EntryPrice: n(10), StopLossPrice: n(-2)}, wantErr: ErrNonPositivePrice},
		{name: "equal prices", req: models.OrderValueRequest{RiskAmount: n(1), EntryPrice: n(10), StopLossPrice: n(10)}, wantErr: ErrEqualPrices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCalculatorService().CalculateOrderValue(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}
