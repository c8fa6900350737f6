// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"strconv"

	"github.com/MKhiriev/go-trade-desk/models"
)

type calculatorService struct{}

func NewCalculatorService() CalculatorService {
	return calculatorService{}
}

// CalculateOrderValue sizes a position so that hitting the stop loss loses
// exactly the risk amount:
//
//	percentageDifference = (entry - stop) / stop * 100
//	orderValue           = risk / ((entry - stop) / entry)
func (calculatorService) CalculateOrderValue(_ context.Context, req models.OrderValueRequest) (models.OrderValueResponse, error) {
	if req.RiskAmount.IsZero() || req.EntryPrice.IsZero() || req.StopLossPrice.IsZero() {
		return models.OrderValueResponse{}, ErrMissingOrderParameters
	}
	if !finite(req.RiskAmount) || !finite(req.EntryPrice) || !finite(req.StopLossPrice) {
		return models.OrderValueResponse{}, ErrNonNumericParameter
	}

	risk, entry, stop := req.RiskAmount.Value, req.EntryPrice.Value, req.StopLossPrice.Value
	if entry <= 0 || stop <= 0 {
		return models.OrderValueResponse{}, ErrNonPositivePrice
	}
	if entry == stop {
		return models.OrderValueResponse{}, ErrEqualPrices
	}

	percentageDifference := (entry - stop) / stop * 100
	orderValue := risk / ((entry - stop) / entry)

	return models.OrderValueResponse{
		OrderValue:           formatFixed2(orderValue),
		PercentageDifference: formatFixed2(percentageDifference),
	}, nil
}

func finite(n models.Number) bool {
	return n.Valid && !math.IsInf(n.Value, 0)
}

func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
