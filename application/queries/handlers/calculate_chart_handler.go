package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bodygraph/application/queries"
	"bodygraph/application/queries/bus"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	"bodygraph/pkg/common"
	pkgerrors "bodygraph/pkg/errors"
)

// ChartCalculator is the calculation entry point the handler delegates to
type ChartCalculator interface {
	Calculate(ctx context.Context, input vo.BirthInput) (*aggregates.Chart, error)
}

// CalculateChartHandler handles chart calculation queries
type CalculateChartHandler struct {
	calculator ChartCalculator
	logger     *zap.Logger
}

// NewCalculateChartHandler creates a new chart calculation handler
func NewCalculateChartHandler(calculator ChartCalculator, logger *zap.Logger) *CalculateChartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculateChartHandler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle executes the chart query and returns a *aggregates.Chart
func (h *CalculateChartHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.CalculateChartQuery)
	if !ok {
		if ptr, isPtr := query.(*queries.CalculateChartQuery); isPtr && ptr != nil {
			q = *ptr
		} else {
			return nil, fmt.Errorf("unexpected query type %T", query)
		}
	}

	input, err := q.ToBirthInput()
	if err != nil {
		return nil, err
	}

	ctx = common.EnrichContext(ctx)
	requestID, _ := common.GetRequestID(ctx)

	h.logger.Debug("Calculating chart",
		zap.String("request_id", requestID),
		zap.String("birth_date", input.BirthDate()),
		zap.Bool("birth_time_known", input.HasBirthTime()),
		zap.String("timezone", input.Timezone()),
	)

	chart, err := h.calculator.Calculate(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "calculate chart")
	}

	meta := common.ExtractMetadata(ctx)
	h.logger.Info("Chart calculated",
		zap.String("request_id", meta.RequestID),
		zap.String("chart_id", chart.ID().String()),
		zap.String("type", string(chart.Type())),
		zap.String("accuracy", string(chart.Accuracy())),
		zap.Duration("elapsed", meta.Duration),
	)

	return chart, nil
}
