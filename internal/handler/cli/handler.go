package cli

import (
	"encoding/json"

	"ChartsAgent/internal/domain/models"
	"ChartsAgent/internal/usecase"
	xlogger "ChartsAgent/pkg/logger"
)

// AnalyzeHandler is the I/O shim around the analyzer: it decodes and
// validates the raw JSON candle batch, invokes the usecase, and encodes the
// result. All failures come back as structured *models.AppError values ready
// for the {"error","type"} payload.
type AnalyzeHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
}

func NewAnalyzeHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{logger: logger, analyzer: analyzer}
}

// Handle runs one analysis over the raw JSON input and returns the
// indented response body.
func (h *AnalyzeHandler) Handle(raw []byte) ([]byte, *models.AppError) {
	var records []models.CandleRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, models.MalformedRequestf("invalid JSON input: %v", err).WithError(err)
	}

	if verr := validateBatch(records); verr != nil {
		return nil, verr
	}

	result, err := h.analyzer.Analyze(models.ToCandles(records))
	if err != nil {
		return nil, models.AsAppError(err)
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, models.AnalysisFailure("encode analysis result").WithError(err)
	}
	return body, nil
}
