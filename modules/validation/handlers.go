package validation

import (
	"fmt"
	"net/http"

	"github.com/JoseJunior1001/API-Validacao-Dados/handler"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/logger"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/validator"
)

// ValidateRequest declares which type a value should be validated as.
// Policy overrides the default password rules and is ignored for every
// other type.
type ValidateRequest struct {
	Type   string                    `json:"type"`
	Value  string                    `json:"value"`
	Policy *validator.PasswordPolicy `json:"policy,omitempty"`
}

// ValidateResponse pairs the validated type with its outcome. The
// embedded Result flattens into the same object.
type ValidateResponse struct {
	Type validator.Type `json:"type"`
	validator.Result
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	typ, ok := validator.ParseType(req.Type)
	if !ok {
		s.log.InfoContext(ctx, "unsupported type requested", logger.DataType(req.Type))
		return handler.JSONError(&handler.ErrorDetail{
			Code:    "unsupported_type",
			Message: fmt.Sprintf("type %q is not supported", req.Type),
		}, handler.WithJSONStatus(http.StatusBadRequest))
	}

	res := validator.Validate(typ, req.Value, req.Policy)
	s.metrics.RecordValidation(string(typ), res.Valid)

	attrs := []any{logger.DataType(string(typ)), logger.Outcome(res.Valid)}
	if !res.Valid {
		attrs = append(attrs, logger.ErrorCode(string(res.ErrorCode)))
	}
	s.log.InfoContext(ctx, "value validated", attrs...)

	return handler.JSON(ValidateResponse{Type: typ, Result: res})
}

// DetectRequest carries the raw value to classify.
type DetectRequest struct {
	Value string `json:"value"`
}

// DetectResponse reports the winning type and its full validation
// outcome.
type DetectResponse struct {
	DetectedType validator.Type   `json:"detected_type"`
	Result       validator.Result `json:"result"`
}

func (s *Service) detect(ctx handler.Context, req DetectRequest) handler.Response {
	typ := validator.Detect(req.Value)
	s.metrics.RecordDetection(string(typ))

	if typ == validator.TypeNone {
		s.log.InfoContext(ctx, "no type recognized")
		return handler.JSONError(&handler.ErrorDetail{
			Code:    "type_not_recognized",
			Message: "value does not match any supported data type",
		}, handler.WithJSONStatus(http.StatusBadRequest))
	}

	res := validator.Validate(typ, req.Value, nil)
	s.log.InfoContext(ctx, "type detected", logger.DataType(string(typ)))

	return handler.JSON(DetectResponse{DetectedType: typ, Result: res})
}

// BatchRequest carries the items to validate together.
type BatchRequest struct {
	Items []BatchItemRequest `json:"items"`
}

// BatchItemRequest mirrors ValidateRequest for one batch entry.
type BatchItemRequest struct {
	Type   string                    `json:"type"`
	Value  string                    `json:"value"`
	Policy *validator.PasswordPolicy `json:"policy,omitempty"`
}

// BatchResponse lists one outcome per item in request order.
type BatchResponse struct {
	Results []ValidateResponse `json:"results"`
}

func (s *Service) validateBatch(ctx handler.Context, req BatchRequest) handler.Response {
	if len(req.Items) < minBatchItems || len(req.Items) > maxBatchItems {
		s.log.InfoContext(ctx, "batch size out of bounds", logger.BatchSize(len(req.Items)))
		return handler.JSONError(&handler.ErrorDetail{
			Code:    "invalid_request",
			Message: fmt.Sprintf("items must contain between %d and %d entries", minBatchItems, maxBatchItems),
			Details: map[string][]string{
				"items": {fmt.Sprintf("got %d items", len(req.Items))},
			},
		}, handler.WithJSONStatus(http.StatusBadRequest))
	}

	// Items with unknown type tags stay in the batch and come back as
	// invalid results at their positions, keeping outcomes positional.
	items := make([]validator.BatchItem, len(req.Items))
	for i, it := range req.Items {
		typ, ok := validator.ParseType(it.Type)
		if !ok {
			typ = validator.Type(it.Type)
		}
		items[i] = validator.BatchItem{Type: typ, Value: it.Value, Policy: it.Policy}
	}

	results := validator.ValidateBatch(items)
	s.metrics.RecordBatchSize(len(items))

	out := make([]ValidateResponse, len(results))
	for i, res := range results {
		out[i] = ValidateResponse{Type: items[i].Type, Result: res}
		// Client-supplied unknown tags stay out of metric labels.
		if res.ErrorCode != validator.CodeUnsupportedType {
			s.metrics.RecordValidation(string(items[i].Type), res.Valid)
		}
	}

	s.log.InfoContext(ctx, "batch validated", logger.BatchSize(len(items)))

	return handler.JSON(
		BatchResponse{Results: out},
		handler.WithJSONMeta(map[string]any{"count": len(out)}),
	)
}
