package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/noah-isme/taxplanner/internal/common"
	"github.com/noah-isme/taxplanner/internal/tax"
)

// Handler wires the quote service to HTTP.
type Handler struct {
	Svc *Service
}

type quotePayload struct {
	Income   any    `json:"income"`
	Category string `json:"category"`
}

// Create computes a quote from a JSON body. Income may be a JSON number,
// including exponent forms, or a numeric string with grouping commas.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var payload quotePayload
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		common.WriteError(w, common.BadRequest("invalid payload", err))
		return
	}
	h.respond(w, r, Request{Income: incomeString(payload.Income), Category: payload.Category})
}

// Get computes a quote from the income and category query parameters.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	query := r.URL.Query()
	h.respond(w, r, Request{Income: query.Get("income"), Category: query.Get("category")})
}

// Slabs returns the slab table, category exemptions and cess rate.
func (h *Handler) Slabs(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	common.Data(w, http.StatusOK, h.Svc.Slabs())
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, req Request) {
	q, err := h.Svc.Quote(r.Context(), req)
	if err != nil {
		appErr := toAppError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("quote failed")
		}
		common.WriteError(w, appErr)
		return
	}
	common.Data(w, http.StatusOK, q)
}

func toAppError(err error) *common.AppError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return common.Unprocessable("VALIDATION_FAILED", "request validation failed", err).WithDetails(verr.Fields)
	case errors.Is(err, tax.ErrNegativeIncome):
		return common.Unprocessable("NEGATIVE_INCOME", "income must not be negative", err)
	case errors.Is(err, tax.ErrUnknownCategory):
		return common.Unprocessable("UNKNOWN_CATEGORY", "category must be Salaried or Others", err)
	case errors.Is(err, tax.ErrIncomeOutOfRange):
		return common.Unprocessable("INCOME_OUT_OF_RANGE", "income must be at most 10^15 with up to 12 decimal places", err)
	case errors.Is(err, tax.ErrInvalidIncome):
		return common.Unprocessable("INVALID_INCOME", "income must be a number", err)
	default:
		return common.NewAppError("INTERNAL", "unable to compute quote", http.StatusInternalServerError, err)
	}
}

func incomeString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case json.Number:
		return val.String()
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
