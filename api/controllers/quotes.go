package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/zimbwa-construction/quotes-backend/api/responses"
	"github.com/zimbwa-construction/quotes-backend/api/validators"
	"github.com/zimbwa-construction/quotes-backend/internal/quotes"
	pkgerrors "github.com/zimbwa-construction/quotes-backend/pkg/errors"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
)

type serviceLineRequest struct {
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type submitQuoteRequest struct {
	ClientName    string               `json:"client_name"`
	ClientEmail   string               `json:"client_email"`
	ClientPhone   string               `json:"client_phone"`
	ClientAddress string               `json:"client_address"`
	ValidityDays  int                  `json:"validity_days" validate:"omitempty,min=1,max=365"`
	Terms         string               `json:"terms"`
	Services      []serviceLineRequest `json:"services" validate:"max=20"`
}

func (r submitQuoteRequest) toFields() quotes.ClientFields {
	return quotes.ClientFields{
		Name:         r.ClientName,
		Email:        r.ClientEmail,
		Phone:        r.ClientPhone,
		Address:      r.ClientAddress,
		ValidityDays: r.ValidityDays,
		Terms:        r.Terms,
	}
}

func (r submitQuoteRequest) toLines() []quotes.ServiceLine {
	lines := make([]quotes.ServiceLine, 0, len(r.Services))
	for _, svc := range r.Services {
		lines = append(lines, quotes.ServiceLine{
			Description: svc.Description,
			Unit:        svc.Unit,
			Quantity:    svc.Quantity,
			UnitPrice:   svc.UnitPrice,
		})
	}
	return lines
}

type submitQuoteResponse struct {
	Success       bool   `json:"success"`
	QuoteNumber   string `json:"quote_number"`
	Message       string `json:"message"`
	WebhookError  string `json:"webhook_error,omitempty"`
	WebhookStatus any    `json:"webhook_status,omitempty"`
}

// SubmitQuote runs the submission pipeline. The response is always 200
// once validation passes: a broken notification pipeline is reported in
// webhook_error without hiding the created quote.
func SubmitQuote(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload submitQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), payload.toFields(), payload.toLines())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteRaw(w, http.StatusOK, submitQuoteResponse{
			Success:       true,
			QuoteNumber:   result.QuoteNumber,
			Message:       result.Message,
			WebhookError:  result.WebhookError,
			WebhookStatus: result.WebhookStatus,
		})
	}
}

// ListQuotes returns every quote, newest first.
func ListQuotes(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteRaw(w, http.StatusOK, list)
	}
}

// GetQuote returns one quote with its service lines attached.
func GetQuote(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		raw := chi.URLParam(r, "quoteId")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid quote id"))
			return
		}

		detail, err := svc.Get(r.Context(), uint(id))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteRaw(w, http.StatusOK, detail)
	}
}
