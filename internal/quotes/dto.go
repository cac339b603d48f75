package quotes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zimbwa-construction/quotes-backend/pkg/db/models"
)

// QuoteDTO is the read model returned by the list and fetch endpoints.
type QuoteDTO struct {
	ID            uint            `json:"id"`
	QuoteNumber   string          `json:"quote_number"`
	ClientName    string          `json:"client_name"`
	ClientEmail   string          `json:"client_email"`
	ClientPhone   string          `json:"client_phone"`
	ClientAddress string          `json:"client_address"`
	ValidityDays  int             `json:"validity_days"`
	Terms         *string         `json:"terms"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ServiceRecordDTO mirrors one persisted service line.
type ServiceRecordDTO struct {
	ID          uint            `json:"id"`
	QuoteID     uint            `json:"quote_id"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteDetailDTO is a quote with its service lines attached.
type QuoteDetailDTO struct {
	QuoteDTO
	Services []ServiceRecordDTO `json:"services"`
}

// SubmitResult is what the submission endpoint reports back to the form.
// WebhookError and WebhookStatus are only set when the quote was created
// but the notification pipeline broke.
type SubmitResult struct {
	QuoteNumber   string
	Message       string
	WebhookError  string
	WebhookStatus any
}

func newQuoteDTO(m models.Quote) QuoteDTO {
	return QuoteDTO{
		ID:            m.ID,
		QuoteNumber:   m.QuoteNumber,
		ClientName:    m.ClientName,
		ClientEmail:   m.ClientEmail,
		ClientPhone:   m.ClientPhone,
		ClientAddress: m.ClientAddress,
		ValidityDays:  m.ValidityDays,
		Terms:         m.Terms,
		GrandTotal:    m.GrandTotal,
		Status:        m.Status.String(),
		CreatedAt:     m.CreatedAt,
	}
}

func newServiceRecordDTO(m models.QuoteService) ServiceRecordDTO {
	return ServiceRecordDTO{
		ID:          m.ID,
		QuoteID:     m.QuoteID,
		Description: m.Description,
		Unit:        m.Unit,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
	}
}
