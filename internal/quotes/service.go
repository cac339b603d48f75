package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/zimbwa-construction/quotes-backend/pkg/db/models"
	"github.com/zimbwa-construction/quotes-backend/pkg/enums"
	pkgerrors "github.com/zimbwa-construction/quotes-backend/pkg/errors"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
	"github.com/zimbwa-construction/quotes-backend/pkg/metrics"
	"github.com/zimbwa-construction/quotes-backend/pkg/webhook"
)

// RelayClient is the capability the orchestrator needs from the outbound
// webhook layer. Tests substitute a deterministic fake.
type RelayClient interface {
	Deliver(ctx context.Context, payload map[string]string) webhook.Outcome
}

// Service exposes the quote submission pipeline and the read accessors.
type Service interface {
	Submit(ctx context.Context, fields ClientFields, lines []ServiceLine) (*SubmitResult, error)
	Get(ctx context.Context, id uint) (*QuoteDetailDTO, error)
	List(ctx context.Context) ([]QuoteDTO, error)
}

type service struct {
	repo    Repository
	relay   RelayClient
	logg    *logger.Logger
	metrics *metrics.Metrics
}

// NewService builds the quote service with its collaborators.
func NewService(repo Repository, relay RelayClient, logg *logger.Logger, m *metrics.Metrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quote repository required")
	}
	if relay == nil {
		return nil, fmt.Errorf("relay client required")
	}
	return &service{
		repo:    repo,
		relay:   relay,
		logg:    logg,
		metrics: m,
	}, nil
}

// Submit runs the pipeline: validate, build, persist, relay. A quote that
// reaches persistence stays persisted no matter how the relay turns out;
// relay problems are reported in the result instead of as errors.
func (s *service) Submit(ctx context.Context, fields ClientFields, lines []ServiceLine) (*SubmitResult, error) {
	if fields.ValidityDays == 0 {
		fields.ValidityDays = DefaultValidityDays
	}

	if issues := ValidateSubmission(fields, lines); len(issues) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]any{"issues": issues})
	}

	submission := BuildSubmission(fields, lines)
	grandTotal := ComputeGrandTotal(submission.Services)

	quoteNumber := s.repo.NextQuoteNumber()
	if s.logg != nil {
		ctx = s.logg.WithQuoteNumber(ctx, quoteNumber)
	}

	var terms *string
	if submission.Client.Terms != "" {
		terms = &submission.Client.Terms
	}

	quote := &models.Quote{
		QuoteNumber:   quoteNumber,
		ClientName:    submission.Client.Name,
		ClientEmail:   submission.Client.Email,
		ClientPhone:   submission.Client.Phone,
		ClientAddress: submission.Client.Address,
		ValidityDays:  submission.Client.ValidityDays,
		Terms:         terms,
		GrandTotal:    grandTotal,
		Status:        enums.QuoteStatusDraft,
	}
	if err := s.repo.CreateQuote(ctx, quote); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create quote")
	}

	for _, line := range submission.Services {
		record := &models.QuoteService{
			QuoteID:     quote.ID,
			Description: line.Description,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.LineTotal(),
		}
		if err := s.repo.CreateService(ctx, record); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create quote service")
		}
	}

	s.metrics.IncQuoteCreated()
	if s.logg != nil {
		s.logg.Info(ctx, "quote.created")
	}

	start := time.Now()
	outcome := s.relay.Deliver(ctx, webhook.Flatten(toPayload(submission, quoteNumber)))
	s.metrics.ObserveWebhook(string(outcome.State), time.Since(start))

	if outcome.Delivered() {
		if err := s.repo.UpdateStatus(ctx, quote.ID, enums.QuoteStatusSent); err != nil {
			if s.logg != nil {
				s.logg.Error(ctx, "quote.status_update_failed", err)
			}
		} else if s.logg != nil {
			s.logg.Info(ctx, "quote.webhook_delivered")
		}
	} else if s.logg != nil {
		s.logg.Warn(ctx, "quote.webhook_failed: "+outcome.ErrorText())
	}

	return &SubmitResult{
		QuoteNumber:   quoteNumber,
		Message:       fmt.Sprintf("Quote %s created successfully", quoteNumber),
		WebhookError:  outcome.ErrorText(),
		WebhookStatus: outcome.StatusValue(),
	}, nil
}

// Get returns one quote with its service lines.
func (s *service) Get(ctx context.Context, id uint) (*QuoteDetailDTO, error) {
	quote, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch quote")
	}
	if quote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Quote not found")
	}

	records, err := s.repo.ListServices(ctx, quote.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch quote services")
	}

	detail := &QuoteDetailDTO{
		QuoteDTO: newQuoteDTO(*quote),
		Services: make([]ServiceRecordDTO, 0, len(records)),
	}
	for _, record := range records {
		detail.Services = append(detail.Services, newServiceRecordDTO(record))
	}
	return detail, nil
}

// List returns all quotes newest first.
func (s *service) List(ctx context.Context) ([]QuoteDTO, error) {
	quotes, err := s.repo.ListQuotes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list quotes")
	}

	dtos := make([]QuoteDTO, 0, len(quotes))
	for _, quote := range quotes {
		dtos = append(dtos, newQuoteDTO(quote))
	}
	return dtos, nil
}

func toPayload(submission Submission, quoteNumber string) webhook.QuotePayload {
	payload := webhook.QuotePayload{
		QuoteNumber:   quoteNumber,
		ClientName:    submission.Client.Name,
		ClientEmail:   submission.Client.Email,
		ClientPhone:   submission.Client.Phone,
		ClientAddress: submission.Client.Address,
		ValidityDays:  submission.Client.ValidityDays,
		Terms:         submission.Client.Terms,
		Services:      make([]webhook.ServiceLine, 0, len(submission.Services)),
	}
	for _, line := range submission.Services {
		payload.Services = append(payload.Services, webhook.ServiceLine{
			Description: line.Description,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}
	return payload
}
