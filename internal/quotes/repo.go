package quotes

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"gorm.io/gorm"

	"github.com/zimbwa-construction/quotes-backend/pkg/db/models"
	"github.com/zimbwa-construction/quotes-backend/pkg/enums"
)

// quoteNumberPrefix precedes the zero-padded sequence in issued numbers.
const quoteNumberPrefix = "LZQ"

// Repository owns all persisted quotes and is the only writer of quote
// numbers. Read accessors return nil/empty on miss rather than erroring.
type Repository interface {
	NextQuoteNumber() string
	CreateQuote(ctx context.Context, quote *models.Quote) error
	CreateService(ctx context.Context, service *models.QuoteService) error
	GetQuote(ctx context.Context, id uint) (*models.Quote, error)
	GetQuoteByNumber(ctx context.Context, number string) (*models.Quote, error)
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	ListServices(ctx context.Context, quoteID uint) ([]models.QuoteService, error)
	UpdateStatus(ctx context.Context, id uint, status enums.QuoteStatus) error
}

type repository struct {
	db *gorm.DB

	// Issued numbers are strictly increasing for the process lifetime and
	// never reused, even when the enclosing submission later fails.
	quoteSeq atomic.Int64
}

// NewRepository returns a quote repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) NextQuoteNumber() string {
	return fmt.Sprintf("%s-%03d", quoteNumberPrefix, r.quoteSeq.Add(1))
}

func (r *repository) CreateQuote(ctx context.Context, quote *models.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *repository) CreateService(ctx context.Context, service *models.QuoteService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *repository) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) GetQuoteByNumber(ctx context.Context, number string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).First(&quote, "quote_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	var list []models.Quote
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListServices(ctx context.Context, quoteID uint) ([]models.QuoteService, error) {
	var list []models.QuoteService
	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status enums.QuoteStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("id = ?", id).
		Update("status", status).Error
}
