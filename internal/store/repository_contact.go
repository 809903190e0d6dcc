package store

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// contactWriteAttempts bounds the retries on the visitor-facing contact
// write. It is the one insert issued by unauthenticated users, so a transient
// deadlock or dropped connection should not lose the submission.
const contactWriteAttempts = 3

// CreateContactMessage persists a visitor submission and returns it with the
// server-assigned id and timestamp. Failures the classifier marks retryable
// are re-attempted up to contactWriteAttempts times; everything else fails
// immediately.
func (r *contactRepository) CreateContactMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= contactWriteAttempts; attempt++ {
		var created models.ContactMessage
		row := r.db.QueryRowContext(ctx, createContactMessage, message.Name, message.Email, message.Subject, message.Message)

		err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Subject, &created.Message, &created.CreatedAt)
		if err == nil {
			return created, nil
		}
		lastErr = err

		if r.db.errorClassificator.Classify(err) != Retryable {
			log.Err(err).
				Str("func", "*contactRepository.CreateContactMessage").
				Msg("failed to create contact message")
			return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		log.Warn().
			Err(err).
			Str("func", "*contactRepository.CreateContactMessage").
			Int("attempt", attempt).
			Msg("transient database error on contact message write")
	}

	log.Err(lastErr).
		Str("func", "*contactRepository.CreateContactMessage").
		Msg("contact message write kept failing after retries")
	return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, lastErr)
}

func (r *contactRepository) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listContactMessages)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContactMessages").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0, 32)

	for rows.Next() {
		var m models.ContactMessage

		scanErr := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*contactRepository.ListContactMessages").Msg("failed to scan contact message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		messages = append(messages, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*contactRepository.ListContactMessages").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}
