package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"campaign-server/internal/admission"
	"campaign-server/internal/keylock"
	"campaign-server/internal/metrics"
	"campaign-server/internal/observability"
	"campaign-server/internal/progress"
	"campaign-server/internal/store"
	"campaign-server/internal/whatsapp"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	ErrContactListNotFound = errors.New("contact list not found")
	ErrNoSession           = errors.New("no whatsapp connection available")
	ErrInvalidFile         = errors.New("invalid import file")
	ErrFileTooLarge        = errors.New("import file too large")
)

// ContactStore defines the database operations required by ContactListProcessor
type ContactStore interface {
	GetContactList(ctx context.Context, companyID, contactListID uuid.UUID) (store.ContactList, error)
	FindOrCreateContact(ctx context.Context, params store.FindOrCreateContactParams) (store.ContactListItem, bool, error)
	DeleteContactListItem(ctx context.Context, itemID uuid.UUID) error
	UpdateContactValidity(ctx context.Context, itemID uuid.UUID, valid bool, canonicalNumber *string) error
	ListContacts(ctx context.Context, companyID, contactListID uuid.UUID) ([]store.ContactListItem, error)
}

// LimitValidator is the admission gate
type LimitValidator interface {
	ValidateLimits(ctx context.Context, req admission.Request) (admission.Result, error)
}

// SessionProvider resolves the connection used for existence checks
type SessionProvider interface {
	DefaultSession(companyID uuid.UUID) (whatsapp.Session, error)
}

// ImportResult summarises one import
type ImportResult struct {
	Imported           []store.ContactListItem `json:"imported"`
	Discarded          int                     `json:"discarded"`
	InvalidNumbers     []string                `json:"invalid_numbers"`
	LimitExceeded      bool                    `json:"limit_exceeded"`
	MaxContactsAllowed int                     `json:"max_contacts_allowed"`
}

type ContactListProcessor struct {
	store         ContactStore
	limits        LimitValidator
	sessions      SessionProvider
	notifier      progress.Notifier
	locks         *keylock.Locker
	checkInterval time.Duration
	logger        *observability.Logger
}

func New(store ContactStore, limits LimitValidator, sessions SessionProvider, notifier progress.Notifier, checkInterval time.Duration, logger *observability.Logger) ContactListProcessor {
	if notifier == nil {
		notifier = progress.Nop{}
	}
	return ContactListProcessor{
		store:         store,
		limits:        limits,
		sessions:      sessions,
		notifier:      notifier,
		locks:         keylock.New(),
		checkInterval: checkInterval,
		logger:        logger,
	}
}

// ImportContacts parses the file into the list, truncates the rows awaiting
// validation to the plan's remaining slots and validates them against
// WhatsApp. Rows left unvalidated by an earlier import are picked up again.
// Imports into the same list run one at a time.
func (p *ContactListProcessor) ImportContacts(ctx context.Context, companyID, contactListID uuid.UUID, file io.Reader) (ImportResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "import_contacts"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "contact_list_id", Value: contactListID.String()},
	)

	unlock, err := p.locks.Lock(ctx, contactListID.String())
	if err != nil {
		return ImportResult{}, err
	}
	defer unlock()

	if _, err := p.store.GetContactList(ctx, companyID, contactListID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ImportResult{}, ErrContactListNotFound
		}
		p.logger.Error(ctx, "failed to get contact list", err)
		return ImportResult{}, err
	}

	admitted, err := p.limits.ValidateLimits(ctx, admission.Request{
		CompanyID:     companyID,
		ContactListID: &contactListID,
		Purpose:       admission.PurposeImport,
	})
	// a list already over its limit just has no room left
	if err != nil && !errors.Is(err, admission.ErrContactLimitExceeded) {
		return ImportResult{}, err
	}

	session, err := p.sessions.DefaultSession(companyID)
	if err != nil {
		p.logger.Warn(ctx, "no whatsapp session for import")
		return ImportResult{}, ErrNoSession
	}

	rows, discarded, err := ParseContacts(file)
	if err != nil {
		p.logger.Error(ctx, "failed to parse import file", err)
		return ImportResult{}, err
	}

	result := ImportResult{
		Imported:           []store.ContactListItem{},
		InvalidNumbers:     []string{},
		Discarded:          discarded,
		MaxContactsAllowed: admitted.MaxContacts,
	}

	created, pending, err := p.createRows(ctx, companyID, contactListID, rows)
	if err != nil {
		p.notifyError(ctx, companyID, contactListID, 0, len(rows))
		return ImportResult{}, err
	}

	valid := 0
	if admitted.ContactsInList != nil {
		valid = *admitted.ContactsInList
	}
	remaining := max(admitted.MaxContacts-valid, 0)

	// rows left unvalidated by an interrupted import go first and share the
	// slot budget with the new ones
	queue := append(pending, created...)
	if len(queue) > remaining {
		truncated := created[max(remaining-len(pending), 0):]
		queue = queue[:remaining]
		result.LimitExceeded = true
		result.Discarded += len(truncated)
		if err := p.deleteRows(ctx, truncated); err != nil {
			p.notifyError(ctx, companyID, contactListID, 0, len(queue))
			return ImportResult{}, err
		}
		p.logger.Info(ctx, "import truncated to remaining plan slots",
			observability.Field{Key: "remaining_slots", Value: remaining},
			observability.Field{Key: "truncated", Value: len(truncated)},
			observability.Field{Key: "pending_left", Value: max(len(pending)-remaining, 0)},
		)
	}

	if err := p.validateRows(ctx, session, companyID, contactListID, queue, &result); err != nil {
		return result, err
	}

	p.logger.Info(ctx, "contact import completed",
		observability.Field{Key: "imported", Value: len(result.Imported)},
		observability.Field{Key: "discarded", Value: result.Discarded},
		observability.Field{Key: "invalid", Value: len(result.InvalidNumbers)},
		observability.Field{Key: "limit_exceeded", Value: result.LimitExceeded},
	)
	return result, nil
}

// createRows stores the parsed rows. It returns the rows it inserted and the
// existing rows that were never validated.
func (p *ContactListProcessor) createRows(ctx context.Context, companyID, contactListID uuid.UUID, rows []ContactRow) (created, pending []store.ContactListItem, err error) {
	created = make([]store.ContactListItem, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		item, isNew, err := p.store.FindOrCreateContact(ctx, store.FindOrCreateContactParams{
			ContactListID: contactListID,
			CompanyID:     companyID,
			Name:          row.Name,
			Number:        row.Number,
			Email:         row.Email,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to find or create contact", err)
			return nil, nil, fmt.Errorf("failed to store contact: %w", err)
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}

		switch {
		case isNew:
			created = append(created, item)
		case item.IsWhatsappValid == nil:
			pending = append(pending, item)
		}
	}
	return created, pending, nil
}

func (p *ContactListProcessor) deleteRows(ctx context.Context, items []store.ContactListItem) error {
	for _, item := range items {
		if err := p.store.DeleteContactListItem(ctx, item.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to delete truncated contact", err)
			return fmt.Errorf("failed to delete contact: %w", err)
		}
	}
	return nil
}

// pacer holds checks apart by a fixed pause counted from the moment the
// previous check returned
type pacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

func (p *pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}

// Done starts the pause before the next check
func (p *pacer) Done() {
	p.limiter = rate.NewLimiter(rate.Every(p.interval), 1)
	p.limiter.Allow()
}

// validateRows checks each row serially with a pause of checkInterval between
// one check returning and the next starting. Only a confirmed absence deletes
// a row.
func (p *ContactListProcessor) validateRows(ctx context.Context, session whatsapp.Session, companyID, contactListID uuid.UUID, items []store.ContactListItem, result *ImportResult) error {
	total := len(items)
	pace := &pacer{interval: p.checkInterval}

	for i, item := range items {
		if err := pace.Wait(ctx); err != nil {
			p.logger.Warn(ctx, "contact validation interrupted",
				observability.Field{Key: "validated", Value: i},
				observability.Field{Key: "total", Value: total},
			)
			p.notifyError(ctx, companyID, contactListID, i, total)
			return err
		}

		check, checkErr := session.CheckNumberExists(ctx, item.Number)
		pace.Done()
		switch {
		case checkErr != nil || check.TransientError:
			if checkErr != nil {
				p.logger.Warn(ctx, "transient error checking number, keeping contact unvalidated",
					observability.Field{Key: "number", Value: item.Number},
					observability.Field{Key: "error", Value: checkErr.Error()},
				)
			}
			if err := p.store.UpdateContactValidity(ctx, item.ID, false, nil); err != nil {
				return p.abort(ctx, companyID, contactListID, i, total, err)
			}
			metrics.ContactValidationsTotal.WithLabelValues(metrics.OutcomeTransient).Inc()
			valid := false
			item.IsWhatsappValid = &valid
			result.Imported = append(result.Imported, item)

		case !check.Exists:
			if err := p.store.DeleteContactListItem(ctx, item.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return p.abort(ctx, companyID, contactListID, i, total, err)
			}
			metrics.ContactValidationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
			result.InvalidNumbers = append(result.InvalidNumbers, item.Number)

		default:
			number, err := p.markValid(ctx, item, check.JID)
			if err != nil {
				return p.abort(ctx, companyID, contactListID, i, total, err)
			}
			metrics.ContactValidationsTotal.WithLabelValues(metrics.OutcomeValid).Inc()
			valid := true
			item.IsWhatsappValid = &valid
			item.Number = number
			result.Imported = append(result.Imported, item)
		}

		p.notifier.Notify(ctx, progress.NewEvent(progress.KindContactValidation, companyID, i+1, total, item.Number, progress.StatusValidating).
			ForContactList(contactListID))
	}

	p.notifier.Notify(ctx, progress.NewEvent(progress.KindContactValidation, companyID, total, total, "", progress.StatusCompleted).
		ForContactList(contactListID))
	return nil
}

// markValid flags the row valid under the canonical number carried by the
// JID. When that number is already taken in the list the row keeps its
// imported number.
func (p *ContactListProcessor) markValid(ctx context.Context, item store.ContactListItem, jid string) (string, error) {
	canonical := whatsapp.DigitsOnly(whatsapp.JIDToNumber(jid))
	if canonical == "" || canonical == item.Number {
		return item.Number, p.store.UpdateContactValidity(ctx, item.ID, true, nil)
	}

	err := p.store.UpdateContactValidity(ctx, item.ID, true, &canonical)
	if errors.Is(err, store.ErrDuplicate) {
		p.logger.Info(ctx, "canonical number already in list, keeping imported number",
			observability.Field{Key: "number", Value: item.Number},
			observability.Field{Key: "canonical_number", Value: canonical},
		)
		return item.Number, p.store.UpdateContactValidity(ctx, item.ID, true, nil)
	}
	if err != nil {
		return "", err
	}
	return canonical, nil
}

func (p *ContactListProcessor) abort(ctx context.Context, companyID, contactListID uuid.UUID, current, total int, err error) error {
	p.logger.Error(ctx, "failed to store validation outcome", err)
	p.notifyError(ctx, companyID, contactListID, current, total)
	return fmt.Errorf("failed to store validation outcome: %w", err)
}

func (p *ContactListProcessor) notifyError(ctx context.Context, companyID, contactListID uuid.UUID, current, total int) {
	p.notifier.Notify(ctx, progress.NewEvent(progress.KindContactValidation, companyID, current, total, "", progress.StatusError).
		ForContactList(contactListID))
}

// ListContacts lists the rows of a contact list owned by the company
func (p *ContactListProcessor) ListContacts(ctx context.Context, companyID, contactListID uuid.UUID) ([]store.ContactListItem, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_contacts"},
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "contact_list_id", Value: contactListID.String()},
	)

	if _, err := p.store.GetContactList(ctx, companyID, contactListID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContactListNotFound
		}
		p.logger.Error(ctx, "failed to get contact list", err)
		return nil, err
	}

	items, err := p.store.ListContacts(ctx, companyID, contactListID)
	if err != nil {
		p.logger.Error(ctx, "failed to list contacts", err)
		return nil, err
	}
	return items, nil
}
