package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const contactListItemColumns = `id, contact_list_id, company_id, name, number, email, is_whatsapp_valid, created_at, updated_at`

const sqlGetContactList = `
SELECT id, company_id, name, created_at, updated_at
FROM contact_lists
WHERE id = $1 AND company_id = $2
`

// GetContactList retrieves a contact list owned by a company
func (s *Store) GetContactList(ctx context.Context, companyID, contactListID uuid.UUID) (ContactList, error) {
	var list ContactList
	err := s.db.GetContext(ctx, &list, sqlGetContactList, contactListID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContactList{}, ErrNotFound
		}
		return ContactList{}, fmt.Errorf("failed to get contact list: %w", err)
	}
	return list, nil
}

// FindOrCreateContactParams represents one imported row
type FindOrCreateContactParams struct {
	ContactListID uuid.UUID
	CompanyID     uuid.UUID
	Name          string
	Number        string
	Email         string
}

const sqlInsertContactIfAbsent = `
INSERT INTO contact_list_items (contact_list_id, company_id, name, number, email)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (number, contact_list_id, company_id) DO NOTHING
RETURNING ` + contactListItemColumns

const sqlGetContactByNumber = `
SELECT ` + contactListItemColumns + `
FROM contact_list_items
WHERE number = $1 AND contact_list_id = $2 AND company_id = $3
`

// FindOrCreateContact returns the row keyed on (number, list, company),
// creating it when absent. created reports whether this call inserted it.
func (s *Store) FindOrCreateContact(ctx context.Context, params FindOrCreateContactParams) (ContactListItem, bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return ContactListItem{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var item ContactListItem
	created := true
	err = tx.GetContext(ctx, &item, sqlInsertContactIfAbsent,
		params.ContactListID,
		params.CompanyID,
		params.Name,
		params.Number,
		params.Email)
	if errors.Is(err, sql.ErrNoRows) {
		created = false
		err = tx.GetContext(ctx, &item, sqlGetContactByNumber, params.Number, params.ContactListID, params.CompanyID)
	}
	if err != nil {
		return ContactListItem{}, false, fmt.Errorf("failed to find or create contact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ContactListItem{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return item, created, nil
}

const sqlDeleteContactListItem = `
DELETE FROM contact_list_items WHERE id = $1
`

// DeleteContactListItem removes a contact row
func (s *Store) DeleteContactListItem(ctx context.Context, itemID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteContactListItem, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUpdateContactValidity = `
UPDATE contact_list_items
SET is_whatsapp_valid = $2,
    number = COALESCE($3, number),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateContactValidity sets the validation flag and optionally replaces the
// number with its canonical form. Returns ErrDuplicate when the canonical
// number already exists in the same list.
func (s *Store) UpdateContactValidity(ctx context.Context, itemID uuid.UUID, valid bool, canonicalNumber *string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateContactValidity, itemID, valid, canonicalNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update contact validity: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCountValidContacts = `
SELECT COUNT(*)
FROM contact_list_items
WHERE contact_list_id = $1 AND company_id = $2 AND is_whatsapp_valid = TRUE
`

// CountValidContacts counts the confirmed WhatsApp contacts of a list
func (s *Store) CountValidContacts(ctx context.Context, companyID, contactListID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountValidContacts, contactListID, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to count valid contacts: %w", err)
	}
	return count, nil
}

const sqlListContacts = `
SELECT ` + contactListItemColumns + `
FROM contact_list_items
WHERE contact_list_id = $1 AND company_id = $2
ORDER BY created_at ASC, id ASC
`

// ListContacts lists the rows of a contact list in insertion order
func (s *Store) ListContacts(ctx context.Context, companyID, contactListID uuid.UUID) ([]ContactListItem, error) {
	var items []ContactListItem
	err := s.db.SelectContext(ctx, &items, sqlListContacts, contactListID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return items, nil
}
