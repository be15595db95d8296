package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlListWhatsappConnections = `
SELECT id, company_id, name, phone_number, is_default, status
FROM whatsapp_connections
WHERE status = 'connected'
ORDER BY company_id, is_default DESC, name
`

// ListWhatsappConnections lists every connected sending connection
func (s *Store) ListWhatsappConnections(ctx context.Context) ([]WhatsappConnection, error) {
	var connections []WhatsappConnection
	err := s.db.SelectContext(ctx, &connections, sqlListWhatsappConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to list whatsapp connections: %w", err)
	}
	return connections, nil
}

const sqlGetWhatsappConnection = `
SELECT id, company_id, name, phone_number, is_default, status
FROM whatsapp_connections
WHERE id = $1 AND company_id = $2
`

// GetWhatsappConnection retrieves a connection owned by a company
func (s *Store) GetWhatsappConnection(ctx context.Context, companyID, connectionID uuid.UUID) (WhatsappConnection, error) {
	var connection WhatsappConnection
	err := s.db.GetContext(ctx, &connection, sqlGetWhatsappConnection, connectionID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsappConnection{}, ErrNotFound
		}
		return WhatsappConnection{}, fmt.Errorf("failed to get whatsapp connection: %w", err)
	}
	return connection, nil
}
