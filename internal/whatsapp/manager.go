package whatsapp

import (
	"context"
	"fmt"
	"sync"

	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
)

// ConnectionStore lists the connections sessions are built from
type ConnectionStore interface {
	ListWhatsappConnections(ctx context.Context) ([]store.WhatsappConnection, error)
}

// SessionFactory opens a session for a stored connection
type SessionFactory func(conn store.WhatsappConnection) (Session, error)

type registered struct {
	companyID uuid.UUID
	session   Session
}

// Manager owns the live sessions, keyed by connection id, and remembers each
// company's default connection
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]registered
	defaults map[uuid.UUID]uuid.UUID

	store   ConnectionStore
	factory SessionFactory
	logger  *observability.Logger
}

// NewManager creates an empty manager
func NewManager(store ConnectionStore, factory SessionFactory, logger *observability.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]registered),
		defaults: make(map[uuid.UUID]uuid.UUID),
		store:    store,
		factory:  factory,
		logger:   logger,
	}
}

// Register adds or replaces the session of a connection. The first
// connection of a company, or one flagged default, becomes its default.
func (m *Manager) Register(conn store.WhatsappConnection, session Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[conn.ID] = registered{companyID: conn.CompanyID, session: session}
	if _, ok := m.defaults[conn.CompanyID]; !ok || conn.IsDefault {
		m.defaults[conn.CompanyID] = conn.ID
	}
}

// Remove drops a connection's session
func (m *Manager) Remove(connectionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.sessions[connectionID]
	if !ok {
		return
	}
	delete(m.sessions, connectionID)

	if m.defaults[reg.companyID] != connectionID {
		return
	}
	delete(m.defaults, reg.companyID)
	for id, other := range m.sessions {
		if other.companyID == reg.companyID {
			m.defaults[reg.companyID] = id
			break
		}
	}
}

// Session returns the session of a connection owned by the company
func (m *Manager) Session(companyID, connectionID uuid.UUID) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reg, ok := m.sessions[connectionID]
	if !ok || reg.companyID != companyID {
		return nil, ErrSessionNotFound
	}
	return reg.session, nil
}

// DefaultSession returns the company's default session
func (m *Manager) DefaultSession(companyID uuid.UUID) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.defaults[companyID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return m.sessions[id].session, nil
}

// Load opens a session for every connected connection in the store.
// Connections that fail to open are logged and skipped.
func (m *Manager) Load(ctx context.Context) error {
	conns, err := m.store.ListWhatsappConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list whatsapp connections: %w", err)
	}

	loaded := 0
	for _, conn := range conns {
		connCtx := observability.WithFields(ctx,
			observability.Field{Key: "company_id", Value: conn.CompanyID.String()},
			observability.Field{Key: "whatsapp_id", Value: conn.ID.String()},
		)
		session, err := m.factory(conn)
		if err != nil {
			m.logger.Error(connCtx, "failed to open whatsapp session", err)
			continue
		}
		m.Register(conn, session)
		loaded++
	}

	m.logger.Info(ctx, "whatsapp sessions loaded", observability.Field{Key: "count", Value: loaded})
	return nil
}
