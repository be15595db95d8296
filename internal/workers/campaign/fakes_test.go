package campaign

import (
	"context"
	"errors"
	"sync"
	"time"

	"campaign-server/internal/plans"
	"campaign-server/internal/progress"
	"campaign-server/internal/store"
	"campaign-server/internal/whatsapp"

	"github.com/google/uuid"
)

// fakeStore keeps campaigns, contacts and deliveries in memory and applies
// status changes conditionally, like the SQL store
type fakeStore struct {
	mu         sync.Mutex
	campaigns  map[uuid.UUID]store.Campaign
	contacts   map[uuid.UUID][]store.ContactListItem
	deliveries map[uuid.UUID][]store.RecordDeliveryParams
	touches    int
	cancels    int
	// afterDue runs between listing due campaigns and claiming them
	afterDue func(due []store.Campaign)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		campaigns:  make(map[uuid.UUID]store.Campaign),
		contacts:   make(map[uuid.UUID][]store.ContactListItem),
		deliveries: make(map[uuid.UUID][]store.RecordDeliveryParams),
	}
}

func (f *fakeStore) addCampaign(c store.Campaign) store.Campaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.campaigns[c.ID] = c
	return c
}

func (f *fakeStore) addContact(listID uuid.UUID, number, name string, valid bool) store.ContactListItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := store.ContactListItem{
		ID:              uuid.New(),
		ContactListID:   listID,
		Name:            name,
		Number:          number,
		Email:           name + "@example.com",
		IsWhatsappValid: &valid,
	}
	f.contacts[listID] = append(f.contacts[listID], item)
	return item
}

func (f *fakeStore) status(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.campaigns[id].Status
}

func (f *fakeStore) setStatus(id uuid.UUID, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.campaigns[id]
	c.Status = status
	f.campaigns[id] = c
}

func (f *fakeStore) delivered(id uuid.UUID) []store.RecordDeliveryParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.RecordDeliveryParams(nil), f.deliveries[id]...)
}

func (f *fakeStore) GetCampaignByID(_ context.Context, id uuid.UUID) (store.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return store.Campaign{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCampaignStatus(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := f.GetCampaignByID(ctx, id)
	return c.Status, err
}

func (f *fakeStore) GetUndeliveredContacts(_ context.Context, campaignID, listID uuid.UUID) ([]store.ContactListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	done := make(map[uuid.UUID]bool)
	for _, d := range f.deliveries[campaignID] {
		done[d.ContactListItemID] = true
	}
	var out []store.ContactListItem
	for _, item := range f.contacts[listID] {
		if item.IsWhatsappValid != nil && *item.IsWhatsappValid && !done[item.ID] {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCampaignDeliveryStats(_ context.Context, campaignID uuid.UUID) (store.CampaignDeliveryStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats store.CampaignDeliveryStats
	for _, d := range f.deliveries[campaignID] {
		if d.Status == store.DeliveryStatusSent {
			stats.Sent++
		} else {
			stats.Failed++
		}
	}
	return stats, nil
}

func (f *fakeStore) RecordDelivery(_ context.Context, params store.RecordDeliveryParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.deliveries[params.CampaignID] {
		if d.ContactListItemID == params.ContactListItemID {
			return nil
		}
	}
	f.deliveries[params.CampaignID] = append(f.deliveries[params.CampaignID], params)
	return nil
}

func (f *fakeStore) touchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touches
}

func (f *fakeStore) TouchCampaign(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touches++
	c := f.campaigns[id]
	c.UpdatedAt = time.Now()
	f.campaigns[id] = c
	return nil
}

func (f *fakeStore) TransitionCampaignStatus(_ context.Context, id uuid.UUID, from, to string) (bool, error) {
	if !store.CanTransition(from, to) {
		return false, store.ErrInvalidTransition
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	f.campaigns[id] = c
	return true, nil
}

func (f *fakeStore) ClaimCampaign(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok || c.Status != store.CampaignStatusScheduled || c.ScheduledAt == nil || c.ScheduledAt.After(now) {
		return false, nil
	}
	c.Status = store.CampaignStatusRunning
	f.campaigns[id] = c
	return true, nil
}

// reschedule moves a campaign's scheduled_at, like an edit would
func (f *fakeStore) reschedule(id uuid.UUID, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.campaigns[id]
	c.ScheduledAt = &at
	f.campaigns[id] = c
}

func (f *fakeStore) CancelCampaign(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	c, ok := f.campaigns[id]
	if !ok || store.IsTerminalStatus(c.Status) {
		return false, nil
	}
	c.Status = store.CampaignStatusCancelled
	f.campaigns[id] = c
	return true, nil
}

func (f *fakeStore) GetDueCampaigns(_ context.Context, now time.Time) ([]store.Campaign, error) {
	f.mu.Lock()
	var out []store.Campaign
	for _, c := range f.campaigns {
		if c.Status == store.CampaignStatusScheduled && c.ScheduledAt != nil && !c.ScheduledAt.After(now) {
			out = append(out, c)
		}
	}
	afterDue := f.afterDue
	f.mu.Unlock()

	if afterDue != nil {
		afterDue(out)
	}
	return out, nil
}

func (f *fakeStore) GetStaleRunningCampaigns(_ context.Context, before time.Time) ([]store.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Campaign
	for _, c := range f.campaigns {
		if c.Status == store.CampaignStatusRunning && c.UpdatedAt.Before(before) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ReclaimStaleCampaign(_ context.Context, id uuid.UUID, before time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok || c.Status != store.CampaignStatusRunning || !c.UpdatedAt.Before(before) {
		return false, nil
	}
	c.UpdatedAt = time.Now()
	f.campaigns[id] = c
	return true, nil
}

type sentMessage struct {
	target, payload string
}

type fakeSession struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]error
	onSend  func(n int)
}

func (f *fakeSession) SendMessage(_ context.Context, target, payload string) (whatsapp.SendResult, error) {
	f.mu.Lock()
	f.sent = append(f.sent, sentMessage{target: target, payload: payload})
	n := len(f.sent)
	err := f.failFor[target]
	hook := f.onSend
	f.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	if err != nil {
		return whatsapp.SendResult{}, err
	}
	return whatsapp.SendResult{ID: uuid.NewString(), Status: "queued"}, nil
}

func (f *fakeSession) CheckNumberExists(context.Context, string) (whatsapp.NumberCheck, error) {
	return whatsapp.NumberCheck{Exists: true}, nil
}

func (f *fakeSession) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

type fakeSessions struct {
	session whatsapp.Session
}

func (f fakeSessions) Session(uuid.UUID, uuid.UUID) (whatsapp.Session, error) {
	if f.session == nil {
		return nil, whatsapp.ErrSessionNotFound
	}
	return f.session, nil
}

type fakeSettings struct{}

func (fakeSettings) GetCampaignSettings(context.Context, uuid.UUID) (plans.CampaignSettings, error) {
	return plans.DefaultCampaignSettings(), nil
}

type fakeLimiter struct {
	mu    sync.Mutex
	waits int
	err   error
}

func (f *fakeLimiter) Wait(ctx context.Context, _ uuid.UUID, _ plans.CampaignSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waits++
	if f.err != nil {
		return f.err
	}
	return ctx.Err()
}

// blockingLimiter holds every Wait until release is closed
type blockingLimiter struct {
	release chan struct{}
}

func (b *blockingLimiter) Wait(ctx context.Context, _ uuid.UUID, _ plans.CampaignSettings) error {
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recordingNotifier) Notify(_ context.Context, e progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingNotifier) last() progress.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return progress.Event{}
	}
	return r.events[len(r.events)-1]
}

// fakeLauncher records launches and can fail or panic for chosen campaigns
type fakeLauncher struct {
	mu       sync.Mutex
	launched []uuid.UUID
	failFor  map[uuid.UUID]bool
	panicFor map[uuid.UUID]bool
}

func (f *fakeLauncher) Launch(_ context.Context, id uuid.UUID) error {
	if f.panicFor[id] {
		panic("launcher exploded")
	}
	if f.failFor[id] {
		return errors.New("queue unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.launched = append(f.launched, id)
	return nil
}

func (f *fakeLauncher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.launched)
}
