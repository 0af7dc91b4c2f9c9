//go:build api

package testserver

import (
	"context"
	"sync"

	"travelmate/internal/events"
)

// RecordingPublisher implements events.Publisher by recording events in
// memory, so tests can assert on what would have been published.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.InvitationEvent
}

// NewRecordingPublisher creates an empty recording publisher.
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// PublishInvitation records the event.
func (p *RecordingPublisher) PublishInvitation(_ context.Context, event events.InvitationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Close is a no-op.
func (p *RecordingPublisher) Close() error {
	return nil
}

// Invitations returns a copy of the recorded invitation events.
func (p *RecordingPublisher) Invitations() []events.InvitationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.InvitationEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Reset clears all recorded events.
func (p *RecordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

var _ events.Publisher = (*RecordingPublisher)(nil)
