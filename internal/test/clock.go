package test

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// ClockStub returns a settable time.
type ClockStub struct {
	mu sync.Mutex
	T  time.Time
}

func (c *ClockStub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.T
}

// Set moves the clock.
func (c *ClockStub) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.T = t
}

// PublisherStub records published events.
type PublisherStub struct {
	mu     sync.Mutex
	Events []model.PaymentEvent
	Err    error
}

func (p *PublisherStub) Publish(ctx context.Context, event model.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return p.Err
}

// Published returns a copy of the recorded events.
func (p *PublisherStub) Published() []model.PaymentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.PaymentEvent(nil), p.Events...)
}

// PhotoStoreStub names saved photos photo-1.png, photo-2.png and so on.
type PhotoStoreStub struct {
	Saved     []string
	Deleted   []string
	SaveErr   error
	DeleteErr error
}

func (s *PhotoStoreStub) Save(ctx context.Context, r io.Reader) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	name := "photo-" + strconv.Itoa(len(s.Saved)+1) + ".png"
	s.Saved = append(s.Saved, name)
	return name, nil
}

func (s *PhotoStoreStub) Delete(name string) error {
	s.Deleted = append(s.Deleted, name)
	return s.DeleteErr
}
