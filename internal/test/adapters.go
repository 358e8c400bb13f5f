package test

import (
	"context"
	"sync"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// FXClientStub returns configured rates from the FX provider contract.
type FXClientStub struct {
	Rates model.Rates
	Err   error
	Calls int
}

// Latest returns configured rates or error.
func (s *FXClientStub) Latest(ctx context.Context, base string) (model.Rates, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Rates, nil
}

// GeoClientStub answers geolocation lookups.
type GeoClientStub struct {
	Location model.Location
	Err      error
	LastIP   string
}

// Lookup records the requested ip and returns the configured result.
func (s *GeoClientStub) Lookup(ctx context.Context, ip string) (model.Location, error) {
	s.LastIP = ip
	if s.Err != nil {
		return model.Location{}, s.Err
	}
	return s.Location, nil
}

// MailSenderStub captures outgoing messages.
type MailSenderStub struct {
	Config model.MailConfigStatus
	Err    error
	Sent   []model.EmailMessage
}

// Send records msg and returns configured error.
func (s *MailSenderStub) Send(ctx context.Context, msg model.EmailMessage) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, msg)
	return nil
}

// Status returns configured credential status.
func (s *MailSenderStub) Status() model.MailConfigStatus {
	return s.Config
}

// LockerStub grants each key once until released.
type LockerStub struct {
	mu       sync.Mutex
	held     map[string]bool
	Err      error
	Acquired []string
	Released []string
}

// Acquire grants key unless it is currently held.
func (s *LockerStub) Acquire(ctx context.Context, key string) (func(), bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return func() {}, false, s.Err
	}
	if s.held == nil {
		s.held = make(map[string]bool)
	}
	if s.held[key] {
		return func() {}, false, nil
	}
	s.held[key] = true
	s.Acquired = append(s.Acquired, key)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.held, key)
		s.Released = append(s.Released, key)
	}, true, nil
}

// Hold marks key as owned by another delivery.
func (s *LockerStub) Hold(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held == nil {
		s.held = make(map[string]bool)
	}
	s.held[key] = true
}
