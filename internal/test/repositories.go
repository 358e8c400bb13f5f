package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/domain/repository"
)

// RateRepositoryStub keeps rates in memory keyed by target currency.
type RateRepositoryStub struct {
	mu sync.Mutex

	Rates   map[string]model.ExchangeRate
	ListErr error
	// FailCurrencies makes Upsert fail for the listed target currencies.
	FailCurrencies map[string]error
	Upserts        []model.ExchangeRate
}

// NewRateRepositoryStub constructs an empty rate store.
func NewRateRepositoryStub() *RateRepositoryStub {
	return &RateRepositoryStub{Rates: make(map[string]model.ExchangeRate)}
}

// ListByBase returns stored rates for base ordered by target currency.
func (s *RateRepositoryStub) ListByBase(ctx context.Context, base string) ([]model.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.ExchangeRate
	for _, r := range s.Rates {
		if r.BaseCurrency == base {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TargetCurrency < result[j].TargetCurrency })
	return result, nil
}

// Upsert records the write unless the currency is configured to fail.
func (s *RateRepositoryStub) Upsert(ctx context.Context, rate model.ExchangeRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Upserts = append(s.Upserts, rate)
	if err := s.FailCurrencies[rate.TargetCurrency]; err != nil {
		return err
	}
	if s.Rates == nil {
		s.Rates = make(map[string]model.ExchangeRate)
	}
	s.Rates[rate.TargetCurrency] = rate
	return nil
}

// OrderRepositoryStub models orders, invoices and notifications in memory.
type OrderRepositoryStub struct {
	mu sync.Mutex

	Orders        map[string]*model.Order
	Invoices      map[string]model.Invoice
	Notifications []model.Notification

	ConfirmErr error
	UpdateErr  error
	GetErr     error
}

// NewOrderRepositoryStub constructs stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:   make(map[string]*model.Order),
		Invoices: make(map[string]model.Invoice),
	}
}

// AddOrder registers a pending order for zohoInvoiceID and returns it.
func (s *OrderRepositoryStub) AddOrder(zohoInvoiceID string, clientID uuid.UUID) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := &model.Order{
		ID:            uuid.New(),
		ClientID:      clientID,
		ZohoInvoiceID: zohoInvoiceID,
		Currency:      model.BaseCurrency,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	s.Orders[zohoInvoiceID] = order
	return order
}

// GetByInvoiceID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByInvoiceID(ctx context.Context, zohoInvoiceID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	order, ok := s.Orders[zohoInvoiceID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

// UpdateStatusByInvoiceID changes the order status when present.
func (s *OrderRepositoryStub) UpdateStatusByInvoiceID(ctx context.Context, zohoInvoiceID string, status model.OrderStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return 0, s.UpdateErr
	}
	order, ok := s.Orders[zohoInvoiceID]
	if !ok {
		return 0, nil
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return 1, nil
}

// ConfirmPayment mirrors the transactional store semantics: invoices are unique per Zoho id
// and a notification is only appended alongside a new invoice.
func (s *OrderRepositoryStub) ConfirmPayment(ctx context.Context, payment model.PaymentConfirmation) (model.PaymentOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ConfirmErr != nil {
		return model.PaymentOutcome{}, s.ConfirmErr
	}
	order, ok := s.Orders[payment.ZohoInvoiceID]
	if !ok {
		return model.PaymentOutcome{}, nil
	}
	order.Status = model.OrderStatusPaid
	order.UpdatedAt = payment.PaidAt

	outcome := model.PaymentOutcome{OrderFound: true, ClientID: order.ClientID}
	if _, exists := s.Invoices[payment.ZohoInvoiceID]; exists {
		return outcome, nil
	}
	s.Invoices[payment.ZohoInvoiceID] = model.Invoice{
		ID:            int64(len(s.Invoices) + 1),
		OrderID:       order.ID,
		ClientID:      order.ClientID,
		ZohoInvoiceID: payment.ZohoInvoiceID,
		InvoiceNumber: payment.InvoiceNumber,
		AmountUSD:     order.AmountUSD,
		AmountINR:     order.AmountINR,
		Currency:      order.Currency,
		TotalAmount:   payment.Total,
		Status:        string(model.OrderStatusPaid),
		DueDate:       payment.PaidAt,
	}
	s.Notifications = append(s.Notifications, model.Notification{
		ID:       int64(len(s.Notifications) + 1),
		ClientID: order.ClientID,
		Title:    payment.NotificationTitle,
		Message:  payment.NotificationMessage,
		Type:     model.NotificationSuccess,
	})
	outcome.InvoiceCreated = true
	return outcome, nil
}

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	ByEmail map[string]*model.Client
	ByID    map[uuid.UUID]*model.Client
	Err     error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{
		ByEmail: make(map[string]*model.Client),
		ByID:    make(map[uuid.UUID]*model.Client),
	}
}

// Create registers client unless the email is taken or stub has explicit error.
func (s *ClientRepositoryStub) Create(ctx context.Context, email, passwordHash, fullName string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now()
	client := &model.Client{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Currency:     model.BaseCurrency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.ByEmail[email] = client
	s.ByID[client.ID] = client
	return client, nil
}

// GetByEmail fetches client by email or returns not found.
func (s *ClientRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByEmail[email]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches client by identifier or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile overwrites editable fields.
func (s *ClientRepositoryStub) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.FullName = update.FullName
	client.Company = update.Company
	client.Phone = update.Phone
	client.CountryCode = update.CountryCode
	client.Currency = update.Currency
	client.UpdatedAt = time.Now()
	return client, nil
}

// UpdatePasswordHash replaces stored hash.
func (s *ClientRepositoryStub) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	client.PasswordHash = passwordHash
	return nil
}

// NotificationRepositoryStub keeps inbox entries and preferences in memory.
type NotificationRepositoryStub struct {
	Items       []model.Notification
	Preferences map[uuid.UUID]model.NotificationPreferences
	Err         error
}

// ListByClient returns the client's entries newest first.
func (s *NotificationRepositoryStub) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Notification
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].ClientID == clientID {
			result = append(result, s.Items[i])
		}
	}
	return result, nil
}

// MarkRead flags the entry when it belongs to clientID.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, clientID uuid.UUID, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id && s.Items[i].ClientID == clientID {
			s.Items[i].Read = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetPreferences returns saved preferences or defaults.
func (s *NotificationRepositoryStub) GetPreferences(ctx context.Context, clientID uuid.UUID) (*model.NotificationPreferences, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if prefs, ok := s.Preferences[clientID]; ok {
		return &prefs, nil
	}
	defaults := model.DefaultNotificationPreferences(clientID)
	return &defaults, nil
}

// UpsertPreferences stores prefs.
func (s *NotificationRepositoryStub) UpsertPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Preferences == nil {
		s.Preferences = make(map[uuid.UUID]model.NotificationPreferences)
	}
	prefs.UpdatedAt = time.Now()
	s.Preferences[prefs.ClientID] = prefs
	return &prefs, nil
}

// TemplateRepositoryStub serves templates from a map.
type TemplateRepositoryStub struct {
	Templates map[string]model.EmailTemplate
	Err       error
}

// GetByName returns the named template or not found.
func (s TemplateRepositoryStub) GetByName(ctx context.Context, name string) (*model.EmailTemplate, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if tpl, ok := s.Templates[name]; ok {
		return &tpl, nil
	}
	return nil, domainErrors.ErrNotFound
}

var (
	_ repository.RateRepository         = (*RateRepositoryStub)(nil)
	_ repository.OrderRepository        = (*OrderRepositoryStub)(nil)
	_ repository.ClientRepository       = (*ClientRepositoryStub)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryStub)(nil)
	_ repository.TemplateRepository     = TemplateRepositoryStub{}
)
