// Package address maintains the saved-address collection and resolves the
// shipping address an order will use: either one saved address explicitly
// chosen (the default, when present, is preselected) or an ad-hoc address
// typed into the checkout form.
package address

import (
	"context"
	"log"
	"strings"

	"furniture-storefront/internal/domain"
)

type commerceAPI interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	AddAddress(ctx context.Context, in domain.AddressInput) (domain.Address, error)
	UpdateAddress(ctx context.Context, id string, in domain.AddressInput) (domain.Address, error)
	DeleteAddress(ctx context.Context, id string) error
	SetDefaultAddress(ctx context.Context, id string) error
}

type Service struct {
	api    commerceAPI
	logger *log.Logger
}

func New(api commerceAPI, logger *log.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Manager is the per-checkout resolution state. The active choice is either a
// saved address id or the ad-hoc form; choosing a saved address discards any
// partially entered ad-hoc data.
type Manager struct {
	addresses []domain.Address
	activeID  string
	adHoc     domain.ShippingAddress
}

// Load fetches the saved addresses and preselects the default.
func (s *Service) Load(ctx context.Context) (*Manager, error) {
	addrs, err := s.api.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}
	m := &Manager{addresses: addrs}
	m.PickDefault()
	return m, nil
}

// NewManager builds a manager over an already-fetched collection.
func NewManager(addrs []domain.Address) *Manager {
	m := &Manager{addresses: addrs}
	m.PickDefault()
	return m
}

// PickDefault activates the default saved address when one exists; otherwise
// the active choice is the empty ad-hoc form.
func (m *Manager) PickDefault() {
	m.activeID = ""
	for _, a := range m.addresses {
		if a.IsDefault {
			m.activeID = a.ID
			return
		}
	}
}

// Select activates a saved address and discards the ad-hoc form.
func (m *Manager) Select(addressID string) error {
	for _, a := range m.addresses {
		if a.ID == addressID {
			m.activeID = addressID
			m.adHoc = domain.ShippingAddress{}
			return nil
		}
	}
	return domain.ErrNotFound
}

// UseAdHoc switches the active choice to the typed-in form.
func (m *Manager) UseAdHoc(form domain.ShippingAddress) {
	m.activeID = ""
	m.adHoc = form
}

// Addresses returns the loaded collection.
func (m *Manager) Addresses() []domain.Address {
	return m.addresses
}

// Active returns the currently chosen saved address, or false when the
// ad-hoc form is active.
func (m *Manager) Active() (domain.Address, bool) {
	if m.activeID == "" {
		return domain.Address{}, false
	}
	for _, a := range m.addresses {
		if a.ID == m.activeID {
			return a, true
		}
	}
	return domain.Address{}, false
}

// UsingAdHoc reports whether the order will ship to the typed-in form.
func (m *Manager) UsingAdHoc() bool {
	_, ok := m.Active()
	return !ok
}

// ResolveForOrder returns the shipping address a submission will use. A saved
// address is returned verbatim; the ad-hoc form must carry a recipient name,
// phone and street.
func (m *Manager) ResolveForOrder() (domain.ShippingAddress, error) {
	if active, ok := m.Active(); ok {
		return active.ShippingFields(), nil
	}
	if strings.TrimSpace(m.adHoc.FullName) == "" ||
		strings.TrimSpace(m.adHoc.Phone) == "" ||
		strings.TrimSpace(m.adHoc.Street) == "" {
		return domain.ShippingAddress{}, domain.ErrIncompleteAddress
	}
	return m.adHoc, nil
}

// PersistIfRequested saves the ad-hoc address when asked to. A failure here
// never blocks the order; it is logged and swallowed. The first address a
// user saves becomes their default.
func (s *Service) PersistIfRequested(ctx context.Context, m *Manager, save bool) {
	if !save || !m.UsingAdHoc() {
		return
	}
	resolved, err := m.ResolveForOrder()
	if err != nil {
		return
	}
	_, err = s.api.AddAddress(ctx, domain.AddressInput{
		Name:      "Shipping Address",
		FullName:  resolved.FullName,
		Phone:     resolved.Phone,
		Street:    resolved.Street,
		City:      resolved.City,
		State:     resolved.State,
		ZipCode:   resolved.ZipCode,
		IsDefault: len(m.addresses) == 0,
	})
	if err != nil {
		s.logger.Printf("save shipping address: %v", err)
	}
}

// Add saves a new address.
func (s *Service) Add(ctx context.Context, in domain.AddressInput) (domain.Address, error) {
	return s.api.AddAddress(ctx, in)
}

// Update overwrites a saved address.
func (s *Service) Update(ctx context.Context, id string, in domain.AddressInput) (domain.Address, error) {
	return s.api.UpdateAddress(ctx, id, in)
}

// Delete removes a saved address.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.DeleteAddress(ctx, id)
}

// SetDefault marks one address as the default. The server unsets the previous
// one; no local reconciliation is attempted.
func (s *Service) SetDefault(ctx context.Context, id string) error {
	return s.api.SetDefaultAddress(ctx, id)
}

// List fetches the saved addresses without building a manager.
func (s *Service) List(ctx context.Context) ([]domain.Address, error) {
	return s.api.ListAddresses(ctx)
}
