package address

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"furniture-storefront/internal/domain"
)

type stubAPI struct {
	addresses []domain.Address
	listErr   error
	addErr    error
	addCalls  int
	lastAdd   domain.AddressInput
	deleteErr error
	lastDel   string
	defErr    error
	lastDef   string
}

func (s *stubAPI) ListAddresses(_ context.Context) ([]domain.Address, error) {
	return s.addresses, s.listErr
}

func (s *stubAPI) AddAddress(_ context.Context, in domain.AddressInput) (domain.Address, error) {
	s.addCalls++
	s.lastAdd = in
	if s.addErr != nil {
		return domain.Address{}, s.addErr
	}
	return domain.Address{ID: "new", FullName: in.FullName}, nil
}

func (s *stubAPI) UpdateAddress(_ context.Context, id string, in domain.AddressInput) (domain.Address, error) {
	return domain.Address{ID: id, FullName: in.FullName}, nil
}

func (s *stubAPI) DeleteAddress(_ context.Context, id string) error {
	s.lastDel = id
	return s.deleteErr
}

func (s *stubAPI) SetDefaultAddress(_ context.Context, id string) error {
	s.lastDef = id
	return s.defErr
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func savedAddresses() []domain.Address {
	return []domain.Address{
		{ID: "a1", Name: "Home", FullName: "Pat Doe", Phone: "555-0100", Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
		{ID: "a2", Name: "Office", FullName: "Pat Doe", Phone: "555-0101", Street: "9 Work Rd", City: "Springfield", State: "IL", ZipCode: "62702", IsDefault: true},
	}
}

func TestLoadPicksDefault(t *testing.T) {
	svc := New(&stubAPI{addresses: savedAddresses()}, testLogger())
	mgr, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	active, ok := mgr.Active()
	if !ok || active.ID != "a2" {
		t.Fatalf("expected default a2 active, got %+v ok=%v", active, ok)
	}

	resolved, err := mgr.ResolveForOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Street != "9 Work Rd" || resolved.FullName != "Pat Doe" || resolved.ZipCode != "62702" {
		t.Fatalf("resolved address must match the saved one, got %+v", resolved)
	}
}

func TestPickDefaultWithoutDefaultFallsBackToAdHoc(t *testing.T) {
	addrs := savedAddresses()
	addrs[1].IsDefault = false
	mgr := NewManager(addrs)
	if !mgr.UsingAdHoc() {
		t.Fatal("expected ad-hoc form active when no default exists")
	}
}

func TestSelectDiscardsAdHoc(t *testing.T) {
	mgr := NewManager(savedAddresses())
	mgr.UseAdHoc(domain.ShippingAddress{FullName: "Typed", Phone: "1", Street: "Somewhere"})
	if err := mgr.Select("a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolved, err := mgr.ResolveForOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Street != "1 Main St" {
		t.Fatalf("saved address must win over ad-hoc contents, got %+v", resolved)
	}
}

func TestSelectUnknownAddress(t *testing.T) {
	mgr := NewManager(savedAddresses())
	if err := mgr.Select("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveAdHocRequiresFields(t *testing.T) {
	mgr := NewManager(nil)
	mgr.UseAdHoc(domain.ShippingAddress{FullName: "Pat", Phone: "555", City: "Springfield"})
	_, err := mgr.ResolveForOrder()
	if !errors.Is(err, domain.ErrIncompleteAddress) {
		t.Fatalf("expected ErrIncompleteAddress without street, got %v", err)
	}

	mgr.UseAdHoc(domain.ShippingAddress{FullName: "Pat", Phone: "555", Street: "1 Main St"})
	if _, err := mgr.ResolveForOrder(); err != nil {
		t.Fatalf("complete ad-hoc address must resolve, got %v", err)
	}
}

func TestPersistIfRequestedSavesAdHoc(t *testing.T) {
	api := &stubAPI{}
	svc := New(api, testLogger())
	mgr := NewManager(nil)
	mgr.UseAdHoc(domain.ShippingAddress{FullName: "Pat", Phone: "555", Street: "1 Main St"})

	svc.PersistIfRequested(context.Background(), mgr, true)
	if api.addCalls != 1 {
		t.Fatalf("expected one add-address call, got %d", api.addCalls)
	}
	if !api.lastAdd.IsDefault {
		t.Fatal("first saved address must become the default")
	}
}

func TestPersistIfRequestedSkipsSavedAddress(t *testing.T) {
	api := &stubAPI{addresses: savedAddresses()}
	svc := New(api, testLogger())
	mgr := NewManager(savedAddresses())

	svc.PersistIfRequested(context.Background(), mgr, true)
	if api.addCalls != 0 {
		t.Fatal("a chosen saved address must not be re-saved")
	}
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	api := &stubAPI{addErr: &domain.RemoteError{Message: "down"}}
	svc := New(api, testLogger())
	mgr := NewManager(nil)
	mgr.UseAdHoc(domain.ShippingAddress{FullName: "Pat", Phone: "555", Street: "1 Main St"})

	// Must not panic or surface the failure.
	svc.PersistIfRequested(context.Background(), mgr, true)
	if api.addCalls != 1 {
		t.Fatalf("expected the attempt to happen, got %d calls", api.addCalls)
	}
}

func TestSetDefaultPassesThrough(t *testing.T) {
	api := &stubAPI{}
	svc := New(api, testLogger())
	if err := svc.SetDefault(context.Background(), "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastDef != "a1" {
		t.Fatalf("expected a1 sent to server, got %q", api.lastDef)
	}
}
