// Package mocks provides testify mocks for the gateway ports.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

type MockDispatcher struct {
	mock.Mock
}

func NewMockDispatcher(t *testing.T) *MockDispatcher {
	m := &MockDispatcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDispatcher) Purchase(ctx context.Context, payload *gateway.Payload) (*gateway.Outcome, error) {
	args := m.Called(ctx, payload)
	var outcome *gateway.Outcome
	if args.Get(0) != nil {
		outcome = args.Get(0).(*gateway.Outcome)
	}
	return outcome, args.Error(1)
}

type MockVaultClient struct {
	mock.Mock
}

func NewMockVaultClient(t *testing.T) *MockVaultClient {
	m := &MockVaultClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockVaultClient) CreateProfile(ctx context.Context, req gateway.VaultProfileRequest) (*gateway.VaultProfile, error) {
	args := m.Called(ctx, req)
	var profile *gateway.VaultProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*gateway.VaultProfile)
	}
	return profile, args.Error(1)
}

func (m *MockVaultClient) CreateAddress(ctx context.Context, profileID string, req gateway.VaultAddressRequest) (*gateway.VaultAddress, error) {
	args := m.Called(ctx, profileID, req)
	var address *gateway.VaultAddress
	if args.Get(0) != nil {
		address = args.Get(0).(*gateway.VaultAddress)
	}
	return address, args.Error(1)
}

func (m *MockVaultClient) CreateCard(ctx context.Context, profileID, addressID string, req gateway.VaultCardRequest) (*gateway.VaultCard, error) {
	args := m.Called(ctx, profileID, addressID, req)
	var card *gateway.VaultCard
	if args.Get(0) != nil {
		card = args.Get(0).(*gateway.VaultCard)
	}
	return card, args.Error(1)
}

type MockLogStore struct {
	mock.Mock
}

func NewMockLogStore(t *testing.T) *MockLogStore {
	m := &MockLogStore{}
	m.Mock.Test(t)
	return m
}

func (m *MockLogStore) Append(ctx context.Context, entry gateway.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockReceiptStore struct {
	mock.Mock
}

func NewMockReceiptStore(t *testing.T) *MockReceiptStore {
	m := &MockReceiptStore{}
	m.Mock.Test(t)
	return m
}

func (m *MockReceiptStore) Save(ctx context.Context, rec gateway.ReceiptRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockReceiptStore) FindByRef(ctx context.Context, transactionRef string) (string, error) {
	args := m.Called(ctx, transactionRef)
	return args.String(0), args.Error(1)
}
