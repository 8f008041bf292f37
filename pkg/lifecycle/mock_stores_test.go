package lifecycle

import (
	"time"

	"github.com/stretchr/testify/mock"

	"orghub/pkg/model"
)

// MockOrgsStore implements store.OrgsStore for testing using testify/mock
type MockOrgsStore struct {
	mock.Mock
}

func NewMockOrgsStore() *MockOrgsStore {
	return &MockOrgsStore{}
}

func (m *MockOrgsStore) FindByName(name string) (*model.Organization, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrgsStore) FindByAdmin(adminID string) (*model.Organization, error) {
	args := m.Called(adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrgsStore) Insert(org *model.Organization) error {
	args := m.Called(org)
	return args.Error(0)
}

func (m *MockOrgsStore) MarkDeleted(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *MockOrgsStore) Rename(id, newName, newPartitionID string, at time.Time) error {
	args := m.Called(id, newName, newPartitionID, at)
	return args.Error(0)
}

func (m *MockOrgsStore) List(limit int) ([]model.Organization, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Organization), args.Error(1)
}

// MockAdminsStore implements store.AdminsStore for testing using testify/mock
type MockAdminsStore struct {
	mock.Mock
}

func NewMockAdminsStore() *MockAdminsStore {
	return &MockAdminsStore{}
}

func (m *MockAdminsStore) Create(admin *model.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminsStore) FindByEmail(email string) (*model.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminsStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPartitionsStore implements store.PartitionsStore for testing using testify/mock
type MockPartitionsStore struct {
	mock.Mock
}

func NewMockPartitionsStore() *MockPartitionsStore {
	return &MockPartitionsStore{}
}

func (m *MockPartitionsStore) CreateEmpty(partitionID string) error {
	args := m.Called(partitionID)
	return args.Error(0)
}

func (m *MockPartitionsStore) CopyAll(srcID, dstID string) error {
	args := m.Called(srcID, dstID)
	return args.Error(0)
}

func (m *MockPartitionsStore) Drop(partitionID string) error {
	args := m.Called(partitionID)
	return args.Error(0)
}

func (m *MockPartitionsStore) Exists(partitionID string) (bool, error) {
	args := m.Called(partitionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartitionsStore) Count(partitionID string) (int64, error) {
	args := m.Called(partitionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartitionsStore) List() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}
