package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"autobid-server/internal/model"
)

// MockCarStore is a testify mock of CarStore.
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) List(ctx context.Context, q model.CarQuery) ([]model.Car, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarStore) Count(ctx context.Context, q model.CarQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockCarStore) FindAll(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarStore) FindByID(ctx context.Context, id string) (model.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *MockCarStore) FindForOwner(ctx context.Context, email string) ([]model.Car, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarStore) Insert(ctx context.Context, car model.Car) (model.Car, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *MockCarStore) Update(ctx context.Context, id string, patch model.CarPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarStore) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockBidStore is a testify mock of BidStore.
type MockBidStore struct {
	mock.Mock
}

func (m *MockBidStore) Insert(ctx context.Context, bid model.Bid, legacyEmail string) (model.Bid, error) {
	args := m.Called(ctx, bid, legacyEmail)
	return args.Get(0).(model.Bid), args.Error(1)
}

func (m *MockBidStore) FindByBidder(ctx context.Context, email string) ([]model.Bid, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bid), args.Error(1)
}

func (m *MockBidStore) FindBySeller(ctx context.Context, email string) ([]model.Bid, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bid), args.Error(1)
}

func (m *MockBidStore) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}
