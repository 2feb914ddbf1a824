package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autobid-server/internal/model"
)

func TestCatalogService_Create(t *testing.T) {
	t.Parallel()

	deadline := time.Now().Add(48 * time.Hour)

	t.Run("forces seller_email from the identity", func(t *testing.T) {
		store := new(MockCarStore)
		svc := NewCatalogService(store, nil)

		store.On("Insert", mock.Anything, mock.MatchedBy(func(car model.Car) bool {
			return car.SellerEmail == "seller@x.com"
		})).Return(model.Car{ID: "c1", SellerEmail: "seller@x.com"}, nil)

		created, err := svc.Create(context.Background(), model.Car{
			BrandName:   "Toyota",
			ModelName:   "Supra",
			Deadline:    deadline,
			SellerEmail: "spoofed@evil.com",
		}, "seller@x.com")

		require.NoError(t, err)
		assert.Equal(t, "seller@x.com", created.SellerEmail)
		store.AssertExpectations(t)
	})

	t.Run("rejects a listing without brand or model", func(t *testing.T) {
		store := new(MockCarStore)
		svc := NewCatalogService(store, nil)

		_, err := svc.Create(context.Background(), model.Car{Deadline: deadline}, "seller@x.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BAD_REQUEST")
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects a listing without deadline", func(t *testing.T) {
		store := new(MockCarStore)
		svc := NewCatalogService(store, nil)

		_, err := svc.Create(context.Background(), model.Car{BrandName: "Toyota", ModelName: "Supra"}, "seller@x.com")

		require.Error(t, err)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_Update(t *testing.T) {
	t.Parallel()

	t.Run("reports matched rows", func(t *testing.T) {
		store := new(MockCarStore)
		svc := NewCatalogService(store, nil)

		patch := model.CarPatch{}
		store.On("Update", mock.Anything, "c1", patch).Return(int64(1), nil)

		result, err := svc.Update(context.Background(), "c1", patch)
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, int64(1), result.MatchedCount)
	})

	t.Run("missing id yields zero matched, not an error", func(t *testing.T) {
		store := new(MockCarStore)
		svc := NewCatalogService(store, nil)

		store.On("Update", mock.Anything, "ghost", mock.Anything).Return(int64(0), nil)

		result, err := svc.Update(context.Background(), "ghost", model.CarPatch{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.MatchedCount)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	t.Parallel()

	store := new(MockCarStore)
	svc := NewCatalogService(store, nil)

	store.On("Delete", mock.Anything, "c1").Return(int64(1), nil)

	result, err := svc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, int64(1), result.DeletedCount)
}
