package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
)

func TestResourceService(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (ResourceService, *mocks.MockResourceRepository) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepository(ctrl)
		return NewResourceService(repo, newTestLogger()), repo
	}

	t.Run("create trims name", func(t *testing.T) {
		svc, repo := newService(t)
		resource := &models.Resource{Name: "  Blankets ", Quantity: 40, Unit: "pcs"}
		repo.EXPECT().Create(ctx, resource).Return(nil)

		require.NoError(t, svc.Create(ctx, resource))
		assert.Equal(t, "Blankets", resource.Name)
	})

	t.Run("create rejects negative quantity", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Create(ctx, &models.Resource{Name: "Water", Quantity: -1})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Create(ctx, &models.Resource{Name: " "})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("replace missing", func(t *testing.T) {
		svc, repo := newService(t)
		resource := &models.Resource{ID: uuid.New(), Name: "Water", Quantity: 0}
		repo.EXPECT().Update(ctx, resource).Return(ErrNotFound)

		assert.ErrorIs(t, svc.Replace(ctx, resource), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc, repo := newService(t)
		id := uuid.New()
		repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, svc.Delete(ctx, id))
	})
}
