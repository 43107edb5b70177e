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
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

func newTestResourceRequestService(t *testing.T) (ResourceRequestService, *mocks.MockResourceRequestRepository, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRequestRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	return NewResourceRequestService(repo, publisher, newTestLogger()), repo, publisher
}

func TestResourceRequestService_Create(t *testing.T) {
	ctx := context.Background()
	caller := models.Identity{UserID: uuid.NewString(), Role: models.RolePublic}

	t.Run("success publishes newResourceRequest", func(t *testing.T) {
		svc, repo, publisher := newTestResourceRequestService(t)
		request := &models.ResourceRequest{ResourceType: "Water", Quantity: 10}

		repo.EXPECT().Create(ctx, request).Return(nil)
		publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
			assert.Equal(t, models.EventNewResourceRequest, e.Name)
			return nil
		})

		require.NoError(t, svc.Create(ctx, caller, request))
		assert.Equal(t, workflow.RequestPending, request.Status)
		assert.Equal(t, caller.UserID, request.UserID.String())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc, _, _ := newTestResourceRequestService(t)

		err := svc.Create(ctx, caller, &models.ResourceRequest{ResourceType: "Water", Quantity: 0})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestResourceRequestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("approve", func(t *testing.T) {
		svc, repo, _ := newTestResourceRequestService(t)
		repo.EXPECT().UpdateStatus(ctx, id, workflow.RequestApproved).
			Return(&models.ResourceRequest{ID: id, Status: workflow.RequestApproved}, nil)

		request, err := svc.UpdateStatus(ctx, id, workflow.RequestApproved)

		require.NoError(t, err)
		assert.Equal(t, workflow.RequestApproved, request.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _, _ := newTestResourceRequestService(t)

		_, err := svc.UpdateStatus(ctx, id, "Shipped")

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("list with invalid filter", func(t *testing.T) {
		svc, _, _ := newTestResourceRequestService(t)

		_, err := svc.List(ctx, models.RequestFilter{Status: "Shipped"})

		assert.ErrorIs(t, err, ErrValidation)
	})
}
