package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

func newTestDistressSignalService(t *testing.T) (*distressSignalService, *mocks.MockDistressSignalRepository, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDistressSignalRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	svc := NewDistressSignalService(repo, publisher, newTestLogger())
	return svc.(*distressSignalService), repo, publisher
}

func TestDistressSignalService_Create(t *testing.T) {
	ctx := context.Background()
	caller := models.Identity{UserID: uuid.NewString(), Role: models.RolePublic}

	t.Run("success publishes newSOS", func(t *testing.T) {
		svc, repo, publisher := newTestDistressSignalService(t)
		signal := &models.DistressSignal{Message: "trapped", Location: models.Location{Latitude: 1, Longitude: 2}}

		repo.EXPECT().Create(ctx, signal).DoAndReturn(func(_ context.Context, s *models.DistressSignal) error {
			assert.Equal(t, workflow.SignalActive, s.Status)
			assert.Equal(t, caller.UserID, s.UserID.String())
			s.ID = uuid.New()
			return nil
		})
		publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
			assert.Equal(t, models.EventNewSOS, e.Name)
			assert.Same(t, signal, e.Data)
			return nil
		})

		require.NoError(t, svc.Create(ctx, caller, signal))
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, repo, publisher := newTestDistressSignalService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

		assert.NoError(t, svc.Create(ctx, caller, &models.DistressSignal{}))
	})

	t.Run("repository error skips publish", func(t *testing.T) {
		svc, repo, _ := newTestDistressSignalService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		err := svc.Create(ctx, caller, &models.DistressSignal{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not create distress signal")
	})

	t.Run("invalid caller", func(t *testing.T) {
		svc, _, _ := newTestDistressSignalService(t)

		err := svc.Create(ctx, models.Identity{UserID: "bogus"}, &models.DistressSignal{})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestDistressSignalService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("default filter", func(t *testing.T) {
		svc, repo, _ := newTestDistressSignalService(t)
		expected := []*models.DistressSignal{{ID: uuid.New(), Status: workflow.SignalActive}}
		repo.EXPECT().List(ctx, models.SignalFilter{}).Return(expected, nil)

		signals, err := svc.List(ctx, models.SignalFilter{})

		require.NoError(t, err)
		assert.Equal(t, expected, signals)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc, _, _ := newTestDistressSignalService(t)

		_, err := svc.List(ctx, models.SignalFilter{Status: "Closed"})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestDistressSignalService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name      string
		status    string
		setupMock func(repo *mocks.MockDistressSignalRepository)
		expectErr error
	}{
		{
			name:   "success",
			status: workflow.SignalResolved,
			setupMock: func(repo *mocks.MockDistressSignalRepository) {
				repo.EXPECT().UpdateStatus(ctx, id, workflow.SignalResolved).
					Return(&models.DistressSignal{ID: id, Status: workflow.SignalResolved}, nil)
			},
		},
		{
			name:   "back to active is allowed",
			status: workflow.SignalActive,
			setupMock: func(repo *mocks.MockDistressSignalRepository) {
				repo.EXPECT().UpdateStatus(ctx, id, workflow.SignalActive).
					Return(&models.DistressSignal{ID: id, Status: workflow.SignalActive}, nil)
			},
		},
		{
			name:      "status outside enumeration",
			status:    "resolved",
			setupMock: func(repo *mocks.MockDistressSignalRepository) {},
			expectErr: ErrValidation,
		},
		{
			name:   "not found",
			status: workflow.SignalInProgress,
			setupMock: func(repo *mocks.MockDistressSignalRepository) {
				repo.EXPECT().UpdateStatus(ctx, id, workflow.SignalInProgress).Return(nil, ErrNotFound)
			},
			expectErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestDistressSignalService(t)
			tc.setupMock(repo)

			signal, err := svc.UpdateStatus(ctx, id, tc.status)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, signal.Status)
		})
	}
}
