package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
	"github.com/Evecotrip/god-aurumx-sub000/internal/services"
)

func newDirectoryService(t *testing.T) (*services.UserDirectoryService, *services.MockTokenResolver, *services.MockUsersAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokens := services.NewMockTokenResolver(ctrl)
	api := services.NewMockUsersAPI(ctrl)
	return services.NewUserDirectoryService(tokens, api), tokens, api
}

func TestUserDirectoryService_List(t *testing.T) {
	operatorID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name      string
		in        models.UserFilters
		forwarded models.UserFilters
	}{
		{
			name:      "allowed limit passes through",
			in:        models.UserFilters{Page: 2, Limit: 50, Status: models.UserStatusActive},
			forwarded: models.UserFilters{Page: 2, Limit: 50, Status: models.UserStatusActive},
		},
		{
			name:      "disallowed limit snaps to default",
			in:        models.UserFilters{Page: 1, Limit: 37},
			forwarded: models.UserFilters{Page: 1, Limit: 10},
		},
		{
			name:      "zero page becomes first page",
			in:        models.UserFilters{Limit: 20, Search: "asha"},
			forwarded: models.UserFilters{Page: 1, Limit: 20, Search: "asha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tokens, api := newDirectoryService(t)

			tokens.EXPECT().Resolve(gomock.Any(), operatorID).Return("tok", nil)
			api.EXPECT().List(gomock.Any(), "tok", tt.forwarded).
				Return(&clients.UserList{
					Items:      []models.User{{ID: "u1", Name: "Asha"}},
					Pagination: models.Pagination{Page: tt.forwarded.Page, Limit: tt.forwarded.Limit, Total: 1, TotalPages: 1},
				}, nil)

			list, err := svc.List(ctx, operatorID, tt.in)
			assert.NoError(t, err)
			assert.Len(t, list.Items, 1)
		})
	}

	t.Run("token failure blocks the listing", func(t *testing.T) {
		svc, tokens, _ := newDirectoryService(t)

		tokens.EXPECT().Resolve(gomock.Any(), operatorID).Return("", assert.AnError)

		list, err := svc.List(ctx, operatorID, models.UserFilters{Page: 1, Limit: 10})
		assert.Error(t, err)
		assert.Nil(t, list)
	})
}

func TestUserDirectoryService_Stats(t *testing.T) {
	operatorID := uuid.New()
	ctx := context.Background()

	svc, tokens, api := newDirectoryService(t)

	tokens.EXPECT().Resolve(gomock.Any(), operatorID).Return("tok", nil)
	api.EXPECT().Stats(gomock.Any(), "tok", "u7").
		Return(&models.UserStatsAggregate{
			UserID:      "u7",
			Referrals:   models.ReferralSummary{DirectCount: 4, TotalCount: 19, Depth: 3},
			Investments: models.InvestmentSummary{ActiveCount: 2, TotalInvested: 1500},
		}, nil)

	stats, err := svc.Stats(ctx, operatorID, "u7")
	assert.NoError(t, err)
	assert.Equal(t, "u7", stats.UserID)
	assert.Equal(t, 19, stats.Referrals.TotalCount)
}
