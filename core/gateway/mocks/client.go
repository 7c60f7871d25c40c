package mocks

import (
	"context"

	"subscription-sync/core/gateway"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of gateway.Client
type Client struct {
	mock.Mock
}

func (m *Client) RetrieveSubscription(ctx context.Context, profileID string) (*gateway.Subscription, error) {
	args := m.Called(ctx, profileID)
	if sub, ok := args.Get(0).(*gateway.Subscription); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}
