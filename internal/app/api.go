package app

import (
	"context"

	"habhook/internal/api"
	"habhook/internal/types"
)

type UserAPI interface {
	SetCredentials(creds types.Credentials)
	FetchUser(ctx context.Context) (*api.UserSeed, api.Outcome)
}

type WebhookAPI interface {
	SaveWebhook(ctx context.Context, webhook types.Webhook) api.Outcome
	DeleteWebhook(ctx context.Context, id string) api.Outcome
}

type GroupAPI interface {
	GroupName(ctx context.Context, id string) (string, api.Outcome)
}

// ClientAPI adapts the concrete HTTP client to the narrow interfaces the
// model depends on; tests substitute per-interface mocks.
type ClientAPI struct {
	client *api.Client
}

func NewClientAPI(client *api.Client) *ClientAPI {
	return &ClientAPI{client: client}
}

func (a *ClientAPI) SetCredentials(creds types.Credentials) {
	a.client.SetCredentials(creds)
}

func (a *ClientAPI) FetchUser(ctx context.Context) (*api.UserSeed, api.Outcome) {
	return a.client.FetchUser(ctx)
}

func (a *ClientAPI) SaveWebhook(ctx context.Context, webhook types.Webhook) api.Outcome {
	return a.client.SaveWebhook(ctx, webhook)
}

func (a *ClientAPI) DeleteWebhook(ctx context.Context, id string) api.Outcome {
	return a.client.DeleteWebhook(ctx, id)
}

func (a *ClientAPI) GroupName(ctx context.Context, id string) (string, api.Outcome) {
	return a.client.GroupName(ctx, id)
}
