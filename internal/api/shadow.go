package api

import (
	"context"

	"habhook/internal/logging"
	"habhook/internal/types"
)

// SaveWebhook persists a webhook and hides the backend's update bug from the
// caller: option-only changes to an existing webhook are silently dropped
// unless the type discriminator changes in the same update. The workaround
// writes a decoy payload with a different type first, then the real one.
//
// The caller sees a single outcome. If the decoy write fails or rate-limits,
// the real write is never attempted and the decoy's outcome is the
// operation's outcome. A failure between the two writes leaves the server
// holding the decoy type until the next reload surfaces it; there is no
// rollback.
func (c *Client) SaveWebhook(ctx context.Context, webhook types.Webhook) Outcome {
	if !webhook.Persisted() {
		return c.CreateWebhook(ctx, webhook)
	}

	decoy := webhook
	decoy.Options = decoyOptions(webhook.Options)
	if outcome := c.UpdateWebhook(ctx, decoy); !outcome.IsOK() {
		return outcome
	}
	c.log.Debug("decoy write accepted", logging.F("webhook", webhook.ID))
	return c.UpdateWebhook(ctx, webhook)
}

// decoyOptions picks any variant different from the real one, with every
// option at its default.
func decoyOptions(options types.ActivityOptions) types.ActivityOptions {
	if _, ok := options.(types.TaskActivityOptions); ok {
		return types.DefaultOptions(types.TypeUserActivity)
	}
	return types.DefaultOptions(types.TypeTaskActivity)
}
