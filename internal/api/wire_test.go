package api

import (
	"encoding/json"
	"testing"

	"habhook/internal/types"
)

func TestWebhookRoundTrip(t *testing.T) {
	original := types.Webhook{
		ID:      "91b06dfa-a98e-4836-9e5d-6f37c2517cb2",
		URL:     "https://example.com/hook",
		Label:   "my hook",
		Enabled: true,
		Options: types.TaskActivityOptions{Created: true, Scored: true},
	}

	encoded, err := encodeWebhook(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decodeWebhook(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != original {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestEmptyLabelEncodesAsSingleSpace(t *testing.T) {
	// The backend treats an empty label as "field absent" and refuses to
	// clear it, so an empty label round-trips to a single space.
	encoded, err := encodeWebhook(types.Webhook{
		URL:     "https://example.com/hook",
		Options: types.UserActivityOptions{},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["label"] != " " {
		t.Fatalf("expected single-space label, got %q", wire["label"])
	}

	decoded, err := decodeWebhook(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Label != " " {
		t.Fatalf("expected label to round-trip to a single space, got %q", decoded.Label)
	}
}

func TestEncodeCarriesVariantType(t *testing.T) {
	cases := []struct {
		options types.ActivityOptions
		want    string
	}{
		{types.TaskActivityOptions{}, "taskActivity"},
		{types.GroupChatOptions{GroupID: "g"}, "groupChatReceived"},
		{types.UserActivityOptions{}, "userActivity"},
		{types.QuestActivityOptions{}, "questActivity"},
	}
	for _, tc := range cases {
		encoded, err := encodeWebhook(types.Webhook{URL: "https://x.example", Options: tc.options})
		if err != nil {
			t.Fatalf("encode %s: %v", tc.want, err)
		}
		var wire wireWebhook
		if err := json.Unmarshal(encoded, &wire); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if wire.Type != tc.want {
			t.Fatalf("expected type %q, got %q", tc.want, wire.Type)
		}
	}
}

func TestDecodeUnknownTypeFails(t *testing.T) {
	_, err := decodeWebhook(json.RawMessage(`{"url":"https://x.example","type":"mystery","options":{}}`))
	if err == nil {
		t.Fatalf("expected unknown type to fail decoding")
	}
}

func TestDecodeUserSeed(t *testing.T) {
	raw := json.RawMessage(`{
		"webhooks": [
			{"id":"a","url":"https://x.example","label":"x","enabled":true,"type":"groupChatReceived","options":{"groupId":"g1"}}
		],
		"party": {"_id": "party-1"}
	}`)
	seed, err := decodeUserSeed(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(seed.Webhooks) != 1 {
		t.Fatalf("expected one webhook, got %d", len(seed.Webhooks))
	}
	options, ok := seed.Webhooks[0].Options.(types.GroupChatOptions)
	if !ok || options.GroupID != "g1" {
		t.Fatalf("expected group chat options with g1, got %+v", seed.Webhooks[0].Options)
	}
	if seed.PartyID != "party-1" {
		t.Fatalf("expected party id, got %q", seed.PartyID)
	}
}

func TestDecodeUserSeedWithoutParty(t *testing.T) {
	seed, err := decodeUserSeed(json.RawMessage(`{"webhooks":[]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if seed.PartyID != "" {
		t.Fatalf("expected empty party id, got %q", seed.PartyID)
	}
}
