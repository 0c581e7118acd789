// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package pitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// mockBackend returns a canned completion and records the prompt.
type mockBackend struct {
	response string
	err      error
	prompt   string
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Complete(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestMain(m *testing.M) {
	now = func() time.Time { return time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC) }
	os.Exit(m.Run())
}

// fullResponse builds a complete generation response as JSON.
func fullResponse(t *testing.T) string {
	t.Helper()
	resp := map[string]string{"lp_summary": "A health-focused retailer."}
	for _, key := range types.SectionOrder() {
		resp[string(key)] = "text for " + string(key)
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func testRequest() Request {
	return Request{
		LPName:    "Holland & Barrett",
		Research:  "Health & wellness retailer, invests in consumer brands",
		FundName:  "Bramble Ventures",
		FundPitch: "Seed-stage food systems fund.",
	}
}

func TestGenerate(t *testing.T) {
	backend := &mockBackend{response: fullResponse(t)}

	result, err := Generate(context.Background(), backend, testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Holland & Barrett", result.LPName)
	assert.Equal(t, "A health-focused retailer.", result.LPSummary)
	assert.Equal(t, time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC), result.GeneratedAt)
	assert.Empty(t, result.Content.Missing())
	assert.Equal(t, "text for opening_hook", result.Content.OpeningHook)
	assert.Equal(t, "text for concerns_to_address", result.Content.ConcernsToAddress)
}

func TestGeneratePromptContents(t *testing.T) {
	backend := &mockBackend{response: fullResponse(t)}

	req := testRequest()
	req.Notes = "They asked about fund size last time."
	_, err := Generate(context.Background(), backend, req)
	require.NoError(t, err)

	assert.Contains(t, backend.prompt, "LP meeting with Holland & Barrett")
	assert.Contains(t, backend.prompt, "RESEARCH ON HOLLAND & BARRETT")
	assert.Contains(t, backend.prompt, "Health & wellness retailer")
	assert.Contains(t, backend.prompt, "BRAMBLE VENTURES'S CORE PITCH")
	assert.Contains(t, backend.prompt, "Seed-stage food systems fund.")
	assert.Contains(t, backend.prompt, "ADDITIONAL NOTES FROM THE TEAM:\nThey asked about fund size last time.")
	// Every section key appears in the requested JSON schema.
	for _, key := range types.SectionOrder() {
		assert.Contains(t, backend.prompt, fmt.Sprintf("%q", string(key)))
	}
}

func TestGenerateNoNotes(t *testing.T) {
	backend := &mockBackend{response: fullResponse(t)}

	_, err := Generate(context.Background(), backend, testRequest())
	require.NoError(t, err)
	assert.NotContains(t, backend.prompt, "ADDITIONAL NOTES")
}

func TestGenerateMissingSectionFails(t *testing.T) {
	resp := map[string]string{"lp_summary": "Summary."}
	for _, key := range types.SectionOrder() {
		resp[string(key)] = "text"
	}
	delete(resp, string(types.SectionTeamSpotlight))
	delete(resp, string(types.SectionConversationStarters))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	backend := &mockBackend{response: string(data)}

	_, err = Generate(context.Background(), backend, testRequest())
	require.Error(t, err)

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, []types.SectionKey{types.SectionTeamSpotlight, types.SectionConversationStarters}, genErr.Missing)
	assert.Contains(t, err.Error(), "team_spotlight")
}

func TestGenerateFencedJSON(t *testing.T) {
	tests := []struct {
		name string
		wrap func(string) string
	}{
		{"json fence", func(s string) string { return "```json\n" + s + "\n```" }},
		{"bare fence", func(s string) string { return "```\n" + s + "\n```" }},
		{"fence with preamble", func(s string) string { return "Here is the pitch:\n```json\n" + s + "\n```\nLet me know." }},
		{"no fence", func(s string) string { return s }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{response: tt.wrap(fullResponse(t))}
			result, err := Generate(context.Background(), backend, testRequest())
			require.NoError(t, err)
			assert.Empty(t, result.Content.Missing())
		})
	}
}

func TestGenerateBackendFailure(t *testing.T) {
	backend := &mockBackend{err: errors.New("api unavailable")}

	_, err := Generate(context.Background(), backend, testRequest())
	require.Error(t, err)

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "calling generation API")
	assert.Contains(t, err.Error(), "api unavailable")
}

func TestGenerateUnparseableResponse(t *testing.T) {
	backend := &mockBackend{response: "I'm sorry, I can't produce JSON today."}

	_, err := Generate(context.Background(), backend, testRequest())
	require.Error(t, err)

	var genErr *types.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "parsing generation response as JSON")
}
