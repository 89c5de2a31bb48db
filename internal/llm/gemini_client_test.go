package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newGeminiServer(t *testing.T, calls *atomic.Int32, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")

		var payload geminiRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload)) &&
			assert.NotEmpty(t, payload.Contents) && assert.NotEmpty(t, payload.Contents[0].Parts) {
			assert.True(t, strings.HasPrefix(payload.Contents[0].Parts[0].Text, paragraphInstruction))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestGemini(baseURL string, keys KeySource) *geminiClient {
	return &geminiClient{
		model:      defaultGeminiModel,
		baseURL:    baseURL + "/",
		keys:       keys,
		httpClient: http.DefaultClient,
	}
}

func TestGeminiGenerateSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Space exploration drives innovation.\n"}]},"finishReason":"STOP"}]}`)

	client := newTestGemini(server.URL, StaticKey("AIzaTestKey"))
	text, err := client.Generate(context.Background(), "The importance of space exploration")

	require.NoError(t, err)
	assert.Equal(t, "Space exploration drives innovation.", text)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiMissingKeyMakesNoCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK, `{}`)

	client := newTestGemini(server.URL, StaticKey(""))
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Equal(t, FailureConfiguration, KindOf(err))
	assert.Contains(t, err.Error(), "API_KEY environment variable not set")
	assert.Zero(t, calls.Load())
}

func TestGeminiMalformedKeyMakesNoCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK, `{}`)

	client := newTestGemini(server.URL, StaticKey("sk-not-a-gemini-key"))
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Equal(t, FailureConfiguration, KindOf(err))
	assert.Contains(t, err.Error(), "should start with 'AIza'")
	assert.Zero(t, calls.Load())
}

func TestGeminiEmptyPromptMakesNoCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK, `{}`)

	client := newTestGemini(server.URL, StaticKey("AIzaTestKey"))
	_, err := client.Generate(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, FailureEmptyInput, KindOf(err))
	assert.Zero(t, calls.Load())
}

func TestGeminiEmptyResponse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK, `{"candidates":[]}`)

	client := newTestGemini(server.URL, StaticKey("AIzaTestKey"))
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Equal(t, FailureEmptyResponse, KindOf(err))
	assert.Contains(t, err.Error(), "empty response")
}

func TestGeminiQuotaError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`)

	client := newTestGemini(server.URL, StaticKey("AIzaTestKey"))
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.Equal(t, FailureQuota, KindOf(err))
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestGeminiIdenticalPromptsAreNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Paragraph."}]}}]}`)

	client := newTestGemini(server.URL, StaticKey("AIzaTestKey"))
	for range 2 {
		_, err := client.Generate(context.Background(), "same prompt")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeminiHandleReusedUntilKeyChanges(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newGeminiServer(t, &calls, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Paragraph."}]}}]}`)

	key := "AIzaFirstKey"
	client := newTestGemini(server.URL, func() string { return key })

	first, err := client.handle(context.Background())
	require.NoError(t, err)
	second, err := client.handle(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second, "handle should be reused while the key is unchanged")

	key = "AIzaSecondKey"
	third, err := client.handle(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, third, "handle should be rebuilt after the key changes")
}
