package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Supported providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaModel = "ministral-3:latest"
	defaultOpenAIBase  = "https://api.openai.com/v1"
	defaultOllamaHost  = "http://localhost:11434"
)

const defaultLLMHTTPTimeout = 3 * time.Minute

// Config describes how to build a Generator.
type Config struct {
	Provider   string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
	// Keys overrides where credentials come from. When nil the provider's
	// environment variables are read on every call.
	Keys KeySource
}

// Generator turns a free-text prompt into a single paragraph.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New builds the Generator for cfg.Provider. Credentials are not read here;
// a missing key only surfaces when Generate is called.
func New(cfg Config) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		keys := cfg.Keys
		if keys == nil {
			keys = EnvKeySource("API_KEY", "GEMINI_API_KEY")
		}
		return &geminiClient{
			model:      pick(cfg.Model, defaultGeminiModel),
			baseURL:    strings.TrimSpace(cfg.Endpoint),
			keys:       keys,
			httpClient: pickHTTPClient(cfg.HTTPClient),
		}, nil
	case ProviderOpenAI:
		keys := cfg.Keys
		if keys == nil {
			keys = EnvKeySource("OPENAI_API_KEY")
		}
		base := cfg.Endpoint
		if base == "" {
			base = pick(os.Getenv("OPENAI_BASE_URL"), defaultOpenAIBase)
		}
		return &openAIClient{
			keys:   keys,
			model:  pick(cfg.Model, pick(os.Getenv("OPENAI_MODEL"), defaultOpenAIModel)),
			base:   strings.TrimRight(base, "/"),
			client: pickHTTPClient(cfg.HTTPClient),
		}, nil
	case ProviderOllama:
		host := cfg.Endpoint
		if host == "" {
			host = pick(os.Getenv("OLLAMA_HOST"), defaultOllamaHost)
		}
		return &ollamaClient{
			host:   strings.TrimRight(host, "/"),
			model:  pick(cfg.Model, pick(os.Getenv("OLLAMA_MODEL"), defaultOllamaModel)),
			client: pickHTTPClient(cfg.HTTPClient),
		}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini, openai or ollama)", cfg.Provider)
	}
}

func pick(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// The caller's context carries the real deadline; this only stops a wedged connection.
	return &http.Client{Timeout: defaultLLMHTTPTimeout}
}
