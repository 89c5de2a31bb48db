package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"
)

type geminiClient struct {
	model      string
	baseURL    string
	keys       KeySource
	httpClient *http.Client

	mu     sync.Mutex
	key    string
	client *genai.Client
}

func (c *geminiClient) Name() string {
	return fmt.Sprintf("Gemini (%s)", c.model)
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", emptyInputFailure()
	}
	client, err := c.handle(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(buildParagraphPrompt(prompt)), nil)
	if err != nil {
		log.Printf("[llm] gemini generate failed: %v", err)
		return "", classify(err)
	}
	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		return "", emptyResponseFailure()
	}
	return text, nil
}

// handle returns the SDK client, building it the first time a valid key is
// seen and again only when the key changes.
func (c *geminiClient) handle(ctx context.Context) (*genai.Client, error) {
	key, failure := geminiKey(c.keys)
	if failure != nil {
		return nil, failure
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil && c.key == key {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.baseURL,
		},
	})
	if err != nil {
		return nil, classify(fmt.Errorf("create gemini client: %w", err))
	}
	if c.client != nil {
		log.Printf("[llm] gemini key changed; rebuilt client for %s", c.model)
	} else {
		log.Printf("[llm] gemini client created for %s", c.model)
	}
	c.key = key
	c.client = client
	return client, nil
}
