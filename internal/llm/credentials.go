package llm

import (
	"os"
	"strings"
)

// KeySource returns the access key to use for the next call.
type KeySource func() string

// EnvKeySource reads the first non-empty variable from names at call time.
func EnvKeySource(names ...string) KeySource {
	return func() string {
		for _, name := range names {
			if value := strings.TrimSpace(os.Getenv(name)); value != "" {
				return value
			}
		}
		return ""
	}
}

// StaticKey always returns key.
func StaticKey(key string) KeySource {
	return func() string { return key }
}

const geminiKeyPrefix = "AIza"

func geminiKey(keys KeySource) (string, *Failure) {
	key := ""
	if keys != nil {
		key = strings.TrimSpace(keys())
	}
	if key == "" {
		return "", configurationFailure("API_KEY environment variable not set. " +
			"Export API_KEY (or GEMINI_API_KEY) with your Gemini API key before generating.")
	}
	if !strings.HasPrefix(key, geminiKeyPrefix) {
		return "", configurationFailure("Invalid API key format. Gemini API keys should start with '" +
			geminiKeyPrefix + "'. Please verify your API key from " + aiStudioKeyURL)
	}
	return key, nil
}

func openAIKey(keys KeySource) (string, *Failure) {
	key := ""
	if keys != nil {
		key = strings.TrimSpace(keys())
	}
	if key == "" {
		return "", configurationFailure("OPENAI_API_KEY environment variable not set.")
	}
	return key, nil
}
