package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type LLaMAClient struct {
	apiKey string
	model  string
	apiURL string
}

func NewLLaMAClient() *LLaMAClient {
	return &LLaMAClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  os.Getenv("LLAMA_MODEL"),
		apiURL: os.Getenv("LLAMA_API_URL"),
	}
}

func (l *LLaMAClient) Interpret(ctx context.Context, transcript string) (string, error) {
	if l.apiKey == "" {
		return "", errors.New("missing LLAMA_API_KEY")
	}
	if transcript == "" {
		return "", errors.New("empty transcript")
	}

	payload := map[string]interface{}{
		"model":       l.model,
		"input":       BuildTranscriptPrompt(transcript),
		"temperature": 0.1,
	}

	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		l.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// The hosted endpoints answer in a few different envelopes, so try
	// each known field before giving up.
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.New("llama returned non-json response")
	}

	var text string
	if v, ok := parsed["output_text"].(string); ok && v != "" {
		text = v
	} else if v, ok := parsed["generated_text"].(string); ok && v != "" {
		text = v
	} else if gen, ok := parsed["generation"].(map[string]interface{}); ok {
		if txt, ok := gen["text"].(string); ok && txt != "" {
			text = txt
		}
	}

	if text == "" {
		return "", errors.New("empty llama response")
	}

	jsonText := extractJSONArray(text)
	if jsonText == "" {
		return "", errors.New("llama did not return a JSON array")
	}

	return jsonText, nil
}

// extractJSONArray pulls the outermost [...] out of free text, so fenced
// or chatty answers still yield the array we asked for.
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
