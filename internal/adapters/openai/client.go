// Package openai provides an adapter for the OpenAI chat-completion API.
// It implements query synthesis by translating mood text into a single
// lo-fi search phrase for the video platform.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/ports"
)

const defaultBaseURL = "https://api.openai.com/v1"

const model = "gpt-4o"

const moodSystemPrompt = "Você é um assistente especialista em gerar frases de busca para o YouTube, com foco exclusivo em músicas lo-fi. Sua tarefa é traduzir o humor, a ocasião ou a atividade do usuário em uma única frase de busca concisa e eficaz. A frase DEVE SEMPRE incluir o termo 'lo-fi' ou um sinônimo (como 'chillhop' ou 'lofi beats'). Gere apenas a frase de busca em português, sem nenhuma outra palavra ou explicação. Exemplo de entrada: 'Estou em um dia chuvoso no meu trabalho e queria me sentir focado.' Exemplo de saída: 'lo-fi para foco em dia de chuva'"

const surpriseSystemPrompt = "Gere uma única e concisa frase de busca para músicas lo-fi, baseada em um humor ou cenário aleatório e interessante. Exemplos: 'lo-fi para uma tarde preguiçosa', 'chillhop para uma viagem noturna', 'lofi beats para dias de sol'. A frase DEVE incluir 'lo-fi' ou um sinônimo. Gere apenas a frase, sem mais nada."

const (
	maxTokens           = 100
	moodTemperature     = 0.7
	surpriseTemperature = 0.9
)

// Client is an HTTP client for the OpenAI adapter.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.QuerySynthesizer = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient constructs a new OpenAI client. An empty baseURL targets the
// hosted API.
func NewClient(apiKey, baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryForMood asks the model to translate the user's mood text into a
// single lo-fi search phrase.
func (c *Client) QueryForMood(ctx context.Context, moodText string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: moodSystemPrompt},
		{Role: "user", Content: moodText},
	}
	return c.complete(ctx, messages, moodTemperature)
}

// RandomQuery asks the model to invent a mood on its own. Only the system
// instruction is sent, at a higher temperature for variety.
func (c *Client) RandomQuery(ctx context.Context) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: surpriseSystemPrompt},
	}
	return c.complete(ctx, messages, surpriseTemperature)
}

func (c *Client) complete(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	payload := chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", fmt.Errorf("openai: %s", parsed.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: no completion choices")
	}

	query := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if query == "" {
		return "", fmt.Errorf("openai: empty completion")
	}

	return query, nil
}
