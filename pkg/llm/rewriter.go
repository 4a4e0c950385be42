package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdesk/newsdesk/pkg/config"
	"github.com/newsdesk/newsdesk/pkg/domain"
)

// errUnparsable marks a response that doesn't match the requested format, such responses are retried
var errUnparsable = errors.New("unparsable response")

// Rewriter uses an OpenAI-compatible LLM to rewrite news articles
type Rewriter struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewRewriter creates a new LLM rewriter
func NewRewriter(cfg config.LLMConfig) *Rewriter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	return &Rewriter{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for news rewriting
const defaultSystemPrompt = `Sen profesyonel bir haber editörüsün. Verilen haber metnini özgün, kaliteli ve etik kurallara uygun şekilde yeniden yazarsın.
- Orijinal haberin ana mesajını koruyarak tamamen yeni bir metin oluştur.
- Türkçe dil kurallarına uygun, akıcı bir metin yaz.
- Objektif ve tarafsız bir dil kullan.
- Yalnızca istenen formatta çıktı ver, açıklama ekleme.`

// Rewrite sends the complete prompt to the LLM and parses the answer in the given output format.
// Answers not matching the format are requested again, up to the configured attempts.
func (r *Rewriter) Rewrite(ctx context.Context, prompt, format string) (*domain.ProcessResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("empty prompt")
	}

	var lastErr error
	for attempt := 0; attempt < r.config.Attempts; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       r.config.Model,
			Temperature: float32(r.config.Temperature),
			MaxTokens:   r.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: r.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}

		// json mode makes sense for the json format only
		if r.config.UseJSONMode && format == formatJSON {
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}

		resp, err := r.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		content := resp.Choices[0].Message.Content
		res, err := parseResponse(content, format)
		if err == nil {
			return res, nil
		}

		lastErr = err
		if errors.Is(err, errUnparsable) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", r.config.Attempts, lastErr)
}
