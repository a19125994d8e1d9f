// Package inference talks to the OpenAI-compatible completion API that
// powers agent chat responses.
package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/chat"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/httpclients"
)

// CompletionClient performs unary chat-completion calls against an
// OpenAI-compatible endpoint.
type CompletionClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

var _ chat.CompletionClient = (*CompletionClient)(nil)

func NewCompletionClient(cfg *config.Config) *CompletionClient {
	client := httpclients.NewClient("completion")
	client.SetTimeout(cfg.CompletionTimeout)
	return &CompletionClient{
		client:  client,
		baseURL: normalizeBaseURL(cfg.CompletionBaseURL),
		apiKey:  cfg.CompletionAPIKey,
	}
}

func (c *CompletionClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		return nil, apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeUpstream,
			"completion request failed",
			err,
			"71ea0e07-cdf5-4c24-a54e-54a4a026ac64",
		)
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp)
	}
	return &respBody, nil
}

func (c *CompletionClient) prepareRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if strings.TrimSpace(c.apiKey) != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req
}

func (c *CompletionClient) endpoint(path string) string {
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func (c *CompletionClient) errorFromResponse(ctx context.Context, resp *resty.Response) error {
	message := fmt.Sprintf("completion API returned status %d", resp.StatusCode())
	body := strings.TrimSpace(resp.String())
	if body != "" {
		message = fmt.Sprintf("%s: %s", message, body)
	}
	return apperrors.NewError(
		ctx,
		apperrors.LayerInfrastructure,
		apperrors.ErrorTypeUpstream,
		message,
		nil,
		"00bcaf72-0ef8-47a3-b463-d46e02bad197",
	)
}

func normalizeBaseURL(base string) string {
	trimmed := strings.TrimSpace(base)
	return strings.TrimRight(trimmed, "/")
}
