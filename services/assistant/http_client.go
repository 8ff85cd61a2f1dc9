package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yihao03/Aistronaut/config"
	"github.com/yihao03/Aistronaut/utils"

	"go.uber.org/zap"
)

// HTTPClient talks to the assistant backend over its JSON HTTP contract.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a client from the loaded configuration. The timeout
// bounds every call; expiry is surfaced as a network-class failure.
func NewHTTPClient() *HTTPClient {
	timeout := time.Duration(config.AppConfig.AssistantTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(config.AppConfig.AssistantBaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) post(ctx context.Context, token, path string, body any, out any) error {
	logger := utils.GetLogger()

	payload, err := json.Marshal(body)
	if err != nil {
		return &GatewayError{Kind: ErrKindMalformed, Message: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return &GatewayError{Kind: ErrKindNetwork, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("assistant gateway unreachable", zap.String("path", path), zap.Error(err))
		return &GatewayError{Kind: ErrKindNetwork, Message: fmt.Sprintf("assistant service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("assistant gateway returned non-OK status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return &GatewayError{Kind: ErrKindProtocol, Message: fmt.Sprintf("assistant service returned HTTP %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("failed to decode assistant response", zap.String("path", path), zap.Error(err))
		return &GatewayError{Kind: ErrKindMalformed, Message: fmt.Sprintf("failed to decode assistant response: %v", err)}
	}
	return nil
}

// CreateConversation mints a conversation id on the backend.
func (c *HTTPClient) CreateConversation(ctx context.Context, token string) (string, error) {
	var out struct {
		ConversationID string `json:"conversation_id"`
	}
	if err := c.post(ctx, token, "/chat/create", struct{}{}, &out); err != nil {
		return "", err
	}
	if out.ConversationID == "" {
		return "", &GatewayError{Kind: ErrKindMalformed, Message: "assistant service returned an empty conversation id"}
	}
	return out.ConversationID, nil
}

// Send submits one chat turn.
func (c *HTTPClient) Send(ctx context.Context, token string, req SendRequest) (*Response, error) {
	var out Response
	if err := c.post(ctx, token, "/chat/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
