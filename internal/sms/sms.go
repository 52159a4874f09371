package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrRejected means the provider took the request but refused to
// deliver. Callers treat it the same as a transport failure: the send
// did not happen.
var ErrRejected = errors.New("sms provider rejected message")

// Client talks to the text.lk SMS HTTP API.
type Client struct {
	baseURL  string
	token    string
	senderID string
	httpc    *http.Client
	log      *zap.Logger
}

func NewClient(baseURL, token, senderID string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		senderID: senderID,
		httpc:    &http.Client{Timeout: timeout},
		log:      log,
	}
}

type sendRequest struct {
	Recipient string `json:"recipient"`
	SenderID  string `json:"sender_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

type sendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Send dispatches one SMS. A nil return means the provider accepted
// the message for delivery; anything else means it was not sent.
func (c *Client) Send(ctx context.Context, to, body string) error {
	start := time.Now()

	payload, err := json.Marshal(sendRequest{
		Recipient: to,
		SenderID:  c.senderID,
		Type:      "plain",
		Message:   body,
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sms/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("sms http error", zap.String("recipient", to), zap.Error(err))
		return fmt.Errorf("sms http error: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var out sendResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode != http.StatusOK || out.Status == "error" {
		c.log.Warn("sms send rejected",
			zap.String("recipient", to),
			zap.Int("status", resp.StatusCode),
			zap.String("provider_msg", out.Message),
		)
		if out.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, out.Message)
		}
		return fmt.Errorf("%w: http %d", ErrRejected, resp.StatusCode)
	}

	c.log.Info("sms sent",
		zap.String("recipient", to),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
