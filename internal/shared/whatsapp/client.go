package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// =============================================================================
// Client — WhatsApp Cloud API 客户端
// 提供通用消息发送，供审批通知等模块共用
// =============================================================================

// Client WhatsApp客户端
type Client struct {
	baseURL       string
	phoneNumberID string // 发送方号码ID
	accessToken   string // 永久访问令牌
	httpClient    *http.Client
}

// NewClient 创建WhatsApp客户端实例
func NewClient(baseURL, phoneNumberID, accessToken string) *Client {
	return &Client{
		baseURL:       baseURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendText 发送纯文本消息
func (c *Client) SendText(ctx context.Context, to, body string) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &TextContent{Body: body},
	}
	return c.sendMessage(ctx, msg)
}

// sendMessage 调用消息发送接口
func (c *Client) sendMessage(ctx context.Context, msg SendMessageRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal whatsapp message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read whatsapp response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp api error (code=%d): %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("whatsapp api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
