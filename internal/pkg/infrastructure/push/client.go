package push

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type clientImpl struct {
	httpClient *resty.Client
}

// NewClient creates a Sender talking to an FCM-style push gateway.
func NewClient(baseURL, apiKey string) Sender {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &clientImpl{httpClient: client}
}

type multicastRequest struct {
	Tokens       []string          `json:"tokens"`
	Notification notificationBlock `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Webpush      *webpushBlock     `json:"webpush,omitempty"`
}

type notificationBlock struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type webpushBlock struct {
	Notification webpushNotification `json:"notification"`
}

type webpushNotification struct {
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

func (c *clientImpl) SendEachForMulticast(ctx context.Context, msg Message) (Response, error) {
	request := multicastRequest{
		Tokens: msg.Tokens,
		Notification: notificationBlock{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	if msg.Icon != "" || msg.Badge != "" || msg.Tag != "" {
		request.Webpush = &webpushBlock{
			Notification: webpushNotification{
				Icon:  msg.Icon,
				Badge: msg.Badge,
				Tag:   msg.Tag,
			},
		}
	}

	var response Response

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/v1/messages:sendEachForMulticast")
	if err != nil {
		return Response{}, err
	}

	if resp.IsError() {
		return Response{}, fmt.Errorf("push provider returned status %d", resp.StatusCode())
	}

	if len(response.Responses) != len(msg.Tokens) {
		return Response{}, fmt.Errorf("push provider returned %d outcomes for %d tokens", len(response.Responses), len(msg.Tokens))
	}

	return response, nil
}
