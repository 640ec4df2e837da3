package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestSendEachForMulticast(t *testing.T) {
	is := is.New(t)

	var received multicastRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/v1/messages:sendEachForMulticast")
		is.NoErr(json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []Outcome{
				{Success: true},
				{Success: false, ErrorCode: ErrorCodeInvalidToken},
			},
		})
	}))
	defer server.Close()

	sender := NewClient(server.URL, "apikey")

	resp, err := sender.SendEachForMulticast(context.Background(), Message{
		Tokens: []string{"a", "b"},
		Title:  "title",
		Body:   "body",
		Data:   map[string]string{"deviceId": "doser-01"},
		Icon:   "/icon-192.png",
		Tag:    "fleet-doser-01",
	})
	is.NoErr(err)

	is.Equal(len(resp.Responses), 2)
	is.True(resp.Responses[0].Success)
	is.Equal(resp.Responses[1].ErrorCode, ErrorCodeInvalidToken)

	is.Equal(received.Tokens, []string{"a", "b"})
	is.Equal(received.Notification.Title, "title")
	is.True(received.Webpush != nil)
	is.Equal(received.Webpush.Notification.Tag, "fleet-doser-01")
}

func TestSendEachForMulticastMismatchedOutcomes(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Responses: []Outcome{{Success: true}}})
	}))
	defer server.Close()

	sender := NewClient(server.URL, "")

	_, err := sender.SendEachForMulticast(context.Background(), Message{Tokens: []string{"a", "b"}})
	is.True(err != nil)
}

func TestIsPermanentFailure(t *testing.T) {
	is := is.New(t)

	is.True(IsPermanentFailure(ErrorCodeTokenNotRegistered))
	is.True(IsPermanentFailure(ErrorCodeInvalidToken))
	is.True(!IsPermanentFailure("messaging/internal-error"))
	is.True(!IsPermanentFailure(""))
}
