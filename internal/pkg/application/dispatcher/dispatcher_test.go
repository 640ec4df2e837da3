package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aquanet/fleet-alerting/internal/pkg/application/events"
	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/push"
	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testSetup(t *testing.T, tokens []string, outcomes []push.Outcome) (*is.I, *NotificationStorageMock, *push.SenderMock, *events.EventSenderMock, Dispatcher) {
	is := is.New(t)

	storage := &NotificationStorageMock{
		GetPushTokensFunc: func(ctx context.Context, deviceID string) ([]string, error) {
			return tokens, nil
		},
		DeletePushTokenFunc: func(ctx context.Context, deviceID, token string) error {
			return nil
		},
		MarkNotificationPushedFunc: func(ctx context.Context, notificationID string, pushedAt int64) error {
			return nil
		},
	}

	sender := &push.SenderMock{
		SendEachForMulticastFunc: func(ctx context.Context, msg push.Message) (push.Response, error) {
			resp := push.Response{Responses: outcomes}
			for _, o := range outcomes {
				if o.Success {
					resp.SuccessCount++
				} else {
					resp.FailureCount++
				}
			}
			return resp, nil
		},
	}

	forwarder := &events.EventSenderMock{
		SendFunc: func(ctx context.Context, n types.Notification) error {
			return nil
		},
	}

	messenger := &messaging.MsgContextMock{}

	return is, storage, sender, forwarder, New(storage, sender, forwarder, messenger)
}

func criticalNotification() types.Notification {
	return types.Notification{
		ID:        "n-1",
		DeviceID:  "doser-01",
		Title:     "doser-01 pH LOW",
		Body:      "pH is 7. Expected 7.5–10.5.",
		Severity:  types.SeverityCritical,
		Type:      "sensor_pH_out_of_range",
		Timestamp: time.Now().UnixMilli(),
	}
}

func TestDispatchPrunesDeadTokensOnly(t *testing.T) {
	is, storage, sender, _, d := testSetup(t,
		[]string{"tok-a", "tok-b", "tok-c"},
		[]push.Outcome{
			{Success: true},
			{Success: false, ErrorCode: push.ErrorCodeInvalidToken},
			{Success: false, ErrorCode: "messaging/internal-error"},
		},
	)

	now := time.Now().UTC()
	err := d.Dispatch(context.Background(), criticalNotification(), now)
	is.NoErr(err)

	is.Equal(len(sender.SendEachForMulticastCalls()), 1)

	// only the permanently dead token is pruned
	deletes := storage.DeletePushTokenCalls()
	is.Equal(len(deletes), 1)
	is.Equal(deletes[0].Token, "tok-b")

	marks := storage.MarkNotificationPushedCalls()
	is.Equal(len(marks), 1)
	is.Equal(marks[0].NotificationID, "n-1")
	is.Equal(marks[0].PushedAt, now.UnixMilli())
}

func TestInfoNotificationsAreNeverPushed(t *testing.T) {
	is, storage, sender, forwarder, d := testSetup(t, []string{"tok-a"}, nil)

	n := criticalNotification()
	n.Severity = types.SeverityInfo

	err := d.Dispatch(context.Background(), n, time.Now())
	is.NoErr(err)

	is.Equal(len(storage.GetPushTokensCalls()), 0)
	is.Equal(len(sender.SendEachForMulticastCalls()), 0)
	is.Equal(len(storage.MarkNotificationPushedCalls()), 0)

	// the webhook still gets it
	is.Equal(len(forwarder.SendCalls()), 1)
}

func TestUnrecognizedSeverityIsTreatedAsInfo(t *testing.T) {
	is, storage, sender, forwarder, d := testSetup(t, []string{"tok-a"}, nil)

	for _, severity := range []types.Severity{"", "bogus", "CRITICAL!"} {
		n := criticalNotification()
		n.Severity = severity

		err := d.Dispatch(context.Background(), n, time.Now())
		is.NoErr(err)
	}

	is.Equal(len(storage.GetPushTokensCalls()), 0)
	is.Equal(len(sender.SendEachForMulticastCalls()), 0)
	is.Equal(len(storage.MarkNotificationPushedCalls()), 0)
	is.Equal(len(forwarder.SendCalls()), 3)
}

func TestDispatchWithoutTokensStopsQuietly(t *testing.T) {
	is, storage, sender, _, d := testSetup(t, nil, nil)

	err := d.Dispatch(context.Background(), criticalNotification(), time.Now())
	is.NoErr(err)

	is.Equal(len(sender.SendEachForMulticastCalls()), 0)
	is.Equal(len(storage.MarkNotificationPushedCalls()), 0)
}

func TestDispatchDeduplicatesTokens(t *testing.T) {
	is, _, sender, _, d := testSetup(t,
		[]string{"tok-a", "tok-a"},
		[]push.Outcome{{Success: true}},
	)

	err := d.Dispatch(context.Background(), criticalNotification(), time.Now())
	is.NoErr(err)

	calls := sender.SendEachForMulticastCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Msg.Tokens, []string{"tok-a"})
}

func TestDispatchSetsCollapseTagAndData(t *testing.T) {
	is, _, sender, _, d := testSetup(t,
		[]string{"tok-a"},
		[]push.Outcome{{Success: true}},
	)

	err := d.Dispatch(context.Background(), criticalNotification(), time.Now())
	is.NoErr(err)

	msg := sender.SendEachForMulticastCalls()[0].Msg
	is.Equal(msg.Tag, "fleet-doser-01")
	is.Equal(msg.Data["notificationId"], "n-1")
	is.Equal(msg.Data["severity"], "critical")
	is.Equal(msg.Data["type"], "sensor_pH_out_of_range")
}

func TestDispatchReturnsSendError(t *testing.T) {
	is, storage, sender, _, d := testSetup(t, []string{"tok-a"}, nil)

	sender.SendEachForMulticastFunc = func(ctx context.Context, msg push.Message) (push.Response, error) {
		return push.Response{}, errors.New("provider unavailable")
	}

	err := d.Dispatch(context.Background(), criticalNotification(), time.Now())
	is.True(err != nil)

	// nothing is stamped when the whole send failed
	is.Equal(len(storage.MarkNotificationPushedCalls()), 0)
}

func TestNotificationCreatedHandler(t *testing.T) {
	is, storage, sender, _, d := testSetup(t,
		[]string{"tok-a"},
		[]push.Outcome{{Success: true}},
	)

	handler := NewNotificationCreatedHandler(d)

	evt := types.NotificationCreated{Notification: criticalNotification(), Timestamp: time.Now().UTC()}
	body, _ := json.Marshal(&evt)

	handler(context.Background(), &incomingMessage{body: body}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	is.Equal(len(sender.SendEachForMulticastCalls()), 1)
	is.Equal(len(storage.MarkNotificationPushedCalls()), 1)
}

type incomingMessage struct {
	body []byte
}

func (m *incomingMessage) Body() []byte {
	return m.body
}
func (m *incomingMessage) ContentType() string {
	return "application/json"
}
func (m *incomingMessage) TopicName() string {
	return "notification.created"
}
