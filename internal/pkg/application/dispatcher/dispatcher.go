package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/aquanet/fleet-alerting/internal/pkg/application/events"
	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/push"
	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
)

//go:generate moq -rm -out notificationstorage_mock.go . NotificationStorage
type NotificationStorage interface {
	GetPushTokens(ctx context.Context, deviceID string) ([]string, error)
	DeletePushToken(ctx context.Context, deviceID, token string) error
	MarkNotificationPushed(ctx context.Context, notificationID string, pushedAt int64) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, n types.Notification, now time.Time) error
	RegisterTopicMessageHandler(ctx context.Context) error
}

type dispatcher struct {
	storage   NotificationStorage
	sender    push.Sender
	forwarder events.EventSender
	messenger messaging.MsgContext
}

func New(storage NotificationStorage, sender push.Sender, forwarder events.EventSender, messenger messaging.MsgContext) Dispatcher {
	return &dispatcher{
		storage:   storage,
		sender:    sender,
		forwarder: forwarder,
		messenger: messenger,
	}
}

func (d *dispatcher) RegisterTopicMessageHandler(ctx context.Context) error {
	return d.messenger.RegisterTopicMessageHandler("notification.created", NewNotificationCreatedHandler(d))
}

// Dispatch forwards a notification to any configured webhooks and pushes
// it to the owning device's registered tokens. Tokens the provider
// reports as permanently dead are pruned, transient failures are left
// for the next notification to retry.
func (d *dispatcher) Dispatch(ctx context.Context, n types.Notification, now time.Time) error {
	log := logging.GetFromContext(ctx)

	if d.forwarder != nil {
		err := d.forwarder.Send(ctx, n)
		if err != nil {
			log.Error("could not forward notification", "notification_id", n.ID, "err", err.Error())
		}
	}

	// missing or unrecognized severities degrade to info and stay silent
	if types.ParseSeverity(string(n.Severity)) == types.SeverityInfo {
		return nil
	}

	tokens, err := d.storage.GetPushTokens(ctx, n.DeviceID)
	if err != nil {
		return fmt.Errorf("could not fetch push tokens for %s: %w", n.DeviceID, err)
	}

	tokens = lo.Uniq(tokens)

	if len(tokens) == 0 {
		log.Info("no push tokens registered", "device_id", n.DeviceID)
		return nil
	}

	resp, err := d.sender.SendEachForMulticast(ctx, push.Message{
		Tokens: tokens,
		Title:  n.Title,
		Body:   n.Body,
		Data: map[string]string{
			"deviceId":       n.DeviceID,
			"notificationId": n.ID,
			"severity":       string(n.Severity),
			"type":           n.Type,
		},
		Icon: "/icon-192.png",
		Tag:  "fleet-" + n.DeviceID,
	})
	if err != nil {
		return fmt.Errorf("multicast send failed: %w", err)
	}

	for i, outcome := range resp.Responses {
		if outcome.Success || i >= len(tokens) {
			continue
		}

		if push.IsPermanentFailure(outcome.ErrorCode) {
			delErr := d.storage.DeletePushToken(ctx, n.DeviceID, tokens[i])
			if delErr != nil {
				log.Error("could not prune dead token", "device_id", n.DeviceID, "err", delErr.Error())
			}
		} else {
			log.Warn("transient push failure", "device_id", n.DeviceID, "error_code", outcome.ErrorCode)
		}
	}

	log.Info("notification pushed", "notification_id", n.ID, "success_count", resp.SuccessCount, "failure_count", resp.FailureCount)

	err = d.storage.MarkNotificationPushed(ctx, n.ID, now.UnixMilli())
	if err != nil {
		return fmt.Errorf("could not mark notification as pushed: %w", err)
	}

	return nil
}
