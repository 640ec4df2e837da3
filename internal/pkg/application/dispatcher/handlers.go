package dispatcher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("fleet-alerting/dispatcher")

func NewNotificationCreatedHandler(svc Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "notification-created")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		evt := types.NotificationCreated{}
		err = json.Unmarshal(itm.Body(), &evt)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		err = svc.Dispatch(ctx, evt.Notification, time.Now().UTC())
		if err != nil {
			log.Error("could not dispatch notification", "notification_id", evt.Notification.ID, "err", err.Error())
			return
		}
	}
}
