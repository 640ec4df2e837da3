package sensors

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

var tracer = otel.Tracer("fleet-alerting/sensors")

func NewSensorValueHandler(svc SensorMonitor) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "sensor-value-updated")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		evt := types.SensorValueUpdated{}
		err = json.Unmarshal(itm.Body(), &evt)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		_, err = svc.HandleSensorValue(ctx, evt, time.Now().UTC())
		if err != nil {
			log.Error("could not handle sensor value", "device_id", evt.DeviceID, "sensor_key", evt.SensorKey, "err", err.Error())
			return
		}
	}
}
