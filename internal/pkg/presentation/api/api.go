package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/storage"
	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("fleet-alerting/api")

var errMissingToken = errors.New("missing token")

//go:generate moq -rm -out storage_mock.go . Storage
type Storage interface {
	SetLastSeen(ctx context.Context, deviceID string, ts int64) error
	SetSensorValue(ctx context.Context, deviceID, sensorKey string, value []byte, ts int64) error
	DeleteSensorValue(ctx context.Context, deviceID, sensorKey string) error
	RegisterPushToken(ctx context.Context, deviceID, token string) error
	DeletePushToken(ctx context.Context, deviceID, token string) error
	AddDoseRun(ctx context.Context, run types.DoseRun) (types.DoseRun, error)
	ListLivenessStates(ctx context.Context) ([]types.LivenessState, error)
	QueryNotifications(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Notification], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, s Storage, messenger messaging.MsgContext) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Get("/", listDevicesHandler(log, s))
			r.Post("/{deviceID}/heartbeat", heartbeatHandler(log, s))
			r.Put("/{deviceID}/sensors/{sensorKey}", putSensorValueHandler(log, s, messenger))
			r.Delete("/{deviceID}/sensors/{sensorKey}", deleteSensorValueHandler(log, s, messenger))
			r.Post("/{deviceID}/pushtokens", registerPushTokenHandler(log, s))
			r.Delete("/{deviceID}/pushtokens", deletePushTokenHandler(log, s))
			r.Post("/{deviceID}/doseruns", addDoseRunHandler(log, s, messenger))
		})

		r.Get("/notifications", queryNotificationsHandler(log, s))
	})

	return router, nil
}

func heartbeatHandler(log *slog.Logger, s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "device-heartbeat")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = s.SetLastSeen(ctx, deviceID, time.Now().UTC().UnixMilli())
		if err != nil {
			requestLogger.Error("unable to record heartbeat", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func putSensorValueHandler(log *slog.Logger, s Storage, messenger messaging.MsgContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "put-sensor-value")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		sensorKey := chi.URLParam(r, "sensorKey")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if !json.Valid(body) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := time.Now().UTC()

		err = s.SetSensorValue(ctx, deviceID, sensorKey, body, now.UnixMilli())
		if err != nil {
			requestLogger.Error("unable to store sensor value", "device_id", deviceID, "sensor_key", sensorKey, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = messenger.PublishOnTopic(ctx, &types.SensorValueUpdated{
			DeviceID:  deviceID,
			SensorKey: sensorKey,
			Value:     body,
			Timestamp: now,
		})
		if err != nil {
			requestLogger.Error("unable to publish sensor value", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteSensorValueHandler(log *slog.Logger, s Storage, messenger messaging.MsgContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-sensor-value")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		sensorKey := chi.URLParam(r, "sensorKey")

		err = s.DeleteSensorValue(ctx, deviceID, sensorKey)
		if err != nil {
			requestLogger.Error("unable to delete sensor value", "device_id", deviceID, "sensor_key", sensorKey, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = messenger.PublishOnTopic(ctx, &types.SensorValueUpdated{
			DeviceID:  deviceID,
			SensorKey: sensorKey,
			Deleted:   true,
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			requestLogger.Error("unable to publish sensor deletion", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type pushTokenRequest struct {
	Token string `json:"token"`
}

func registerPushTokenHandler(log *slog.Logger, s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "register-push-token")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		req, err := decodePushToken(r.Body)
		if err != nil {
			requestLogger.Error("unable to decode token", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = s.RegisterPushToken(ctx, deviceID, req.Token)
		if err != nil {
			requestLogger.Error("unable to register push token", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func deletePushTokenHandler(log *slog.Logger, s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-push-token")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		req, err := decodePushToken(r.Body)
		if err != nil {
			requestLogger.Error("unable to decode token", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = s.DeletePushToken(ctx, deviceID, req.Token)
		if err != nil {
			requestLogger.Error("unable to delete push token", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodePushToken(body io.Reader) (pushTokenRequest, error) {
	req := pushTokenRequest{}

	err := json.NewDecoder(body).Decode(&req)
	if err != nil {
		return req, err
	}
	if req.Token == "" {
		return req, errMissingToken
	}

	return req, nil
}

func addDoseRunHandler(log *slog.Logger, s Storage, messenger messaging.MsgContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "add-dose-run")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		var run types.DoseRun
		err = json.NewDecoder(r.Body).Decode(&run)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		run.DeviceID = deviceID
		if run.Timestamp == 0 {
			run.Timestamp = time.Now().UTC().UnixMilli()
		}

		run, err = s.AddDoseRun(ctx, run)
		if err != nil {
			requestLogger.Error("unable to store dose run", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = messenger.PublishOnTopic(ctx, &types.DoseRunRecorded{
			DoseRun:   run,
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			requestLogger.Error("unable to publish dose run", "device_id", deviceID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(run)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func listDevicesHandler(log *slog.Logger, s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		states, err := s.ListLivenessStates(ctx)
		if err != nil {
			requestLogger.Error("unable to list devices", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(states)
		if err != nil {
			requestLogger.Error("unable to marshal devices", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

type notificationsResponse struct {
	Data       []types.Notification `json:"data"`
	Count      uint64               `json:"count"`
	Offset     uint64               `json:"offset"`
	Limit      uint64               `json:"limit"`
	TotalCount uint64               `json:"totalCount"`
}

func queryNotificationsHandler(log *slog.Logger, s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-notifications")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := []storage.ConditionFunc{storage.WithSortDesc(true)}

		q := r.URL.Query()

		if deviceID := q.Get("deviceID"); deviceID != "" {
			conditions = append(conditions, storage.WithDeviceID(deviceID))
		}
		if t := q.Get("type"); t != "" {
			conditions = append(conditions, storage.WithNotificationType(t))
		}
		if severity := q.Get("severity"); severity != "" {
			conditions = append(conditions, storage.WithSeverity(string(types.ParseSeverity(severity))))
		}
		if offset := q.Get("offset"); offset != "" {
			v, convErr := strconv.Atoi(offset)
			if convErr != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithOffset(v))
		}
		if limit := q.Get("limit"); limit != "" {
			v, convErr := strconv.Atoi(limit)
			if convErr != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithLimit(v))
		}

		collection, err := s.QueryNotifications(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query notifications", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(notificationsResponse{
			Data:       collection.Data,
			Count:      collection.Count,
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		})
		if err != nil {
			requestLogger.Error("unable to marshal notifications", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
