package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/storage"
	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (*is.I, *StorageMock, *messaging.MsgContextMock, *[]messaging.TopicMessage, *chi.Mux) {
	is := is.New(t)

	s := &StorageMock{
		SetLastSeenFunc: func(ctx context.Context, deviceID string, ts int64) error {
			return nil
		},
		SetSensorValueFunc: func(ctx context.Context, deviceID, sensorKey string, value []byte, ts int64) error {
			return nil
		},
		DeleteSensorValueFunc: func(ctx context.Context, deviceID, sensorKey string) error {
			return nil
		},
		RegisterPushTokenFunc: func(ctx context.Context, deviceID, token string) error {
			return nil
		},
		DeletePushTokenFunc: func(ctx context.Context, deviceID, token string) error {
			return nil
		},
		AddDoseRunFunc: func(ctx context.Context, run types.DoseRun) (types.DoseRun, error) {
			run.ID = "run-1"
			return run, nil
		},
		ListLivenessStatesFunc: func(ctx context.Context) ([]types.LivenessState, error) {
			return []types.LivenessState{{DeviceID: "doser-01", LastSeen: 1700000000000, Online: true}}, nil
		},
		QueryNotificationsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Notification], error) {
			return types.Collection[types.Notification]{
				Data:       []types.Notification{{ID: "n-1", DeviceID: "doser-01"}},
				Count:      1,
				Limit:      100,
				TotalCount: 1,
			}, nil
		},
	}

	published := make([]messaging.TopicMessage, 0)
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = append(published, message)
			return nil
		},
	}

	router, err := RegisterHandlers(context.Background(), chi.NewRouter(), s, m)
	is.NoErr(err)

	return is, s, m, &published, router
}

func TestHealthEndpoint(t *testing.T) {
	is, _, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(res.Code, http.StatusNoContent)
}

func TestHeartbeatRecordsLastSeen(t *testing.T) {
	is, s, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/v0/devices/doser-01/heartbeat", nil))

	is.Equal(res.Code, http.StatusNoContent)

	calls := s.SetLastSeenCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].DeviceID, "doser-01")
	is.True(calls[0].Ts > 0)
}

func TestPutSensorValuePublishesEvent(t *testing.T) {
	is, s, _, published, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPut, "/api/v0/devices/doser-01/sensors/pH", strings.NewReader(`7.8`)))

	is.Equal(res.Code, http.StatusNoContent)
	is.Equal(len(s.SetSensorValueCalls()), 1)

	is.Equal(len(*published), 1)
	evt, ok := (*published)[0].(*types.SensorValueUpdated)
	is.True(ok)
	is.Equal(evt.DeviceID, "doser-01")
	is.Equal(evt.SensorKey, "pH")
	is.Equal(string(evt.Value), `7.8`)
	is.True(!evt.Deleted)
}

func TestPutSensorValueRejectsInvalidJSON(t *testing.T) {
	is, s, _, published, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPut, "/api/v0/devices/doser-01/sensors/pH", strings.NewReader(`{broken`)))

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(s.SetSensorValueCalls()), 0)
	is.Equal(len(*published), 0)
}

func TestDeleteSensorValuePublishesDeletion(t *testing.T) {
	is, s, _, published, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodDelete, "/api/v0/devices/doser-01/sensors/pH", nil))

	is.Equal(res.Code, http.StatusNoContent)
	is.Equal(len(s.DeleteSensorValueCalls()), 1)

	evt, ok := (*published)[0].(*types.SensorValueUpdated)
	is.True(ok)
	is.True(evt.Deleted)
}

func TestRegisterPushToken(t *testing.T) {
	is, s, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/v0/devices/doser-01/pushtokens", strings.NewReader(`{"token":"tok-a"}`)))

	is.Equal(res.Code, http.StatusCreated)

	calls := s.RegisterPushTokenCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Token, "tok-a")
}

func TestRegisterPushTokenRequiresToken(t *testing.T) {
	is, s, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/v0/devices/doser-01/pushtokens", strings.NewReader(`{}`)))

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(s.RegisterPushTokenCalls()), 0)
}

func TestAddDoseRun(t *testing.T) {
	is, s, _, published, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/v0/devices/doser-01/doseruns", strings.NewReader(`{"pump":"alk","volumeMl":12.5}`)))

	is.Equal(res.Code, http.StatusCreated)

	calls := s.AddDoseRunCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Run.DeviceID, "doser-01")
	is.Equal(calls[0].Run.Pump, "alk")

	var run types.DoseRun
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &run))
	is.Equal(run.ID, "run-1")

	is.Equal(len(*published), 1)
	_, ok := (*published)[0].(*types.DoseRunRecorded)
	is.True(ok)
}

func TestListDevices(t *testing.T) {
	is, _, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil))

	is.Equal(res.Code, http.StatusOK)

	var states []types.LivenessState
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &states))
	is.Equal(len(states), 1)
	is.Equal(states[0].DeviceID, "doser-01")
}

func TestQueryNotifications(t *testing.T) {
	is, s, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/notifications?deviceID=doser-01&severity=critical&limit=10", nil))

	is.Equal(res.Code, http.StatusOK)

	var resp notificationsResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &resp))
	is.Equal(resp.TotalCount, uint64(1))
	is.Equal(resp.Data[0].ID, "n-1")

	// sort order plus the three query conditions
	is.Equal(len(s.QueryNotificationsCalls()[0].Conditions), 4)
}

func TestQueryNotificationsRejectsBadPaging(t *testing.T) {
	is, _, _, _, router := testSetup(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/notifications?limit=many", nil))

	is.Equal(res.Code, http.StatusBadRequest)
}
