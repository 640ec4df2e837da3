package events

import (
	"context"
	"strings"
	"testing"

	"github.com/aquanet/fleet-alerting/pkg/types"
	"github.com/matryer/is"
)

func TestConfig(t *testing.T) {
	is := is.New(t)
	config := strings.NewReader(`
notifications:
  - id: ops
    name: Operations webhook
    type: fleet-alerting.notification
    subscribers:
    - endpoint: http://api-notification:8990
`)
	cfg, err := LoadConfiguration(config)

	is.NoErr(err)
	is.Equal(len(cfg.Notifications), 1)
	is.Equal(cfg.Notifications[0].ID, "ops")
	is.Equal(cfg.Notifications[0].Subscribers[0].Endpoint, "http://api-notification:8990")
}

func TestSendWithoutSubscribersIsANoOp(t *testing.T) {
	is := is.New(t)

	sender := New(nil)
	err := sender.Send(context.Background(), types.Notification{DeviceID: "doser-01"})

	is.NoErr(err)
}
