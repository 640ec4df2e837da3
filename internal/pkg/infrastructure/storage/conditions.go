package storage

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID         string
	NotificationType string
	Severity         string
	OlderThan        int64

	sortDesc bool

	offset *int
	limit  *int
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithNotificationType(t string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.NotificationType = t
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

// WithOlderThan bounds the result to rows with ts at or before the
// given epoch millisecond timestamp.
func WithOlderThan(ts int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.OlderThan = ts
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortDesc = desc
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.NotificationType != "" {
		args["type"] = c.NotificationType
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if c.OlderThan > 0 {
		args["older_than"] = c.OlderThan
	}

	return args
}

func (c Condition) Where() string {
	w := []string{"1=1"}

	if c.DeviceID != "" {
		w = append(w, "device_id = @device_id")
	}
	if c.NotificationType != "" {
		w = append(w, "type = @type")
	}
	if c.Severity != "" {
		w = append(w, "severity = @severity")
	}
	if c.OlderThan > 0 {
		w = append(w, "ts <= @older_than")
	}

	return strings.Join(w, " AND ")
}

func (c Condition) SortOrder() string {
	if c.sortDesc {
		return "DESC"
	}
	return "ASC"
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 100
}
