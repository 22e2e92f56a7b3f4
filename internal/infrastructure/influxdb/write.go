package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/hearth-core/internal/device"
)

// WriteEvent records a device state-change notification in the event
// history, timestamped with the event's own time. The human-readable
// message is the field; device identity goes in tags so history can be
// filtered per device or per kind.
func (c *Client) WriteEvent(e device.Event) {
	c.WritePointWithTime(
		"device_events",
		map[string]string{
			"device_id": e.DeviceID,
			"kind":      string(e.Kind),
		},
		map[string]interface{}{
			"message": e.Message,
		},
		e.At,
	)
}

// WriteTemperature records a thermostat setpoint change. Kept separate
// from WriteEvent so setpoints land in a numeric series that dashboards
// can graph directly.
func (c *Client) WriteTemperature(deviceID string, degrees int) {
	c.WritePoint(
		"temperature",
		map[string]string{
			"device_id": deviceID,
		},
		map[string]interface{}{
			"degrees": degrees,
		},
	)
}

// WritePoint writes a point timestamped now. Non-blocking; points are
// batched and sent asynchronously.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	c.WritePointWithTime(measurement, tags, fields, time.Now())
}

// WritePointWithTime writes a point with an explicit timestamp.
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
