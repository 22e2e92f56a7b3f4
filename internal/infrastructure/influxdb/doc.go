// Package influxdb provides InfluxDB connectivity for Hearth Core.
//
// It wraps the official influxdb-client-go v2 library with Hearth-specific
// patterns for connection management, event-history writing, and health
// monitoring.
//
// # Purpose
//
// This package handles time-series storage for:
//   - Device state-change events (the notification stream)
//   - Thermostat setpoint history
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteEvent(event)          // non-blocking, batched
//	client.WriteTemperature("t-1", 72)
//
// Writes are batched and flushed asynchronously; failures surface through
// the SetOnError callback rather than per-call errors.
package influxdb
