// Package bridge connects the hub to the MQTT bus.
//
// Outbound: every device state-change notification is published to
// hearth/event/{device_id}, and the hub's combined status report is kept
// retained on hearth/status/report so late subscribers see current state.
//
// Inbound: command payloads arriving on hearth/command/{device_id} are
// decoded into action descriptors and dispatched through the hub, which
// routes them through the same capability-checked proxies as every other
// command source.
package bridge
