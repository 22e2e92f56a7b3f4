package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/hearth-core/internal/schedule"
)

// minTopicParts is the number of parts in a device command topic
// (hearth/command/{device_id}).
const minTopicParts = 3

// ErrAlreadyStarted is returned when Start is called on a running bridge.
var ErrAlreadyStarted = errors.New("bridge: already started")

// MQTTClient is the interface for MQTT operations.
// This allows mocking in tests and flexibility in implementation.
type MQTTClient interface {
	// Publish sends a message to a topic.
	Publish(topic string, payload []byte, qos byte, retained bool) error

	// PublishRetained publishes a retained state message at the client's
	// default QoS.
	PublishRetained(topic string, payload []byte) error

	// Subscribe registers a handler for a topic pattern.
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error

	// Unsubscribe removes a subscription.
	Unsubscribe(topic string) error

	// IsConnected returns true if connected to the broker.
	IsConnected() bool
}

// Hub is the command surface the bridge drives. Satisfied by *hub.Hub.
type Hub interface {
	// Dispatch executes an action descriptor against a device.
	Dispatch(ctx context.Context, deviceID string, action schedule.Action) error

	// StatusReport returns the combined status line for all devices.
	StatusReport() string

	// Watch subscribes an observer to every device, present and future.
	Watch(o device.Observer)
}

// Logger defines the logging interface used by the Bridge.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// commandPayload is the wire format for inbound device commands.
type commandPayload struct {
	Command string `json:"command"`
	Value   *int   `json:"value,omitempty"`
}

// Bridge translates between the hub and the MQTT bus in both directions.
//
// Thread Safety: All methods are safe for concurrent use.
type Bridge struct {
	hub    Hub
	mqtt   MQTTClient
	qos    byte
	topics mqtt.Topics

	mu      sync.Mutex
	started bool

	// ctx bounds handler dispatch; cancelled on Stop.
	ctx       context.Context
	ctxCancel context.CancelFunc

	logger Logger
}

// New creates a bridge over the given hub and MQTT client.
func New(h Hub, client MQTTClient, qos byte) *Bridge {
	return &Bridge{
		hub:    h,
		mqtt:   client,
		qos:    qos,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the bridge.
func (b *Bridge) SetLogger(logger Logger) {
	b.logger = logger
}

// Start subscribes to the command topic and begins mirroring device events
// onto the bus. The bridge registers itself as a hub watcher, so devices
// created after Start are covered too.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)

	if err := b.mqtt.Subscribe(b.topics.AllDeviceCommands(), b.qos, b.handleCommand); err != nil {
		cancel()
		return fmt.Errorf("subscribing to commands: %w", err)
	}

	b.ctx = runCtx
	b.ctxCancel = cancel
	b.started = true
	b.hub.Watch(b)

	b.logger.Info("bridge started", "commands", b.topics.AllDeviceCommands())
	return nil
}

// Stop unsubscribes from the command topic and stops dispatching. Device
// observers cannot be detached from the hub, so Notify keeps arriving but
// becomes a no-op once the context is cancelled.
func (b *Bridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return
	}

	b.ctxCancel()
	if err := b.mqtt.Unsubscribe(b.topics.AllDeviceCommands()); err != nil {
		b.logger.Warn("unsubscribe failed", "error", err)
	}
	b.started = false

	b.logger.Info("bridge stopped")
}

// Notify implements device.Observer: device events are published to the
// bus, and the retained hub status report is refreshed.
func (b *Bridge) Notify(e device.Event) {
	b.mu.Lock()
	ctx := b.ctx
	b.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}

	payload, err := json.Marshal(e)
	if err != nil {
		b.logger.Error("marshalling event", "device_id", e.DeviceID, "error", err)
		return
	}

	if err := b.mqtt.Publish(b.topics.DeviceEvent(e.DeviceID), payload, b.qos, false); err != nil {
		b.logger.Warn("publishing event", "device_id", e.DeviceID, "error", err)
	}

	if err := b.mqtt.PublishRetained(b.topics.HubStatus(), []byte(b.hub.StatusReport())); err != nil {
		b.logger.Warn("publishing status report", "error", err)
	}
}

// handleCommand decodes and dispatches an inbound command message.
func (b *Bridge) handleCommand(topic string, payload []byte) error {
	deviceID, err := deviceIDFromTopic(topic)
	if err != nil {
		return err
	}

	var cmd commandPayload
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("decoding command on %s: %w", topic, err)
	}

	action := schedule.Action{
		Command: schedule.CommandName(cmd.Command),
		Value:   cmd.Value,
	}

	b.mu.Lock()
	ctx := b.ctx
	b.mu.Unlock()
	if ctx == nil {
		return nil
	}

	if err := b.hub.Dispatch(ctx, deviceID, action); err != nil {
		// Recoverable: the sender gets no reply, the hub keeps running.
		return fmt.Errorf("dispatching %s to %q: %w", cmd.Command, deviceID, err)
	}

	b.logger.Debug("command dispatched", "device_id", deviceID, "command", cmd.Command)
	return nil
}

// deviceIDFromTopic extracts the device ID from hearth/command/{device_id}.
func deviceIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < minTopicParts || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("bridge: malformed command topic %q", topic)
	}
	return parts[len(parts)-1], nil
}
