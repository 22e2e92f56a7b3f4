package hub

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/schedule"
)

// Logger defines the logging interface used by the Hub.
// This allows different logging implementations to be used.
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

// CreateOptions carries the optional initial state for CreateDevice.
// Zero value means kind defaults: lights off, thermostats at 70 degrees,
// door locks locked.
type CreateOptions struct {
	// Status is "on"/"off" for lights and "locked"/"unlocked" for door
	// locks. Empty keeps the default.
	Status string

	// Temperature is the initial setpoint for thermostats. Nil keeps the
	// default.
	Temperature *int
}

// Hub is the device registry and single command surface.
//
// Devices are held behind access proxies in registration order. All public
// methods are thread-safe; commands never hold the registry lock while the
// device notifies its subscribers.
type Hub struct {
	mu       sync.RWMutex
	proxies  map[string]*device.Proxy
	order    []string
	watchers []device.Observer

	schedules *schedule.Store
	logger    Logger
}

// New creates an empty hub. Pass a nil store to run without scheduling.
func New(schedules *schedule.Store) *Hub {
	return &Hub{
		proxies:   make(map[string]*device.Proxy),
		schedules: schedules,
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for the hub.
func (h *Hub) SetLogger(logger Logger) {
	h.logger = logger
}

// CreateDevice constructs a device of the given kind, registers it, and
// applies the initial state through the device's own mutators so creation
// state changes notify subscribers like any other. Returns ErrDeviceExists
// for a duplicate ID; kind and option validation errors come from the
// device package.
func (h *Hub) CreateDevice(id string, kind device.Kind, opts CreateOptions) (*device.Proxy, error) {
	d, err := device.New(id, kind)
	if err != nil {
		return nil, err
	}

	proxy, err := h.register(d)
	if err != nil {
		return nil, err
	}

	if err := h.applyOptions(proxy, opts); err != nil {
		// Roll back so a half-configured device never stays registered.
		_ = h.RemoveDevice(id)
		return nil, err
	}

	h.logger.Info("device created", "id", id, "kind", string(kind))
	return proxy, nil
}

// AddDevice registers an externally constructed device behind a new proxy.
func (h *Hub) AddDevice(d device.Device) (*device.Proxy, error) {
	proxy, err := h.register(d)
	if err != nil {
		return nil, err
	}
	h.logger.Info("device added", "id", d.ID(), "kind", string(d.Kind()))
	return proxy, nil
}

func (h *Hub) register(d device.Device) (*device.Proxy, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.proxies[d.ID()]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDeviceExists, d.ID())
	}

	proxy := device.NewProxy(d)
	h.proxies[d.ID()] = proxy
	h.order = append(h.order, d.ID())

	for _, w := range h.watchers {
		proxy.Subscribe(w)
	}
	return proxy, nil
}

// applyOptions drives the initial state through proxy mutators.
func (h *Hub) applyOptions(p *device.Proxy, opts CreateOptions) error {
	switch p.Kind() {
	case device.KindLight:
		switch opts.Status {
		case "":
		case string(device.PowerOn):
			return p.TurnOn()
		case string(device.PowerOff):
			return p.TurnOff()
		default:
			return fmt.Errorf("%w: %q for light", device.ErrInvalidStatus, opts.Status)
		}
	case device.KindThermostat:
		if opts.Status != "" {
			return fmt.Errorf("%w: %q for thermostat", device.ErrInvalidStatus, opts.Status)
		}
		if opts.Temperature != nil {
			return p.SetTemperature(*opts.Temperature)
		}
	case device.KindDoorLock:
		switch opts.Status {
		case "":
		case string(device.Locked):
			return p.Lock()
		case string(device.Unlocked):
			return p.Unlock()
		default:
			return fmt.Errorf("%w: %q for door lock", device.ErrInvalidStatus, opts.Status)
		}
	}
	return nil
}

// RemoveDevice unregisters a device. Its subscribers keep their references
// but receive no further events through the hub.
func (h *Hub) RemoveDevice(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.proxies[id]; !exists {
		return fmt.Errorf("%w: %q", ErrDeviceNotFound, id)
	}

	delete(h.proxies, id)
	for i, existing := range h.order {
		if existing == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}

	h.logger.Info("device removed", "id", id)
	return nil
}

// Device returns the proxy for a registered device.
func (h *Hub) Device(id string) (*device.Proxy, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	proxy, exists := h.proxies[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, id)
	}
	return proxy, nil
}

// Devices returns every registered proxy in registration order.
func (h *Hub) Devices() []*device.Proxy {
	h.mu.RLock()
	defer h.mu.RUnlock()

	devices := make([]*device.Proxy, 0, len(h.order))
	for _, id := range h.order {
		devices = append(devices, h.proxies[id])
	}
	return devices
}

// DeviceCount returns the number of registered devices.
func (h *Hub) DeviceCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.proxies)
}

// Watch subscribes an observer to every registered device, present and
// future. The MQTT bridge and the websocket stream attach here.
func (h *Hub) Watch(o device.Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.watchers = append(h.watchers, o)
	for _, proxy := range h.proxies {
		proxy.Subscribe(o)
	}
}

// TurnOn switches a device on through its proxy.
func (h *Hub) TurnOn(id string) error {
	proxy, err := h.Device(id)
	if err != nil {
		return err
	}
	return proxy.TurnOn()
}

// TurnOff switches a device off through its proxy.
func (h *Hub) TurnOff(id string) error {
	proxy, err := h.Device(id)
	if err != nil {
		return err
	}
	return proxy.TurnOff()
}

// SetTemperature updates a device's setpoint through its proxy.
func (h *Hub) SetTemperature(id string, value int) error {
	proxy, err := h.Device(id)
	if err != nil {
		return err
	}
	return proxy.SetTemperature(value)
}

// Lock locks a device through its proxy.
func (h *Hub) Lock(id string) error {
	proxy, err := h.Device(id)
	if err != nil {
		return err
	}
	return proxy.Lock()
}

// Unlock unlocks a device through its proxy.
func (h *Hub) Unlock(id string) error {
	proxy, err := h.Device(id)
	if err != nil {
		return err
	}
	return proxy.Unlock()
}

// StatusReport concatenates every device's status line in registration
// order, separated by single spaces.
func (h *Hub) StatusReport() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	reports := make([]string, 0, len(h.order))
	for _, id := range h.order {
		reports = append(reports, h.proxies[id].StatusReport())
	}
	return strings.Join(reports, " ")
}

// Dispatch executes a stored action descriptor against a device. It
// implements schedule.Dispatcher: the scheduler hands over due tasks and
// the hub routes them through the same proxies as direct commands.
func (h *Hub) Dispatch(ctx context.Context, deviceID string, action schedule.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := action.Validate(); err != nil {
		return err
	}

	proxy, err := h.Device(deviceID)
	if err != nil {
		return err
	}

	switch action.Command {
	case schedule.CommandTurnOn:
		return proxy.TurnOn()
	case schedule.CommandTurnOff:
		return proxy.TurnOff()
	case schedule.CommandSetTemperature:
		return proxy.SetTemperature(*action.Value)
	case schedule.CommandLock:
		return proxy.Lock()
	case schedule.CommandUnlock:
		return proxy.Unlock()
	default:
		return fmt.Errorf("%w: %q", schedule.ErrMalformedAction, action.Command)
	}
}

// SetSchedule records a task to run an action at a time of day. The device
// must be registered; the action is validated before it is stored.
func (h *Hub) SetSchedule(ctx context.Context, deviceID string, at schedule.TimeOfDay, action schedule.Action) (*schedule.Task, error) {
	if h.schedules == nil {
		return nil, ErrSchedulingDisabled
	}
	if _, err := h.Device(deviceID); err != nil {
		return nil, err
	}
	return h.schedules.AddTask(ctx, deviceID, at, action)
}

// RemoveSchedule deletes a scheduled task.
func (h *Hub) RemoveSchedule(ctx context.Context, taskID string) error {
	if h.schedules == nil {
		return ErrSchedulingDisabled
	}
	return h.schedules.RemoveTask(ctx, taskID)
}

// AddTrigger records a condition/action pair. Triggers are stored and
// listed; nothing evaluates them.
func (h *Hub) AddTrigger(ctx context.Context, condition, deviceID string, action schedule.Action) (*schedule.Trigger, error) {
	if h.schedules == nil {
		return nil, ErrSchedulingDisabled
	}
	if _, err := h.Device(deviceID); err != nil {
		return nil, err
	}
	return h.schedules.AddTrigger(ctx, condition, deviceID, action)
}

// ScheduledTasks returns the stored tasks.
func (h *Hub) ScheduledTasks() []schedule.Task {
	if h.schedules == nil {
		return nil
	}
	return h.schedules.Tasks()
}

// AutomatedTriggers returns the stored triggers.
func (h *Hub) AutomatedTriggers() []schedule.Trigger {
	if h.schedules == nil {
		return nil
	}
	return h.schedules.Triggers()
}
