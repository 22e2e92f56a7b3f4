package mqtt

import "fmt"

// Topic prefixes for the Hearth MQTT surface.
//
// Device traffic uses the flat scheme: hearth/{category}/{device_id}.
const (
	// TopicPrefix is the base for all Hearth topics.
	TopicPrefix = "hearth"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "hearth/system"
)

// Topics provides builders for Hearth MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	eventTopic := topics.DeviceEvent("light-hall")
//	// Returns: "hearth/event/light-hall"
type Topics struct{}

// DeviceEvent returns the topic device state-change notifications are
// published on.
//
// Example: hearth/event/light-hall
func (Topics) DeviceEvent(deviceID string) string {
	return fmt.Sprintf("%s/event/%s", TopicPrefix, deviceID)
}

// DeviceCommand returns the topic inbound device commands arrive on.
//
// Example: hearth/command/light-hall
func (Topics) DeviceCommand(deviceID string) string {
	return fmt.Sprintf("%s/command/%s", TopicPrefix, deviceID)
}

// DeviceStatus returns the topic for a device's retained status line.
//
// Example: hearth/status/light-hall
func (Topics) DeviceStatus(deviceID string) string {
	return fmt.Sprintf("%s/status/%s", TopicPrefix, deviceID)
}

// HubStatus returns the topic for the hub's combined status report.
//
// Example: hearth/status/report
func (Topics) HubStatus() string {
	return fmt.Sprintf("%s/status/report", TopicPrefix)
}

// SystemStatus returns the system status topic used for online/offline
// announcements and the Last Will message.
//
// Example: hearth/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllDeviceEvents returns a pattern matching all device event topics.
//
// Pattern: hearth/event/+
func (Topics) AllDeviceEvents() string {
	return fmt.Sprintf("%s/event/+", TopicPrefix)
}

// AllDeviceCommands returns a pattern matching all device command topics.
//
// Pattern: hearth/command/+
func (Topics) AllDeviceCommands() string {
	return fmt.Sprintf("%s/command/+", TopicPrefix)
}

// AllTopics returns a pattern matching every Hearth topic.
// Use with caution - this receives ALL traffic.
//
// Pattern: hearth/#
func (Topics) AllTopics() string {
	return "hearth/#"
}
