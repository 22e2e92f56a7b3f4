// Package hub is the central device registry and command surface.
//
// Every registered device is wrapped in an access proxy, and every command
// the hub issues travels through that proxy so capability checks apply
// uniformly whether the command came from the API, the MQTT bridge, or the
// scheduler. The hub implements schedule.Dispatcher, translating stored
// action descriptors into proxy calls.
package hub
