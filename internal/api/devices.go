package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/hub"
	"github.com/nerrad567/hearth-core/internal/schedule"
)

// deviceResponse is the JSON representation of a registered device.
type deviceResponse struct {
	ID           string              `json:"id"`
	Kind         device.Kind         `json:"kind"`
	Capabilities []device.Capability `json:"capabilities"`
	Status       string              `json:"status"`
}

func newDeviceResponse(p *device.Proxy) deviceResponse {
	return deviceResponse{
		ID:           p.ID(),
		Kind:         p.Kind(),
		Capabilities: device.Capabilities(p.Kind()),
		Status:       p.StatusReport(),
	}
}

// createDeviceRequest is the payload for POST /devices.
//
// Status seeds the initial state ("on"/"off" for lights, "locked"/"unlocked"
// for door locks); Temperature seeds a thermostat setpoint. Both optional.
type createDeviceRequest struct {
	ID          string      `json:"id"`
	Kind        device.Kind `json:"kind"`
	Status      string      `json:"status,omitempty"`
	Temperature *int        `json:"temperature,omitempty"`
}

// commandRequest is the payload for POST /devices/{id}/commands.
type commandRequest struct {
	Command string `json:"command"`
	Value   *int   `json:"value,omitempty"`
}

// handleListDevices returns all registered devices in registration order.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	proxies := s.hub.Devices()
	devices := make([]deviceResponse, 0, len(proxies))
	for _, p := range proxies {
		devices = append(devices, newDeviceResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"devices": devices,
		"count":   len(devices),
	})
}

// handleCreateDevice registers a new device.
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	p, err := s.hub.CreateDevice(req.ID, req.Kind, hub.CreateOptions{
		Status:      req.Status,
		Temperature: req.Temperature,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newDeviceResponse(p))
}

// handleGetDevice returns a single device.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.hub.Device(id)
	if err != nil {
		writeNotFound(w, "device not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, newDeviceResponse(p))
}

// handleDeleteDevice removes a device from the registry.
func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.hub.RemoveDevice(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleDeviceCommand executes a command against a device. Commands go
// through the hub's capability-checked dispatch, so a lock command sent to
// a thermostat is rejected rather than silently ignored.
func (s *Server) handleDeviceCommand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	action := schedule.Action{
		Command: schedule.CommandName(req.Command),
		Value:   req.Value,
	}
	if err := s.hub.Dispatch(r.Context(), id, action); err != nil {
		writeDomainError(w, err)
		return
	}

	p, err := s.hub.Device(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDeviceResponse(p))
}
