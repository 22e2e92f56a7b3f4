package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/hearth-core/internal/schedule"
)

// createScheduleRequest is the payload for POST /schedules.
type createScheduleRequest struct {
	DeviceID string `json:"device_id"`
	At       string `json:"at"` // "HH:MM", 24-hour
	Command  string `json:"command"`
	Value    *int   `json:"value,omitempty"`
}

// createTriggerRequest is the payload for POST /triggers.
type createTriggerRequest struct {
	Condition string `json:"condition"`
	DeviceID  string `json:"device_id"`
	Command   string `json:"command"`
	Value     *int   `json:"value,omitempty"`
}

// handleListSchedules returns all scheduled tasks.
func (s *Server) handleListSchedules(w http.ResponseWriter, _ *http.Request) {
	tasks := s.hub.ScheduledTasks()
	writeJSON(w, http.StatusOK, map[string]any{
		"schedules": tasks,
		"count":     len(tasks),
	})
}

// handleCreateSchedule registers a time-of-day task for a device.
func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	at, err := schedule.ParseTimeOfDay(req.At)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	action := schedule.Action{
		Command: schedule.CommandName(req.Command),
		Value:   req.Value,
	}
	task, err := s.hub.SetSchedule(r.Context(), req.DeviceID, at, action)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// handleDeleteSchedule removes a scheduled task.
func (s *Server) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.hub.RemoveSchedule(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleListTriggers returns all automated triggers.
func (s *Server) handleListTriggers(w http.ResponseWriter, _ *http.Request) {
	triggers := s.hub.AutomatedTriggers()
	writeJSON(w, http.StatusOK, map[string]any{
		"triggers": triggers,
		"count":    len(triggers),
	})
}

// handleCreateTrigger registers a condition-to-action rule. Triggers are
// stored and listed; nothing evaluates conditions yet.
func (s *Server) handleCreateTrigger(w http.ResponseWriter, r *http.Request) {
	var req createTriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	if req.Condition == "" {
		writeBadRequest(w, "condition is required")
		return
	}

	action := schedule.Action{
		Command: schedule.CommandName(req.Command),
		Value:   req.Value,
	}
	trigger, err := s.hub.AddTrigger(r.Context(), req.Condition, req.DeviceID, action)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, trigger)
}
