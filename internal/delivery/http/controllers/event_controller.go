package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"groupnest/internal/delivery/http/helpers"
	"groupnest/internal/delivery/http/middleware"
	"groupnest/internal/domain"
)

// CreateEventRequest is the request body for POST /events/group/{groupID}.
// Field names follow the public API contract.
type CreateEventRequest struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"userId"`
	GroupID     string    `json:"groupId"`
}

// Validate implements Validator. Returns error messages for required fields.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	return errs
}

// CreateEventResponse is the success envelope for POST /events/group/{groupID} (201).
type CreateEventResponse struct {
	Status bool          `json:"status"`
	Event  *domain.Event `json:"event"`
}

// ListGroupEventsResponse is the success envelope for GET /events/group/{groupID} (200).
type ListGroupEventsResponse struct {
	Status bool                       `json:"status"`
	Events []*domain.EventWithCreator `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a group event
// @Description Creates an event for the group and schedules a notification email to every group member one day before the event date. Category defaults to Custom when type is omitted or unrecognized.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse "Access denied"
// @Failure 500 {object} helpers.ErrorResponse "Server error"
// @Router /events/group/{groupID} [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing groupID")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID := req.UserID
	if userID == "" {
		// Fall back to the authenticated caller as the event creator.
		id, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			helpers.WriteError(w, http.StatusForbidden, helpers.MsgAccessDenied)
			return
		}
		userID = id
	}

	event := domain.NewEvent(userID, groupID, req.Title, req.Description, req.Date, domain.ParseEventCategory(req.Type))
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, helpers.MsgServerError)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{Status: true, Event: event})
}

// ListGroupEvents godoc
// @Summary List a group's events
// @Description Returns all events for the group with the creator's username attached. A group with zero events is a 404, not an empty list.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Success 200 {object} controllers.ListGroupEventsResponse
// @Failure 403 {object} helpers.ErrorResponse "Access denied"
// @Failure 404 {object} helpers.ErrorResponse "No events found for this group."
// @Failure 500 {object} helpers.ErrorResponse "Server error"
// @Router /events/group/{groupID} [get]
func (c *EventController) ListGroupEvents(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("groupID")
	if groupID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing groupID")
		return
	}
	events, err := c.Service.ListEventsByGroup(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "No events found for this group.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, helpers.MsgServerError)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListGroupEventsResponse{Status: true, Events: events})
}
