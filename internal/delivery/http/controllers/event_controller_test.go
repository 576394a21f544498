package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"groupnest/internal/delivery/http/helpers"
	"groupnest/internal/delivery/http/middleware"
	"groupnest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr  error
	lastCreateEvent *domain.Event
	eventsByGroup   map[string][]*domain.EventWithCreator // groupID -> events to return
	listErr         error
	lastListGroupID string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreateEvent = event
	if f.createEventErr != nil {
		return f.createEventErr
	}
	event.ID = "ev-1"
	return nil
}

func (f *fakeEventService) ListEventsByGroup(ctx context.Context, groupID string) ([]*domain.EventWithCreator, error) {
	f.lastListGroupID = groupID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.eventsByGroup[groupID], nil
}

func newCreateRequest(t *testing.T, groupID string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "http://test/events/group/"+groupID, bytes.NewReader(raw))
	req.SetPathValue("groupID", groupID)
	return req
}

func TestEventController_CreateEvent(t *testing.T) {
	date := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := newCreateRequest(t, "group-1", CreateEventRequest{
			Type:        "Birthday",
			Title:       "Jane's 30th",
			Description: "cake and music",
			Date:        date,
			UserID:      "user-9",
		})
		rr := httptest.NewRecorder()
		ctrl.CreateEvent(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp CreateEventResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Status)
		require.NotNil(t, resp.Event)
		assert.Equal(t, "ev-1", resp.Event.ID)
		assert.Equal(t, "group-1", resp.Event.GroupID)
		assert.Equal(t, domain.CategoryBirthday, resp.Event.Category)
		assert.Equal(t, "user-9", svc.lastCreateEvent.UserID)
	})

	t.Run("category omitted parses to Custom", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := newCreateRequest(t, "group-1", CreateEventRequest{Title: "Meetup", Date: date, UserID: "user-1"})
		rr := httptest.NewRecorder()
		ctrl.CreateEvent(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, domain.CategoryCustom, svc.lastCreateEvent.Category)
	})

	t.Run("creator falls back to authenticated user", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := newCreateRequest(t, "group-1", CreateEventRequest{Title: "Meetup", Date: date})
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-from-token"))
		rr := httptest.NewRecorder()
		ctrl.CreateEvent(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "user-from-token", svc.lastCreateEvent.UserID)
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})

		req := newCreateRequest(t, "group-1", CreateEventRequest{Date: date, UserID: "u1"})
		rr := httptest.NewRecorder()
		ctrl.CreateEvent(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service failure is a generic server error", func(t *testing.T) {
		svc := &fakeEventService{createEventErr: errors.New("db down")}
		ctrl := NewEventController(testLogger, svc)

		req := newCreateRequest(t, "group-1", CreateEventRequest{Title: "Meetup", Date: date, UserID: "u1"})
		rr := httptest.NewRecorder()
		ctrl.CreateEvent(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var body helpers.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, helpers.MsgServerError, body.Errors)
	})
}

func TestEventController_ListGroupEvents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{eventsByGroup: map[string][]*domain.EventWithCreator{
			"group-1": {
				{Event: domain.Event{ID: "ev-1", GroupID: "group-1", Title: "Picnic"}, CreatorUsername: "jane"},
			},
		}}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/group/group-1", nil)
		req.SetPathValue("groupID", "group-1")
		rr := httptest.NewRecorder()
		ctrl.ListGroupEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ListGroupEventsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Status)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "jane", resp.Events[0].CreatorUsername)
		assert.Equal(t, "group-1", svc.lastListGroupID)
	})

	t.Run("no events is 404", func(t *testing.T) {
		svc := &fakeEventService{listErr: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/group/group-empty", nil)
		req.SetPathValue("groupID", "group-empty")
		rr := httptest.NewRecorder()
		ctrl.ListGroupEvents(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var body helpers.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "No events found for this group.", body.Errors)
	})

	t.Run("backend failure is 500", func(t *testing.T) {
		svc := &fakeEventService{listErr: errors.New("db down")}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "http://test/events/group/group-1", nil)
		req.SetPathValue("groupID", "group-1")
		rr := httptest.NewRecorder()
		ctrl.ListGroupEvents(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
