// Package calendar reconciles a student's locally derived future
// sessions against a remote calendar, tagged for idempotent re-sync.
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/i-satyam007/IPM/internal/model"
)

// sourceMarker tags every event this tool owns. Reconciliation only
// ever lists, updates or deletes events carrying it.
const sourceMarker = "ipm-tracker"

// DefaultTimezone is the campus timezone used when none is configured.
const DefaultTimezone = "Asia/Kolkata"

// EventsAPI is the slice of the remote calendar the reconciler needs.
// The production implementation is googleEvents; tests supply fakes.
type EventsAPI interface {
	// List returns this tool's events starting at or after timeMin.
	List(ctx context.Context, timeMin time.Time) ([]*gcal.Event, error)
	Insert(ctx context.Context, ev *gcal.Event) error
	Update(ctx context.Context, eventID string, ev *gcal.Event) error
	Delete(ctx context.Context, eventID string) error
}

// googleEvents backs EventsAPI with the Calendar API for one bearer
// token and one calendar.
type googleEvents struct {
	svc        *gcal.Service
	calendarID string
}

// NewEventsAPI builds the Calendar API client for one request's token.
func NewEventsAPI(ctx context.Context, calendarID, accessToken string) (EventsAPI, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("missing access token")
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &googleEvents{svc: svc, calendarID: calendarID}, nil
}

func (g *googleEvents) List(ctx context.Context, timeMin time.Time) ([]*gcal.Event, error) {
	var out []*gcal.Event

	call := g.svc.Events.List(g.calendarID).
		PrivateExtendedProperty("source=" + sourceMarker).
		TimeMin(timeMin.Format(time.RFC3339)).
		SingleEvents(true).
		MaxResults(250)

	err := call.Pages(ctx, func(page *gcal.Events) error {
		out = append(out, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return out, nil
}

func (g *googleEvents) Insert(ctx context.Context, ev *gcal.Event) error {
	if _, err := g.svc.Events.Insert(g.calendarID, ev).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (g *googleEvents) Update(ctx context.Context, eventID string, ev *gcal.Event) error {
	if _, err := g.svc.Events.Update(g.calendarID, eventID, ev).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update event %s: %w", eventID, err)
	}
	return nil
}

func (g *googleEvents) Delete(ctx context.Context, eventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	return nil
}

// Result summarizes one sync run. Count is the number of classes whose
// remote event was written this run.
type Result struct {
	Count    int `json:"count"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Deleted  int `json:"deleted"`
}

// Reconciler applies insert/update/delete operations to converge the
// remote calendar on the local session list.
type Reconciler struct {
	api EventsAPI
	loc *time.Location
	now func() time.Time
}

// NewReconciler creates a reconciler over an events API. An unknown or
// empty timezone falls back to DefaultTimezone, then to UTC.
func NewReconciler(api EventsAPI, timezone string) *Reconciler {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Reconciler{api: api, loc: loc, now: time.Now}
}

// Sync reconciles the user's sessions against the remote calendar.
//
// Remote events are keyed by the session signature stored in their
// private properties. Per future session: cancelled + remote present =>
// delete; cancelled + absent => skip; otherwise update in place when the
// signature exists, insert when it does not. Running twice on unchanged
// input converges: the second run inserts nothing.
//
// Remote mutations run sequentially; the first failing call aborts the
// remainder of the loop with no partial-success bookkeeping.
func (r *Reconciler) Sync(ctx context.Context, sessions []model.ClassSession, courses map[string]model.Course) (Result, error) {
	now := r.now().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)

	remote, err := r.api.List(ctx, now)
	if err != nil {
		return Result{}, err
	}

	bySignature := make(map[string]string, len(remote))
	for _, ev := range remote {
		if ev.ExtendedProperties == nil {
			continue
		}
		if sig := ev.ExtendedProperties.Private["signature"]; sig != "" {
			bySignature[sig] = ev.Id
		}
	}

	var res Result
	for _, s := range sessions {
		date, ok := ParseSheetDate(s.Date, r.loc)
		if !ok || date.Before(today) {
			continue
		}

		sig := s.Signature()

		if s.IsCancelled {
			id, exists := bySignature[sig]
			if !exists {
				continue
			}
			if err := r.api.Delete(ctx, id); err != nil {
				return res, err
			}
			delete(bySignature, sig)
			res.Deleted++
			continue
		}

		ev, ok := buildEvent(s, courses[s.CourseCode], date, r.loc)
		if !ok {
			continue // slot has no parseable start time
		}

		if id, exists := bySignature[sig]; exists {
			if err := r.api.Update(ctx, id, ev); err != nil {
				return res, err
			}
			res.Updated++
		} else {
			if err := r.api.Insert(ctx, ev); err != nil {
				return res, err
			}
			res.Inserted++
		}
		res.Count++
	}

	return res, nil
}

// buildEvent constructs the remote event body for one session.
func buildEvent(s model.ClassSession, course model.Course, date time.Time, loc *time.Location) (*gcal.Event, bool) {
	start, end, ok := slotTimes(date, s.TimeSlot)
	if !ok {
		return nil, false
	}

	name := course.Name
	if name == "" {
		name = "Class"
	}

	section := s.Section
	if section == "" {
		section = "Common"
	}

	return &gcal.Event{
		Summary:     fmt.Sprintf("%s: %s", s.CourseCode, name),
		Description: fmt.Sprintf("Session %s | Section: %s", s.SessionNumber, section),
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: map[string]string{
				"source":    sourceMarker,
				"signature": s.Signature(),
			},
		},
	}, true
}
