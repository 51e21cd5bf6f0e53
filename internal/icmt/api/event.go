package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

const (
	MsgEventsFailed       = "Failed to load available events"
	MsgParticipantsFailed = "Failed to load participants"
	MsgHealthFailed       = "Health check failed"
)

// Events retrieves the events currently open for registration
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var data struct {
		Events []Event `json:"events"`
	}
	if err := c.get(ctx, "/api/events", &data, MsgEventsFailed); err != nil {
		return nil, err
	}
	if data.Events == nil {
		return []Event{}, nil
	}
	return data.Events, nil
}

// RegisterParticipant submits a registration for eventID. The returned
// participant is nil when the backend answers without one.
func (c *Client) RegisterParticipant(ctx context.Context, eventID string, sub Submission) (*Participant, error) {
	var data struct {
		Participant *Participant `json:"participant"`
	}
	path := fmt.Sprintf("/api/events/%s/register", url.PathEscape(eventID))
	if err := c.post(ctx, path, sub, &data, MsgRegisterFailed); err != nil {
		return nil, err
	}
	return data.Participant, nil
}

// Participants lists the registrations recorded for an event
func (c *Client) Participants(ctx context.Context, eventID uuid.UUID) ([]Participant, error) {
	var data struct {
		Participants []Participant `json:"participants"`
	}
	path := fmt.Sprintf("/api/events/%s/participants", eventID)
	if err := c.get(ctx, path, &data, MsgParticipantsFailed); err != nil {
		return nil, err
	}
	if data.Participants == nil {
		return []Participant{}, nil
	}
	return data.Participants, nil
}

// Health reports whether the backend and its database are reachable
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", &h, MsgHealthFailed); err != nil {
		return nil, err
	}
	return &h, nil
}
