package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type EventType string

const (
	FlightCreated EventType = "flight.created"
	FlightUpdated EventType = "flight.updated"
	FlightDeleted EventType = "flight.deleted"
	OrderCreated  EventType = "order.created"
	OrderDeleted  EventType = "order.deleted"
	TicketCreated EventType = "ticket.created"
	TicketUpdated EventType = "ticket.updated"
	TicketDeleted EventType = "ticket.deleted"
)

// Entity is the part of the type before the dot.
func (t EventType) Entity() string {
	entity, _, _ := strings.Cut(string(t), ".")
	return entity
}

type Event struct {
	Type       EventType       `json:"type"`
	Entity     string          `json:"entity"`
	EntityID   int64           `json:"entity_id"`
	UserID     int64           `json:"user_id,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent builds an event with data encoded as JSON. A nil data is left empty.
func NewEvent(t EventType, entityID, userID int64, data interface{}) (Event, error) {
	ev := Event{
		Type:       t,
		Entity:     t.Entity(),
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return ev, fmt.Errorf("failed to marshal %s data: %w", t, err)
		}
		ev.Data = raw
	}
	return ev, nil
}

// Key groups events of one entity so they are consumed in order.
func (e Event) Key() string {
	return e.Entity + ":" + strconv.FormatInt(e.EntityID, 10)
}

func DecodeEvent(value []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(value, &ev); err != nil {
		return ev, fmt.Errorf("failed to decode event: %w", err)
	}
	return ev, nil
}
