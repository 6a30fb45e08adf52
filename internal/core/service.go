package core

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Service runs the chat write path: validation, moderation, identity
// resolution, append and fan-out, in that fixed order. The earliest failing
// check determines the error the caller sees.
type Service struct {
	rooms    *RoomStore
	registry *Registry
	gate     *Gate
	hub      *Hub
	maxChars int
	loc      *time.Location
	log      *zerolog.Logger
	now      func() time.Time
}

// NewService wires the chat components together.
func NewService(rooms *RoomStore, registry *Registry, gate *Gate, hub *Hub, maxChars int, loc *time.Location, logger *zerolog.Logger) *Service {
	return &Service{
		rooms:    rooms,
		registry: registry,
		gate:     gate,
		hub:      hub,
		maxChars: maxChars,
		loc:      loc,
		log:      logger,
		now:      time.Now,
	}
}

// History returns the room's log, oldest first. Unseen rooms yield an
// empty log and are materialized.
func (s *Service) History(room string) ([]string, error) {
	if strings.TrimSpace(room) == "" {
		return nil, ErrBadRoom
	}
	return s.rooms.History(room), nil
}

// Post validates, stores and fans out one chat message. Validation happens
// before any state mutation; a rejected post leaves the room log and the
// identity registry untouched.
func (s *Service) Post(ctx context.Context, room, deviceID, message string) error {
	if strings.TrimSpace(room) == "" {
		return ErrBadRoom
	}
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > s.maxChars {
		return ErrMessageTooLong
	}
	if strings.TrimSpace(deviceID) == "" {
		return ErrBadDeviceID
	}
	if !s.gate.Allowed(deviceID) {
		return ErrBanned
	}

	username := s.registry.Resolve(ctx, deviceID)

	line := fmt.Sprintf("%s @ %s: %s", username, s.now().In(s.loc).Format("15:04"), sanitize(message))
	chat := s.rooms.Append(room, line)

	delivered := s.hub.Broadcast(Update{Room: room, Chat: chat})
	s.log.Debug().
		Str("room", room).
		Str("username", username).
		Int("subscribers", delivered).
		Msg("message posted")

	return nil
}

// sanitize escapes angle brackets and nothing else. Clients render history
// lines as text; this only blocks the obvious tag injection.
func sanitize(message string) string {
	return htmlEscaper.Replace(message)
}
