package core

import "sync"

// RoomStore keeps a bounded message log per room. Rooms are materialized
// lazily on first read or write and live for the process lifetime.
type RoomStore struct {
	mu    sync.Mutex
	limit int
	rooms map[string][]string
}

// NewRoomStore constructs a store that retains at most limit messages per room.
func NewRoomStore(limit int) *RoomStore {
	return &RoomStore{
		limit: limit,
		rooms: make(map[string][]string),
	}
}

// History returns a copy of the room's log, oldest first.
// An unseen room yields an empty log.
func (s *RoomStore) History(room string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[room]; !ok {
		s.rooms[room] = []string{}
	}

	log := s.rooms[room]
	out := make([]string, len(log))
	copy(out, log)
	return out
}

// Append adds a formatted line to the room's log, evicting the oldest
// entries once the limit is exceeded. Append and eviction happen under one
// lock so concurrent posts to the same room cannot interleave. Returns a
// snapshot of the log after the append.
func (s *RoomStore) Append(room, line string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.rooms[room], line)
	if len(log) > s.limit {
		trimmed := make([]string, s.limit)
		copy(trimmed, log[len(log)-s.limit:])
		log = trimmed
	}
	s.rooms[room] = log

	out := make([]string, len(log))
	copy(out, log)
	return out
}
