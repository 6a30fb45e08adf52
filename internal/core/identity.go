package core

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// NameSource supplies candidate usernames from an external service.
type NameSource interface {
	RandomWord(ctx context.Context) (string, error)
}

// Registry binds device identifiers to display names. Bindings are created
// lazily on first resolution and never destroyed. Names already in use are
// never handed to a second device at generation time; the deterministic
// fallback is accepted even if it collides.
type Registry struct {
	mu     sync.Mutex
	names  map[string]string
	active map[string]struct{}
	source NameSource
	log    *zerolog.Logger
	now    func() time.Time
}

// NewRegistry constructs a registry backed by the given name source.
func NewRegistry(source NameSource, logger *zerolog.Logger) *Registry {
	return &Registry{
		names:  make(map[string]string),
		active: make(map[string]struct{}),
		source: source,
		log:    logger,
		now:    time.Now,
	}
}

// Resolve returns the username bound to deviceID, generating and binding
// one if the device is unseen. Resolution always succeeds: failures of the
// name source are swallowed and the fallback name is used instead.
//
// The external call runs outside the lock, so two concurrent first posts
// from one device may both generate a name; the later bind wins and both
// calls succeed.
func (r *Registry) Resolve(ctx context.Context, deviceID string) string {
	r.mu.Lock()
	if name, ok := r.names[deviceID]; ok {
		r.mu.Unlock()
		return name
	}
	r.mu.Unlock()

	name := ""
	word, err := r.source.RandomWord(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("naming service failed, using fallback username")
	} else {
		r.mu.Lock()
		if _, taken := r.active[word]; !taken {
			name = word
		}
		r.mu.Unlock()
	}

	if name == "" {
		name = r.fallbackName(deviceID)
	}

	r.mu.Lock()
	r.names[deviceID] = name
	r.active[name] = struct{}{}
	r.mu.Unlock()

	return name
}

// fallbackName derives a deterministic username from the device identifier
// and the last four digits of the current unix-millisecond clock.
func (r *Registry) fallbackName(deviceID string) string {
	prefix := deviceID
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	millis := strconv.FormatInt(r.now().UnixMilli(), 10)
	if len(millis) > 4 {
		millis = millis[len(millis)-4:]
	}

	return "user_" + prefix + millis
}
