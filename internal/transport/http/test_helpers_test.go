package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/borderchat-server/internal/config"
	"github.com/vovakirdan/borderchat-server/internal/core"
)

// seqNamer hands out canned words in order, erroring when exhausted.
type seqNamer struct {
	words []string
}

func (s *seqNamer) RandomWord(_ context.Context) (string, error) {
	if len(s.words) == 0 {
		return "", errors.New("out of words")
	}
	word := s.words[0]
	s.words = s.words[1:]
	return word, nil
}

func startTestServer(t *testing.T, banned []string, mutate func(*config.Config), words ...string) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second
	if mutate != nil {
		mutate(&cfg)
	}

	logger := zerolog.New(nil)
	registry := core.NewRegistry(&seqNamer{words: words}, &logger)
	rooms := core.NewRoomStore(cfg.HistoryLimit)
	hub := core.NewHub(&logger)
	loc := time.FixedZone("BNT", 8*3600)
	svc := core.NewService(rooms, registry, core.NewGate(banned), hub, cfg.MaxMessageChars, loc, &logger)

	server := NewServer(svc, hub, &cfg, &logger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}
