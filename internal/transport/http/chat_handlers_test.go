package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/vovakirdan/borderchat-server/internal/config"
)

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t, nil, nil)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestGetHistoryUnseenRoom(t *testing.T) {
	ts := startTestServer(t, nil, nil)

	resp, err := ts.Client().Get(ts.URL + "/api/chat/north")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var out HistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Chat) != 0 {
		t.Fatalf("expected empty chat, got %v", out.Chat)
	}
}

func TestPostThenGet(t *testing.T) {
	ts := startTestServer(t, nil, nil, "eagle", "tiger")

	for i := 0; i < 2; i++ {
		body := bytes.NewBufferString(`{"message":"hi","deviceId":"abc123"}`)
		resp, err := ts.Client().Post(ts.URL+"/api/chat/north", "application/json", body)
		if err != nil {
			t.Fatalf("post %d failed: %v", i, err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("post %d: unexpected status %d", i, resp.StatusCode)
		}

		var out MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode post response: %v", err)
		}
		resp.Body.Close()
		if out.Message != "Message sent successfully" {
			t.Fatalf("unexpected response message: %q", out.Message)
		}
	}

	resp, err := ts.Client().Get(ts.URL + "/api/chat/north")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer resp.Body.Close()

	var out HistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(out.Chat) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out.Chat))
	}
	// Same device, so both lines carry the first generated username.
	for _, line := range out.Chat {
		if !strings.HasPrefix(line, "eagle @ ") {
			t.Fatalf("unexpected line: %q", line)
		}
	}
}

func TestPostErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty message",
			body:       `{"message":"","deviceId":"abc123"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid or missing message",
		},
		{
			name:       "whitespace message",
			body:       `{"message":"   ","deviceId":"abc123"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid or missing message",
		},
		{
			name:       "message too long",
			body:       fmt.Sprintf(`{"message":%q,"deviceId":"abc123"}`, strings.Repeat("x", 51)),
			wantStatus: http.StatusBadRequest,
			wantError:  "Message too long",
		},
		{
			name:       "missing deviceId",
			body:       `{"message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid or missing deviceId",
		},
		{
			name:       "banned device",
			body:       `{"message":"hi","deviceId":"bad-guy"}`,
			wantStatus: http.StatusForbidden,
			wantError:  "You have been banned from the chat",
		},
		{
			name:       "malformed json",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid or missing message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := startTestServer(t, []string{"bad-guy"}, nil, "eagle")

			resp, err := ts.Client().Post(ts.URL+"/api/chat/north", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("post failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("want status %d, got %d", tt.wantStatus, resp.StatusCode)
			}

			var out ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if out.Error != tt.wantError {
				t.Fatalf("want error %q, got %q", tt.wantError, out.Error)
			}
		})
	}
}

func TestBannedPostLeavesHistoryEmpty(t *testing.T) {
	ts := startTestServer(t, []string{"bad-guy"}, nil, "eagle")

	resp, err := ts.Client().Post(ts.URL+"/api/chat/north", "application/json",
		strings.NewReader(`{"message":"hi","deviceId":"bad-guy"}`))
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403, got %d", resp.StatusCode)
	}

	get, err := ts.Client().Get(ts.URL + "/api/chat/north")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer get.Body.Close()

	var out HistoryResponse
	if err := json.NewDecoder(get.Body).Decode(&out); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(out.Chat) != 0 {
		t.Fatalf("banned post reached the log: %v", out.Chat)
	}
}

func TestPostRateLimit(t *testing.T) {
	ts := startTestServer(t, nil, func(cfg *config.Config) {
		cfg.PostRateLimit = 1
	}, "eagle")

	first, err := ts.Client().Post(ts.URL+"/api/chat/north", "application/json",
		strings.NewReader(`{"message":"hi","deviceId":"abc123"}`))
	if err != nil {
		t.Fatalf("first post failed: %v", err)
	}
	first.Body.Close()
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("first post: want 201, got %d", first.StatusCode)
	}

	second, err := ts.Client().Post(ts.URL+"/api/chat/north", "application/json",
		strings.NewReader(`{"message":"hi again","deviceId":"abc123"}`))
	if err != nil {
		t.Fatalf("second post failed: %v", err)
	}
	second.Body.Close()
	if second.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("second post: want 429, got %d", second.StatusCode)
	}
}
