package core

import (
	"testing"
	"time"
)

func mustUpdate(t *testing.T, ch <-chan Update) Update {
	t.Helper()

	select {
	case update := <-ch:
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("expected update not received")
		return Update{}
	}
}

func mustNoUpdate(t *testing.T, ch <-chan Update) {
	t.Helper()

	select {
	case update := <-ch:
		t.Fatalf("unexpected update: %+v", update)
	case <-time.After(50 * time.Millisecond):
	}
}
