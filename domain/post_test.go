package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAuthorInitial(t *testing.T) {
	if got := (Author{Username: "alice"}).Initial(); got != "A" {
		t.Fatalf("unexpected initial: %q", got)
	}
	if got := (Author{Username: "émile"}).Initial(); got != "É" {
		t.Fatalf("unexpected unicode initial: %q", got)
	}
	if got := (Author{}).Initial(); got != "?" {
		t.Fatalf("empty username should fall back: %q", got)
	}
}

func TestPostTime(t *testing.T) {
	p := Post{Timestamp: "Mar 04 2025, 01:30 PM"}
	ts := p.Time()
	if ts.IsZero() || ts.Hour() != 13 || ts.Minute() != 30 || ts.Day() != 4 {
		t.Fatalf("unexpected parsed time: %v", ts)
	}
	if !(Post{Timestamp: "yesterday"}).Time().IsZero() {
		t.Fatalf("bad timestamp must parse to zero")
	}
}

func TestPageIndicator(t *testing.T) {
	if got := (Page{CurrentPage: 2, NumPages: 7}).Indicator(); got != "2 of 7" {
		t.Fatalf("unexpected indicator: %q", got)
	}
}

func TestProfileFollowState(t *testing.T) {
	yes := true
	if (Profile{}).CanFollow() {
		t.Fatalf("nil is_following must suppress follow control")
	}
	p := Profile{IsFollowing: &yes}
	if !p.CanFollow() || !p.Followed() {
		t.Fatalf("expected followable and followed")
	}
}

func TestAPIError(t *testing.T) {
	err := fmt.Errorf("liking post: %w", &APIError{Method: "POST", Path: "/like/1", Status: http.StatusForbidden, Message: "nope", Structured: true})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("403 should unwrap to ErrUnauthorized")
	}
	if got := ErrorText(err); got != "nope" {
		t.Fatalf("expected structured message, got %q", got)
	}

	raw := &APIError{Method: "GET", Path: "/posts/all/", Status: 500, Message: "<html>", Structured: false}
	if got := ErrorText(raw); got != raw.Error() {
		t.Fatalf("unstructured errors log the full error: %q", got)
	}
	if errors.Is(raw, ErrUnauthorized) {
		t.Fatalf("500 must not look like an auth failure")
	}
}
