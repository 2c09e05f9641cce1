package domain

import (
	"errors"
	"testing"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{in: "all", want: ViewAll},
		{in: "following", want: ViewFollowing},
		{in: " 42 ", want: View("42")},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "friends", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseView(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidView) {
				t.Fatalf("ParseView(%q): expected ErrInvalidView, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseView(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestViewProfileID(t *testing.T) {
	if _, ok := ViewAll.ProfileID(); ok {
		t.Fatalf("all view must not have a profile id")
	}
	id, ok := ProfileView(42).ProfileID()
	if !ok || id != 42 {
		t.Fatalf("unexpected profile id: %d %v", id, ok)
	}
	if !ViewFollowing.IsFeed() || ProfileView(1).IsFeed() {
		t.Fatalf("IsFeed mismatch")
	}
}

func TestViewState_NextPrevKeepView(t *testing.T) {
	s := ViewState{View: ViewFollowing, Page: 3}
	if n := s.Next(); n.View != ViewFollowing || n.Page != 4 {
		t.Fatalf("next must stay in following: %#v", n)
	}
	if p := s.Prev(); p.View != ViewFollowing || p.Page != 2 {
		t.Fatalf("prev must stay in following: %#v", p)
	}
	if p := InitialViewState().Prev(); p.Page != 1 {
		t.Fatalf("prev must not go below page 1: %#v", p)
	}
	if s.Page != 3 {
		t.Fatalf("next/prev must not mutate the state")
	}
}

func TestViewState_Valid(t *testing.T) {
	if !InitialViewState().Valid() {
		t.Fatalf("initial state must be valid")
	}
	if (ViewState{View: ViewAll, Page: 0}).Valid() {
		t.Fatalf("page 0 must be invalid")
	}
	if (ViewState{View: "nope", Page: 1}).Valid() {
		t.Fatalf("unknown view must be invalid")
	}
}
