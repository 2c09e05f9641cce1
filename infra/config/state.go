package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CrestNiraj12/netfeed/domain"
)

// UIState is the last committed feed position, restored on next start.
type UIState struct {
	View string `json:"view"`
	Page int    `json:"page"`
}

// ViewState converts to a domain state, falling back to ("all", 1)
// when the saved values are unusable.
func (s UIState) ViewState() domain.ViewState {
	vs := domain.ViewState{View: domain.View(s.View), Page: s.Page}
	if !vs.Valid() {
		return domain.InitialViewState()
	}
	return vs
}

// FromViewState captures a committed state for saving.
func FromViewState(vs domain.ViewState) UIState {
	return UIState{View: string(vs.View), Page: vs.Page}
}

// LoadUIState reads the saved state. A missing file yields the zero value.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the state file, creating its directory.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
