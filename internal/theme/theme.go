// Package theme holds the light/dark theme signal and the colour tables the
// engines resolve against it.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTheme = errors.New("theme: unknown theme")

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Parse accepts "dark" or "light" in any case.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) IsDark() bool { return t != Light }

// Background is the colour the surface is cleared to.
func (t Theme) Background() string {
	if t.IsDark() {
		return "#0b1120"
	}
	return "#f8fafc"
}

func (t Theme) Foreground() string {
	if t.IsDark() {
		return "#e2e8f0"
	}
	return "#0f172a"
}

// Secondary is the muted colour used for inactive circuit nodes and edges.
func (t Theme) Secondary() string {
	if t.IsDark() {
		return "#64748b"
	}
	return "#94a3b8"
}
