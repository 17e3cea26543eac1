package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects how generation progress is rendered.
type uiMode string

const (
	uiModeAuto uiMode = "auto" // TUI when stdout is a terminal
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// readUIMode validates the --ui flag value.
func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", string(uiModeAuto):
		return uiModeAuto, nil
	case string(uiModeOn):
		return uiModeOn, nil
	case string(uiModeOff):
		return uiModeOff, nil
	}
	return "", fmt.Errorf("unknown --ui mode %q: use auto, on or off", value)
}

// shouldUseTUI decides whether the Bubble Tea progress view runs.
func shouldUseTUI(mode uiMode) bool {
	if mode == uiModeAuto {
		return isTerminal(os.Stdout)
	}
	return mode == uiModeOn
}
