// Package detector provides environment detection for desktop notifications.
package detector

import (
	"os"

	"go.trai.ch/fold/internal/core/domain"
	"golang.org/x/term"
)

// Environment describes the session fold runs in.
type Environment int

const (
	// EnvInteractive is a developer terminal outside CI.
	EnvInteractive Environment = iota
	// EnvHeadless is CI or a session whose stderr is not a terminal.
	EnvHeadless
)

// DetectEnvironment inspects stderr and the CI environment variable.
func DetectEnvironment() Environment {
	return Classify(os.Getenv("CI"), term.IsTerminal(int(os.Stderr.Fd())))
}

// Classify maps the CI variable and terminal state to an Environment.
func Classify(ci string, isTTY bool) Environment {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return EnvHeadless
	}
	return EnvInteractive
}

// DesktopEnabled applies the configured notify mode to the detected environment.
func DesktopEnabled(mode domain.NotifyMode, env Environment) bool {
	switch mode {
	case domain.NotifyAlways:
		return true
	case domain.NotifyNever:
		return false
	default:
		return env == EnvInteractive
	}
}
