package service

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are set by common CI systems
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "BUILDKITE", "JENKINS_URL", "TF_BUILD"}

// IsInteractiveEnvironment reports whether stderr is a terminal outside CI
func IsInteractiveEnvironment() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return false
		}
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsInteractiveInput reports whether stdin is a terminal, so prompts can be shown
func IsInteractiveInput() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
