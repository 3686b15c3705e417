// Package user names the local operator recorded in save history
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvVar overrides the recorded name, e.g. for shared service accounts
const EnvVar = "PAGELAYOUT_USER"

// Name returns who is running the command. It tries, in order:
// 1. PAGELAYOUT_USER
// 2. user.Current() from the OS
// 3. USER environment variable
// 4. "unknown" so the value is never empty
func Name() string {
	if name := strings.TrimSpace(os.Getenv(EnvVar)); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name
	}
	return "unknown"
}
