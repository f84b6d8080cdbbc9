package sixpack

import (
	"fmt"
	"regexp"
)

// validNameRe matches the names accepted by the sixpack server for experiments, alternatives
// and KPIs.
var validNameRe = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9\-_ ]*$`)

// ValidateName returns ErrInvalidName if name would be rejected by the server. kind describes
// the name in the error, e.g. "experiment".
func ValidateName(kind, name string) error {
	if !validNameRe.MatchString(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, name)
	}

	return nil
}
