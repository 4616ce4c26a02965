// Package names holds the naming rule shared by project validation and
// repo-initialization flows.
package names

import (
	"fmt"
	"regexp"
)

// validName accepts alphanumeric and underscore characters, with a leading
// character that is not an underscore.
var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_]*$`)

// IsValid reports whether name contains only alphanumeric or underscore
// characters and does not start with an underscore. Empty names are invalid.
func IsValid(name string) bool {
	return validName.MatchString(name)
}

// InvalidNameError reports a name that violates the naming rule.
type InvalidNameError struct {
	Subject string // what the name was naming, e.g. "project"
	Name    string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s name %q is not valid: names may only contain alphanumeric characters and underscores, and may not start with an underscore", e.Subject, e.Name)
}
