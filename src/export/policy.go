package export

import "fmt"

// SetupError reports a precondition failure before any resource traversal:
// the output directory already exists without --force, or the instance alias
// does not resolve.
type SetupError struct{ Msg string }

func (e *SetupError) Error() string { return e.Msg }

// NotPublishedError reports a flow or module whose content is not the live,
// exportable version. Treated identically to a transport failure by the
// recovery policy.
type NotPublishedError struct {
	Kind   Kind
	Name   string
	Status string
}

func (e *NotPublishedError) Error() string {
	return fmt.Sprintf("%s %q is not published (status %s)", e.Kind, e.Name, e.Status)
}

// skipAllowed implements the per-item recovery decision: a describe failure
// or unpublished status is demoted from fatal to a per-item skip only when
// skip-on-error mode is enabled, the kind is a contact flow or module, and
// both the resource name and its owning manifest are known.
func skipAllowed(skipOnError bool, kind Kind, name, manifest string) bool {
	return skipOnError && kind.Skippable() && name != "" && manifest != ""
}

// remediation is the guidance printed with a fatal flow/module failure.
const remediation = "publish the resource and its prerequisites (prompts, hours, queues, referenced flows), or rerun with --skip-on-error to export the rest"
