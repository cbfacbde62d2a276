package export

import (
	"path/filepath"
	"strings"
)

// Kind identifies one exportable resource collection.
type Kind string

const (
	KindPrompt         Kind = "prompt"
	KindHours          Kind = "hours-of-operation"
	KindQueue          Kind = "queue"
	KindRoutingProfile Kind = "routing-profile"
	KindFlowModule     Kind = "contact-flow-module"
	KindFlow           Kind = "contact-flow"
)

// Skippable reports whether per-item failures of this kind may be demoted to
// a skip under skip-on-error mode. Only flows and modules qualify; everything
// else is a foundational resource flows depend on.
func (k Kind) Skippable() bool {
	return k == KindFlowModule || k == KindFlow
}

// Manifest file name per kind.
var manifestNames = map[Kind]string{
	KindPrompt:         "prompts.json",
	KindHours:          "hours.json",
	KindQueue:          "queues.json",
	KindRoutingProfile: "routings.json",
	KindFlowModule:     "modules.json",
	KindFlow:           "flows.json",
}

// Detail file prefix per kind. Routing profiles additionally write a
// "routingQs" file for their queue associations.
var detailPrefixes = map[Kind]string{
	KindHours:          "hour",
	KindQueue:          "queue",
	KindRoutingProfile: "routing",
	KindFlowModule:     "module",
	KindFlow:           "flow",
}

const routingQueuesPrefix = "routingQs"

// manifestPath returns the path of the kind's summary manifest under dir.
func manifestPath(dir string, kind Kind) string {
	return filepath.Join(dir, manifestNames[kind])
}

// detailPath maps a kind and resource name to its deterministic detail file
// path. Two same-kind resources sharing a name collide; last writer wins
// (the service does not guarantee name uniqueness).
func detailPath(dir string, kind Kind, name string) string {
	return filepath.Join(dir, detailPrefixes[kind]+"_"+name+".json")
}

// routingQueuesPath maps a routing profile name to its queue-association file.
func routingQueuesPath(dir, name string) string {
	return filepath.Join(dir, routingQueuesPrefix+"_"+name+".json")
}

// SplitDest splits the destination argument into the output directory and
// the instance alias: the argument is either a bare alias or a path whose
// basename is the alias.
func SplitDest(arg string) (dir, alias string) {
	dir = filepath.Clean(strings.TrimSpace(arg))
	return dir, filepath.Base(dir)
}

// LogPath returns the run log file path, a sibling of the output directory.
func LogPath(dir string) string {
	return dir + ".log"
}
