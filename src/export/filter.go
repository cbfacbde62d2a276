package export

import (
	"regexp"
	"sort"
)

// alwaysAdmitPrefix names the stock resources Connect ships with; flows and
// modules carrying it pass the inclusion filter regardless of the configured
// prefix, since environments depend on the defaults being present.
const alwaysAdmitPrefix = "Default "

// NameFilter holds the optional name-prefix predicates applied to resource
// summaries. Empty prefixes disable the corresponding predicate.
type NameFilter struct {
	// IncludePrefix keeps only matching names. Applied to contact flows
	// and modules only; "Default "-named items are always admitted.
	IncludePrefix string
	// ExcludePrefix drops matching names. Applied to hours, queues,
	// routing profiles, modules, and flows.
	ExcludePrefix string
}

// Active reports whether any predicate is configured, for progress output.
func (f NameFilter) Active() bool {
	return f.IncludePrefix != "" || f.ExcludePrefix != ""
}

// filterNames applies the exclusion predicate, and the inclusion predicate
// when withInclude is set, then re-sorts the survivors by name (ordinal).
// name extracts the resource name from a summary. An empty result is valid.
func filterNames[S any](summaries []S, name func(S) string, f NameFilter, withInclude bool) []S {
	out := make([]S, 0, len(summaries))
	var exclude, include *regexp.Regexp
	if f.ExcludePrefix != "" {
		exclude = regexp.MustCompile("^(" + regexp.QuoteMeta(f.ExcludePrefix) + ")")
	}
	if withInclude && f.IncludePrefix != "" {
		include = regexp.MustCompile("^(" + regexp.QuoteMeta(f.IncludePrefix) + "|" + alwaysAdmitPrefix + ").*")
	}
	for _, s := range summaries {
		if exclude != nil && exclude.MatchString(name(s)) {
			continue
		}
		if include != nil && !include.MatchString(name(s)) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return name(out[i]) < name(out[j]) })
	return out
}
