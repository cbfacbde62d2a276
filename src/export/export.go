// Package export implements the traversal that dumps a contact-center
// instance's configuration into a directory of JSON files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"connect-export/src/connectapi"
	"connect-export/src/runlog"
)

// Options configure one export run.
type Options struct {
	// Dest is the instance alias, or a path whose basename is the alias.
	Dest string
	// Force removes an existing output directory instead of refusing.
	Force bool
	// SkipOnError demotes flow/module describe failures and unpublished
	// content from fatal to per-item skips.
	SkipOnError bool
	Filter      NameFilter
}

// Exporter walks the resource kinds of one instance in dependency order.
type Exporter struct {
	client      connectapi.Client
	log         *runlog.Logger
	stdout      io.Writer
	dir         string
	instance    connectapi.Instance
	filter      NameFilter
	skipOnError bool
	written     map[string]bool
	counts      []kindCount
}

type kindCount struct {
	kind     Kind
	exported int
	skipped  int
}

// Run exports the full configuration of the instance named by opts.Dest.
// The kinds run in a fixed order (instance, prompts, hours, queues, routing
// profiles, flow modules, flows) because routing profiles reference queues
// and flows reference modules, prompts, and hours by name at runtime; the
// order documents intended read consistency, no cross-kind dependency is
// enforced in code.
func Run(ctx context.Context, client connectapi.Client, log *runlog.Logger, stdout io.Writer, opts Options) error {
	dir, alias := SplitDest(opts.Dest)
	if _, err := os.Stat(dir); err == nil {
		if !opts.Force {
			return &SetupError{Msg: fmt.Sprintf("output directory %s already exists; rerun with --force to replace it", dir)}
		}
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	log.Call("ListInstances", alias)
	inst, err := client.FindInstanceByAlias(ctx, alias)
	if err != nil {
		log.CallError("ListInstances", alias, err)
		var nf *connectapi.NotFoundError
		if errors.As(err, &nf) {
			return &SetupError{Msg: fmt.Sprintf("instance alias %q not found", alias)}
		}
		return fmt.Errorf("resolve instance %q: %w", alias, err)
	}

	e := &Exporter{
		client:      client,
		log:         log,
		stdout:      stdout,
		dir:         dir,
		instance:    inst,
		filter:      opts.Filter,
		skipOnError: opts.SkipOnError,
		written:     map[string]bool{},
	}
	if err := e.writeInstance(); err != nil {
		return err
	}
	if err := e.exportPrompts(ctx); err != nil {
		return err
	}
	if err := e.exportHours(ctx); err != nil {
		return err
	}
	if err := e.exportQueues(ctx); err != nil {
		return err
	}
	if err := e.exportRoutingProfiles(ctx); err != nil {
		return err
	}
	if err := e.exportFlowModules(ctx); err != nil {
		return err
	}
	if err := e.exportFlows(ctx); err != nil {
		return err
	}
	return e.renderSummary()
}

// writeInstance persists instance.json plus instance.var, the key=value
// fields a migration target needs to resolve references.
func (e *Exporter) writeInstance() error {
	if err := writeJSON(filepath.Join(e.dir, "instance.json"), e.instance); err != nil {
		return err
	}
	vars := fmt.Sprintf("INSTANCE_ALIAS=%s\nINSTANCE_ID=%s\nINSTANCE_ARN=%s\n",
		e.instance.Alias, e.instance.Id, e.instance.Arn)
	return os.WriteFile(filepath.Join(e.dir, "instance.var"), []byte(vars), 0o644)
}

// exportPrompts persists the prompt manifest. Prompts arrive sorted by name
// from the client, take no filters, and have no detail stage.
func (e *Exporter) exportPrompts(ctx context.Context) error {
	e.log.Call("ListPrompts", e.instance.Id)
	prompts, err := e.client.ListPrompts(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListPrompts", e.instance.Id, err)
		return fmt.Errorf("list prompts: %w", err)
	}
	if err := writeJSON(manifestPath(e.dir, KindPrompt), prompts); err != nil {
		return err
	}
	e.reportCount(KindPrompt, len(prompts), false)
	e.counts = append(e.counts, kindCount{kind: KindPrompt, exported: len(prompts)})
	return nil
}

func (e *Exporter) exportHours(ctx context.Context) error {
	e.log.Call("ListHoursOfOperations", e.instance.Id)
	listed, err := e.client.ListHoursOfOperations(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListHoursOfOperations", e.instance.Id, err)
		return fmt.Errorf("list hours of operations: %w", err)
	}
	hours := filterNames(listed, func(h connectapi.HoursSummary) string { return h.Name }, e.filter, false)
	if err := writeJSON(manifestPath(e.dir, KindHours), hours); err != nil {
		return err
	}
	e.reportCount(KindHours, len(hours), true)
	for i, h := range hours {
		e.progress(i+1, len(hours), KindHours, h.Name)
		e.log.Call("DescribeHoursOfOperation", h.Name)
		d, err := e.client.DescribeHoursOfOperation(ctx, e.instance.Id, h.Id)
		if err != nil {
			e.log.CallError("DescribeHoursOfOperation", h.Name, err)
			return fmt.Errorf("describe hours of operation %q: %w", h.Name, err)
		}
		if err := e.writeDetail(KindHours, h.Name, d); err != nil {
			return err
		}
	}
	e.counts = append(e.counts, kindCount{kind: KindHours, exported: len(hours)})
	return nil
}

// exportQueues drops agent queues before filtering: Connect manages one
// per-agent queue internally and they are not user-managed resources.
func (e *Exporter) exportQueues(ctx context.Context) error {
	e.log.Call("ListQueues", e.instance.Id)
	listed, err := e.client.ListQueues(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListQueues", e.instance.Id, err)
		return fmt.Errorf("list queues: %w", err)
	}
	standard := listed[:0:0]
	for _, q := range listed {
		if q.QueueType == connectapi.QueueTypeAgent {
			continue
		}
		standard = append(standard, q)
	}
	queues := filterNames(standard, func(q connectapi.QueueSummary) string { return q.Name }, e.filter, false)
	if err := writeJSON(manifestPath(e.dir, KindQueue), queues); err != nil {
		return err
	}
	e.reportCount(KindQueue, len(queues), true)
	for i, q := range queues {
		e.progress(i+1, len(queues), KindQueue, q.Name)
		e.log.Call("DescribeQueue", q.Name)
		d, err := e.client.DescribeQueue(ctx, e.instance.Id, q.Id)
		if err != nil {
			e.log.CallError("DescribeQueue", q.Name, err)
			return fmt.Errorf("describe queue %q: %w", q.Name, err)
		}
		if err := e.writeDetail(KindQueue, q.Name, d); err != nil {
			return err
		}
	}
	e.counts = append(e.counts, kindCount{kind: KindQueue, exported: len(queues)})
	return nil
}

// exportRoutingProfiles writes two detail files per profile: the profile
// description and its queue associations.
func (e *Exporter) exportRoutingProfiles(ctx context.Context) error {
	e.log.Call("ListRoutingProfiles", e.instance.Id)
	listed, err := e.client.ListRoutingProfiles(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListRoutingProfiles", e.instance.Id, err)
		return fmt.Errorf("list routing profiles: %w", err)
	}
	profiles := filterNames(listed, func(p connectapi.RoutingProfileSummary) string { return p.Name }, e.filter, false)
	if err := writeJSON(manifestPath(e.dir, KindRoutingProfile), profiles); err != nil {
		return err
	}
	e.reportCount(KindRoutingProfile, len(profiles), true)
	for i, p := range profiles {
		e.progress(i+1, len(profiles), KindRoutingProfile, p.Name)
		e.log.Call("DescribeRoutingProfile", p.Name)
		d, err := e.client.DescribeRoutingProfile(ctx, e.instance.Id, p.Id)
		if err != nil {
			e.log.CallError("DescribeRoutingProfile", p.Name, err)
			return fmt.Errorf("describe routing profile %q: %w", p.Name, err)
		}
		if err := e.writeDetail(KindRoutingProfile, p.Name, d); err != nil {
			return err
		}
		e.log.Call("ListRoutingProfileQueues", p.Name)
		qs, err := e.client.ListRoutingProfileQueues(ctx, e.instance.Id, p.Id, connectapi.ListPageCap)
		if err != nil {
			e.log.CallError("ListRoutingProfileQueues", p.Name, err)
			return fmt.Errorf("list queues of routing profile %q: %w", p.Name, err)
		}
		path := routingQueuesPath(e.dir, p.Name)
		if e.written[path] {
			e.log.Collision(path)
		}
		e.written[path] = true
		if err := writeJSON(path, qs); err != nil {
			return err
		}
	}
	e.counts = append(e.counts, kindCount{kind: KindRoutingProfile, exported: len(profiles)})
	return nil
}

func (e *Exporter) exportFlowModules(ctx context.Context) error {
	e.log.Call("ListContactFlowModules", e.instance.Id)
	listed, err := e.client.ListContactFlowModules(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListContactFlowModules", e.instance.Id, err)
		return fmt.Errorf("list contact flow modules: %w", err)
	}
	modules := filterNames(listed, func(m connectapi.FlowModuleSummary) string { return m.Name }, e.filter, true)
	manifest := manifestPath(e.dir, KindFlowModule)
	if err := writeJSON(manifest, modules); err != nil {
		return err
	}
	e.reportCount(KindFlowModule, len(modules), true)
	skipped := 0
	for i, m := range modules {
		e.progress(i+1, len(modules), KindFlowModule, m.Name)
		e.log.Call("DescribeContactFlowModule", m.Name)
		d, err := e.client.DescribeContactFlowModule(ctx, e.instance.Id, m.Id)
		if err == nil && !published(d.Status) {
			err = &NotPublishedError{Kind: KindFlowModule, Name: m.Name, Status: d.Status}
		}
		if err != nil {
			e.log.CallError("DescribeContactFlowModule", m.Name, err)
			if skipAllowed(e.skipOnError, KindFlowModule, m.Name, manifest) {
				if serr := e.skipItem(KindFlowModule, m.Name, manifest, err); serr != nil {
					return serr
				}
				skipped++
				continue
			}
			return fmt.Errorf("describe contact flow module %q: %w; %s", m.Name, err, remediation)
		}
		if err := e.writeDetail(KindFlowModule, m.Name, d); err != nil {
			return err
		}
	}
	e.counts = append(e.counts, kindCount{kind: KindFlowModule, exported: len(modules) - skipped, skipped: skipped})
	return nil
}

func (e *Exporter) exportFlows(ctx context.Context) error {
	e.log.Call("ListContactFlows", e.instance.Id)
	listed, err := e.client.ListContactFlows(ctx, e.instance.Id, connectapi.ListPageCap)
	if err != nil {
		e.log.CallError("ListContactFlows", e.instance.Id, err)
		return fmt.Errorf("list contact flows: %w", err)
	}
	flows := filterNames(listed, func(f connectapi.FlowSummary) string { return f.Name }, e.filter, true)
	manifest := manifestPath(e.dir, KindFlow)
	if err := writeJSON(manifest, flows); err != nil {
		return err
	}
	e.reportCount(KindFlow, len(flows), true)
	skipped := 0
	for i, f := range flows {
		e.progress(i+1, len(flows), KindFlow, f.Name)
		e.log.Call("DescribeContactFlow", f.Name)
		d, err := e.client.DescribeContactFlow(ctx, e.instance.Id, f.Id)
		if err == nil && !published(d.Status) {
			err = &NotPublishedError{Kind: KindFlow, Name: f.Name, Status: d.Status}
		}
		if err != nil {
			e.log.CallError("DescribeContactFlow", f.Name, err)
			if skipAllowed(e.skipOnError, KindFlow, f.Name, manifest) {
				if serr := e.skipItem(KindFlow, f.Name, manifest, err); serr != nil {
					return serr
				}
				skipped++
				continue
			}
			return fmt.Errorf("describe contact flow %q: %w; %s", f.Name, err, remediation)
		}
		if err := e.writeDetail(KindFlow, f.Name, d); err != nil {
			return err
		}
	}
	e.counts = append(e.counts, kindCount{kind: KindFlow, exported: len(flows) - skipped, skipped: skipped})
	return nil
}

// skipItem removes the failed entry from its kind's manifest and carries on.
func (e *Exporter) skipItem(kind Kind, name, manifest string, cause error) error {
	e.log.Skip(string(kind), name, cause.Error())
	color.New(color.FgYellow).Fprintf(e.stdout, "skipping %s %q: %v\n", kind, name, cause)
	return rewriteManifestWithout(manifest, name)
}

func (e *Exporter) writeDetail(kind Kind, name string, v any) error {
	path := detailPath(e.dir, kind, name)
	if e.written[path] {
		e.log.Collision(path)
	}
	e.written[path] = true
	return writeJSON(path, v)
}

func (e *Exporter) reportCount(kind Kind, n int, filterable bool) {
	fmt.Fprintf(e.stdout, "%s: %d summaries\n", kind, n)
	if filterable && e.filter.Active() {
		parts := []string{}
		if e.filter.ExcludePrefix != "" {
			parts = append(parts, fmt.Sprintf("ignore prefix %q", e.filter.ExcludePrefix))
		}
		if e.filter.IncludePrefix != "" && kind.Skippable() {
			parts = append(parts, fmt.Sprintf("include prefix %q", e.filter.IncludePrefix))
		}
		if len(parts) > 0 {
			fmt.Fprintf(e.stdout, "  filters: %s\n", strings.Join(parts, ", "))
		}
	}
}

func (e *Exporter) progress(i, n int, kind Kind, name string) {
	fmt.Fprintf(e.stdout, "[%d/%d] %s %s\n", i, n, kind, name)
}

func (e *Exporter) renderSummary() error {
	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tEXPORTED\tSKIPPED")
	for _, c := range e.counts {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.kind, c.exported, c.skipped)
	}
	return tw.Flush()
}

func published(status string) bool {
	return strings.EqualFold(status, connectapi.StatusPublished)
}
