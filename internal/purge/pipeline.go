package purge

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/config"
	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
	"github.com/lakshaymaurya-felt/vendorkill/internal/scan"
	"github.com/lakshaymaurya-felt/vendorkill/internal/selector"
	"github.com/lakshaymaurya-felt/vendorkill/internal/ui"
)

// Options describes one run.
type Options struct {
	// Root is the search root; empty means the working directory.
	Root     string
	Settings config.Settings

	// Full prints every entry before the summary.
	Full bool

	// DryRun runs every check but removes nothing.
	DryRun bool
}

// Report is what a run found and did.
type Report struct {
	Root     string
	Catalog  *catalog.Catalog
	Results  []Result
	Warnings []error
	Volume   *core.VolumeReport
}

// Pipeline wires discovery, selection and deletion together.
type Pipeline struct {
	FS      core.FileSystem
	Gateway selector.Gateway
	Out     io.Writer
	Log     *slog.Logger
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Log
}

// Discover scans root and builds the catalog. It never prompts.
func (p *Pipeline) Discover(ctx context.Context, opts Options) (*Report, error) {
	root, err := scan.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	s := opts.Settings
	scanner := scan.NewScanner(p.FS, scan.Options{
		Marker:    s.Marker,
		Manifests: s.Manifests,
		MaxDepth:  s.MaxDepth,
		Exclude:   s.Exclude,
		Jobs:      s.Jobs,
	}, p.logger())

	sized, err := scanner.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	return &Report{
		Root:     root,
		Catalog:  catalog.Build(sized),
		Warnings: scanner.Warnings(),
	}, nil
}

// Run performs a full interactive run: discover, show, select, delete.
// Fatal conditions are returned as errors; everything else ends up in the
// report and the printed output.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Report, error) {
	marker := opts.Settings.Marker

	root, err := scan.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	opts.Root = root
	ui.Header(p.Out, root, marker)

	report, err := p.Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	cat := report.Catalog
	if cat.Empty() {
		ui.Warnings(p.Out, report.Warnings)
		ui.NoneFound(p.Out, marker)
		return report, nil
	}

	summary := cat.Summary()
	if opts.Full {
		// Aggregate first, then the listing, then the aggregate again.
		ui.Summary(p.Out, marker, summary)
		ui.Detail(p.Out, cat.Entries())
	}
	ui.Summary(p.Out, marker, summary)
	ui.Warnings(p.Out, report.Warnings)
	fmt.Fprintln(p.Out)

	keys, err := p.Gateway.Select(ctx, fmt.Sprintf("Select %s directories to delete", marker), cat.Options())
	if err != nil {
		if !stderrors.Is(err, selector.ErrCancelled) {
			return nil, err
		}
		p.logger().Debug("selection cancelled")
		keys = nil
	}

	selected, err := cat.Resolve(keys)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		ui.NothingSelected(p.Out)
		ui.Thanks(p.Out)
		return report, nil
	}

	before, measured := uint64(0), false
	if !opts.DryRun {
		before, measured = core.MeasureFree(ctx, p.FS, report.Root)
	}

	executor := NewExecutor(p.FS, opts.DryRun, Ancestors(report.Root), p.logger())
	report.Results = executor.Delete(ctx, selected)
	for _, r := range report.Results {
		if r.Deleted {
			ui.Deleted(p.Out, r.Entry, opts.DryRun)
			continue
		}
		ui.Failed(p.Out, r.Entry, r.Err)
		report.Warnings = append(report.Warnings, r.Err)
	}

	count, freed := Totals(report.Results)
	ui.Reclaimed(p.Out, count, freed, opts.DryRun)

	if measured && count > 0 {
		if after, ok := core.MeasureFree(ctx, p.FS, report.Root); ok {
			report.Volume = &core.VolumeReport{Path: report.Root, Before: before, After: after}
			ui.Volume(p.Out, *report.Volume)
		}
	}

	ui.Thanks(p.Out)
	return report, nil
}
