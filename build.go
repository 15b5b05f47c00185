package logo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Builder regenerates every asset listed in a manifest from scratch.
type Builder struct {
	// Dir is the output directory, created when missing.
	Dir string
	// Manifest defaults to the embedded asset list.
	Manifest *Manifest
	// Processor defaults to DefaultProcessor.
	Processor *Processor
	// Workers bounds the concurrent renders. Defaults to the number of CPUs.
	Workers int
	Logger  *log.Logger
}

// Report lists the files written by a build.
type Report struct {
	Sources []string
	Icons   []string
}

// result holds the relevant information about a rendered icon.
type result struct {
	path string
	size int
	err  error
}

// Build writes the vector sources and renders every icon. Icons are rendered
// concurrently; the first failure stops the remaining work and is returned
// together with the report of the files written so far.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	m := b.Manifest
	if m == nil {
		var err error
		if m, err = DefaultManifest(); err != nil {
			return nil, err
		}
	}
	logger := b.logger()

	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}

	report := &Report{}
	for _, src := range m.Sources {
		dst := filepath.Join(b.Dir, filepath.FromSlash(src.Name))
		if err := writeSource(dst, src.Variant.SVG()); err != nil {
			return report, err
		}
		report.Sources = append(report.Sources, dst)
	}
	if len(m.Sources) > 0 {
		logger.Info("✓ Generated SVG sources")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := b.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	ch := make(chan result)
	icons := produce(ctx, m.Icons)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			b.consumer(ctx, icons, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var firstErr error
	for res := range ch {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		report.Icons = append(report.Icons, res.path)
		logger.Infof("✓ %s (%d×%d)", res.path, res.size, res.size)
	}
	slices.Sort(report.Icons)

	if firstErr != nil {
		return report, firstErr
	}
	if len(report.Icons) < len(m.Icons) {
		// Only an outer cancellation stops the workers without an error.
		return report, context.Cause(ctx)
	}
	return report, nil
}

// produce starts a goroutine sending the icons on the returned channel.
// It stops early in case the context is cancelled.
func produce(ctx context.Context, icons []Icon) <-chan Icon {
	out := make(chan Icon)
	go func() {
		defer close(out)
		for _, icon := range icons {
			select {
			case <-ctx.Done():
				return
			case out <- icon:
			}
		}
	}()
	return out
}

// consumer reads the icons from the channel, renders them and sends the results on res.
func (b *Builder) consumer(ctx context.Context, icons <-chan Icon, res chan<- result) {
	proc := b.Processor
	if proc == nil {
		proc = DefaultProcessor
	}
	for icon := range icons {
		if ctx.Err() != nil {
			return
		}
		dst := filepath.Join(b.Dir, filepath.FromSlash(icon.Name))
		err := proc.RenderIcon(icon.Variant.SVG(), dst, icon.Size, icon.Background)

		select {
		case <-ctx.Done():
			return
		case res <- result{
			path: dst,
			size: icon.Size,
			err:  err,
		}:
		}
	}
}

func writeSource(dst, svg string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(svg), 0644); err != nil {
		return fmt.Errorf("unable to write the vector source: %w", err)
	}
	return nil
}

func (b *Builder) logger() *log.Logger {
	if b.Logger == nil {
		return log.New(io.Discard)
	}
	return b.Logger
}
