// Package batch normalizes a stream of paths, one per line.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/andybalholm/crlf"
	mapset "github.com/deckarep/golang-set"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/pathkit/segpath/internal/pathglob"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var _crlfLiteral = []byte("\r\n")

// Options controls how each line is turned into a path and rendered.
type Options struct {
	Kind          segpath.Kind
	BlockBreakout bool
	Resolve       bool
	// Separator is only used when HasSeparator is set.
	Separator    string
	HasSeparator bool
	// Pattern, when non-empty, drops the paths that do not match it.
	Pattern string
	// Unique drops every rendering already written.
	Unique bool
	// Workers defaults to runtime.NumCPU().
	Workers int
	Logger  hclog.Logger
}

// Summary counts what happened to the input lines.
type Summary struct {
	Read    int
	Written int
	Skipped int
}

type result struct {
	rendered string
	keep     bool
}

// Process reads paths from r and writes their renderings to w, in input order.
// Blank lines, paths that do not match opts.Pattern and, with opts.Unique,
// repeated renderings are skipped. When the
// input uses CRLF line endings so does the output.
//
// A path that fails to match because of a pattern error is skipped and its
// error is collected; the returned error is then a *multierror.Error and the
// remaining paths are still written.
func Process(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Summary, error) {
	var summary Summary
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Pattern != "" {
		if err := pathglob.ValidatePattern(opts.Pattern); err != nil {
			return summary, err
		}
	}

	contents, err := io.ReadAll(r)
	if err != nil {
		return summary, errors.Wrap(err, "reading paths")
	}
	hasCRLF := detectCRLF(contents)

	lines, err := readLines(bytes.NewReader(contents))
	if err != nil {
		return summary, err
	}
	summary.Read = len(lines)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debug("processing paths", "lines", len(lines), "workers", workers, "crlf", hasCRLF)

	results := make([]result, len(lines))
	var mu sync.Mutex
	var matchErrs *multierror.Error

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan int, workers)

	g.Go(func() error {
		defer close(queue)
		for index := range lines {
			select {
			case queue <- index:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for index := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				rendered, keep, err := processLine(lines[index], opts)
				if err != nil {
					mu.Lock()
					matchErrs = multierror.Append(matchErrs, errors.Wrapf(err, "line %d", index+1))
					mu.Unlock()
					continue
				}
				logger.Trace("processed path", "line", index+1, "input", lines[index], "output", rendered, "keep", keep)
				results[index] = result{rendered: rendered, keep: keep}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	var writer io.Writer = w
	if hasCRLF {
		writer = crlf.NewWriter(w)
	}
	buffered := bufio.NewWriter(writer)
	written := mapset.NewThreadUnsafeSet()
	for _, res := range results {
		if !res.keep || (opts.Unique && !written.Add(res.rendered)) {
			summary.Skipped++
			continue
		}
		if _, err := buffered.WriteString(res.rendered + "\n"); err != nil {
			return summary, errors.Wrap(err, "writing paths")
		}
		summary.Written++
	}
	if err := buffered.Flush(); err != nil {
		return summary, errors.Wrap(err, "writing paths")
	}
	if closer, ok := writer.(io.Closer); ok && hasCRLF {
		if err := closer.Close(); err != nil {
			return summary, errors.Wrap(err, "writing paths")
		}
	}

	logger.Debug("processed paths", "read", summary.Read, "written", summary.Written, "skipped", summary.Skipped)
	return summary, matchErrs.ErrorOrNil()
}

func processLine(line string, opts Options) (string, bool, error) {
	if strings.TrimSpace(line) == "" {
		return "", false, nil
	}

	p := segpath.Build[segpath.Immutable](opts.Kind, line, opts.BlockBreakout)
	if opts.Resolve {
		p = p.Resolve()
	}
	if opts.HasSeparator {
		p = p.SetSeparator(opts.Separator)
	}

	if opts.Pattern != "" {
		matches, err := pathglob.Match(opts.Pattern, p)
		if err != nil || !matches {
			return "", false, err
		}
	}
	return p.String(), true, nil
}

// detectCRLF reports whether contents uses CRLF line endings, judging by the
// end of the input or, failing that, by its first line.
func detectCRLF(contents []byte) bool {
	if bytes.HasSuffix(contents, _crlfLiteral) {
		return true
	}
	if bytes.HasSuffix(contents, []byte("\n")) {
		return false
	}
	firstNewline := bytes.IndexByte(contents, '\n')
	if firstNewline > 0 {
		return contents[firstNewline-1] == '\r'
	}
	return false
}

// readLines splits r on `\n`, dropping one `\r` before each break. A `\r`
// anywhere else belongs to the path. Lines have no length limit.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading paths")
		}
	}
}
