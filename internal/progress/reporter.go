package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while pages are exported. Update may
// be called from several goroutines.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter, or a CIReporter if the CI
// environment variable is set.
func NewReporter(description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr, Description: description}
	}
	return &TerminalReporter{Description: description}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	Description string

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(r.Description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out         io.Writer
	Description string

	mu    sync.Mutex
	total int
}

func (r *CIReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	fmt.Fprintf(r.Out, "%s: %d pages\n", r.Description, total)
}

func (r *CIReporter) Update(current int, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Out, "%s: done\n", r.Description)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
