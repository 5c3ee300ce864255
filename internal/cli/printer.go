package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes human output with status icons, or JSON when asked.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	quiet  bool
}

type PrinterOption func(*Printer)

func WithJSON(enabled bool) PrinterOption {
	return func(p *Printer) { p.json = enabled }
}

func WithQuiet(enabled bool) PrinterOption {
	return func(p *Printer) { p.quiet = enabled }
}

func WithOutput(out, errOut io.Writer) PrinterOption {
	return func(p *Printer) {
		p.out = out
		p.errOut = errOut
	}
}

func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	okIcon     = color.GreenString("✓")
	failIcon   = color.RedString("✗")
	skipIcon   = color.YellowString("-")
	orphanIcon = color.MagentaString("○")
	infoIcon   = color.CyanString("→")
)

func (p *Printer) silent() bool {
	return p.quiet || p.json
}

func (p *Printer) line(icon, format string, args ...any) {
	if p.silent() {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", icon, fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) { p.line(okIcon, format, args...) }
func (p *Printer) Skip(format string, args ...any)    { p.line(skipIcon, format, args...) }
func (p *Printer) Orphan(format string, args ...any)  { p.line(orphanIcon, format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.line(infoIcon, format, args...) }

// Error is printed even in quiet mode.
func (p *Printer) Error(format string, args ...any) {
	if p.json {
		return
	}
	fmt.Fprintf(p.errOut, "%s %s\n", failIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) KeyValue(key string, value any) {
	if p.silent() {
		return
	}
	fmt.Fprintf(p.out, "  %s: %v\n", color.HiBlackString(key), value)
}

func (p *Printer) Header(title string) {
	if p.silent() {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", color.New(color.Bold, color.FgCyan).Sprint(title))
}

// Result prints v as JSON in JSON mode and does nothing otherwise.
func (p *Printer) Result(v any) error {
	if !p.json {
		return nil
	}
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
