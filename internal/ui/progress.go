package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows which test binary is running and how many have passed
// or failed so far
type ProgressBar struct {
	bar      *progressbar.ProgressBar
	colorize bool
	current  string
	passed   int
	failed   int
}

// NewProgressBar creates a progress bar for count binaries, normally on stderr
func NewProgressBar(count int, w io.Writer, colorize bool) *ProgressBar {
	p := &ProgressBar{colorize: colorize}
	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(p.description()),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        p.paint(color.FgCyan, "█"),
			SaucerHead:    p.paint(color.FgCyan, "█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return p
}

func (p *ProgressBar) paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if p.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func (p *ProgressBar) description() string {
	name := "waiting"
	if p.current != "" {
		name = p.current
	}
	return p.paint(color.FgCyan, fmt.Sprintf("%-24s ", name)) +
		p.paint(color.FgGreen, fmt.Sprintf("passed: %d", p.passed)) +
		" | " +
		p.paint(color.FgRed, fmt.Sprintf("failed: %d", p.failed))
}

// Running shows name as the binary currently executing
func (p *ProgressBar) Running(name string) {
	p.current = name
	p.bar.Describe(p.description())
}

// Record counts one finished binary
func (p *ProgressBar) Record(success bool) {
	if success {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(p.description())
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.current = "done"
	p.bar.Describe(p.description())
	_ = p.bar.Finish()
}
