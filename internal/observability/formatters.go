// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/proofcard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMetrics outputs the aggregated evidence metrics for a skill.
func (p *Printer) PrintMetrics(skillName string, metrics types.EvidenceMetrics) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skill:             %s\n", skillName))
	sb.WriteString(fmt.Sprintf("Unique days:       %d\n", metrics.UniqueDays))
	sb.WriteString(fmt.Sprintf("Sessions:          %d\n", metrics.SessionCount))
	sb.WriteString(fmt.Sprintf("Observed sessions: %d\n", metrics.ObservedSessionCount))
	sb.WriteString(fmt.Sprintf("Total minutes:     %d\n", metrics.TotalDurationMinutes))
	sb.WriteString(fmt.Sprintf("Error correction:  %s\n", yesNo(metrics.HasErrorCorrectionCycles)))

	if len(metrics.ActivityTypes) > 0 {
		typesLine := strings.Join(metrics.ActivityTypes, ", ")
		count := len(metrics.ActivityTypes)
		if count > maxItemsToShow {
			typesLine = strings.Join(metrics.ActivityTypes[:maxItemsToShow], ", ")
			typesLine += fmt.Sprintf(" ... and %d more", count-maxItemsToShow)
		}
		sb.WriteString(fmt.Sprintf("Activity types:    %s\n", typesLine))
	}

	p.printBox("EVIDENCE METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements outputs the unlock gate checklist.
func (p *Printer) PrintRequirements(req types.UnlockRequirements) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s Multiple days of practice\n", checkbox(req.MultipleDays)))
	sb.WriteString(fmt.Sprintf("%s Multiple sessions logged\n", checkbox(req.MultipleSessions)))
	sb.WriteString(fmt.Sprintf("%s Observed practice evidence\n", checkbox(req.ObservedEvidence)))
	sb.WriteString(fmt.Sprintf("%s Growth signal\n", checkbox(req.GrowthSignal)))
	sb.WriteString(fmt.Sprintf("%s Consistent activity\n", checkbox(req.Consistency)))

	p.printBox("UNLOCK REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs a human-readable summary of the evaluation result.
func (p *Printer) PrintResult(result types.ProofCardResult) {
	switch r := result.(type) {
	case *types.LockedResult:
		p.printLocked(r)
	case *types.UnlockedResult:
		p.printUnlocked(r)
	}
}

func (p *Printer) printLocked(r *types.LockedResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Days:     %d\n", r.CurrentProgress.DaysCount))
	sb.WriteString(fmt.Sprintf("Sessions: %d\n", r.CurrentProgress.SessionsCount))
	sb.WriteString(fmt.Sprintf("Observed: %s\n", yesNo(r.CurrentProgress.HasObservedEvidence)))

	if len(r.MissingRequirements) > 0 {
		sb.WriteString("\nStill needed:\n")
		for _, msg := range r.MissingRequirements {
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
	}

	p.printBox("PROOF CARD: LOCKED", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printUnlocked(r *types.UnlockedResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Confidence: %.2f (%s)\n", r.ConfidenceScore, r.ConfidenceLevel))
	sb.WriteString(fmt.Sprintf("Trend:      %s\n", r.GrowthTrend))
	sb.WriteString(fmt.Sprintf("Time span:  %s\n", r.TimeSpan))
	sb.WriteString(fmt.Sprintf("Sessions:   %d\n", r.SessionCount))

	if r.EvidenceSummary != "" {
		sb.WriteString("\n")
		sb.WriteString(r.EvidenceSummary)
		sb.WriteString("\n")
	}

	if len(r.ObservedGrowthTrends) > 0 {
		sb.WriteString("\nObserved growth:\n")
		count := min(len(r.ObservedGrowthTrends), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", r.ObservedGrowthTrends[i]))
		}
	}

	p.printBox("PROOF CARD: UNLOCKED", strings.TrimSuffix(sb.String(), "\n"))
}

func checkbox(ok bool) string {
	if ok {
		return "[x]"
	}
	return "[ ]"
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
