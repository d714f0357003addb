package tui

import (
	"fmt"
	"strings"

	"github.com/thruflo/onboard/internal/viewmodel"
)

const estimateWidth = 12

// DisplayOrder flattens the category groups into the order the checklist
// shows them. The cursor indexes this slice.
func DisplayOrder(state viewmodel.UIState) []viewmodel.StepState {
	var out []viewmodel.StepState
	for _, g := range state.CategoryGroups() {
		out = append(out, g.Steps...)
	}
	return out
}

// ChecklistView renders every step grouped by category, with a progress
// bar and the next incomplete step.
type ChecklistView struct{}

// Render renders the checklist into at most height lines. The step list
// scrolls to keep the cursor visible.
func (v *ChecklistView) Render(state viewmodel.UIState, cursor int, status string, width, height int) []string {
	if width < 30 {
		width = 30
	}
	innerWidth := width - 4

	if state.IsLoading {
		return BoxWithContent(width, []string{
			Style("Intern Onboarding", Bold),
			"",
			Style("Loading progress...", Dim),
		})
	}

	header := []string{Style("Intern Onboarding", Bold)}
	header = append(header, fmt.Sprintf("%s  %d/%d complete",
		ProgressBar(state.ProgressPercentage(), min(innerWidth-16, 40)),
		state.CompletedCount(), len(state.Steps)))
	if next, ok := state.NextIncompleteStep(); ok {
		header = append(header, "Next: "+next.Title)
	} else {
		header = append(header, Style("All steps complete!", FgGreen, Bold))
	}
	header = append(header, "")

	var footer []string
	footer = append(footer, "")
	if status != "" {
		footer = append(footer, Style(status, FgRed))
	}
	footer = append(footer, Style("[↑↓] move [enter] details [space] done [c]urrent [n]ext [q]uit", Dim))

	body, cursorLine := v.body(state, cursor, innerWidth)

	// Two lines for the box borders.
	available := height - len(header) - len(footer) - 2
	if available > 0 && len(body) > available {
		start := cursorLine - available/2
		start = max(0, min(start, len(body)-available))
		body = body[start : start+available]
	}

	content := make([]string, 0, len(header)+len(body)+len(footer))
	content = append(content, header...)
	content = append(content, body...)
	content = append(content, footer...)
	return BoxWithContent(width, content)
}

// body returns the grouped step lines and the line index of the cursor.
func (v *ChecklistView) body(state viewmodel.UIState, cursor, innerWidth int) ([]string, int) {
	var (
		lines      []string
		cursorLine int
		index      int
	)
	for gi, g := range state.CategoryGroups() {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, CategoryHeader(g.Category))
		for _, step := range g.Steps {
			if index == cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, stepLine(step, index == cursor, innerWidth))
			index++
		}
	}
	return lines, cursorLine
}

func stepLine(step viewmodel.StepState, selected bool, innerWidth int) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	check := "[ ]"
	if step.IsCompleted {
		check = Style("[x]", FgGreen)
	}

	title := step.Title
	if step.IsCurrent {
		title += " (current)"
	}

	left := PadOrTruncate(marker+check+" "+title, innerWidth-estimateWidth)
	line := left + RightAlign(step.EstimatedTime, estimateWidth)
	if selected {
		return Style(StripAnsi(line), Reverse)
	}
	if step.IsCompleted {
		return Style(StripAnsi(line), Dim)
	}
	return line
}

// DetailView renders one step's description and resources.
type DetailView struct{}

// Render renders the detail view. found is false when the selected id is
// not in the catalog.
func (v *DetailView) Render(step viewmodel.StepState, found bool, status string, width int) []string {
	if width < 30 {
		width = 30
	}
	innerWidth := width - 4

	if !found {
		return BoxWithContent(width, []string{
			Style("Step not found", FgRed, Bold),
			"",
			Style("[esc] back", Dim),
		})
	}

	var content []string
	content = append(content, Style(step.Title, Bold))
	content = append(content, CategoryHeader(step.Category)+"  "+Style(step.EstimatedTime, Dim))

	statusText := "Not started"
	switch {
	case step.IsCompleted:
		statusText = Style("Completed", FgGreen)
	case step.IsCurrent:
		statusText = Style("In progress", FgYellow)
	}
	content = append(content, "Status: "+statusText)
	content = append(content, "")

	content = append(content, WrapText(step.Description, innerWidth)...)

	if len(step.Resources) > 0 {
		content = append(content, "")
		content = append(content, Style("Resources", Bold))
		for _, r := range step.Resources {
			link := Style("no link", FgBrightBlack)
			if r.HasLink() {
				link = r.URL
			}
			content = append(content, fmt.Sprintf("- %s (%s)", r.Title, r.Type))
			content = append(content, "  "+link)
		}
	}

	content = append(content, "")
	if status != "" {
		content = append(content, Style(status, FgRed))
	}

	keys := []string{"[esc] back"}
	if !step.IsCompleted {
		keys = append(keys, "[space] mark done")
	}
	if !step.IsCurrent {
		keys = append(keys, "[c] set current")
	}
	content = append(content, Style(strings.Join(keys, " "), Dim))

	return BoxWithContent(width, content)
}
