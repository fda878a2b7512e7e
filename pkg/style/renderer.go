package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/varia-dev/varia/pkg/variants"
)

// ComponentSummary is what the list view shows per component
type ComponentSummary struct {
	Name     string
	Axes     []string
	HasReset bool
	Compound int
}

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderResolution(component string, res variants.Result) string
	RenderIssues(component string, issues []variants.Issue) string
	RenderComponentList(components []ComponentSummary) string
	RenderError(err error) string
}

// NewRenderer returns the renderer matching the format: rich output for
// FormatTerminal, plain text otherwise
func NewRenderer(f Format) Renderer {
	if f == FormatTerminal {
		return &TerminalRenderer{}
	}
	return &TextRenderer{}
}

// TerminalRenderer renders rich output with lipgloss styling
type TerminalRenderer struct{}

// RenderResolution renders the class string and the per-axis table
func (r *TerminalRenderer) RenderResolution(component string, res variants.Result) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render(component) + "\n")
	if res.Classes != "" {
		out.WriteString(ClassStyle.Render(res.Classes) + "\n")
	} else {
		out.WriteString(MutedStyle.Render("(no classes)") + "\n")
	}

	for _, av := range res.Axes() {
		out.WriteString(renderAxisLine(av, true) + "\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderIssues renders validation findings grouped under the component name
func (r *TerminalRenderer) RenderIssues(component string, issues []variants.Issue) string {
	var out strings.Builder
	out.WriteString(TitleStyle.Render(component) + "\n")

	if len(issues) == 0 {
		out.WriteString("  " + SuccessStyle.Render("ok") + "\n")
		return strings.TrimRight(out.String(), "\n")
	}

	for _, issue := range issues {
		var badge string
		switch issue.Severity {
		case variants.SeverityError:
			badge = ErrorStyle.Render("error")
		case variants.SeverityWarning:
			badge = WarningStyle.Render("warning")
		default:
			badge = InfoStyle.Render("info")
		}
		key := ""
		if issue.Key != "" {
			key = AxisNameStyle.Render(issue.Key) + ": "
		}
		out.WriteString(fmt.Sprintf("  %s %s%s %s\n",
			badge, key, issue.Message, MutedStyle.Render("["+string(issue.Code)+"]")))
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderComponentList renders each component with its axis summary
func (r *TerminalRenderer) RenderComponentList(components []ComponentSummary) string {
	if len(components) == 0 {
		return MutedStyle.Render("No components declared")
	}

	var out strings.Builder
	for _, c := range components {
		out.WriteString(fmt.Sprintf("%s %s\n", pterm.Info.Prefix.Text, pterm.Bold.Sprint(c.Name)))
		if len(c.Axes) > 0 {
			out.WriteString("  " + MutedStyle.Render("axes: "+strings.Join(c.Axes, ", ")) + "\n")
		}
		var extras []string
		if c.HasReset {
			extras = append(extras, "reset")
		}
		if c.Compound > 0 {
			extras = append(extras, fmt.Sprintf("%d compound rules", c.Compound))
		}
		if len(extras) > 0 {
			out.WriteString("  " + MutedStyle.Render(strings.Join(extras, ", ")) + "\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	return ErrorStyle.Render("Error: ") + err.Error()
}

// TextRenderer renders plain output for pipes and NO_COLOR environments
type TextRenderer struct{}

func (r *TextRenderer) RenderResolution(component string, res variants.Result) string {
	var out strings.Builder
	out.WriteString(component + ": " + res.Classes + "\n")
	for _, av := range res.Axes() {
		out.WriteString(renderAxisLine(av, false) + "\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func (r *TextRenderer) RenderIssues(component string, issues []variants.Issue) string {
	var out strings.Builder
	out.WriteString(component + ":\n")
	if len(issues) == 0 {
		out.WriteString("  ok\n")
		return strings.TrimRight(out.String(), "\n")
	}
	for _, issue := range issues {
		out.WriteString("  " + issue.String() + "\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func (r *TextRenderer) RenderComponentList(components []ComponentSummary) string {
	if len(components) == 0 {
		return "No components declared"
	}
	var out strings.Builder
	for _, c := range components {
		out.WriteString(c.Name)
		if len(c.Axes) > 0 {
			out.WriteString(" (" + strings.Join(c.Axes, ", ") + ")")
		}
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func (r *TextRenderer) RenderError(err error) string {
	return "Error: " + err.Error()
}

// renderAxisLine renders one "axis = value" line, styling sentinel and
// unset values in terminal mode
func renderAxisLine(av variants.AxisValue, styled bool) string {
	value := av.Value.String()
	switch av.Value.Kind() {
	case variants.KindUnset:
		value = "(unset)"
		if styled {
			value = SentinelStyle.Render(value)
		}
	case variants.KindReset, variants.KindCustom:
		if styled {
			value = SentinelStyle.Render(value)
		}
	}
	name := av.Axis
	if styled {
		name = AxisNameStyle.Render(name)
	}
	return fmt.Sprintf("  %s = %s", name, value)
}
