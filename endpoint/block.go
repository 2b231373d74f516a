package endpoint

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	iconCollapsed = "▼"
	iconExpanded  = "▲"
)

var (
	headerTemplate = fasttemplate.New("{{method}} {{path}} {{badges}} {{icon}}", "{{", "}}")
	bodyTemplate   = fasttemplate.New(`{{header}}
  {{description}}
{{sections}}`, "{{", "}}")
)

// Block is a collapsible documentation block of a single endpoint
type Block struct {
	Descriptor Descriptor
	collapsed  bool
}

// NewBlock returns a collapsed block of descriptor
func NewBlock(d Descriptor) *Block {
	return &Block{Descriptor: d, collapsed: true}
}

// Collapsed reports whether only the header is shown
func (b *Block) Collapsed() bool {
	return b.collapsed
}

// Toggle flips collapsed state and returns the new one
func (b *Block) Toggle() bool {
	b.collapsed = !b.collapsed
	return b.collapsed
}

// ToggleIcon returns icon of toggle button for current state
func (b *Block) ToggleIcon() string {
	if b.collapsed {
		return iconCollapsed
	}
	return iconExpanded
}

// Render returns block as plain text
func (b *Block) Render() string {
	return Render(b.Descriptor, b.collapsed)
}

// Render returns plain text documentation of d.
// Collapsed blocks only contain the header line.
func Render(d Descriptor, collapsed bool) string {
	icon := iconExpanded
	if collapsed {
		icon = iconCollapsed
	}
	badges := append(d.RequirementBadges(), d.ContentTypeBadges()...)
	texts := make([]string, 0, len(badges))
	for _, badge := range badges {
		texts = append(texts, "["+badge.Text+"]")
	}
	header := headerTemplate.ExecuteString(map[string]interface{}{
		"method": d.Method,
		"path":   d.Path,
		"badges": strings.Join(texts, " "),
		"icon":   icon,
	})
	if collapsed {
		return header + "\n"
	}
	return bodyTemplate.ExecuteString(map[string]interface{}{
		"header":      header,
		"description": d.Description,
		"sections":    renderSections(d),
	})
}

func renderSections(d Descriptor) string {
	var sb strings.Builder
	writeBody := func(title string, body *Body) {
		if body == nil {
			return
		}
		fmt.Fprintf(&sb, "  %v:\n", title)
		if body.Schema != nil {
			fmt.Fprintf(&sb, "    schema: %v\n", FormatSchema(body.Schema))
		}
		if example := FormatExample(body.Example); example != "" {
			sb.WriteString("    example:\n")
			for _, line := range strings.Split(example, "\n") {
				sb.WriteString("      " + line + "\n")
			}
		}
	}
	writeBody("Request", d.Request)
	writeBody("Response", d.Response)

	sb.WriteString("  Status Codes:\n")
	if len(d.StatusCodes) == 0 {
		sb.WriteString("    none\n")
	}
	for _, status := range d.StatusCodes {
		fmt.Fprintf(&sb, "    %v %v (%v)\n", status.Code, status.Description, StatusClass(status.Code))
	}
	return sb.String()
}
