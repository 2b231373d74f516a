// Package endpoint turns api endpoint descriptors into collapsible
// documentation blocks.
package endpoint

import (
	"os"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor describes a single api endpoint
type Descriptor struct {
	Method      string       `yaml:"method" json:"method"`
	Path        string       `yaml:"path" json:"path"`
	Description string       `yaml:"description" json:"description"`
	Request     *Body        `yaml:"request,omitempty" json:"request,omitempty"`
	Response    *Body        `yaml:"response,omitempty" json:"response,omitempty"`
	StatusCodes []StatusCode `yaml:"statusCodes" json:"statusCodes"`
	Auth        bool         `yaml:"auth,omitempty" json:"auth,omitempty"`
	Init        bool         `yaml:"init,omitempty" json:"init,omitempty"`
}

// Body is a request or response payload
type Body struct {
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Schema  any    `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any    `yaml:"example,omitempty" json:"example,omitempty"`
}

// StatusCode is a documented response status
type StatusCode struct {
	Code        int    `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
}

// LoadDescriptors reads a yaml list of descriptors from file
func LoadDescriptors(filePath string) ([]Descriptor, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var descriptors []Descriptor
	if err := yaml.Unmarshal(bin, &descriptors); err != nil {
		return nil, errorutil.NewWithTag("endpoint", "failed to parse endpoints from %v: %v", filePath, err)
	}
	for i := range descriptors {
		d := &descriptors[i]
		d.Method = strings.ToUpper(strings.TrimSpace(d.Method))
		if d.Method == "" || d.Path == "" {
			return nil, errorutil.NewWithTag("endpoint", "endpoint #%v in %v is missing method or path", i+1, filePath)
		}
	}
	return descriptors, nil
}

var methodColors = map[string]string{
	"GET":    "#61affe",
	"POST":   "#49cc90",
	"PUT":    "#fca130",
	"PATCH":  "#9b59b6",
	"DELETE": "#f93e3e",
}

// MethodColor returns badge color of http method
func MethodColor(method string) string {
	if color, ok := methodColors[method]; ok {
		return color
	}
	return "#999"
}

// Badge is a short colored label
type Badge struct {
	Text  string
	Color string
}

// RequirementBadges lists what a caller needs before calling the endpoint
func (d *Descriptor) RequirementBadges() []Badge {
	var badges []Badge
	if d.Init {
		badges = append(badges, Badge{Text: "Init Required", Color: "#e67e22"})
	}
	if d.Auth {
		badges = append(badges, Badge{Text: "Auth Required", Color: "#e74c3c"})
	} else {
		badges = append(badges, Badge{Text: "Public", Color: "#27ae60"})
	}
	return badges
}

// ContentTypeBadges lists request and response content types
func (d *Descriptor) ContentTypeBadges() []Badge {
	var badges []Badge
	if d.Request != nil && d.Request.Type != "" {
		badges = append(badges, Badge{Text: "Req: " + d.Request.Type, Color: "#3498db"})
	}
	if d.Response != nil && d.Response.Type != "" {
		badges = append(badges, Badge{Text: "Res: " + d.Response.Type, Color: "#9b59b6"})
	}
	return badges
}

// StatusClass groups status code for display: success, warning or error
func StatusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "success"
	case code == 409 || code == 412:
		return "warning"
	}
	return "error"
}
