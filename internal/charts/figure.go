// Package charts builds Plotly figure descriptions for the dashboard views.
// Rendering happens in the browser; this package only produces JSON.
package charts

import (
	"encoding/json"
	"fmt"
)

// Figure is a Plotly figure: traces, layout and optional animation frames.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames,omitempty"`
}

// Trace is a single Plotly trace. X and Y hold either category labels or numbers.
type Trace struct {
	Type          string   `json:"type"`
	Mode          string   `json:"mode,omitempty"`
	Name          string   `json:"name,omitempty"`
	LegendGroup   string   `json:"legendgroup,omitempty"`
	X             any      `json:"x"`
	Y             any      `json:"y"`
	Text          []string `json:"text,omitempty"`
	HoverTemplate string   `json:"hovertemplate,omitempty"`
	Marker        *Marker  `json:"marker,omitempty"`
}

// Marker styles trace points or bars.
type Marker struct {
	Color    string    `json:"color,omitempty"`
	Size     []float64 `json:"size,omitempty"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
	Opacity  float64   `json:"opacity,omitempty"`
}

// Frame is one step of an animation.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Text is a Plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis configures an x or y axis.
type Axis struct {
	Title *Text     `json:"title,omitempty"`
	Range []float64 `json:"range,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title       *Text        `json:"title,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	BarMode     string       `json:"barmode,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Sliders     []Slider     `json:"sliders,omitempty"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
}

// Legend configures the trace legend.
type Legend struct {
	Title *Text `json:"title,omitempty"`
}

// Slider selects an animation frame.
type Slider struct {
	Active       int          `json:"active"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Pad          *Pad         `json:"pad,omitempty"`
	Steps        []SliderStep `json:"steps"`
}

// CurrentValue labels the slider's selected step.
type CurrentValue struct {
	Prefix string `json:"prefix"`
}

// SliderStep is one slider position.
type SliderStep struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// UpdateMenu is a group of buttons, used for play and pause.
type UpdateMenu struct {
	Type       string   `json:"type"`
	ShowActive bool     `json:"showactive"`
	Direction  string   `json:"direction,omitempty"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	XAnchor    string   `json:"xanchor,omitempty"`
	YAnchor    string   `json:"yanchor,omitempty"`
	Pad        *Pad     `json:"pad,omitempty"`
	Buttons    []Button `json:"buttons"`
}

// Button is one update menu entry.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Pad is control padding in pixels.
type Pad struct {
	T int `json:"t,omitempty"`
	R int `json:"r,omitempty"`
}

// JSON encodes the figure for Plotly.newPlot.
func (f Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encoding figure: %w", err)
	}
	return string(b), nil
}
