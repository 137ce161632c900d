package charts

import (
	"html"
	"math"
	"slices"
	"strconv"

	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
)

// ValenceOverTimeTitle is the animated scatter title.
const ValenceOverTimeTitle = "Valence (Mood) of Songs Over Time"

// SafePalette is Plotly's qualitative "Safe" color sequence.
var SafePalette = []string{
	"rgb(136, 204, 238)",
	"rgb(204, 102, 119)",
	"rgb(221, 204, 119)",
	"rgb(17, 119, 51)",
	"rgb(51, 34, 136)",
	"rgb(170, 68, 153)",
	"rgb(68, 170, 153)",
	"rgb(153, 153, 51)",
	"rgb(136, 34, 85)",
	"rgb(102, 17, 0)",
	"rgb(136, 136, 136)",
}

const (
	// maxMarkerSize is the diameter in pixels of the most popular track.
	maxMarkerSize = 20
	frameMillis   = 500
)

// axisRange fixes both axes so frames do not rescale.
var axisRange = []float64{0, 100}

// ValenceOverTime builds an animated Energy vs Valence scatter with one frame
// per release year in ascending order and one trace per genre in order of
// first appearance. Marker area follows Popularity. Tracks missing any
// plotted value are left out.
func ValenceOverTime(tracks []dataset.Track) Figure {
	genres := genreOrder(tracks)
	colors := make(map[string]string, len(genres))
	for i, g := range genres {
		colors[g] = SafePalette[i%len(SafePalette)]
	}

	byYear := make(map[int][]dataset.Track)
	var maxPopularity float64
	for _, t := range tracks {
		if !plottable(t) {
			continue
		}
		y := int(t.Year)
		byYear[y] = append(byYear[y], t)
		maxPopularity = max(maxPopularity, t.Popularity)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	sizeRef := 1.0
	if maxPopularity > 0 {
		sizeRef = 2 * maxPopularity / (maxMarkerSize * maxMarkerSize)
	}

	fig := Figure{
		Layout: Layout{
			Title:  &Text{Text: ValenceOverTimeTitle},
			XAxis:  &Axis{Title: &Text{Text: "Energy"}, Range: axisRange},
			YAxis:  &Axis{Title: &Text{Text: "Valence"}, Range: axisRange},
			Legend: &Legend{Title: &Text{Text: "Top Genre"}},
		},
	}

	slider := Slider{
		CurrentValue: CurrentValue{Prefix: "Year="},
		Pad:          &Pad{T: 50},
	}
	for _, y := range years {
		name := strconv.Itoa(y)
		fig.Frames = append(fig.Frames, Frame{
			Name: name,
			Data: yearTraces(byYear[y], genres, colors, sizeRef),
		})
		slider.Steps = append(slider.Steps, SliderStep{
			Label:  name,
			Method: "animate",
			Args:   []any{[]string{name}, animateOpts(0, true)},
		})
	}

	if len(fig.Frames) == 0 {
		fig.Data = []Trace{}
		return fig
	}

	fig.Data = fig.Frames[0].Data
	fig.Layout.Sliders = []Slider{slider}
	fig.Layout.UpdateMenus = []UpdateMenu{{
		Type:       "buttons",
		Direction:  "left",
		X:          0.1,
		Y:          0,
		XAnchor:    "right",
		YAnchor:    "top",
		Pad:        &Pad{T: 87, R: 10},
		ShowActive: false,
		Buttons: []Button{
			{
				Label:  "Play",
				Method: "animate",
				Args: []any{nil, map[string]any{
					"frame":       map[string]any{"duration": frameMillis, "redraw": false},
					"fromcurrent": true,
					"transition":  map[string]any{"duration": frameMillis, "easing": "linear"},
				}},
			},
			{
				Label:  "Pause",
				Method: "animate",
				Args:   []any{[]any{nil}, animateOpts(0, false)},
			},
		},
	}}
	return fig
}

// yearTraces returns one trace per genre, empty when the genre has no
// tracks that year, so trace indices stay stable across frames.
func yearTraces(tracks []dataset.Track, genres []string, colors map[string]string, sizeRef float64) []Trace {
	idx := make(map[string]int, len(genres))
	traces := make([]Trace, len(genres))
	xs := make([][]float64, len(genres))
	ys := make([][]float64, len(genres))
	for i, g := range genres {
		idx[g] = i
		xs[i] = []float64{}
		ys[i] = []float64{}
		traces[i] = Trace{
			Type:          "scatter",
			Mode:          "markers",
			Name:          g,
			LegendGroup:   g,
			Text:          []string{},
			HoverTemplate: "<b>%{text}</b><br>Energy=%{x}<br>Valence=%{y}<extra>" + html.EscapeString(g) + "</extra>",
			Marker: &Marker{
				Color:    colors[g],
				Size:     []float64{},
				SizeMode: "area",
				SizeRef:  sizeRef,
			},
		}
	}

	for _, t := range tracks {
		i := idx[t.Genre]
		xs[i] = append(xs[i], t.Energy)
		ys[i] = append(ys[i], t.Valence)
		traces[i].Text = append(traces[i].Text, t.Title)
		traces[i].Marker.Size = append(traces[i].Marker.Size, t.Popularity)
	}
	for i := range traces {
		traces[i].X = xs[i]
		traces[i].Y = ys[i]
	}
	return traces
}

func animateOpts(duration int, redraw bool) map[string]any {
	return map[string]any{
		"mode":       "immediate",
		"frame":      map[string]any{"duration": duration, "redraw": redraw},
		"transition": map[string]any{"duration": duration},
	}
}

func genreOrder(tracks []dataset.Track) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, t := range tracks {
		if !seen[t.Genre] {
			seen[t.Genre] = true
			genres = append(genres, t.Genre)
		}
	}
	return genres
}

func plottable(t dataset.Track) bool {
	for _, v := range []float64{t.Year, t.Energy, t.Valence, t.Popularity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
