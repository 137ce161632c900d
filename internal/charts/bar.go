package charts

import (
	"github.com/justestif/go-spotify-genre-dashboard/internal/model"
)

// ModelComparisonTitle is the grouped bar chart title.
const ModelComparisonTitle = "Model Performance Comparison"

// ModelComparison builds a grouped bar chart of accuracy, F1 and AUC-ROC per
// model, one trace per metric.
func ModelComparison(scores []model.Score) Figure {
	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.Model
	}

	metrics := []struct {
		name  string
		value func(model.Score) float64
	}{
		{"Accuracy", func(s model.Score) float64 { return s.Accuracy }},
		{"F1 Score", func(s model.Score) float64 { return s.F1 }},
		{"AUC-ROC", func(s model.Score) float64 { return s.AUCROC }},
	}

	fig := Figure{
		Layout: Layout{
			Title:   &Text{Text: ModelComparisonTitle},
			BarMode: "group",
			XAxis:   &Axis{Title: &Text{Text: "Model"}},
			YAxis:   &Axis{Title: &Text{Text: "Score"}},
			Legend:  &Legend{Title: &Text{Text: "Metric"}},
		},
	}
	for _, m := range metrics {
		values := make([]float64, len(scores))
		for i, s := range scores {
			values[i] = m.value(s)
		}
		fig.Data = append(fig.Data, Trace{
			Type: "bar",
			Name: m.name,
			X:    names,
			Y:    values,
		})
	}
	return fig
}
