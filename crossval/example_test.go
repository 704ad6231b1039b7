package crossval_test

import (
	"fmt"

	"github.com/katalvlaran/folds/crossval"
	"github.com/katalvlaran/folds/dataset"
	"github.com/katalvlaran/folds/split"
)

// majorityModel votes for the most frequent training label, breaking
// ties toward the lexicographically smaller one.
type majorityModel struct {
	vote dataset.Label
}

func (m *majorityModel) Fit(_ []dataset.Sample, labels []dataset.Label) error {
	counts := make(map[dataset.Label]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	for label, n := range counts {
		if n > counts[m.vote] || (n == counts[m.vote] && label < m.vote) {
			m.vote = label
		}
	}
	return nil
}

func (m *majorityModel) Predict(samples []dataset.Sample) ([]dataset.Label, error) {
	out := make([]dataset.Label, len(samples))
	for i := range out {
		out[i] = m.vote
	}
	return out, nil
}

// meanModel forecasts the mean of its training labels, a classic
// baseline for expanding-window evaluation.
type meanModel struct {
	mean float64
}

func (m *meanModel) Fit(_ []dataset.Sample, labels []dataset.Label) error {
	ys, err := dataset.Numeric(labels)
	if err != nil {
		return err
	}
	var sum float64
	for _, y := range ys {
		sum += y
	}
	m.mean = sum / float64(len(ys))
	return nil
}

func (m *meanModel) Predict(samples []dataset.Sample) ([]dataset.Label, error) {
	label := dataset.FloatLabels([]float64{m.mean})[0]
	out := make([]dataset.Label, len(samples))
	for i := range out {
		out[i] = label
	}
	return out, nil
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	2-fold cross-validation of a majority-vote baseline over four
//	samples, ordered so the per-fold accuracies are easy to follow:
//	fold 0 trains on [A,B] and tests on [A,A]; fold 1 trains on [A,A]
//	and tests on [A,B].
func ExampleEvaluate() {
	ds, err := dataset.New(
		[]dataset.Sample{{1}, {2}, {3}, {4}},
		[]dataset.Label{"A", "A", "A", "B"},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	folds, err := split.KFold(ds.Len(), 2, split.WithOrdered())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	result, err := crossval.Evaluate(ds, folds, func() crossval.Model {
		return &majorityModel{}
	}, crossval.Accuracy)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("scores: ", result.Scores)
	fmt.Println("summary:", result.Summary())
	// Output:
	// scores:  [1 0.5]
	// summary: 0.750 (+/- 0.500)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate_expandingWindow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Walk-forward evaluation of a mean forecaster on a rising series.
//	The train window grows, the test window slides, and the RMSE per
//	fold worsens as the series drifts away from its historical mean.
func ExampleEvaluate_expandingWindow() {
	temps := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	samples := make([]dataset.Sample, len(temps))
	for i := range temps {
		samples[i] = dataset.Sample{float64(i)}
	}
	ds, err := dataset.New(samples, dataset.FloatLabels(temps))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	folds, err := split.ExpandingWindow(ds.Len(), 6, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	result, err := crossval.Evaluate(ds, folds, func() crossval.Model {
		return &meanModel{}
	}, crossval.RootMeanSquaredError,
		crossval.WithOnFold(func(fold int, score float64) error {
			fmt.Printf("fold %d RMSE: %.2f\n", fold, score)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("summary:", result.Summary())
	// Output:
	// fold 0 RMSE: 4.03
	// fold 1 RMSE: 5.02
	// summary: 4.528 (+/- 0.994)
}
