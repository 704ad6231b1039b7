package dataset

import (
	"fmt"
	"strconv"
)

// FloatLabels renders numeric targets as Labels without precision loss:
// strconv's 'g' format with precision -1 emits the shortest decimal string
// that parses back to exactly the same float64.
func FloatLabels(values []float64) []Label {
	labels := make([]Label, len(values))
	for i, v := range values {
		labels[i] = Label(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return labels
}

// Numeric parses labels back into float64 targets, the inverse of
// FloatLabels. Errors: ErrNonNumericLabel on the first unparsable label.
func Numeric(labels []Label) ([]float64, error) {
	values := make([]float64, len(labels))
	for i, l := range labels {
		v, err := strconv.ParseFloat(string(l), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at index %d", ErrNonNumericLabel, string(l), i)
		}
		values[i] = v
	}

	return values, nil
}
