package confusion

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the count grid: one row per actual class, one column per
// predicted class, labels on both axes. Columns share a single width wide
// enough for the longest class name or count.
func (m *Matrix) String() string {
	w := 1
	for _, c := range m.classes {
		if len(c) > w {
			w = len(c)
		}
	}
	for _, row := range m.cells {
		for _, n := range row {
			if d := len(strconv.Itoa(n)); d > w {
				w = d
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", w, "")
	for _, c := range m.classes {
		fmt.Fprintf(&b, " %*s", w, string(c))
	}
	for i, c := range m.classes {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%*s", w, string(c))
		for j := range m.classes {
			fmt.Fprintf(&b, " %*d", w, m.cells[i][j])
		}
	}

	return b.String()
}

// Report renders the classification-report text: one row per class with
// precision/recall/F1/support, then the accuracy line and the unweighted
// macro average. Support is the number of pairs whose actual label is the
// class. Errors: ErrEmptyMatrix when nothing was recorded.
func (m *Matrix) Report() (string, error) {
	if m.total == 0 {
		return "", ErrEmptyMatrix
	}

	wName := len("macro avg")
	for _, c := range m.classes {
		if len(c) > wName {
			wName = len(c)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  precision  recall  f1-score  support\n", wName, "")
	var macroP, macroR, macroF float64
	for i, c := range m.classes {
		cm := m.metricsAt(i)
		support := cm.TP + cm.FN
		fmt.Fprintf(&b, "%-*s  %9.3f  %6.3f  %8.3f  %7d\n",
			wName, string(c), cm.Precision, cm.Recall, cm.F1, support)
		macroP += cm.Precision
		macroR += cm.Recall
		macroF += cm.F1
	}
	k := float64(len(m.classes))
	accuracy := float64(m.diagonal()) / float64(m.total)

	fmt.Fprintf(&b, "%-*s  %9s  %6s  %8.3f  %7d\n", wName, "accuracy", "", "", accuracy, m.total)
	fmt.Fprintf(&b, "%-*s  %9.3f  %6.3f  %8.3f  %7d",
		wName, "macro avg", macroP/k, macroR/k, macroF/k, m.total)

	return b.String(), nil
}
