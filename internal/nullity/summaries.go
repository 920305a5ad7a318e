package nullity

import (
	"math"

	"kpicollector/internal/dataset"
)

// nullMask returns one indicator vector per column, true where the cell is
// missing.
func nullMask(f *dataset.Frame) [][]bool {
	mask := make([][]bool, f.NumCols())
	for c := range f.Columns {
		mask[c] = make([]bool, f.NumRows())
		for r := range f.Rows {
			mask[c][r] = f.IsNull(r, c)
		}
	}
	return mask
}

// matrix returns the frame's null mask as a boolean frame with the same
// column names: true marks a missing cell.
func matrix(f *dataset.Frame) *dataset.Frame {
	rows := make([][]any, f.NumRows())
	for r := range f.Rows {
		row := make([]any, f.NumCols())
		for c := range f.Columns {
			row[c] = f.IsNull(r, c)
		}
		rows[r] = row
	}
	return &dataset.Frame{Columns: append([]string(nil), f.Columns...), Rows: rows}
}

// bar returns the per-column non-null counts.
func bar(f *dataset.Frame) *dataset.Frame {
	rows := make([][]any, 0, f.NumCols())
	for c, name := range f.Columns {
		count := 0
		for r := range f.Rows {
			if !f.IsNull(r, c) {
				count++
			}
		}
		rows = append(rows, []any{name, count})
	}
	return &dataset.Frame{Columns: []string{"column", "non_null"}, Rows: rows}
}

// heatmap returns the pairwise nullity correlation between columns: how
// strongly the presence of one column's values predicts another's. The first
// output column names the row, the rest hold the correlations.
func heatmap(f *dataset.Frame) *dataset.Frame {
	mask := nullMask(f)
	columns := append([]string{"column"}, f.Columns...)
	rows := make([][]any, f.NumCols())
	for i := range f.Columns {
		row := make([]any, f.NumCols()+1)
		row[0] = f.Columns[i]
		for j := range f.Columns {
			// A column always co-occurs with itself; the zero-variance rule
			// in correlate would otherwise zero the diagonal for complete
			// (or fully missing) columns.
			if i == j {
				row[j+1] = 1.0
				continue
			}
			row[j+1] = correlate(mask[i], mask[j])
		}
		rows[i] = row
	}
	return &dataset.Frame{Columns: columns, Rows: rows}
}

// dendrogram returns the column names ordered by nullity similarity: starting
// from the most complete column, each step appends the remaining column whose
// null pattern correlates strongest with the previous one.
func dendrogram(f *dataset.Frame) []string {
	if f.NumCols() == 0 {
		return nil
	}

	mask := nullMask(f)
	remaining := make([]int, f.NumCols())
	for i := range remaining {
		remaining[i] = i
	}

	// Seed with the column having the fewest missing cells.
	best := 0
	for _, c := range remaining {
		if countTrue(mask[c]) < countTrue(mask[best]) {
			best = c
		}
	}

	order := make([]string, 0, f.NumCols())
	order = append(order, f.Columns[best])
	remaining = remove(remaining, best)
	last := best

	for len(remaining) > 0 {
		next := remaining[0]
		bestCorr := math.Inf(-1)
		for _, c := range remaining {
			if corr := correlate(mask[last], mask[c]); corr > bestCorr {
				bestCorr = corr
				next = c
			}
		}
		order = append(order, f.Columns[next])
		remaining = remove(remaining, next)
		last = next
	}
	return order
}

// correlate computes the Pearson correlation of two boolean indicator
// vectors. Zero-variance vectors correlate at 0.
func correlate(a, b []bool) float64 {
	n := float64(len(a))
	if n == 0 {
		return 0
	}
	meanA := float64(countTrue(a)) / n
	meanB := float64(countTrue(b)) / n

	var cov, varA, varB float64
	for i := range a {
		da := indicator(a[i]) - meanA
		db := indicator(b[i]) - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}

func indicator(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func countTrue(v []bool) int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}

func remove(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
