package spp

// Incidence is the legs × pairings coverage matrix: cell (i,j) is 1 iff
// pairing j covers leg i. Stored as a flat row-major 0/1 slice; the shape
// is fixed at construction (the leg universe must be final before the
// matrix is built).
type Incidence struct {
	rows  int
	cols  int
	cells []uint8
}

// NewIncidence allocates a zeroed rows × cols matrix.
//
// Complexity: O(rows·cols).
func NewIncidence(rows, cols int) *Incidence {
	return &Incidence{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Rows returns the number of legs m.
func (a *Incidence) Rows() int { return a.rows }

// Cols returns the number of pairings n.
func (a *Incidence) Cols() int { return a.cols }

// Set marks pairing j as covering leg i. Caller guarantees bounds.
func (a *Incidence) Set(i, j int) { a.cells[i*a.cols+j] = 1 }

// At reports whether pairing j covers leg i. Caller guarantees bounds.
func (a *Incidence) At(i, j int) bool { return a.cells[i*a.cols+j] == 1 }

// RowCount returns the coverage multiplicity of leg i: the number of
// pairings whose column is set in row i.
//
// Complexity: O(cols).
func (a *Incidence) RowCount(i int) int {
	count := 0
	row := a.cells[i*a.cols : (i+1)*a.cols]
	for _, c := range row {
		if c == 1 {
			count++
		}
	}

	return count
}
