package render

// Viewport maps the projection plane (ScreenWidth x ScreenHeight pixels,
// one record per ray) onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows    int // terminal cells available for the 3D view
	Width, Height int // projection plane in pixels
}

// RecordFor returns which of n records terminal column col samples.
func (v Viewport) RecordFor(col, n int) int {
	if v.Cols <= 0 || n <= 0 {
		return 0
	}
	i := col * n / v.Cols
	return min(max(i, 0), n-1)
}

// StripRows converts a strip height in pixels to its first and last
// terminal rows, centered on the horizon and clamped to the view.
func (v Viewport) StripRows(height float64) (top, bottom int) {
	if v.Height <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	if !(height < float64(v.Height)) {
		return 0, v.Rows
	}
	rows := int(height*float64(v.Rows)/float64(v.Height) + 0.5)
	top = (v.Rows - rows) / 2
	return max(top, 0), min(top+rows, v.Rows)
}
