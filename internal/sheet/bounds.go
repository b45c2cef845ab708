package sheet

import (
	"image"
	"iter"
)

// Axis selects the direction in which Bands scans an image.
type Axis int

const (
	// Columns scans x positions; each band is a range of columns.
	Columns Axis = iota
	// Rows scans y positions; each band is a range of rows.
	Rows
)

func (a Axis) String() string {
	if a == Rows {
		return "rows"
	}
	return "columns"
}

// Boundary is a band of active lines, Start to End inclusive, in image
// coordinates.
type Boundary struct {
	Start, End int
}

// lineSum returns the summed intensity and pixel count of line i of g.
func lineSum(g *image.Gray, axis Axis, i int) (sum, n int) {
	r := g.Rect
	if axis == Columns {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			sum += int(g.Pix[g.PixOffset(i, y)])
		}
		return sum, r.Dy()
	}
	row := g.Pix[g.PixOffset(r.Min.X, i):g.PixOffset(r.Max.X, i)]
	for _, v := range row {
		sum += int(v)
	}
	return sum, len(row)
}

// detect yields the bands of consecutive active lines in lo..hi-1.
func detect(lo, hi int, active func(i int) bool) iter.Seq[Boundary] {
	return func(yield func(Boundary) bool) {
		start := -1
		lastActive := false
		for i := lo; i < hi; i++ {
			a := active(i)
			if a && !lastActive {
				start = i
			} else if !a && lastActive {
				b := Boundary{Start: start, End: i - 1}
				if b.End-b.Start > 1 {
					if !yield(b) {
						return
					}
				}
			}
			lastActive = a
		}
	}
}

// Detect runs the band detector over precomputed line means: a band opens
// on the first mean above threshold and closes on the next one at or below
// it. Bands with End-Start <= 1 are dropped as noise, and a band still open
// after the last mean is not yielded.
func Detect(means []int, threshold int) iter.Seq[Boundary] {
	return detect(0, len(means), func(i int) bool {
		return means[i] > threshold
	})
}

// Bands scans g line by line along axis and yields the bands where the mean
// line intensity exceeds threshold, using the same rules as Detect.
//
// Every line is measured as if it had one more black pixel at its far end,
// so a line of n pixels is active when its sum exceeds threshold*(n+1). A
// column scan also sees one black column past the right edge, which closes
// a band touching that edge. A row scan has no such line, and a row band
// still open at the bottom edge is not yielded.
//
// The sequence holds no state between iterations; ranging over it twice
// yields the same bands.
func Bands(g *image.Gray, axis Axis, threshold int) iter.Seq[Boundary] {
	lo, hi := g.Rect.Min.X, g.Rect.Max.X
	end := hi + 1
	if axis == Rows {
		lo, hi = g.Rect.Min.Y, g.Rect.Max.Y
		end = hi
	}
	return detect(lo, end, func(i int) bool {
		if i == hi {
			return false
		}
		sum, n := lineSum(g, axis, i)
		return sum > threshold*(n+1)
	})
}

// Cell locates one character cell of a sheet.
type Cell struct {
	Row, Column int             // band indices, counting from 0
	Bounds      image.Rectangle // pixels of the cell in sheet coordinates
}

// Cells segments a sheet into character cells: first into row bands, then
// each row band into column bands. Cells are yielded row band by row band,
// top to bottom, and left to right within a row band.
func Cells(g *image.Gray, threshold int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		row := 0
		for rb := range Bands(g, Rows, threshold) {
			band := image.Rect(g.Rect.Min.X, rb.Start, g.Rect.Max.X, rb.End+1)
			strip := g.SubImage(band).(*image.Gray)

			col := 0
			for cb := range Bands(strip, Columns, threshold) {
				c := Cell{
					Row:    row,
					Column: col,
					Bounds: image.Rect(cb.Start, rb.Start, cb.End+1, rb.End+1),
				}
				if !yield(c) {
					return
				}
				col++
			}
			row++
		}
	}
}
