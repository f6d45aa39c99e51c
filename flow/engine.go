// SPDX-License-Identifier: Unlicense OR MIT

package flow

import "image"

// Engine computes flow layouts in pixels. Children are packed along
// the main axis and wrap into a new rank when the available space is
// exhausted. Ranks stack along the cross axis.
type Engine struct {
	Orientation Orientation
	Alignment   Alignment
	// MainSpacing is added between neighbours of a rank, on top of
	// their margins.
	MainSpacing int
	// CrossSpacing is added between ranks, on top of margins.
	CrossSpacing int
}

// Box is the measured size and margins of a child.
type Box struct {
	Size   image.Point
	Margin Edges
}

// Constraints describe the space offered to a flow container.
type Constraints struct {
	// Max is the size available to the container, padding included.
	Max image.Point
	// ExactWidth and ExactHeight force the container size on that axis
	// to Max.
	ExactWidth, ExactHeight bool
	Padding                 Edges
}

// Rank is the aggregate of a row (RowWrap) or column (ColumnWrap).
type Rank struct {
	// Count is the number of children in the rank.
	Count int
	// Extent is the largest margin inclusive cross size in the rank.
	Extent int
}

// Ranks is the rank table produced by Measure, indexed by rank number.
type Ranks []Rank

// Of returns the rank holding child index, or -1.
func (r Ranks) Of(index int) int {
	sum := 0
	for i, rk := range r {
		sum += rk.Count
		if index < sum {
			return i
		}
	}
	return -1
}

// Total returns the number of children covered by the table.
func (r Ranks) Total() int {
	n := 0
	for _, rk := range r {
		n += rk.Count
	}
	return n
}

// Measure walks boxes in order and returns the container size and
// the rank table. Measure must precede Place for the same boxes.
func (e Engine) Measure(boxes []Box, cs Constraints) (image.Point, Ranks) {
	n := len(boxes)
	avail := e.available(cs)
	var ranks Ranks
	// line is the running main extent of the current rank, lineCross
	// its largest cross extent.
	var line, lineCross, count int
	var mainTotal, crossTotal int
	for i, b := range boxes {
		m, c := e.outer(b)
		adv := e.advance(m, i, n)
		if e.wraps(line, m, i, avail) {
			ranks, crossTotal = e.closeRank(ranks, crossTotal, count, lineCross)
			// The closed rank's last member carried spacing for a
			// neighbour that wrapped.
			mainTotal = max(mainTotal, line-e.MainSpacing)
			count, line, lineCross = 1, adv, c
		} else {
			count++
			line += adv
			lineCross = max(lineCross, c)
		}
		if i == n-1 {
			ranks, crossTotal = e.closeRank(ranks, crossTotal, count, lineCross)
			mainTotal = max(mainTotal, line)
		}
	}
	ms, me := e.Orientation.mainEdges(cs.Padding)
	cs0, ce := e.Orientation.crossEdges(cs.Padding)
	size := e.Orientation.point(mainTotal+ms+me, crossTotal+cs0+ce)
	if cs.ExactWidth {
		size.X = cs.Max.X
	}
	if cs.ExactHeight {
		size.Y = cs.Max.Y
	}
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	return size, ranks
}

// Place appends the rectangle of every box to rects, in box order.
// The wrap points are recomputed with the same rules and constraints
// as Measure; ranks is only read to resolve cross axis alignment.
func (e Engine) Place(boxes []Box, ranks Ranks, cs Constraints, rects []image.Rectangle) []image.Rectangle {
	n := len(boxes)
	avail := e.available(cs)
	start, _ := e.Orientation.mainEdges(cs.Padding)
	top, _ := e.Orientation.crossEdges(cs.Padding)
	mainPos, crossPos := start, top
	var line, lineCross, rank int
	for i, b := range boxes {
		m, c := e.outer(b)
		adv := e.advance(m, i, n)
		if e.wraps(line, m, i, avail) {
			crossPos += lineCross + e.CrossSpacing
			mainPos = start
			rank++
			line, lineCross = adv, c
		} else {
			line += adv
			lineCross = max(lineCross, c)
		}
		var extent int
		if rank < len(ranks) {
			extent = ranks[rank].Extent
		}
		lead, _ := e.Orientation.mainEdges(b.Margin)
		pt := e.Orientation.point(mainPos+lead, crossPos+e.align(b, extent))
		rects = append(rects, image.Rectangle{Min: pt, Max: pt.Add(b.Size)})
		mainPos += adv
	}
	return rects
}

// align returns the cross offset of b inside a rank of the given extent.
func (e Engine) align(b Box, extent int) int {
	lead, trail := e.Orientation.crossEdges(b.Margin)
	size := e.Orientation.cross(b.Size)
	switch e.Alignment {
	case Start:
		return lead
	case End:
		return extent - size - trail
	default:
		return (extent-size)/2 + lead - trail
	}
}

func (e Engine) closeRank(ranks Ranks, total, count, extent int) (Ranks, int) {
	if len(ranks) > 0 {
		total += e.CrossSpacing
	}
	return append(ranks, Rank{Count: count, Extent: extent}), total + extent
}

// outer returns the margin inclusive main and cross extents of b.
func (e Engine) outer(b Box) (int, int) {
	ms, me := e.Orientation.mainEdges(b.Margin)
	cs, ce := e.Orientation.crossEdges(b.Margin)
	return e.Orientation.main(b.Size) + ms + me, e.Orientation.cross(b.Size) + cs + ce
}

// advance is the growth of a rank's line when box i of n is added. The
// last box never carries trailing spacing.
func (e Engine) advance(extent, i, n int) int {
	if i == n-1 {
		return extent
	}
	return extent + e.MainSpacing
}

// wraps reports whether box i opens a new rank. The first box never
// wraps, however large.
func (e Engine) wraps(line, extent, i, avail int) bool {
	return i > 0 && line+extent+e.MainSpacing > avail
}

// available is the main extent left for children once padding is
// removed.
func (e Engine) available(cs Constraints) int {
	s, t := e.Orientation.mainEdges(cs.Padding)
	return max(e.Orientation.main(cs.Max)-s-t, 0)
}
