package swiper

import "math"

// Rect is a measured container size in cells.
type Rect struct {
	Width  float64
	Height float64
}

// Primary returns the dimension along axis
func (r Rect) Primary(axis Axis) float64 {
	if axis == Vertical {
		return r.Height
	}
	return r.Width
}

// Geometry is derived at mount and on every resize. It is never patched
// field by field.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	PageSize   float64
	TrackSize  float64
	MinOffset  float64
	Container  Rect
}

// Ready reports whether position math may run against this geometry.
func (g Geometry) Ready() bool {
	return g.PageSize > 0
}

// ComputeGeometry derives the page and track sizes for count panels.
func ComputeGeometry(axis Axis, width, height float64, container Rect, count int) Geometry {
	w, h := PageDims(width, height, container)
	size := w
	if axis == Vertical {
		size = h
	}
	return Geometry{
		PageWidth:  w,
		PageHeight: h,
		PageSize:   size,
		TrackSize:  TrackSize(size, count),
		MinOffset:  MinOffset(container.Primary(axis), size, count),
		Container:  container,
	}
}

// PageDims resolves the page width and height; explicit values win.
func PageDims(width, height float64, container Rect) (float64, float64) {
	if width <= 0 {
		width = container.Width
	}
	if height <= 0 {
		height = container.Height
	}
	return width, height
}

// PageSize returns the page size along axis.
func PageSize(axis Axis, width, height float64, container Rect) float64 {
	w, h := PageDims(width, height, container)
	if axis == Vertical {
		return h
	}
	return w
}

// TrackSize is the length of all pages laid end to end.
func TrackSize(pageSize float64, count int) float64 {
	return pageSize * float64(count)
}

// MinOffset is the most negative resting offset. It is <= 0 whenever the
// content overflows the container.
func MinOffset(containerPrimary, pageSize float64, count int) float64 {
	return containerPrimary - pageSize*float64(count)
}

// ClampOffset keeps a non-looping track inside [minOffset, 0]. Looping
// tracks are returned unchanged; wrap is handled by panel relocation.
func ClampOffset(raw float64, loop bool, minOffset float64) float64 {
	if loop {
		return raw
	}
	return rangeFloat(raw, minOffset, 0)
}

// WrapIndex bounds a raw index. Looping allows one page of slack on each
// side, [-1, count]; otherwise the index is clamped to [0, count-1].
func WrapIndex(raw int, loop bool, count int) int {
	if loop {
		return rangeInt(raw, -1, count)
	}
	return rangeInt(raw, 0, count-1)
}

// Logical maps a possibly out-of-range active index to [0, count).
func Logical(active, count int) int {
	if count <= 0 {
		return 0
	}
	return (active%count + count) % count
}

// restingPosition is the distance from the track start to page active.
func restingPosition(active int, pageSize float64, loop bool, minOffset float64) float64 {
	pos := float64(active) * pageSize
	if !loop {
		pos = math.Min(pos, -minOffset)
	}
	return pos
}

// TargetOffset is the offset that shows page active displaced by drag.
func TargetOffset(active int, drag float64, g Geometry, loop bool) float64 {
	return ClampOffset(drag-restingPosition(active, g.PageSize, loop, g.MinOffset), loop, g.MinOffset)
}

func rangeFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func rangeInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
