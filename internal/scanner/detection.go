// Package scanner reconciles live camera detections with the product
// catalog and submits confirmed counts to the inventory.
package scanner

// Rect is a bounding box in model input space, origin top-left.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Detection is one decoded candidate for a single frame. It lives for one
// inference cycle only.
type Detection struct {
	Box   Rect
	Score float32
	Class int
}

// Label maps a detection's class index onto a label table. Out-of-range
// indices yield "Unknown", which never matches a catalog product.
func (d Detection) Label(labels []string) string {
	if d.Class < 0 || d.Class >= len(labels) {
		return "Unknown"
	}
	return labels[d.Class]
}

// iou computes intersection over union of two boxes.
func iou(a, b Rect) float32 {
	ax2, ay2 := a.X+a.W, a.Y+a.H
	bx2, by2 := b.X+b.W, b.Y+b.H

	ix1 := max32(a.X, b.X)
	iy1 := max32(a.Y, b.Y)
	ix2 := min32(ax2, bx2)
	iy2 := min32(ay2, by2)

	iw := ix2 - ix1
	ih := iy2 - iy1
	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := iw * ih
	union := a.W*a.H + b.W*b.H - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
