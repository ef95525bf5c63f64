package tree

// DropTolerance is the distance from a node's top or bottom edge inside which
// the pointer selects an insertion before or after the node.
const DropTolerance = 8

// DropZone is where a drop would land relative to a target node.
type DropZone int

const (
	DropNone DropZone = iota
	DropAbove
	DropOn
	DropBelow
)

func (z DropZone) String() string {
	switch z {
	case DropAbove:
		return "DRAG_OVER_TOP"
	case DropOn:
		return "DRAG_OVER"
	case DropBelow:
		return "DRAG_OVER_BOTTOM"
	default:
		return "NONE"
	}
}

// Rect is the vertical extent of a rendered node.
type Rect struct {
	Top    float64
	Bottom float64
}

// PointerSource supplies the pointer position and the hovered node's bounds.
type PointerSource interface {
	PointerY() float64
	Bounds() Rect
}

// ClassifyDrop places y relative to box. The bottom edge is checked first, so
// on boxes shorter than twice the tolerance DropBelow wins.
func ClassifyDrop(y float64, box Rect) DropZone {
	if y >= box.Bottom-DropTolerance {
		return DropBelow
	}
	if y < box.Top+DropTolerance {
		return DropAbove
	}
	return DropOn
}

// ClassifyPointer is ClassifyDrop over a PointerSource.
func ClassifyPointer(src PointerSource) DropZone {
	return ClassifyDrop(src.PointerY(), src.Bounds())
}
