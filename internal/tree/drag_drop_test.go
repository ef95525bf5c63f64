package tree

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDragKeys(t *testing.T) {
	node := Branch("root", "Root",
		Branch("a", "A", Leaf("a1", "A1")),
		Leaf("b", "B"),
	)
	assertValues(t, DragKeys(node), []any{"root", "a", "a1", "b"})
	assertValues(t, DragKeys(Leaf("solo", "Solo")), []any{"solo"})
	if DragKeys(nil) != nil {
		t.Fatalf("expected nil for nil node")
	}
}

func TestDropAllowed(t *testing.T) {
	keys := DragKeys(sampleTree()[0])
	for _, forbidden := range []any{"root", "a", "a1", "b"} {
		if DropAllowed(keys, forbidden) {
			t.Errorf("expected drop on %v to be refused", forbidden)
		}
	}
	if !DropAllowed(keys, "other") {
		t.Fatalf("expected drop on other to be allowed")
	}
}

func TestDragKeysCoverSubtree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots, _ := genTree(t)
		list := Flatten(roots, nil)
		if len(list) == 0 {
			return
		}
		i := rapid.IntRange(0, len(list)-1).Draw(t, "index")
		keys := DragKeys(list[i].Source)
		for j := range list {
			inside := j == i
			for _, a := range list.Ancestors(j) {
				if a == i {
					inside = true
				}
			}
			if got := ContainsValue(keys, list[j].Source.Value()); got != inside {
				t.Fatalf("entry %d: in drag keys %v, in subtree %v", j, got, inside)
			}
		}
	})
}

func TestClassifyDrop(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		box  Rect
		want DropZone
	}{
		{"short box midpoint prefers below", 5, Rect{Top: 0, Bottom: 10}, DropBelow},
		{"near bottom edge", 92, Rect{Top: 60, Bottom: 100}, DropBelow},
		{"exactly at bottom minus tolerance", 92, Rect{Top: 60, Bottom: 100}, DropBelow},
		{"below the box", 150, Rect{Top: 60, Bottom: 100}, DropBelow},
		{"near top edge", 61, Rect{Top: 60, Bottom: 100}, DropAbove},
		{"above the box", 10, Rect{Top: 60, Bottom: 100}, DropAbove},
		{"exactly top plus tolerance is on", 68, Rect{Top: 60, Bottom: 100}, DropOn},
		{"middle", 80, Rect{Top: 60, Bottom: 100}, DropOn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDrop(tt.y, tt.box); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

type fixedPointer struct {
	y   float64
	box Rect
}

func (p fixedPointer) PointerY() float64 { return p.y }
func (p fixedPointer) Bounds() Rect      { return p.box }

func TestClassifyPointer(t *testing.T) {
	if got := ClassifyPointer(fixedPointer{y: 12, box: Rect{Top: 0, Bottom: 24}}); got != DropOn {
		t.Fatalf("expected %s, got %s", DropOn, got)
	}
}

func TestClassifyDropIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		top := rapid.Float64Range(-1000, 1000).Draw(t, "top")
		height := rapid.Float64Range(0, 200).Draw(t, "height")
		y := rapid.Float64Range(-2000, 2000).Draw(t, "y")
		zone := ClassifyDrop(y, Rect{Top: top, Bottom: top + height})
		switch zone {
		case DropAbove:
			if y >= top+height-DropTolerance || y >= top+DropTolerance {
				t.Fatalf("above chosen for y=%v box=[%v,%v]", y, top, top+height)
			}
		case DropBelow:
			if y < top+height-DropTolerance {
				t.Fatalf("below chosen for y=%v box=[%v,%v]", y, top, top+height)
			}
		case DropOn:
			if y < top+DropTolerance || y >= top+height-DropTolerance {
				t.Fatalf("on chosen for y=%v box=[%v,%v]", y, top, top+height)
			}
		default:
			t.Fatalf("unexpected zone %v", zone)
		}
	})
}

func TestDropZoneStrings(t *testing.T) {
	want := map[DropZone]string{
		DropAbove: "DRAG_OVER_TOP",
		DropOn:    "DRAG_OVER",
		DropBelow: "DRAG_OVER_BOTTOM",
		DropNone:  "NONE",
	}
	for zone, s := range want {
		if zone.String() != s {
			t.Errorf("expected %s, got %s", s, zone.String())
		}
	}
}

func TestListHeight(t *testing.T) {
	tests := []struct {
		inline, searchable bool
		height, want       int
	}{
		{true, true, 300, 276},
		{false, true, 300, 228},
		{false, false, 300, 276},
		{true, false, 300, 276},
		{false, true, 0, -72},
	}
	for _, tt := range tests {
		if got := ListHeight(tt.inline, tt.searchable, tt.height); got != tt.want {
			t.Errorf("ListHeight(%v, %v, %d) = %d, want %d", tt.inline, tt.searchable, tt.height, got, tt.want)
		}
	}
}
