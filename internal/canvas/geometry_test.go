package canvas

import (
	"math"
	"math/rand"
	"testing"
)

func TestDragEndPatchCarriesPositionOnly(t *testing.T) {
	patch := DragEndPatch(NodeState{X: 42, Y: -7, Width: 300, Height: 120, Rotation: 45, ScaleX: 2, ScaleY: 2})

	if patch.PositionX == nil || *patch.PositionX != 42 {
		t.Errorf("expected position_x 42, got %v", patch.PositionX)
	}
	if patch.PositionY == nil || *patch.PositionY != -7 {
		t.Errorf("expected position_y -7, got %v", patch.PositionY)
	}
	if patch.Width != nil || patch.Height != nil || patch.Rotation != nil {
		t.Error("drag end must not touch geometry fields")
	}
}

func TestTransformEndFoldsScaleIntoSize(t *testing.T) {
	patch, node := TransformEndPatch(NodeState{
		X: 10, Y: 20, Width: 100, Height: 50, Rotation: 30, ScaleX: 2, ScaleY: 0.5,
	})

	if *patch.Width != 200 {
		t.Errorf("expected width 200, got %v", *patch.Width)
	}
	if *patch.Height != 25 {
		t.Errorf("expected height 25, got %v", *patch.Height)
	}
	if *patch.PositionX != 10 || *patch.PositionY != 20 || *patch.Rotation != 30 {
		t.Error("transform end must carry position and rotation in the same patch")
	}
	if node.ScaleX != 1 || node.ScaleY != 1 {
		t.Errorf("scale must reset to 1 after folding, got %v/%v", node.ScaleX, node.ScaleY)
	}
	if node.Width != 200 || node.Height != 25 {
		t.Errorf("node size must match the patch, got %v/%v", node.Width, node.Height)
	}
}

func TestTransformEndClampsToMinimum(t *testing.T) {
	patch, _ := TransformEndPatch(NodeState{Width: 100, Height: 100, ScaleX: 0.01, ScaleY: 0.001})

	if *patch.Width != MinItemSize {
		t.Errorf("expected width clamped to %v, got %v", MinItemSize, *patch.Width)
	}
	if *patch.Height != MinItemSize {
		t.Errorf("expected height clamped to %v, got %v", MinItemSize, *patch.Height)
	}
}

func TestTransformEndZeroScaleMeansNoScaling(t *testing.T) {
	patch, _ := TransformEndPatch(NodeState{Width: 80, Height: 60})

	if *patch.Width != 80 || *patch.Height != 60 {
		t.Errorf("zero scale must keep size, got %v/%v", *patch.Width, *patch.Height)
	}
}

func TestTransformEndSizeNeverBelowMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		node := NodeState{
			Width:  rng.Float64() * 400,
			Height: rng.Float64() * 400,
			ScaleX: rng.Float64()*4 - 1,
			ScaleY: rng.Float64()*4 - 1,
		}
		patch, normalized := TransformEndPatch(node)
		if *patch.Width < MinItemSize || *patch.Height < MinItemSize {
			t.Fatalf("size below minimum for node %+v: %v x %v", node, *patch.Width, *patch.Height)
		}
		if normalized.ScaleX != 1 || normalized.ScaleY != 1 {
			t.Fatalf("scale not reset for node %+v", node)
		}
	}
}

func TestBoundResize(t *testing.T) {
	old := Box{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name     string
		proposed Box
		want     Box
	}{
		{"accepts valid box", Box{X: 5, Y: 5, Width: 50, Height: 40}, Box{X: 5, Y: 5, Width: 50, Height: 40}},
		{"rejects narrow box", Box{Width: 4, Height: 40}, old},
		{"rejects short box", Box{Width: 40, Height: 4.9}, old},
		{"accepts exactly minimum", Box{Width: 5, Height: 5}, Box{Width: 5, Height: 5}},
		{"judges negative width by magnitude", Box{Width: -40, Height: 40}, Box{Width: -40, Height: 40}},
		{"rejects small negative width", Box{Width: -4, Height: 40}, old},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundResize(old, tt.proposed)
			if math.Abs(got.Width-tt.want.Width) > 1e-9 || math.Abs(got.Height-tt.want.Height) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
