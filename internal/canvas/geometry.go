package canvas

import (
	"math"

	"moodboard/internal/models"
)

// MinItemSize is the hard floor on item width and height, enforced both
// while a resize handle is being dragged and again when the gesture
// ends.
const MinItemSize = 5.0

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NodeState mirrors the rendering node at the end of a gesture.
type NodeState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
}

// DragEndPatch reads the node position after a drag. Position deltas
// never imply geometry deltas.
func DragEndPatch(node NodeState) *models.UpdateBoardItemRequestBody {
	return &models.UpdateBoardItemRequestBody{
		PositionX: fptr(node.X),
		PositionY: fptr(node.Y),
	}
}

// TransformEndPatch folds the node's scale factors into width and
// height and emits one atomic patch of position, size and rotation.
// The caller must reset the node's scale to 1 so later drags are not
// compounded; the returned state carries that reset.
func TransformEndPatch(node NodeState) (*models.UpdateBoardItemRequestBody, NodeState) {
	scaleX := node.ScaleX
	scaleY := node.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}

	width := math.Max(MinItemSize, node.Width*scaleX)
	height := math.Max(MinItemSize, node.Height*scaleY)

	patch := &models.UpdateBoardItemRequestBody{
		PositionX: fptr(node.X),
		PositionY: fptr(node.Y),
		Width:     fptr(width),
		Height:    fptr(height),
		Rotation:  fptr(node.Rotation),
	}

	node.Width = width
	node.Height = height
	node.ScaleX = 1
	node.ScaleY = 1
	return patch, node
}

// BoundResize is the live clamp applied while a handle is dragged: a
// proposed box below the minimum keeps the prior box.
func BoundResize(oldBox, newBox Box) Box {
	if math.Abs(newBox.Width) < MinItemSize || math.Abs(newBox.Height) < MinItemSize {
		return oldBox
	}
	return newBox
}

func fptr(v float64) *float64 {
	return &v
}
