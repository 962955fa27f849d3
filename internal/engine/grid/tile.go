package grid

// Tile classifies a cell by the board edges it touches
type Tile string

const (
	TileTopLeft     Tile = "top-left"
	TileTop         Tile = "top"
	TileTopRight    Tile = "top-right"
	TileLeft        Tile = "left"
	TileCenter      Tile = "center"
	TileRight       Tile = "right"
	TileBottomLeft  Tile = "bottom-left"
	TileBottom      Tile = "bottom"
	TileBottomRight Tile = "bottom-right"
)

// TileOf returns the edge classification of a cell
func (g Geometry) TileOf(index int) Tile {
	c := g.CoordinatesOf(index)
	top, bottom := c.Row == 1, c.Row == g.Size
	left, right := c.Col == 1, c.Col == g.Size

	switch {
	case top && left:
		return TileTopLeft
	case top && right:
		return TileTopRight
	case top:
		return TileTop
	case bottom && left:
		return TileBottomLeft
	case bottom && right:
		return TileBottomRight
	case bottom:
		return TileBottom
	case left:
		return TileLeft
	case right:
		return TileRight
	default:
		return TileCenter
	}
}
