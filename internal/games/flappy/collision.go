package flappy

// Collides reports whether the body overlaps either arm of any obstacle.
// The floor and ceiling are not obstacles: Integrate clamps the body to them.
func Collides(body *Body, field *Field) bool {
	b := body.Box()
	for _, o := range field.obstacles {
		if b.X >= o.X+field.width || b.Right() <= o.X {
			continue
		}
		if b.Y < o.TopHeight || b.Bottom() > field.worldH-o.BottomHeight {
			return true
		}
	}
	return false
}
