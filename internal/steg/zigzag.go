package steg

// Zigzag returns the boustrophedon scan order over a width x height grid:
// even rows left to right, odd rows right to left. Every flattened index
// appears exactly once.
func Zigzag(width, height int) []int {
	order := make([]int, 0, width*height)
	for row := 0; row < height; row++ {
		base := row * width
		if row%2 == 0 {
			for col := 0; col < width; col++ {
				order = append(order, base+col)
			}
			continue
		}
		for col := width - 1; col >= 0; col-- {
			order = append(order, base+col)
		}
	}
	return order
}
