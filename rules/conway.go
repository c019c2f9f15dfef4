package rules

const (
	// Dead is the state of an empty cell
	Dead uint8 = 0
	// Alive is the state of a living cell
	Alive uint8 = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState is ApplyConwayRules over binary cell states
func NextState(current uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, current == Alive) {
		return Alive
	}
	return Dead
}
