package game

const (
	normalFrames  = 9
	rollsPerFrame = 2
	finalRolls    = 3
	pinsPerFrame  = 10
)

// frame holds the pins knocked down by each roll of a normal frame.
type frame [rollsPerFrame]int

// Game represents the state of a single bowling game: nine normal frames,
// the final frame and the cursor pointing at the next roll.
type Game struct {
	frames     [normalFrames]frame
	finalFrame [finalRolls]int

	currentFrame int
	currentRoll  int
	finalRoll    int

	rolls []int
}
