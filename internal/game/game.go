package game

import (
	"fmt"

	"github.com/rocketscienceinc/bowling-kata/internal/apperror"
)

func NewGame() *Game {
	return &Game{
		rolls: []int{},
	}
}

// Roll records the pins knocked down by one throw and moves the cursor.
// A rejected roll leaves the game untouched.
func (that *Game) Roll(pins int) error {
	if that.IsFinished() {
		return fmt.Errorf("%w: pins %d", apperror.ErrGameOver, pins)
	}

	if pins < 0 {
		return fmt.Errorf("%w: pins %d is negative", apperror.ErrInvalidRoll, pins)
	}

	if that.currentFrame < normalFrames {
		if err := that.rollNormalFrame(pins); err != nil {
			return err
		}
	} else {
		that.rollFinalFrame(pins)
	}

	that.rolls = append(that.rolls, pins)

	return nil
}

// Score sums everything recorded so far. Rolls that have not happened yet
// count as zero, so pending bonuses are not included.
func (that *Game) Score() int {
	total := 0

	for i := 0; i < normalFrames; i++ {
		total += that.frames[i][0] + that.frames[i][1] + that.spareBonus(i) + that.strikeBonus(i)
	}

	for _, pins := range that.finalFrame {
		total += pins
	}

	return total
}

func (that *Game) IsFinished() bool {
	return that.currentFrame > normalFrames
}

// Frame returns the 1-based number of the frame awaiting the next roll.
func (that *Game) Frame() int {
	return that.currentFrame + 1
}

// Rolls returns the accepted pin counts in the order they were rolled.
func (that *Game) Rolls() []int {
	rolls := make([]int, len(that.rolls))
	copy(rolls, that.rolls)

	return rolls
}

func (that *Game) rollNormalFrame(pins int) error {
	// a second roll of zero is always accepted
	if pins > 0 && pins > pinsPerFrame-that.frames[that.currentFrame][0] {
		return fmt.Errorf("%w: pins %d in frame %d", apperror.ErrInvalidRoll, pins, that.Frame())
	}

	that.frames[that.currentFrame][that.currentRoll] = pins

	if that.currentRoll == rollsPerFrame-1 || that.isStrike(that.currentFrame) {
		that.currentRoll = 0
		that.currentFrame++
		return nil
	}

	that.currentRoll++

	return nil
}

// rollFinalFrame has no pins-left check: the bonus roll may exceed what the
// first roll left standing.
func (that *Game) rollFinalFrame(pins int) {
	that.finalFrame[that.finalRoll] = pins
	that.finalRoll++

	if that.finalRoll == finalRolls || that.isFinalFrameClosed() {
		that.currentFrame++
	}
}

// isFinalFrameClosed reports whether two final rolls were thrown without a
// strike or spare, so no bonus roll is earned.
func (that *Game) isFinalFrameClosed() bool {
	return that.finalRoll == 2 && that.finalFrame[0]+that.finalFrame[1] < pinsPerFrame
}

func (that *Game) spareBonus(i int) int {
	if that.isStrike(i) || !that.isSpare(i) {
		return 0
	}

	if i == normalFrames-1 {
		return that.finalFrame[0]
	}

	return that.frames[i+1][0]
}

func (that *Game) strikeBonus(i int) int {
	if !that.isStrike(i) {
		return 0
	}

	switch {
	case i == normalFrames-1:
		return that.finalFrame[0] + that.finalFrame[1]
	case that.isStrike(i + 1):
		if i == normalFrames-2 {
			return that.frames[i+1][0] + that.finalFrame[0]
		}
		return that.frames[i+1][0] + that.frames[i+2][0]
	default:
		return that.frames[i+1][0] + that.frames[i+1][1]
	}
}

func (that *Game) isStrike(i int) bool {
	return that.frames[i][0] == pinsPerFrame
}

func (that *Game) isSpare(i int) bool {
	return that.frames[i][0]+that.frames[i][1] == pinsPerFrame
}
