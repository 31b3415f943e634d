package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JustPressedPoint returns where a left click or a new touch landed this frame
func JustPressedPoint() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	touches := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		return x, y, true
	}
	return 0, 0, false
}

// IsRightClickJustPressed reports a right click this frame
func IsRightClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// GetCursorPosition returns the mouse position in logical pixels
func GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
