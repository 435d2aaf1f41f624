package engine

import (
	"github.com/go-vgo/robotgo"
)

// Input is the mouse/keyboard capability the procedures drive.
type Input interface {
	Move(x, y int)
	Click()
	Tap(key string) error
	ScreenSize() (width, height int)
}

// Robot implements Input with robotgo.
type Robot struct{}

func NewRobot() *Robot {
	return &Robot{}
}

func (Robot) Move(x, y int) {
	robotgo.MoveMouse(x, y)
}

func (Robot) Click() {
	robotgo.Click("left")
}

func (Robot) Tap(key string) error {
	return robotgo.KeyTap(key)
}

func (Robot) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// ToPixels converts a fractional screen position into absolute pixels,
// truncating toward zero.
func ToPixels(pos [2]float64, width, height int) (int, int) {
	return int(pos[0] * float64(width)), int(pos[1] * float64(height))
}

// clickAt moves to a fractional position on the current screen and clicks.
func clickAt(in Input, pos [2]float64) {
	w, h := in.ScreenSize()
	x, y := ToPixels(pos, w, h)
	in.Move(x, y)
	in.Click()
}
