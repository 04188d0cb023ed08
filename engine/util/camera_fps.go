package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera supplies the per-frame view inputs of the particle pipeline: the
// eye position for billboard orientation and the combined view-projection
// matrix for rasterization.
type Camera interface {
	GetPosition() mgl32.Vec3
	GetFront() mgl32.Vec3
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetProjectionViewMatrix() mgl32.Mat4
}

// FPSCamera is a free-look perspective camera driven by mouse deltas and
// WASD-style movement.
type FPSCamera struct {
	position        mgl32.Vec3
	front           mgl32.Vec3
	right           mgl32.Vec3
	up              mgl32.Vec3
	walkDirection   mgl32.Vec3
	rotatex         float32
	rotatey         float32
	lookSensitivity float32
	invertedY       bool
	fov             float32
	nearPlane       float32
	farPlane        float32
	windowWidth     int
	windowHeight    int
}

func NewFPSCamera(pos mgl32.Vec3, windowWidth, windowHeight int, sensitivity float32) *FPSCamera {
	c := &FPSCamera{
		position:        pos,
		up:              mgl32.Vec3{0, 1, 0},
		lookSensitivity: sensitivity,
		invertedY:       true,
		rotatex:         -90,
		rotatey:         0,
		fov:             45,
		nearPlane:       0.1,
		farPlane:        512,
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}
	c.updateVectors()
	return c
}

func (c *FPSCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FPSCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FPSCamera) GetFront() mgl32.Vec3 {
	return c.front
}

func (c *FPSCamera) GetUp() mgl32.Vec3 {
	return c.up
}

func (c *FPSCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *FPSCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.nearPlane, c.farPlane)
}

func (c *FPSCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// ChangeAngles changes the camera's angles by dx and dy. Used for mouse look.
func (c *FPSCamera) ChangeAngles(dx, dy float32) {
	if mgl32.Abs(dx) > 200 || mgl32.Abs(dy) > 200 {
		// ignore the jump when the cursor enters the window
		return
	}
	c.rotatex += dx * c.lookSensitivity
	yChange := dy * c.lookSensitivity
	if c.invertedY {
		c.rotatey -= yChange
	} else {
		c.rotatey += yChange
	}
	c.updateVectors()
}

// MoveInDirection moves the camera on the walk plane, dir being
// (left/right, forward/backward) in {-1,0,1}.
func (c *FPSCamera) MoveInDirection(delta float32, dir [2]int) {
	moveVector := mgl32.Vec3{}
	if dir[0] != 0 {
		moveVector = moveVector.Add(c.right.Mul(float32(dir[0]) * delta))
	}
	if dir[1] != 0 {
		moveVector = moveVector.Add(c.walkDirection.Mul(float32(dir[1]) * delta))
	}
	c.position = c.position.Add(moveVector)
}

func (c *FPSCamera) SetLookTarget(target mgl32.Vec3) {
	front := target.Sub(c.position).Normalize()
	c.rotatex = mgl32.RadToDeg(float32(math.Atan2(float64(front.Z()), float64(front.X()))))
	c.rotatey = mgl32.RadToDeg(float32(math.Asin(float64(front.Y()))))
	c.updateVectors()
}

func (c *FPSCamera) SetFOV(fov float32) {
	c.fov = fov
}

func (c *FPSCamera) DebugAim() string {
	return fmt.Sprintf("Pos: (%0.2f, %0.2f, %0.2f) Aim: (%0.2f, %0.2f)", c.position.X(), c.position.Y(), c.position.Z(), c.rotatex, c.rotatey)
}

func (c *FPSCamera) updateVectors() {
	if c.rotatey > 89 {
		c.rotatey = 89
	}
	if c.rotatey < -89 {
		c.rotatey = -89
	}
	front := mgl32.Vec3{
		Cos(ToRadian(c.rotatey)) * Cos(ToRadian(c.rotatex)),
		Sin(ToRadian(c.rotatey)),
		Cos(ToRadian(c.rotatey)) * Sin(ToRadian(c.rotatex)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
	c.walkDirection = mgl32.Vec3{0, 1, 0}.Cross(c.right).Normalize()
}
