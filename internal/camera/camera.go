// Package camera implements the first-person hub camera and its lane turn state
// machine.
package camera

import (
	"math"

	"typer3d/internal/input"
	"typer3d/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFOV         = 1.1 // radians
	DefaultSensitivity = 0.02
	DefaultFlySpeed    = 20

	// TurnStep is the turn progress per tick in degrees.
	TurnStep = 5
	// TurnAngle is the progress at which a turn completes.
	TurnAngle = 90

	yawPerStep = math.Pi / 2 / (TurnAngle / TurnStep)
	pitchLimit = math.Pi / 2

	NearPlane = 0.1
	FarPlane  = 500
)

// Direction is the way a turn rotates the view.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign is +1 for left turns and -1 for right turns.
func (d Direction) Sign() float32 {
	if d == Left {
		return 1
	}
	return -1
}

// State is the turn machine state.
type State int

const (
	Straight State = iota
	Turning
)

// EventKind says what the turn machine did during one Update.
type EventKind int

const (
	TurnNone EventKind = iota
	TurnStarted
	TurnStep
	TurnCompleted
)

// TurnEvent reports turn progress to the caller of Update.
type TurnEvent struct {
	Kind     EventKind
	Dir      Direction
	Progress float32 // degrees
}

// Camera holds the eye, its orthonormal basis and the turn machine.
type Camera struct {
	Eye    mgl32.Vec3
	Ahead  mgl32.Vec3
	Right  mgl32.Vec3
	Up     mgl32.Vec3
	LookAt mgl32.Vec3

	FOV         float32
	Aspect      float32
	Sensitivity float32
	FlySpeed    float32

	yaw, pitch float32

	lastMouse  mgl32.Vec2
	mouseDelta mgl32.Vec2

	state    State
	dir      Direction
	progress float32
}

// New returns a camera at the hub center looking down +z.
func New() *Camera {
	c := &Camera{
		Eye:         mgl32.Vec3{0, 0.75, 0},
		Ahead:       mgl32.Vec3{0, 0, 1},
		Right:       mgl32.Vec3{1, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         DefaultFOV,
		Aspect:      1,
		Sensitivity: DefaultSensitivity,
		FlySpeed:    DefaultFlySpeed,
	}
	c.LookAt = c.Eye.Add(c.Ahead)
	return c
}

func (c *Camera) SetAspect(a float32) { c.Aspect = a }

func (c *Camera) Yaw() float32   { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

func (c *Camera) State() State         { return c.state }
func (c *Camera) Turning() bool        { return c.state == Turning }
func (c *Camera) Direction() Direction { return c.dir }

// Progress is the current turn progress in degrees, 0 when Straight.
func (c *Camera) Progress() float32 { return c.progress }

// ProgressRad is Progress in radians.
func (c *Camera) ProgressRad() float32 { return mgl32.DegToRad(c.progress) }

// StartDrag records the pointer position a drag begins at.
func (c *Camera) StartDrag(x, y float32) {
	c.lastMouse = mgl32.Vec2{x, y}
}

// Drag sets the pending look delta to the pointer movement since the last call.
func (c *Camera) Drag(x, y float32) {
	pos := mgl32.Vec2{x, y}
	c.mouseDelta = pos.Sub(c.lastMouse)
	c.lastMouse = pos
}

// EndDrag drops any pending look delta.
func (c *Camera) EndDrag() {
	c.mouseDelta = mgl32.Vec2{}
}

// Update advances the camera by one tick.
//
// In no-clip mode WASD/QE fly the eye and the mouse delta steers the view. The turn
// machine runs in both modes, but only drives yaw outside no-clip. A turn completes
// on the tick its progress reaches TurnAngle.
func (c *Camera) Update(dt float32, f *input.Frame, noClip bool) TurnEvent {
	c.yaw = math32.Atan2(c.Ahead.X(), c.Ahead.Z())
	c.pitch = -math32.Atan2(c.Ahead.Y(), math32.Sqrt(c.Ahead.X()*c.Ahead.X()+c.Ahead.Z()*c.Ahead.Z()))

	delta := c.mouseDelta.Add(f.MouseDelta)
	if noClip {
		c.fly(dt, f)
		c.yaw -= delta.X() * c.Sensitivity
		c.pitch += delta.Y() * c.Sensitivity
	}

	ev := c.stepTurn(f, noClip)

	c.pitch = mgl32.Clamp(c.pitch, -pitchLimit, pitchLimit)
	c.mouseDelta = mgl32.Vec2{}
	c.rebuild()
	return ev
}

func (c *Camera) fly(dt float32, f *input.Frame) {
	step := dt * c.FlySpeed
	worldUp := mgl32.Vec3{0, 1, 0}
	if f.Down('w') {
		c.Eye = c.Eye.Add(c.Ahead.Mul(step))
	}
	if f.Down('s') {
		c.Eye = c.Eye.Sub(c.Ahead.Mul(step))
	}
	if f.Down('a') {
		c.Eye = c.Eye.Sub(c.Right.Mul(step))
	}
	if f.Down('d') {
		c.Eye = c.Eye.Add(c.Right.Mul(step))
	}
	if f.Down('q') {
		c.Eye = c.Eye.Sub(worldUp.Mul(step))
	}
	if f.Down('e') {
		c.Eye = c.Eye.Add(worldUp.Mul(step))
	}
}

func (c *Camera) stepTurn(f *input.Frame, noClip bool) TurnEvent {
	if c.state == Straight {
		switch {
		case f.Down(input.KeyLeft):
			c.state, c.dir, c.progress = Turning, Left, 0
		case f.Down(input.KeyRight):
			c.state, c.dir, c.progress = Turning, Right, 0
		default:
			return TurnEvent{}
		}
		return TurnEvent{Kind: TurnStarted, Dir: c.dir}
	}

	if !noClip {
		c.yaw += c.dir.Sign() * yawPerStep
	}
	c.progress += TurnStep
	if c.progress >= TurnAngle {
		c.state = Straight
		done := TurnEvent{Kind: TurnCompleted, Dir: c.dir, Progress: c.progress}
		c.progress = 0
		return done
	}
	return TurnEvent{Kind: TurnStep, Dir: c.dir, Progress: c.progress}
}

func (c *Camera) rebuild() {
	sy, cy := math32.Sin(c.yaw), math32.Cos(c.yaw)
	sp, cp := math32.Sin(c.pitch), math32.Cos(c.pitch)
	c.Ahead = mgl32.Vec3{sy * cp, -sp, cy * cp}
	// Looking straight up or down keeps the previous right vector.
	if r, ok := vmath.Normalize(c.Ahead.Cross(mgl32.Vec3{0, 1, 0})); ok {
		c.Right = r
	}
	c.Up = c.Right.Cross(c.Ahead)
	c.LookAt = c.Eye.Add(c.Ahead)
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.LookAt, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect, NearPlane, FarPlane)
}
