package breaker

import (
	"math"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/core"
)

// Paddle is the player's paddle. X is the left edge in fractional
// columns; Y is a fixed row near the bottom of the field.
type Paddle struct {
	X     float64
	Y     int
	Width int
	Speed float64 // columns per second
}

// Move shifts the paddle by one fixed slice in the given direction
// (-1, 0, +1), clamped so the paddle never touches the side borders.
func (p *Paddle) Move(dt float64, dir int, fieldWidth int) {
	p.X += p.Speed * dt * float64(dir)
	p.X = core.ClampF(p.X, 1, float64(fieldWidth-1-p.Width))
}

// Center returns the paddle's center column.
func (p *Paddle) Center() float64 {
	return p.X + float64(p.Width)/2
}

// Ball is the ball state in fractional cell coordinates. Velocity is in
// columns per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// SpeedMag returns the velocity magnitude.
func (b *Ball) SpeedMag() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Cell returns the ball's position rounded to a grid cell.
func (b *Ball) Cell() (col, row int) {
	return int(math.Round(b.X)), int(math.Round(b.Y))
}

// Input is the held movement state for one fixed slice.
type Input struct {
	Left, Right bool
}

// StepEvents reports what happened during one fixed slice.
type StepEvents struct {
	BricksHit   int
	WaveCleared bool
	BallLost    bool
}

// Physics advances the paddle and ball by fixed time slices and resolves
// collisions against the walls, the paddle, and the brick field.
type Physics struct {
	fieldW, fieldH int
	ball           config.BallConfig
	bounce         config.BounceConfig
	maxAngle       float64 // radians
}

// NewPhysics derives the collision parameters from the configuration.
func NewPhysics(cfg config.Config) *Physics {
	return &Physics{
		fieldW:   cfg.Field.Width,
		fieldH:   cfg.Field.Height,
		ball:     cfg.Ball,
		bounce:   cfg.Bounce,
		maxAngle: cfg.Bounce.MaxAngleDeg * math.Pi / 180,
	}
}

// Advance moves the simulation forward by one fixed slice, mutating the
// paddle, ball, and field in place.
func (p *Physics) Advance(dt float64, in Input, paddle *Paddle, ball *Ball, field *BrickField) StepEvents {
	var ev StepEvents

	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	paddle.Move(dt, dir, p.fieldW)

	ball.X += ball.VX * dt
	ball.Y += ball.VY * dt

	p.collideWalls(ball)
	p.collidePaddle(ball, paddle)
	p.collideBricks(ball, field, &ev)

	// Past the bottom border means the ball is gone
	if ball.Y > float64(p.fieldH-1) {
		ev.BallLost = true
	}
	return ev
}

// collideWalls reflects the ball off the side and top borders. Each axis
// reflects independently, with the position clamped onto the wall.
func (p *Physics) collideWalls(ball *Ball) {
	minX := 1.0
	maxX := float64(p.fieldW - 2)

	if ball.X <= minX {
		ball.X = minX
		ball.VX = math.Abs(ball.VX)
	} else if ball.X >= maxX {
		ball.X = maxX
		ball.VX = -math.Abs(ball.VX)
	}

	if ball.Y <= 1 {
		ball.Y = 1
		ball.VY = math.Abs(ball.VY)
	}
}

// collidePaddle deflects a downward-moving ball that reaches the paddle.
// The bounce angle grows with the distance from the paddle center, up to
// maxAngle at the tip; hits near the ends also gain an edge boost. The
// boost applies after the speed band clamp, so an edge hit may briefly
// exceed the nominal cap.
func (p *Physics) collidePaddle(ball *Ball, paddle *Paddle) {
	if ball.VY <= 0 {
		return
	}
	py := float64(paddle.Y)
	if ball.Y < py-1 || ball.Y > py {
		return
	}
	if ball.X < paddle.X || ball.X > paddle.X+float64(paddle.Width) {
		return
	}

	hit := 0.0
	if half := float64(paddle.Width) / 2; half > 0 {
		hit = core.ClampF((ball.X-paddle.Center())/half, -1, 1)
	}

	speed := core.ClampF(ball.SpeedMag(), p.ball.MinSpeed, p.ball.MaxSpeed)
	if a := math.Abs(hit); a > p.bounce.EdgeZone {
		t := (a - p.bounce.EdgeZone) / (1 - p.bounce.EdgeZone)
		speed *= 1 + (p.bounce.EdgeBoost-1)*t
	}

	angle := hit * p.maxAngle
	ball.VX = speed * math.Sin(angle)
	ball.VY = -math.Abs(speed * math.Cos(angle))
	ball.Y = py - 1
}

// collideBricks kills the brick under the ball's rounded cell, if any.
// A hit inverts the vertical velocity and nudges both axes slightly
// faster, capped per axis. An emptied wave regenerates in place.
func (p *Physics) collideBricks(ball *Ball, field *BrickField, ev *StepEvents) {
	col, row := ball.Cell()
	if !field.InRowRange(row) {
		return
	}
	if !field.TestHit(col, row) {
		return
	}

	ev.BricksHit++
	ball.VY = -ball.VY
	ball.VX = boostAxis(ball.VX, p.bounce.BrickBoost, p.ball.MaxSpeed)
	ball.VY = boostAxis(ball.VY, p.bounce.BrickBoost, p.ball.MaxSpeed)

	if field.Remaining() == 0 {
		field.Regenerate()
		ev.WaveCleared = true
	}
}

// boostAxis scales one velocity component, capping its magnitude.
func boostAxis(v, boost, maxMag float64) float64 {
	v *= boost
	return core.ClampF(v, -maxMag, maxMag)
}
