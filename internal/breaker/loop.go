package breaker

import "time"

// tick is the scheduler callback. It converts the wall-clock delta into
// fixed slices, steps the simulation while playing, renders once, and
// re-arms the scheduler. While a prompt is open the accumulator drains
// without stepping, so returning to play never causes a catch-up burst.
func (e *Engine) tick(now time.Time) {
	if !e.running {
		return
	}

	delta := now.Sub(e.lastNow).Seconds()
	e.lastNow = now
	if delta < 0 {
		delta = 0
	}
	if limit := float64(e.cfg.Loop.MaxFrameDeltaMS) / 1000; delta > limit {
		delta = limit
	}

	e.acc += delta
	dt := 1.0 / float64(e.cfg.Loop.TickRate)
	for e.acc >= dt {
		e.acc -= dt
		if e.state == StatePlaying {
			e.step(dt)
		}
	}

	e.render()

	if e.running {
		e.host.Scheduler.ScheduleTick(e.tick)
	}
}

// step advances physics by one fixed slice and applies its events.
func (e *Engine) step(dt float64) {
	ev := e.phys.Advance(dt, Input{Left: e.left, Right: e.right}, e.paddle, e.ball, e.field)
	e.score += ev.BricksHit
	if ev.BallLost {
		e.ballLost()
	}
}
