// Package anim holds the per-frame logic: the [Driver] that oscillates bar
// heights, the [Projector] that places labels in screen space, and
// [Frame], which runs both in a fixed order once per tick.
//
// Nothing here owns a clock. Hosts call [Frame.Tick] from whatever drives
// presentation: a Bubble Tea tick message, a raylib draw loop, or [Loop].
//
// # Frame order
//
//	Driver.Advance -> Controls.Update -> Projector.Update -> Renderer.Render
package anim
