// Package chart turns data series into scene meshes and their labels.
//
// Two variants exist. [DualAxis] lays one series along X and one along Z,
// gives every bar a six-color material and a text [Label]. [Showcase] lays
// a single row of bars along X over a base slab and surrounds it with
// planets and a starfield.
//
// The order of [Chart.Bars] is the construction order and never changes;
// for the dual-axis variant Labels[i].Bar is Bars[i].
package chart
