// Package viz hosts a chart session in the terminal.
//
// Meshes are drawn as depth-sorted wireframes on a braille [Canvas], two by
// four dots per cell, and bar labels are overlaid as text. [Model] is a
// Bubble Tea model that ticks the session at the configured frame rate.
//
// # Key Bindings
//
//	Space        - Pause/Resume animation
//	R            - Rebuild the chart
//	T            - Cycle color themes
//	S            - Save an SVG snapshot
//	Tab          - Select the next bar
//	Arrows/HJKL  - Orbit the camera
//	+/-          - Zoom
//	?            - Show help overlay
//
// A left click picks the bar under the pointer.
package viz
