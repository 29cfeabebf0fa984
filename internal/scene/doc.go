// Package scene is the small 3D host the charts are drawn into.
//
// It owns everything a renderer needs to present a frame and everything
// the interaction layer needs to pick objects:
//
//   - [Scene]: flat container of [Mesh] values
//   - [Camera]: perspective camera with cached projection matrix
//   - [Orbit]: rotate/zoom/pan controls around the camera target
//   - [Ray]: picking ray with box and sphere intersection
//   - [Viewport]: pixel surface size and NDC conversion
//
// Hosts (terminal, window, SVG export) only read meshes and the camera;
// they never mutate them.
package scene
