package render

import "errors"

// Sentinel errors for scene construction and emission.
var (
	// ErrBadLimit indicates a non-positive camera axis limit.
	ErrBadLimit = errors.New("render: camera axis limit must be > 0")
	// ErrBadViewport indicates a non-positive output width or height.
	ErrBadViewport = errors.New("render: viewport dimensions must be > 0")
	// ErrEmptyScene indicates WriteSVG was asked to render a scene with no primitives.
	ErrEmptyScene = errors.New("render: scene has no primitives")
	// ErrBadMesh indicates mesh grids that are not parallel rectangular arrays.
	ErrBadMesh = errors.New("render: mesh grids must be parallel and rectangular")
)
