package trial

import "errors"

var (
	// ErrNotRendered is returned by interactions before Render.
	ErrNotRendered = errors.New("trial: not rendered")
	// ErrAlreadyRendered is returned when Render is called twice.
	ErrAlreadyRendered = errors.New("trial: already rendered")
	// ErrFinished is returned by interactions after the result was emitted.
	ErrFinished = errors.New("trial: already finished")
	// ErrSubmitDisabled is returned while movement is required and at least
	// one slider has not been touched.
	ErrSubmitDisabled = errors.New("trial: submit disabled until every slider is moved")
	// ErrUnknownControl reports a display position outside the form.
	ErrUnknownControl = errors.New("trial: unknown slider position")
	// ErrValueOutOfRange reports a slider value outside [min, max] or off
	// the step grid.
	ErrValueOutOfRange = errors.New("trial: slider value out of range")
	// ErrSurfaceBusy is returned when mounting onto a non-empty surface.
	ErrSurfaceBusy = errors.New("trial: surface is not empty")
)
