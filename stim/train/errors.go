package train

import "errors"

var (
	// ErrLengthMismatch reports amplitude/duration arrays of unequal length.
	ErrLengthMismatch = errors.New("train: amplitude/duration length mismatch")
	// ErrInvalidTimes reports pulse onset times that are negative or not
	// strictly ascending.
	ErrInvalidTimes = errors.New("train: times must be non-negative and strictly ascending")
	// ErrInsufficientSpacing reports an inter-pulse interval shorter than
	// the waveform placed at each onset.
	ErrInsufficientSpacing = errors.New("train: waveform does not fit between pulse times")
	// ErrRateTooHigh reports a pulse period that resolves to zero steps on
	// the time grid.
	ErrRateTooHigh = errors.New("train: pulse rate not representable at the minimum time step")
	// ErrRateExceedsWaveform reports a pulse period shorter than the
	// waveform itself.
	ErrRateExceedsWaveform = errors.New("train: pulse period shorter than waveform duration")
	// ErrTrainRateTooHigh reports a train period that cannot contain the
	// pulse group, or that resolves to zero steps.
	ErrTrainRateTooHigh = errors.New("train: train period shorter than pulse group duration")
	// ErrInvalidRepeat reports a non-positive repetition count.
	ErrInvalidRepeat = errors.New("train: repeat count must be > 0")
	// ErrMaskLength reports an expansion mask whose length differs from the
	// segment count.
	ErrMaskLength = errors.New("train: mask length mismatch")
	// ErrInsufficientNeighborDuration reports a neighbor segment too short
	// to donate the requested boundary shift.
	ErrInsufficientNeighborDuration = errors.New("train: neighbor segment too short for boundary shift")
	// ErrInsufficientOwnDuration reports a masked segment too short to
	// shrink by the requested boundary shift.
	ErrInsufficientOwnDuration = errors.New("train: segment too short for boundary shift")
	// ErrBoundaryExpansion reports a first/last-segment expansion without
	// opting into total-duration growth.
	ErrBoundaryExpansion = errors.New("train: boundary expansion requires total duration growth opt-in")
	// ErrEmptyTrain reports an operation that needs at least one segment.
	ErrEmptyTrain = errors.New("train: train is empty")
)
