package tui

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("tui: analysis service is required")

// ErrMissingPropertyService is returned when the property service is not provided.
var ErrMissingPropertyService = errors.New("tui: property service is required")

// ErrMissingMoodyService is returned when the moody service is not provided.
var ErrMissingMoodyService = errors.New("tui: moody service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
