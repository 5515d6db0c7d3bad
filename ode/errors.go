package ode

import "errors"

// ErrContractionFailed is returned by Step when the Picard operator
// could not be shown to map the candidate enclosure strictly inside
// itself within the restart budget set by WithRestartMax (the source
// material's return code 0). Step returns tStart as the achieved end
// alongside this error.
var ErrContractionFailed = errors.New("ode: contraction test failed within RestartMax restarts")
