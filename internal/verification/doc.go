// Package verification produces and checks the evidence that an agreement's
// content and signatures are intact.
//
// Everything here is a pure function of its arguments: callers pass the
// current time explicitly, and failed checks are reported as data in a
// Report rather than as errors. Errors are only returned when a required
// input is missing, and those errors unwrap to model.ErrInvalidInput.
package verification
