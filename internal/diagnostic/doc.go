// Package diagnostic provides the positioned error value every pipeline
// stage returns. The pipeline is abort-on-first-error: a failed expansion
// carries exactly one Error, pointing at the declaration token that caused
// it.
package diagnostic
