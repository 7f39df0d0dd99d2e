// Package preflight provides readiness checks for the inputs and state paths
// a dataset build depends on.
//
// The CLI "speechset check" command runs RunAll and renders each Result; a
// build is expected to fail whenever any check here fails.
package preflight
