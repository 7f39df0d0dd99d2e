// Package main hosts the speechset CLI.
//
// The Cobra command tree builds the labeled paragraph dataset from a
// transcript directory and the annotation tables, records each build in the
// state database, inspects stored runs, and exports train/validation/test
// splits. Configuration is loaded once per invocation and shared by every
// subcommand through commandContext.
package main
