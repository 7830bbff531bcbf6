// Package cli wires together the Cobra command tree for the prcoach binary.
//
// It defines the root command and all subcommands (findings, explain, ask,
// samples, rate, feedback, config, models, cache, version), binds flags,
// reads configuration, invokes the explanation engine, and returns
// deterministic exit codes.
package cli
