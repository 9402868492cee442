// Package config aggregates every tunable subsystem's functional options
// (package cognate, score, filler) into one Options value, binds it to
// CLI flags with github.com/spf13/pflag, and validates it into the
// configuration errors of spec.md §7.
//
// Mirrors builder.BuilderOption / builder.newBuilderConfig's resolve-
// then-validate shape, generalized to a struct of plain fields instead
// of a functional-options chain, since this is the CLI-facing aggregate
// rather than a single subsystem's constructor.
//
//	go get github.com/corvidnlp/yasa/config
package config
