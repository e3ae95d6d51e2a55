// Package application provides the command-line front end and dependency
// wiring. It builds the kingpin parser, resolves configuration and the
// logger, and dispatches commands to the calculator, greeting and list
// utility packages, keeping the main package a thin entry point.
package application
