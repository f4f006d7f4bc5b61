// Package ui renders command lifecycle events for human consumption.
//
// ConsoleCommandEventLogger implements execshell.CommandEventObserver and
// narrates git invocations through a zap logger configured for console output.
package ui
