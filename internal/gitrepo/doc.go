// Package gitrepo exposes repository-level git operations on top of execshell.
package gitrepo
