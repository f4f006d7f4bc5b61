// Package bootstrap provides the idempotent project bootstrap service.
//
// It offers CommandBuilder for the Cobra command and Service for orchestrating
// the ordered bootstrap steps: verifying git availability, ensuring project
// directories, initializing the repository, writing the ignore file, and
// creating the initial commit. Every step is safe to re-run.
package bootstrap
