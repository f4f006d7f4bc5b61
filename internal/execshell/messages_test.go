package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForInitIncludesWorkingDirectory(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"init"},
			WorkingDirectory: "/workspace/project",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Initializing repository in /workspace/project", message)
}

func TestBuildStartedMessageWithoutWorkingDirectoryUsesCurrentDirectoryLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"commit", "-m", "Initial commit"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Creating commit in current directory", message)
}

func TestBuildSuccessMessageForVersionIncludesOutput(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"--version"}},
	}
	result := ExecutionResult{StandardOutput: "git version 2.45.1\n"}

	message := formatter.BuildSuccessMessage(command, result)

	require.Equal(t, "git is available (git version 2.45.1)", message)
}

func TestBuildFailureMessageForCommitIncludesStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"commit", "-m", "Initial commit"},
			WorkingDirectory: "/workspace/project",
		},
	}
	result := ExecutionResult{ExitCode: 1, StandardError: "nothing to commit\n"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Failed to create commit in /workspace/project (exit code 1: nothing to commit)", message)
}
