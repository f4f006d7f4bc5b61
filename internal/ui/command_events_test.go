package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/structline/projectinit/internal/execshell"
	"github.com/structline/projectinit/internal/ui"
)

const (
	testRepositoryPathConstant = "/workspace/project"
)

func newGitCommand(arguments ...string) execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        arguments,
			WorkingDirectory: testRepositoryPathConstant,
		},
	}
}

func TestConsoleCommandEventLoggerLogsLifecycleMessages(testInstance *testing.T) {
	testCases := []struct {
		name            string
		emit            func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "started",
			emit: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(newGitCommand("init"))
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Initializing repository in /workspace/project",
		},
		{
			name: "completed_success",
			emit: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(newGitCommand("add", "."), execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Staged files in /workspace/project",
		},
		{
			name: "completed_failure",
			emit: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(newGitCommand("init"), execshell.ExecutionResult{ExitCode: 128, StandardError: "permission denied"})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: "Failed to initialize repository in /workspace/project (exit code 128: permission denied)",
		},
		{
			name: "execution_failure",
			emit: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(newGitCommand("init"), errors.New("binary missing"))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: "Unable to initialize repository in /workspace/project: binary missing",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.emit(eventLogger)

			allEntries := observedLogs.All()
			require.Len(testInstance, allEntries, 1)
			require.Equal(testInstance, testCase.expectedLevel, allEntries[0].Level)
			require.Equal(testInstance, testCase.expectedMessage, allEntries[0].Message)
		})
	}
}

func TestConsoleCommandEventLoggerToleratesNilLogger(testInstance *testing.T) {
	eventLogger := ui.NewConsoleCommandEventLogger(nil)
	require.NotNil(testInstance, eventLogger)
	eventLogger.CommandStarted(newGitCommand("init"))
}
