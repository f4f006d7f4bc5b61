package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/structline/projectinit/internal/bootstrap"
)

const (
	testGitPathConstant           = "/usr/bin/git"
	testCommitMessageConstant     = "Initial commit"
	testIgnoreFileNameConstant    = ".gitignore"
	testSourceDirectoryConstant   = "src"
	testDocsDirectoryConstant     = "docs"
	testDirtyStatusOutputConstant = "?? src/"
)

type fakeExecutableResolver struct {
	resolvedPath string
	resolveError error
}

func (resolver fakeExecutableResolver) Resolve(executableName string) (string, error) {
	if resolver.resolveError != nil {
		return "", resolver.resolveError
	}
	return resolver.resolvedPath, nil
}

// fakeRepositoryManager emulates git: InitializeRepository materializes the
// metadata directory so repeated runs observe an existing repository.
type fakeRepositoryManager struct {
	statusOutput    string
	statusError     error
	initializeCalls int
	stageCalls      int
	commitCalls     int
	commitMessages  []string
}

func (manager *fakeRepositoryManager) InitializeRepository(executionContext context.Context, repositoryPath string) error {
	manager.initializeCalls++
	return os.MkdirAll(filepath.Join(repositoryPath, ".git"), 0o755)
}

func (manager *fakeRepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	manager.stageCalls++
	return nil
}

func (manager *fakeRepositoryManager) WorktreeStatus(executionContext context.Context, repositoryPath string) (string, error) {
	return manager.statusOutput, manager.statusError
}

func (manager *fakeRepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	manager.commitCalls++
	manager.commitMessages = append(manager.commitMessages, commitMessage)
	return nil
}

func newTestService(testInstance *testing.T, manager bootstrap.RepositoryManager, resolver bootstrap.ExecutableResolver, output *bytes.Buffer) *bootstrap.Service {
	testInstance.Helper()

	service, creationError := bootstrap.NewService(bootstrap.Dependencies{
		Logger:             zap.NewNop(),
		FileSystem:         bootstrap.OSFileSystem{},
		ExecutableResolver: resolver,
		RepositoryManager:  manager,
		Output:             output,
	})
	require.NoError(testInstance, creationError)
	return service
}

func newTestOptions(workingDirectory string) bootstrap.Options {
	return bootstrap.Options{
		WorkingDirectory: workingDirectory,
		Directories:      []string{testSourceDirectoryConstant, testDocsDirectoryConstant},
		IgnoreFileName:   testIgnoreFileNameConstant,
		CommitMessage:    testCommitMessageConstant,
	}
}

func TestServiceBootstrapCreatesExpectedLayout(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	outputBuffer := &bytes.Buffer{}
	repositoryManager := &fakeRepositoryManager{statusOutput: testDirtyStatusOutputConstant}
	service := newTestService(testInstance, repositoryManager, fakeExecutableResolver{resolvedPath: testGitPathConstant}, outputBuffer)

	bootstrapError := service.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.NoError(testInstance, bootstrapError)

	require.DirExists(testInstance, filepath.Join(workingDirectory, testSourceDirectoryConstant))
	require.DirExists(testInstance, filepath.Join(workingDirectory, testDocsDirectoryConstant))
	require.DirExists(testInstance, filepath.Join(workingDirectory, ".git"))

	ignoreFileContent, readError := os.ReadFile(filepath.Join(workingDirectory, testIgnoreFileNameConstant))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, bootstrap.DefaultIgnoreFileContent, string(ignoreFileContent))

	require.Equal(testInstance, 1, repositoryManager.initializeCalls)
	require.Equal(testInstance, 1, repositoryManager.stageCalls)
	require.Equal(testInstance, 1, repositoryManager.commitCalls)
	require.Equal(testInstance, []string{testCommitMessageConstant}, repositoryManager.commitMessages)

	progressOutput := outputBuffer.String()
	require.Contains(testInstance, progressOutput, "1. Checking for git")
	require.Contains(testInstance, progressOutput, "git found at "+testGitPathConstant)
	require.Contains(testInstance, progressOutput, "2. Ensuring project directories")
	require.Contains(testInstance, progressOutput, "created src/")
	require.Contains(testInstance, progressOutput, "created docs/")
	require.Contains(testInstance, progressOutput, "3. Ensuring git repository")
	require.Contains(testInstance, progressOutput, "initialized empty repository")
	require.Contains(testInstance, progressOutput, "4. Ensuring .gitignore")
	require.Contains(testInstance, progressOutput, "created .gitignore")
	require.Contains(testInstance, progressOutput, "5. Committing files")
	require.Contains(testInstance, progressOutput, "created commit: "+testCommitMessageConstant)
}

func TestServiceBootstrapIsIdempotent(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	repositoryManager := &fakeRepositoryManager{statusOutput: testDirtyStatusOutputConstant}
	service := newTestService(testInstance, repositoryManager, fakeExecutableResolver{resolvedPath: testGitPathConstant}, &bytes.Buffer{})

	firstRunError := service.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.NoError(testInstance, firstRunError)

	// Second run observes a clean tree and an existing repository.
	repositoryManager.statusOutput = ""
	secondRunOutput := &bytes.Buffer{}
	secondService := newTestService(testInstance, repositoryManager, fakeExecutableResolver{resolvedPath: testGitPathConstant}, secondRunOutput)

	secondRunError := secondService.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.NoError(testInstance, secondRunError)

	require.Equal(testInstance, 1, repositoryManager.initializeCalls)
	require.Equal(testInstance, 1, repositoryManager.commitCalls)

	progressOutput := secondRunOutput.String()
	require.Contains(testInstance, progressOutput, "src/ already exists")
	require.Contains(testInstance, progressOutput, "docs/ already exists")
	require.Contains(testInstance, progressOutput, "repository already exists")
	require.Contains(testInstance, progressOutput, ".gitignore already exists")
	require.Contains(testInstance, progressOutput, "nothing to commit, working tree clean")
}

func TestServiceBootstrapMissingGitCreatesNothing(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	repositoryManager := &fakeRepositoryManager{}
	resolver := fakeExecutableResolver{resolveError: errors.New("executable file not found in $PATH")}
	service := newTestService(testInstance, repositoryManager, resolver, &bytes.Buffer{})

	bootstrapError := service.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.ErrorIs(testInstance, bootstrapError, bootstrap.ErrGitNotInstalled)

	require.NoDirExists(testInstance, filepath.Join(workingDirectory, testSourceDirectoryConstant))
	require.NoDirExists(testInstance, filepath.Join(workingDirectory, ".git"))
	require.NoFileExists(testInstance, filepath.Join(workingDirectory, testIgnoreFileNameConstant))
	require.Zero(testInstance, repositoryManager.initializeCalls)
	require.Zero(testInstance, repositoryManager.stageCalls)
	require.Zero(testInstance, repositoryManager.commitCalls)
}

func TestServiceBootstrapRecreatesDeletedIgnoreFile(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	repositoryManager := &fakeRepositoryManager{statusOutput: testDirtyStatusOutputConstant}
	service := newTestService(testInstance, repositoryManager, fakeExecutableResolver{resolvedPath: testGitPathConstant}, &bytes.Buffer{})

	firstRunError := service.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.NoError(testInstance, firstRunError)

	ignoreFilePath := filepath.Join(workingDirectory, testIgnoreFileNameConstant)
	require.NoError(testInstance, os.Remove(ignoreFilePath))

	secondRunError := service.Bootstrap(context.Background(), newTestOptions(workingDirectory))
	require.NoError(testInstance, secondRunError)

	recreatedContent, readError := os.ReadFile(ignoreFilePath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, bootstrap.DefaultIgnoreFileContent, string(recreatedContent))
}

func TestServiceBootstrapDryRunMutatesNothing(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	outputBuffer := &bytes.Buffer{}
	repositoryManager := &fakeRepositoryManager{}
	service := newTestService(testInstance, repositoryManager, fakeExecutableResolver{resolvedPath: testGitPathConstant}, outputBuffer)

	options := newTestOptions(workingDirectory)
	options.DryRun = true

	bootstrapError := service.Bootstrap(context.Background(), options)
	require.NoError(testInstance, bootstrapError)

	require.NoDirExists(testInstance, filepath.Join(workingDirectory, testSourceDirectoryConstant))
	require.NoDirExists(testInstance, filepath.Join(workingDirectory, ".git"))
	require.NoFileExists(testInstance, filepath.Join(workingDirectory, testIgnoreFileNameConstant))
	require.Zero(testInstance, repositoryManager.initializeCalls)
	require.Zero(testInstance, repositoryManager.stageCalls)
	require.Zero(testInstance, repositoryManager.commitCalls)

	progressOutput := outputBuffer.String()
	require.Contains(testInstance, progressOutput, "would create src/")
	require.Contains(testInstance, progressOutput, "would create docs/")
	require.Contains(testInstance, progressOutput, "would initialize repository")
	require.Contains(testInstance, progressOutput, "would create .gitignore")
	require.Contains(testInstance, progressOutput, "would stage all files and create a commit")
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	testCases := []struct {
		name         string
		dependencies bootstrap.Dependencies
	}{
		{
			name: "missing_logger",
			dependencies: bootstrap.Dependencies{
				FileSystem:         bootstrap.OSFileSystem{},
				ExecutableResolver: fakeExecutableResolver{},
				RepositoryManager:  &fakeRepositoryManager{},
			},
		},
		{
			name: "missing_file_system",
			dependencies: bootstrap.Dependencies{
				Logger:             zap.NewNop(),
				ExecutableResolver: fakeExecutableResolver{},
				RepositoryManager:  &fakeRepositoryManager{},
			},
		},
		{
			name: "missing_resolver",
			dependencies: bootstrap.Dependencies{
				Logger:            zap.NewNop(),
				FileSystem:        bootstrap.OSFileSystem{},
				RepositoryManager: &fakeRepositoryManager{},
			},
		},
		{
			name: "missing_repository_manager",
			dependencies: bootstrap.Dependencies{
				Logger:             zap.NewNop(),
				FileSystem:         bootstrap.OSFileSystem{},
				ExecutableResolver: fakeExecutableResolver{},
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			service, creationError := bootstrap.NewService(testCase.dependencies)
			require.Nil(testInstance, service)
			require.Error(testInstance, creationError)
		})
	}
}
