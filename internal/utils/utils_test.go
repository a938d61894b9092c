package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/imgtree/internal/utils"
)

func TestRelativePathOrSelf(t *testing.T) {
	rootDirectory := t.TempDir()
	testCases := []struct {
		name     string
		fullPath string
		expected string
	}{
		{name: "root_itself", fullPath: rootDirectory, expected: "."},
		{name: "direct_child", fullPath: filepath.Join(rootDirectory, "images"), expected: "images"},
		{name: "nested_child", fullPath: filepath.Join(rootDirectory, "images", "icons"), expected: "images/icons"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, utils.RelativePathOrSelf(testCase.fullPath, rootDirectory))
		})
	}
}

func TestDirectoryDisplayName(t *testing.T) {
	assert.Equal(t, "photos", utils.DirectoryDisplayName(filepath.Join(t.TempDir(), "photos")))
	assert.Equal(t, "", utils.DirectoryDisplayName(string(filepath.Separator)))
}

func TestNestingDepth(t *testing.T) {
	rootDirectory := t.TempDir()
	testCases := []struct {
		name          string
		directoryPath string
		expected      int
	}{
		{name: "root", directoryPath: rootDirectory, expected: 0},
		{name: "trailing_separator_root", directoryPath: rootDirectory + string(filepath.Separator), expected: 0},
		{name: "one_level", directoryPath: filepath.Join(rootDirectory, "a"), expected: 1},
		{name: "three_levels", directoryPath: filepath.Join(rootDirectory, "a", "b", "c"), expected: 3},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, utils.NestingDepth(testCase.directoryPath, rootDirectory))
		})
	}
}

func TestNewApplicationLoggerHonorsSharedLevel(t *testing.T) {
	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	logger, loggerError := utils.NewApplicationLogger(logLevel)
	require.NoError(t, loggerError)

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	logLevel.SetLevel(zap.DebugLevel)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
