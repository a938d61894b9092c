package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// DirectoryDisplayName returns the final element of directoryPath.
// A filesystem root has no final element and yields an empty name.
func DirectoryDisplayName(directoryPath string) string {
	baseName := filepath.Base(directoryPath)
	if baseName == string(filepath.Separator) {
		return ""
	}
	return baseName
}

// NestingDepth counts the path separators left in directoryPath once the root prefix is removed.
// The root itself has depth zero and each nested directory adds one.
func NestingDepth(directoryPath, root string) int {
	relativePath := RelativePathOrSelf(directoryPath, root)
	if relativePath == "." {
		return 0
	}
	return strings.Count(relativePath, pathSegmentSeparator) + 1
}
