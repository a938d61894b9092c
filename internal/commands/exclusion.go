package commands

import (
	"path/filepath"
	"strings"
)

const leadingDotCharacters = "."

// excludedDirectoryNames holds build, VCS and IDE directories that are never listed.
var excludedDirectoryNames = map[string]struct{}{
	".next":        {},
	"node_modules": {},
	".git":         {},
	".idea":        {},
}

// imageExtensions holds the lowercase extensions probed for pixel dimensions.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

// IsExcludedDirectory reports whether a directory basename is in the exclusion set.
// Matching is exact: no wildcards and no path components.
func IsExcludedDirectory(directoryName string) bool {
	_, excluded := excludedDirectoryNames[directoryName]
	return excluded
}

// KeepDirectory is the default descent predicate.
func KeepDirectory(directoryName string) bool {
	return !IsExcludedDirectory(directoryName)
}

// FilterDirectories returns the names accepted by keep, in input order.
// The input slice is left untouched.
func FilterDirectories(directoryNames []string, keep func(string) bool) []string {
	filteredNames := make([]string, 0, len(directoryNames))
	for _, directoryName := range directoryNames {
		if keep == nil || keep(directoryName) {
			filteredNames = append(filteredNames, directoryName)
		}
	}
	return filteredNames
}

// IsImageFile reports whether the file extension, compared case-insensitively, names an image format.
// Leading dots belong to the base name, so ".png" has no extension.
func IsImageFile(fileName string) bool {
	extension := filepath.Ext(strings.TrimLeft(fileName, leadingDotCharacters))
	_, isImage := imageExtensions[strings.ToLower(extension)]
	return isImage
}
