// Package types defines every cross‑package data structure used by the imgtree CLI.
package types

const (
	// IndentWidth is the number of spaces added per nesting level.
	IndentWidth = 4
	// DirectorySuffix terminates every directory line of a listing.
	DirectorySuffix = "/"

	// InvalidDirectoryMessage is printed when the root does not name a directory.
	InvalidDirectoryMessage = "Error: The provided path is not a valid directory."
)

// ValidatedPath is an absolute root path that already passed the directory check.
type ValidatedPath struct {
	AbsolutePath string
}

// Dimensions holds the pixel size of a decoded image header.
type Dimensions struct {
	Width  int
	Height int
}
