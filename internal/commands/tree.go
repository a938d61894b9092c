// Package commands contains the directory walk that renders an annotated image tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/imgtree/internal/types"
	"github.com/temirov/imgtree/internal/utils"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorAbsolutePathFormat is used when the absolute root path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorWriteListingFormat is used when the listing writer fails.
	errorWriteListingFormat = "writing listing for %s: %w"

	directoryLineFormat     = "%s%s" + types.DirectorySuffix + "\n"
	fileLineFormat          = "%s%s\n"
	annotatedFileLineFormat = "%s%s %s\n"

	probeFailedLogMessage       = "image probe failed"
	skippedDirectoryLinkMessage = "skipping symbolic link to directory"
	excludedDirectoryLogMessage = "skipping excluded directory"
)

var (
	errNilListingWriter = errors.New("tree listing writer is nil")
	errEmptyTreeRoot    = errors.New("tree root path is empty")
)

// TreeOptions configures a single tree listing.
type TreeOptions struct {
	Root string
	// KeepDirectory decides whether a subdirectory is descended into; defaults to KeepDirectory.
	KeepDirectory func(directoryName string) bool
	// Probe reads image dimensions; defaults to ProbeImage.
	Probe  func(imagePath string) ProbeResult
	Logger *zap.Logger
}

type treePrinter struct {
	writer  io.Writer
	options TreeOptions
}

// PrintTree writes the indented listing of options.Root to writer.
// Directories are printed top-down: a directory line, its files, then each kept subdirectory.
// Unreadable images are annotated inline; an unreadable directory aborts the walk.
func PrintTree(writer io.Writer, options TreeOptions) error {
	if writer == nil {
		return errNilListingWriter
	}
	if options.Root == "" {
		return errEmptyTreeRoot
	}
	if options.KeepDirectory == nil {
		options.KeepDirectory = KeepDirectory
	}
	if options.Probe == nil {
		options.Probe = ProbeImage
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	absoluteRoot, absolutePathError := filepath.Abs(options.Root)
	if absolutePathError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, options.Root, absolutePathError)
	}
	options.Root = filepath.Clean(absoluteRoot)

	printer := &treePrinter{writer: writer, options: options}
	return printer.walkDirectory(options.Root)
}

// walkDirectory lists directoryPath and recurses into its kept subdirectories.
func (printer *treePrinter) walkDirectory(directoryPath string) error {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}
	subdirectoryNames, fileNames := printer.partitionEntries(directoryPath, directoryEntries)
	depth := utils.NestingDepth(directoryPath, printer.options.Root)

	if _, writeError := fmt.Fprintf(printer.writer, directoryLineFormat, indentation(depth), utils.DirectoryDisplayName(directoryPath)); writeError != nil {
		return fmt.Errorf(errorWriteListingFormat, directoryPath, writeError)
	}

	fileIndentation := indentation(depth + 1)
	for _, fileName := range fileNames {
		if writeError := printer.writeFileLine(filepath.Join(directoryPath, fileName), fileName, fileIndentation); writeError != nil {
			return fmt.Errorf(errorWriteListingFormat, directoryPath, writeError)
		}
	}

	keptDirectoryNames := FilterDirectories(subdirectoryNames, printer.options.KeepDirectory)
	if skipped := len(subdirectoryNames) - len(keptDirectoryNames); skipped > 0 {
		printer.options.Logger.Debug(excludedDirectoryLogMessage, zap.String("directory", directoryPath), zap.Int("count", skipped))
	}
	for _, subdirectoryName := range keptDirectoryNames {
		if walkError := printer.walkDirectory(filepath.Join(directoryPath, subdirectoryName)); walkError != nil {
			return walkError
		}
	}
	return nil
}

// partitionEntries splits entries into subdirectory and file names, both in lexical order.
// Symbolic links to directories are neither followed nor listed.
func (printer *treePrinter) partitionEntries(directoryPath string, directoryEntries []os.DirEntry) ([]string, []string) {
	var subdirectoryNames []string
	var fileNames []string
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if directoryEntry.IsDir() {
			subdirectoryNames = append(subdirectoryNames, entryName)
			continue
		}
		if directoryEntry.Type()&fs.ModeSymlink != 0 {
			targetInformation, statError := os.Stat(filepath.Join(directoryPath, entryName))
			if statError == nil && targetInformation.IsDir() {
				printer.options.Logger.Debug(skippedDirectoryLinkMessage, zap.String("path", filepath.Join(directoryPath, entryName)))
				continue
			}
		}
		fileNames = append(fileNames, entryName)
	}
	return subdirectoryNames, fileNames
}

func (printer *treePrinter) writeFileLine(filePath string, fileName string, fileIndentation string) error {
	if !IsImageFile(fileName) {
		_, writeError := fmt.Fprintf(printer.writer, fileLineFormat, fileIndentation, fileName)
		return writeError
	}

	probeResult := printer.options.Probe(filePath)
	if !probeResult.Succeeded() {
		printer.options.Logger.Debug(probeFailedLogMessage, zap.String("path", filePath), zap.String("reason", probeResult.FailureMessage))
	}
	_, writeError := fmt.Fprintf(printer.writer, annotatedFileLineFormat, fileIndentation, fileName, probeResult.Annotation())
	return writeError
}

func indentation(depth int) string {
	return strings.Repeat(" ", types.IndentWidth*depth)
}
