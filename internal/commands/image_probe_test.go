package commands_test

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/temirov/imgtree/internal/commands"
)

func TestProbeImageReadsDimensions(t *testing.T) {
	sourceImage := image.NewRGBA(image.Rect(0, 0, 12, 5))
	testCases := []struct {
		name     string
		fileName string
		encode   func(io.Writer, image.Image) error
	}{
		{name: "png", fileName: "sample.png", encode: png.Encode},
		{name: "gif", fileName: "sample.gif", encode: func(writer io.Writer, source image.Image) error {
			return gif.Encode(writer, source, nil)
		}},
		{name: "jpeg", fileName: "sample.jpeg", encode: func(writer io.Writer, source image.Image) error {
			return jpeg.Encode(writer, source, nil)
		}},
		{name: "jpg", fileName: "sample.jpg", encode: func(writer io.Writer, source image.Image) error {
			return jpeg.Encode(writer, source, nil)
		}},
		{name: "bmp", fileName: "sample.bmp", encode: bmp.Encode},
		{name: "tiff", fileName: "sample.tiff", encode: func(writer io.Writer, source image.Image) error {
			return tiff.Encode(writer, source, nil)
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var encoded bytes.Buffer
			require.NoError(t, testCase.encode(&encoded, sourceImage))
			imagePath := filepath.Join(t.TempDir(), testCase.fileName)
			writeFile(t, imagePath, encoded.Bytes())

			result := commands.ProbeImage(imagePath)

			require.True(t, result.Succeeded(), "probe failed: %s", result.FailureMessage)
			assert.Equal(t, 12, result.Dimensions.Width)
			assert.Equal(t, 5, result.Dimensions.Height)
			assert.Equal(t, "(Image, 12x5)", result.Annotation())
		})
	}
}

// losslessWebP is a 1x1 VP8L image.
var losslessWebP = []byte{
	0x52, 0x49, 0x46, 0x46, 0x1a, 0x00, 0x00, 0x00, 0x57, 0x45, 0x42, 0x50,
	0x56, 0x50, 0x38, 0x4c, 0x0d, 0x00, 0x00, 0x00, 0x2f, 0x00, 0x00, 0x00,
	0x10, 0x07, 0x10, 0x11, 0x11, 0x88, 0x88, 0xfe, 0x07, 0x00,
}

func TestProbeImageReadsWebPDimensions(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "pixel.webp")
	writeFile(t, imagePath, losslessWebP)

	result := commands.ProbeImage(imagePath)

	require.True(t, result.Succeeded(), "probe failed: %s", result.FailureMessage)
	assert.Equal(t, "(Image, 1x1)", result.Annotation())
}

func TestProbeImageReportsFailures(t *testing.T) {
	temporaryDirectory := t.TempDir()
	textPath := filepath.Join(temporaryDirectory, "renamed.jpg")
	writeFile(t, textPath, []byte("not an image"))

	testCases := []struct {
		name            string
		path            string
		expectedMessage string
	}{
		{name: "text_content", path: textPath, expectedMessage: unknownFormatMsg},
		{name: "missing_file", path: filepath.Join(temporaryDirectory, "absent.png")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := commands.ProbeImage(testCase.path)

			assert.False(t, result.Succeeded())
			assert.Nil(t, result.Dimensions)
			assert.NotEmpty(t, result.FailureMessage)
			if testCase.expectedMessage != "" {
				assert.Equal(t, testCase.expectedMessage, result.FailureMessage)
			}
			assert.Equal(t, "(Could not read image dimensions: "+result.FailureMessage+")", result.Annotation())
		})
	}
}

func TestFailedProbeCarriesErrorText(t *testing.T) {
	result := commands.FailedProbe(errors.New("truncated header"))
	assert.Equal(t, "(Could not read image dimensions: truncated header)", result.Annotation())
	assert.False(t, commands.FailedProbe(nil).Succeeded())
}

func TestIsImageFile(t *testing.T) {
	testCases := []struct {
		fileName string
		expected bool
	}{
		{fileName: "photo.jpg", expected: true},
		{fileName: "photo.JPEG", expected: true},
		{fileName: "icon.Png", expected: true},
		{fileName: "anim.gif", expected: true},
		{fileName: "scan.bmp", expected: true},
		{fileName: "scan.TIFF", expected: true},
		{fileName: "hero.webp", expected: true},
		{fileName: "scan.tif", expected: false},
		{fileName: "vector.svg", expected: false},
		{fileName: "png", expected: false},
		{fileName: "archive.png.zip", expected: false},
		{fileName: "README", expected: false},
		{fileName: ".png", expected: false},
		{fileName: "..png", expected: false},
		{fileName: ".a.png", expected: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.fileName, func(t *testing.T) {
			assert.Equal(t, testCase.expected, commands.IsImageFile(testCase.fileName))
		})
	}
}

func TestFilterDirectoriesReturnsNewSlice(t *testing.T) {
	directoryNames := []string{"src", ".git", "node_modules", "docs", ".idea", ".next", ".github"}
	original := append([]string(nil), directoryNames...)

	filtered := commands.FilterDirectories(directoryNames, commands.KeepDirectory)

	assert.Equal(t, []string{"src", "docs", ".github"}, filtered)
	assert.Equal(t, original, directoryNames)
	assert.Equal(t, directoryNames, commands.FilterDirectories(directoryNames, nil))
}

func TestIsExcludedDirectoryMatchesExactNames(t *testing.T) {
	assert.True(t, commands.IsExcludedDirectory("node_modules"))
	assert.True(t, commands.IsExcludedDirectory(".git"))
	assert.False(t, commands.IsExcludedDirectory("Node_Modules"))
	assert.False(t, commands.IsExcludedDirectory(".gitignore"))
	assert.False(t, commands.IsExcludedDirectory("app/.git"))
}
