package commands

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/temirov/imgtree/internal/types"
)

const (
	imageAnnotationFormat   = "(Image, %dx%d)"
	failureAnnotationFormat = "(Could not read image dimensions: %s)"
)

// ProbeResult is the outcome of a dimension probe: either Dimensions or a FailureMessage.
// The zero value is a failure with an empty message.
type ProbeResult struct {
	Dimensions     *types.Dimensions
	FailureMessage string
}

// SucceededProbe wraps decoded dimensions.
func SucceededProbe(width int, height int) ProbeResult {
	return ProbeResult{Dimensions: &types.Dimensions{Width: width, Height: height}}
}

// FailedProbe records the description of a probe error.
func FailedProbe(probeError error) ProbeResult {
	if probeError == nil {
		return ProbeResult{}
	}
	return ProbeResult{FailureMessage: probeError.Error()}
}

// Succeeded reports whether dimensions were read.
func (result ProbeResult) Succeeded() bool {
	return result.Dimensions != nil
}

// Annotation renders the parenthesised suffix printed after an image file name.
func (result ProbeResult) Annotation() string {
	if result.Succeeded() {
		return fmt.Sprintf(imageAnnotationFormat, result.Dimensions.Width, result.Dimensions.Height)
	}
	return fmt.Sprintf(failureAnnotationFormat, result.FailureMessage)
}

// ProbeImage opens imagePath read-only and decodes only its header.
// Any failure, including open errors and unknown formats, is returned as a failed result.
//
// #nosec G304
func ProbeImage(imagePath string) ProbeResult {
	fileHandle, openError := os.Open(imagePath)
	if openError != nil {
		return FailedProbe(openError)
	}
	defer fileHandle.Close()

	imageConfiguration, _, decodeError := image.DecodeConfig(fileHandle)
	if decodeError != nil {
		return FailedProbe(decodeError)
	}
	return SucceededProbe(imageConfiguration.Width, imageConfiguration.Height)
}
