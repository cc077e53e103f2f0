// Package vsproj is a stub for the Visual Studio solution/project
// writer: the counterpart to builder that this repository does not
// implement, kept only so the project description can name a target
// output it can't yet produce without the caller's code breaking.
package vsproj

import (
	"github.com/bitrise-tools/xcode-project-gen/dslmodel"
	"github.com/pkg/errors"
)

// ErrNotImplemented is returned by every entry point in this package.
var ErrNotImplemented = errors.New("vsproj: Visual Studio project generation is not implemented")

// LibOutput would resolve a library target's Visual Studio target type
// and output file name, mirroring builder's libOutput for Xcode.
func LibOutput(lib dslmodel.Library) (targetType, outputFile string, err error) {
	return "", "", ErrNotImplemented
}

// CreateSolution would build a Visual Studio solution from proj, the
// way builder.Build constructs an Xcode project graph.
func CreateSolution(proj dslmodel.Project) error {
	return ErrNotImplemented
}
