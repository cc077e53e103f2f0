// Package xcodeproj is the on-disk facade: opening and saving an
// .xcodeproj bundle's project.pbxproj file through the pbxproj parser
// and writer.
package xcodeproj

import (
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/bitrise-tools/xcode-project-gen/pbxproj"
	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/pkg/errors"
)

// XcodeProj is one parsed project.pbxproj document plus the bundle path
// it was read from (or will be written to).
type XcodeProj struct {
	Root *serialized.Object

	Name string
	Path string
}

// Open parses the project.pbxproj inside the .xcodeproj bundle at pth.
func Open(pth string) (XcodeProj, error) {
	absPth, err := pathutil.AbsPath(pth)
	if err != nil {
		return XcodeProj{}, errors.Wrapf(err, "xcodeproj: resolving path %q", pth)
	}

	root, err := open(absPth)
	if err != nil {
		return XcodeProj{}, err
	}

	return XcodeProj{
		Root: root,
		Path: absPth,
		Name: strings.TrimSuffix(filepath.Base(absPth), filepath.Ext(absPth)),
	}, nil
}

func open(absPth string) (*serialized.Object, error) {
	pbxProjPth := filepath.Join(absPth, "project.pbxproj")
	log.Debugf("xcodeproj: reading %s", pbxProjPth)

	b, err := fileutil.ReadBytesFromFile(pbxProjPth)
	if err != nil {
		return nil, errors.Wrapf(err, "xcodeproj: reading %q", pbxProjPth)
	}

	root, err := pbxproj.Document(b)
	if err != nil {
		return nil, errors.Wrapf(err, "xcodeproj: parsing %q", pbxProjPth)
	}
	return root, nil
}

// IsXcodeProj reports whether pth looks like an .xcodeproj bundle.
func IsXcodeProj(pth string) bool {
	return filepath.Ext(pth) == ".xcodeproj"
}

// Save re-emits p.Root as the bundle's project.pbxproj.
func (p XcodeProj) Save() error {
	pth := filepath.Join(p.Path, "project.pbxproj")
	if err := fileutil.WriteBytesToFile(pth, pbxproj.Write(p.Root)); err != nil {
		log.Warnf("xcodeproj: failed writing %s: %s", pth, err)
		return errors.Wrapf(err, "xcodeproj: writing %q", pth)
	}
	return nil
}
