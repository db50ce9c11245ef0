package dicom

import (
	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
)

// Stop specifies the point at which parsing of a dataset should end. This
// allows partially parsing through a dataset instead of reading the entire
// thing, e.g. stopping before the commonly large PixelData element.
type Stop interface {
	// shouldStop evaluates the parser's position after a tag has been read:
	// the current sequence path, the tag just read, and the byte count.
	shouldStop(currentPath []element.SequenceElement, tagLastRead tag.Tag, bytesRead uint64) bool
}

// StopEndOfDataset never stops; the entire dataset is parsed.
type StopEndOfDataset struct{}

func (StopEndOfDataset) shouldStop([]element.SequenceElement, tag.Tag, uint64) bool {
	return false
}

// StopAfterBytePos stops once more than Pos bytes have been read. If the
// byte position lands in the middle of an element, that element is still
// fully parsed before iteration ends.
type StopAfterBytePos struct {
	Pos uint64
}

func (s StopAfterBytePos) shouldStop(_ []element.SequenceElement, _ tag.Tag, bytesRead uint64) bool {
	return bytesRead > s.Pos
}

// StopBeforeTag stops before emitting the element addressed by Path,
// comparing the ordered list of ancestor sequence tags plus the last tag
// read element-wise against the path. Item numbers are not evaluated.
type StopBeforeTag struct {
	Path tag.Path
}

func (s StopBeforeTag) shouldStop(currentPath []element.SequenceElement, tagLastRead tag.Tag, _ uint64) bool {
	return evalTagPath(s.Path, currentPath, tagLastRead) >= pathReached
}

// StopAfterTag stops after emitting the element addressed by Path, including
// any nested contents when the element is a sequence. Item numbers are not
// evaluated.
type StopAfterTag struct {
	Path tag.Path
}

func (s StopAfterTag) shouldStop(currentPath []element.SequenceElement, tagLastRead tag.Tag, _ uint64) bool {
	return evalTagPath(s.Path, currentPath, tagLastRead) == pathPassed
}

// Relation of the parser's position to a configured stop path.
const (
	pathBefore = iota
	pathReached
	pathPassed
)

// evalTagPath compares the configured path against the current sequence path
// chained with the last tag read. Returns pathPassed when the position has
// moved beyond the configured path, pathReached when the compared levels are
// all equal through the configured path's last node (including positions
// nested beneath it), and pathBefore otherwise.
func evalTagPath(cfg tag.Path, currentPath []element.SequenceElement, tagLastRead tag.Tag) int {
	current := make([]tag.Tag, 0, len(currentPath)+1)
	for i := range currentPath {
		current = append(current, currentPath[i].Tag())
	}
	current = append(current, tagLastRead)

	levels := len(cfg.Nodes)
	if len(current) < levels {
		levels = len(current)
	}
	for i := 0; i < levels; i++ {
		cfgTag := cfg.Nodes[i].Tag
		curTag := current[i]
		if curTag != cfgTag {
			if curTag.Uint32() > cfgTag.Uint32() {
				return pathPassed
			}
			return pathBefore
		}
	}
	if len(current) >= len(cfg.Nodes) {
		return pathReached
	}
	return pathBefore
}
