package tag

import (
	"fmt"
	"strings"

	"github.com/neandrake/medicom-go/dicom/vr"
)

// Info stores detailed information about a Tag defined in the DICOM standard.
type Info struct {
	Tag Tag
	// List of all possible data encodings for this tag, e.g., "UL", "CS", etc.
	// At least one entry is present.
	VRs []vr.VR
	// Human-readable name of the tag appropriately formatted for printing, e.g., "Pixel Data"
	Name string
	// Human-readable identifier of the tag, e.g., "PixelData"
	Keyword string
	// Cardinality (# of values expected in the element)
	VM string
	// Whether the tag is retired.
	Retired bool
}

// Dictionary is a lookup of tag Info by number and by keyword. The parser
// uses Find to resolve the VR of elements in Implicit VR transfer syntaxes;
// the inspect formatter and tag-path parsing use it for human-friendly names.
//
// A Dictionary is immutable after construction and safe for concurrent use.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
type Dictionary struct {
	byTag     map[Tag]Info
	byKeyword map[string]Tag
}

// NewDictionary builds a dictionary from the given entries. Keywords and
// names are indexed case-insensitively.
func NewDictionary(infos []Info) *Dictionary {
	d := &Dictionary{
		byTag:     make(map[Tag]Info, len(infos)),
		byKeyword: make(map[string]Tag, len(infos)*2),
	}
	for _, info := range infos {
		d.byTag[info.Tag] = info
		if info.Keyword != "" {
			d.byKeyword[strings.ToLower(info.Keyword)] = info.Tag
		}
		if info.Name != "" {
			d.byKeyword[strings.ToLower(info.Name)] = info.Tag
		}
	}
	return d
}

// Find returns information about the given tag.
// Returns an error if the tag is not part of this dictionary.
//
// Special case: For even-numbered groups with element 0x0000, returns a
// GenericGroupLength entry. This follows the DICOM standard where
// (gggg,0000) represents the group length for group gggg.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
func (d *Dictionary) Find(t Tag) (Info, error) {
	info, ok := d.byTag[t]
	if !ok {
		// Special case: GenericGroupLength for even groups with element 0x0000
		// (0000-u-ffff,0000) UL GenericGroupLength 1
		if t.Group%2 == 0 && t.Element == 0x0000 {
			return Info{
				Tag:     t,
				VRs:     []vr.VR{vr.UnsignedLong},
				Name:    "Generic Group Length",
				Keyword: "GenericGroupLength",
				VM:      "1",
			}, nil
		}
		return Info{}, fmt.Errorf("tag %s not found in dictionary", t)
	}
	return info, nil
}

// FindByKeyword searches for a tag by its keyword or name, case-insensitively.
// Returns an error if no tag with the given keyword or name is found.
//
// Example: FindByKeyword("SOPClassUID") or FindByKeyword("SOP Class UID")
func (d *Dictionary) FindByKeyword(keyword string) (Info, error) {
	if keyword == "" {
		return Info{}, fmt.Errorf("keyword cannot be empty")
	}
	t, ok := d.byKeyword[strings.ToLower(keyword)]
	if !ok {
		return Info{}, fmt.Errorf("tag with keyword %q not found in dictionary", keyword)
	}
	return d.byTag[t], nil
}

// ImplicitVR resolves the VR to use for the given tag when parsing an
// Implicit VR transfer syntax. For tags with multiple possible VRs (e.g.
// PixelData can be "OB or OW") the first listed VR is used. Returns false
// when the tag is unknown, in which case the parser substitutes UN.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (d *Dictionary) ImplicitVR(t Tag) (vr.VR, bool) {
	info, err := d.Find(t)
	if err != nil || len(info.VRs) == 0 {
		return vr.Unknown, false
	}
	return info.VRs[0], true
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.byTag)
}

// Minimal is the built-in dictionary which is always available and suffices
// for structural parsing. It recognizes only the handful of tags the parser
// state machine needs by number. Implicit VR elements outside this set
// resolve to UN and their values decode as raw bytes; structural parsing is
// unaffected because the state machine does not rely on per-tag VRs.
var Minimal = NewDictionary([]Info{
	{Tag: FileMetaInformationGroupLength, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1"},
	{Tag: TransferSyntaxUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1"},
	{Tag: SpecificCharacterSet, VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n"},
	{Tag: SOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1"},
	{Tag: FloatPixelData, VRs: []vr.VR{vr.OtherFloat}, Name: "Float Pixel Data", Keyword: "FloatPixelData", VM: "1"},
	{Tag: DoublePixelData, VRs: []vr.VR{vr.OtherDouble}, Name: "Double Pixel Data", Keyword: "DoublePixelData", VM: "1"},
	{Tag: PixelData, VRs: []vr.VR{vr.OtherWord, vr.OtherByte}, Name: "Pixel Data", Keyword: "PixelData", VM: "1"},
	{Tag: DatasetTrailingPadding, VRs: []vr.VR{vr.OtherByte}, Name: "Data Set Trailing Padding", Keyword: "DataSetTrailingPadding", VM: "1", Retired: true},
	{Tag: Item, VRs: []vr.VR{vr.Unknown}, Name: "Item", Keyword: "Item", VM: "1"},
	{Tag: ItemDelimitationItem, VRs: []vr.VR{vr.Unknown}, Name: "Item Delimitation Item", Keyword: "ItemDelimitationItem", VM: "1"},
	{Tag: SequenceDelimitationItem, VRs: []vr.VR{vr.Unknown}, Name: "Sequence Delimitation Item", Keyword: "SequenceDelimitationItem", VM: "1"},
})
