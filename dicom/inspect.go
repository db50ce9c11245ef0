package dicom

import (
	"fmt"
	"strings"

	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// DefaultMaxItems is the default cap on rendered value entries.
const DefaultMaxItems = 16

// FormattedElement renders an element for human inspection with formatting
// options:
//
//	(gggg,eeee) VR TagName [VL] | TagValue
//
// Indentation conveys sequence depth: two columns per enclosing sequence and
// one per enclosing item.
type FormattedElement struct {
	// Elem is the element to render.
	Elem *element.DataElement

	// Dictionary resolves tag names; nil uses the minimal dictionary.
	Dictionary *tag.Dictionary

	// Multiline renders string values across lines instead of one.
	Multiline bool

	// MaxItems caps the number of value entries rendered; ".." marks truncation.
	MaxItems int

	// HideDelims omits item and sequence delimiter elements.
	HideDelims bool

	// HideGroupLengths omits group length elements.
	HideGroupLengths bool
}

// NewFormattedElement creates a formatter for the element with defaults:
// single line, 16 entries max, delimiters and group lengths shown.
func NewFormattedElement(elem *element.DataElement) *FormattedElement {
	return &FormattedElement{
		Elem:     elem,
		MaxItems: DefaultMaxItems,
	}
}

// ShouldOmit returns whether the element is suppressed by the hide flags or
// is a spurious all-zero element.
func (f *FormattedElement) ShouldOmit() bool {
	t := f.Elem.Tag()

	// Group Length tags are deprecated, see note on Part 5 Section 7.2.
	if f.HideGroupLengths && t.IsGroupLength() {
		return true
	}
	if f.HideDelims && (t == tag.ItemDelimitationItem || t == tag.SequenceDelimitationItem) {
		return true
	}

	// Some malformed datasets have runs of zeroes between elements.
	if t == tag.New(0, 0) && f.Elem.VL() == 0 &&
		((f.Elem.TransferSyntax().ExplicitVR && f.Elem.VR() == vr.Invalid) ||
			(!f.Elem.TransferSyntax().ExplicitVR && f.Elem.VR() == vr.Unknown)) {
		return true
	}
	return false
}

// String renders the element on a single line (or multiple lines for string
// values in multiline mode), indented by its depth within sequences.
func (f *FormattedElement) String() string {
	if f.ShouldOmit() {
		return ""
	}

	elem := f.Elem
	t := elem.Tag()

	vl := fmt.Sprintf("[%s]", elem.VL())
	if !elem.VL().IsUndefined() && uint32(elem.VL())%2 != 0 {
		vl = fmt.Sprintf("[*%s]", elem.VL())
	}
	if elem.VL().IsUndefined() {
		vl = "[u/l]"
	}

	// Double indentation for nested sequences, single for items; delimiters
	// render one level out of the content they close.
	nonItemParents, itemParents := 0, 0
	for _, sq := range elem.Ancestors() {
		if sq.Tag() == tag.Item {
			itemParents++
		} else {
			nonItemParents++
		}
	}
	indentWidth := nonItemParents*2 + itemParents
	if t == tag.ItemDelimitationItem {
		indentWidth--
	} else if t == tag.SequenceDelimitationItem {
		indentWidth -= 2
	}
	if indentWidth < 0 {
		indentWidth = 0
	}
	indent := strings.Repeat(" ", indentWidth)

	if t == tag.Item {
		itemDesc := ""
		if ancestors := elem.Ancestors(); len(ancestors) > 0 {
			last := ancestors[len(ancestors)-1]
			itemDesc = fmt.Sprintf(" #%d %s %s", last.Item(), elem.VR(), vl)
		}
		return fmt.Sprintf("%s%s%s", indent, f.tagName(), itemDesc)
	}

	tagValue := f.tagValue()
	if tagValue != "" {
		if elem.IsEmpty() {
			tagValue = " " + tagValue
		} else {
			tagValue = " | " + tagValue
		}
	}

	return fmt.Sprintf("%s%s %s %s %s%s", indent, t, elem.VR(), f.tagName(), vl, tagValue)
}

// tagName classifies the tag for display, resolving known tags through the
// dictionary.
func (f *FormattedElement) tagName() string {
	dict := f.Dictionary
	if dict == nil {
		dict = tag.Minimal
	}

	t := f.Elem.Tag()
	if info, err := dict.Find(t); err == nil {
		return info.Keyword
	}

	switch {
	case t.IsPrivateCreator():
		return "<PrivateCreator>"
	case t.IsPrivate() && f.Elem.IsSeqLike():
		return "<PrivateSequence>"
	case t.IsPrivateGroupLength():
		return "<PrivateGroupLength>"
	case t.IsPrivate():
		return "<PrivateTag>"
	case t.IsGroupLength():
		return "<GroupLength>"
	default:
		return "<UnknownTag>"
	}
}

// tagValue renders the element's parsed value, capped at MaxItems entries.
func (f *FormattedElement) tagValue() string {
	if f.Elem.IsSeqLike() {
		return ""
	}

	parsed, err := f.Elem.ParseValue()
	if err != nil {
		return fmt.Sprintf("<Error %v>", err)
	}

	sep := "\\"
	if f.Multiline {
		sep = " "
	}

	var entries []string
	truncated := false
	switch v := parsed.(type) {
	case value.Attributes:
		entries, truncated = formatEntries(v, f.MaxItems, func(t tag.Tag) string { return t.String() })
	case value.UID:
		if rec := uid.LookupUID(string(v)); rec != nil {
			return fmt.Sprintf("%s => %s", v, rec.Name)
		}
		return string(v)
	case value.Strings:
		if f.Multiline {
			sep = "\n"
			entries, truncated = formatEntries(v, f.MaxItems, func(s string) string { return s })
		} else {
			entries, truncated = formatEntries(v, f.MaxItems, func(s string) string {
				return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " / "), "\n", " / ")
			})
		}
	case value.Doubles:
		entries, truncated = formatEntries(v, f.MaxItems, func(d float64) string { return fmt.Sprintf("%.2f", d) })
	case value.Shorts:
		entries, truncated = formatEntries(v, f.MaxItems, func(s int16) string { return fmt.Sprintf("%d", s) })
	case value.Integers:
		entries, truncated = formatEntries(v, f.MaxItems, func(i int32) string { return fmt.Sprintf("%d", i) })
	case value.UnsignedIntegers:
		entries, truncated = formatEntries(v, f.MaxItems, func(u uint32) string { return fmt.Sprintf("%d", u) })
	case value.Longs:
		entries, truncated = formatEntries(v, f.MaxItems, func(l int64) string { return fmt.Sprintf("%d", l) })
	case value.UnsignedLongs:
		entries, truncated = formatEntries(v, f.MaxItems, func(l uint64) string { return fmt.Sprintf("%d", l) })
	case value.Bytes:
		entries, truncated = formatEntries(v, f.MaxItems, func(b byte) string { return fmt.Sprintf("%02x", b) })
	default:
		return ""
	}

	if truncated {
		entries = append(entries, "..")
	}
	return strings.Join(entries, sep)
}

// formatEntries converts up to max entries to strings, reporting whether the
// input had more.
func formatEntries[T any](vals []T, max int, format func(T) string) ([]string, bool) {
	limit := len(vals)
	if max > 0 && limit > max {
		limit = max
	}
	out := make([]string, 0, limit)
	for _, v := range vals[:limit] {
		out = append(out, format(v))
	}
	return out, limit < len(vals)
}
