package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTagPath indicates a text representation of a tag path could not
// be parsed or resolved.
var ErrInvalidTagPath = errors.New("unable to resolve tag path")

// Node addresses a single step of a path into a dataset: a tag, and for
// nodes addressing an entry of a sequence, a 1-based item number. An Item
// value of zero means the node carries no item number, which is typical for
// leaf nodes.
//
// Items present in an SQ element are an ordered set where each item is
// implicitly assigned an ordinal position starting with 1.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Node struct {
	Tag  Tag
	Item int
}

// NewNode creates a node addressing the given tag with no item number.
func NewNode(t Tag) Node {
	return Node{Tag: t}
}

// NewItemNode creates a node addressing the given 1-based item of a sequence tag.
func NewItemNode(t Tag, item int) Node {
	return Node{Tag: t, Item: item}
}

// HasItem returns true if this node carries an item number.
func (n Node) HasItem() bool {
	return n.Item > 0
}

// String renders the node as "(GGGG,EEEE)" with an "[n]" suffix when an item
// number is present.
func (n Node) String() string {
	if n.HasItem() {
		return fmt.Sprintf("%s[%d]", n.Tag, n.Item)
	}
	return n.Tag.String()
}

// ParseNode parses a Node from the given string. The tag can be resolved by
// keyword if a dictionary is supplied, or by hex notation (parentheses,
// comma, and underscore are all optional). An item number may follow the tag
// within square brackets. Keywords are matched case-insensitively.
//
// The acceptable formats are:
//
//	"PatientID"                             => (0010,0020)
//	"(0010,0020)"                           => (0010,0020)
//	"0010,0020"                             => (0010,0020)
//	"0010_0020"                             => (0010,0020)
//	"00100020"                              => (0010,0020)
//	"100020"                                => (0010,0020)
//	"ReferencedFrameOfReferenceSequence[1]" => (3006,0010) item 1
//	"(3006,0010)[5]"                        => (3006,0010) item 5
func ParseNode(s string, dict *Dictionary) (Node, error) {
	ident := strings.TrimSpace(s)

	item := 0
	if open := strings.LastIndexByte(ident, '['); open >= 0 {
		if closing := strings.LastIndexByte(ident, ']'); closing > open {
			if parsed, err := strconv.Atoi(ident[open+1 : closing]); err == nil {
				item = parsed
			}
		}
		ident = ident[:open]
	}

	if dict != nil {
		if info, err := dict.FindByKeyword(ident); err == nil {
			return Node{Tag: info.Tag, Item: item}, nil
		}
	}

	// Remove optional surrounding parens and optional group/element splitter.
	hex := strings.NewReplacer("(", "", ")", "", ",", "", "_", "").Replace(ident)
	full, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q: %v", ErrInvalidTagPath, s, err)
	}
	return Node{Tag: FromUint32(uint32(full)), Item: item}, nil
}

// Path is an ordered collection of Nodes. It specifies a unique traversal
// into a DICOM dataset referencing a single element. Example:
//
//	ReferencedFrameOfReferenceSequence[1]
//	  RTReferencedStudySequence[1]
//	    RTReferencedSeriesSequence[1]
//	      ContourImageSequence[11]
//	        ReferencedSOPInstanceUID
type Path struct {
	Nodes []Node
}

// NewPath creates a path from the given nodes.
func NewPath(nodes ...Node) Path {
	return Path{Nodes: nodes}
}

// PathFromTags creates a path of item-less nodes from the given tags.
func PathFromTags(tags ...Tag) Path {
	nodes := make([]Node, len(tags))
	for i, t := range tags {
		nodes[i] = NewNode(t)
	}
	return Path{Nodes: nodes}
}

// IsEmpty returns whether there are any nodes in this path.
func (p Path) IsEmpty() bool {
	return len(p.Nodes) == 0
}

// Equals returns true if both paths contain the same nodes in order.
func (p Path) Equals(other Path) bool {
	if len(p.Nodes) != len(other.Nodes) {
		return false
	}
	for i := range p.Nodes {
		if p.Nodes[i] != other.Nodes[i] {
			return false
		}
	}
	return true
}

// Format renders the path as readable text, using the dictionary keyword for
// each tag where one resolves, otherwise "(GGGG,EEEE)". Item, Item
// Delimitation Item, and Sequence Delimitation Item nodes are omitted since
// the item number indicators already convey them.
func (p Path) Format(dict *Dictionary) string {
	parts := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		if n.Tag == Item || n.Tag == ItemDelimitationItem || n.Tag == SequenceDelimitationItem {
			continue
		}
		name := n.Tag.String()
		if dict != nil {
			if info, err := dict.Find(n.Tag); err == nil {
				name = info.Keyword
			}
		}
		if n.HasItem() {
			name = fmt.Sprintf("%s[%d]", name, n.Item)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ".")
}

// String renders the path without dictionary resolution.
func (p Path) String() string {
	return p.Format(nil)
}

// ParsePath parses dot-separated Nodes from the given string and converts
// them to a Path. The format of each node is described in ParseNode. Every
// node except the last is assigned item number 1 if none is supplied.
//
// Example:
//
//	"ReferencedFrameOfReferenceSequence
//	  .RTReferencedStudySequence
//	  .RTReferencedSeriesSequence
//	  .ContourImageSequence[11]
//	  .ReferencedSOPInstanceUID"
//
// parses as:
//
//	[(3006,0010)[1], (3006,0012)[1], (3006,0014)[1], (3006,0016)[11], (0008,1155)]
func ParsePath(s string, dict *Dictionary) (Path, error) {
	parts := strings.Split(s, ".")
	nodes := make([]Node, 0, len(parts))
	for i, part := range parts {
		node, err := ParseNode(part, dict)
		if err != nil {
			return Path{}, err
		}
		// Assume item #1 for all but the last node if no item is supplied.
		if i < len(parts)-1 && !node.HasItem() {
			node.Item = 1
		}
		nodes = append(nodes, node)
	}
	return Path{Nodes: nodes}, nil
}
