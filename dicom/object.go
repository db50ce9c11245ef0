package dicom

import (
	"errors"
	"fmt"
	"io"

	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
)

// Object is a node of a dataset tree: the root (carrying no element) or a
// wrapper over one DataElement plus its ordered children. A sequence
// element's children are its items (addressed by 1-based ordinal) and any
// delimiter; an item's children are the elements it contains.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Object struct {
	// element is nil only for the root object.
	element *element.DataElement

	// children in insertion order, both tag-keyed and item children.
	children []*Object

	// byTag indexes non-item children by tag number.
	byTag map[uint32]*Object

	// items indexes item children by 1-based ordinal.
	items []*Object
}

func newObject(elem *element.DataElement) *Object {
	return &Object{
		element: elem,
		byTag:   make(map[uint32]*Object),
	}
}

// NewObjectRoot creates an empty root object to build a dataset tree under.
func NewObjectRoot() *Object {
	return newObject(nil)
}

// Element returns the element this object wraps, nil for the root.
func (o *Object) Element() *element.DataElement {
	return o.element
}

// ChildCount returns the number of children of this object, including items.
func (o *Object) ChildCount() int {
	return len(o.children)
}

// Children returns the object's children in insertion order, items included.
func (o *Object) Children() []*Object {
	return o.children
}

// ItemCount returns the number of item children of this object.
func (o *Object) ItemCount() int {
	return len(o.items)
}

// GetChild returns the child object for the given tag, nil if absent.
func (o *Object) GetChild(t tag.Tag) *Object {
	return o.byTag[t.Uint32()]
}

// GetItem returns the 1-based item child, nil when out of range.
func (o *Object) GetItem(ordinal int) *Object {
	if ordinal < 1 || ordinal > len(o.items) {
		return nil
	}
	return o.items[ordinal-1]
}

// addChild inserts a child, indexing it by tag or as the next item.
func (o *Object) addChild(child *Object) {
	o.children = append(o.children, child)
	if child.element.Tag() == tag.Item {
		o.items = append(o.items, child)
		return
	}
	o.byTag[child.element.Tag().Uint32()] = child
}

// GetChildByTagPath resolves a tag path into the tree: at each non-terminal
// node the child by tag is taken followed by its item (1 when unspecified);
// the final node resolves by tag alone. Returns nil when any step is absent.
func (o *Object) GetChildByTagPath(path tag.Path) *Object {
	current := o
	for i, node := range path.Nodes {
		current = current.GetChild(node.Tag)
		if current == nil {
			return nil
		}
		if i == len(path.Nodes)-1 {
			break
		}
		item := node.Item
		if item == 0 {
			item = 1
		}
		current = current.GetItem(item)
		if current == nil {
			return nil
		}
	}
	return current
}

// Flatten returns the tree's elements in their original stream order: each
// element after its parents and its children before its siblings.
func (o *Object) Flatten() []*element.DataElement {
	var out []*element.DataElement
	o.flattenInto(&out)
	return out
}

func (o *Object) flattenInto(out *[]*element.DataElement) {
	if o.element != nil {
		*out = append(*out, o.element)
	}
	for _, child := range o.children {
		child.flattenInto(out)
	}
}

// BuildObject consumes the parser's event stream and produces the dataset
// tree. Each element whose ancestor count equals the current nesting depth
// is inserted as a child of the current object; sequence-like elements and
// items become parents of the elements that follow them.
func BuildObject(p *Parser) (*Object, error) {
	root := NewObjectRoot()

	// stack[0] is the root; stack[len-1] is the current parent.
	stack := []*Object{root}

	for {
		elem, err := p.Next()
		if errors.Is(err, io.EOF) {
			return root, nil
		}
		if err != nil {
			return nil, err
		}

		depth := len(elem.Ancestors())
		for len(stack)-1 > depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack)-1 < depth {
			return nil, fmt.Errorf("element %s at depth %d with nesting %d", elem.Tag(), depth, len(stack)-1)
		}

		child := newObject(elem)
		stack[len(stack)-1].addChild(child)

		if elem.IsSeqLike() || elem.Tag() == tag.Item {
			stack = append(stack, child)
		}
	}
}
