package dom

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// voidTags are elements that cannot have children and have no closing
// tag. These are self-closing in HTML5.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidTag returns true if the tag is a void element.
func IsVoidTag(tag string) bool {
	return voidTags[tag]
}

// booleanAttrs are attributes that don't take a value. When truthy they
// render as the bare name; when false they are omitted entirely.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if name is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// Attr is a single attribute. Value may be a string, bool, number, nil,
// or an AttrFunc evaluated at render time. An Attr with an empty Key is
// the raw-attribute entry: its value is emitted verbatim in the opening
// tag, unquoted and unescaped, with no key name.
type Attr struct {
	Key   string
	Value any
}

// AttrFunc is a deferred attribute value, invoked with the element at
// render time. The result then goes through the normal attribute rules.
type AttrFunc func(e *Element) any

// rawAttrKey is the internal key of the raw-attribute slot.
const rawAttrKey = ""

// Element is a Node with a tag name, an ordered attribute list and a
// void flag. Void elements refuse children: Append panics with a
// *StructuralError, and the factory paths validate bulk children the
// same way.
type Element struct {
	Node
	tag   string
	void  bool
	attrs []Attr
	index map[string]int
}

// NewElement creates an element, resolving args through the same rules
// as NewTag. The void flag is looked up from the HTML5 void set. It
// panics with a *StructuralError if tag is empty.
func NewElement(tag string, args ...any) *Element {
	var first any
	var rest []any
	if len(args) > 0 {
		first = args[0]
		rest = args[1:]
	}
	return NewTag(tag, first, rest, IsVoidTag(tag))
}

// NewTag is the element factory contract consumed by the generated
// per-tag wrappers in package html. The first argument is resolved by
// shape:
//
//  1. string: stored as the raw attribute string, emitted verbatim in
//     the opening tag; children come from the children argument.
//  2. []any or []Child: treated as the children list; the children
//     argument is ignored.
//  3. Attr, []Attr or map[string]any: treated as attributes. An Attr
//     with an empty key, or the "" map key, lands in the raw-attribute
//     slot (map keys are applied in sorted order since Go maps carry no
//     insertion order). Children come from the children argument.
//  4. nil: children come from the children argument.
//  5. anything else: becomes the sole child via Value.
//
// Children arguments are converted through Value, so plain strings,
// numbers and nested nodes all work.
func NewTag(name string, first any, children []any, void bool) *Element {
	if name == "" {
		panic(structural(CodeEmptyTag, "dom.NewTag",
			"element tag name must not be empty",
			"pass the tag name as the first argument, e.g. NewTag(\"div\", ...)"))
	}

	e := &Element{tag: name, void: void}

	switch v := first.(type) {
	case nil:
		e.appendAnyAll(children)

	case string:
		e.SetRawAttr(v)
		e.appendAnyAll(children)

	case []any:
		e.appendAnyAll(v)

	case []Child:
		for _, c := range v {
			e.Append(c)
		}

	case Attr:
		e.setAttrEntry(v)
		e.appendAnyAll(children)

	case []Attr:
		for _, a := range v {
			e.setAttrEntry(a)
		}
		e.appendAnyAll(children)

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e.setAttrEntry(Attr{Key: k, Value: v[k]})
		}
		e.appendAnyAll(children)

	default:
		// Anything else becomes the sole child; the children
		// argument is ignored on this path.
		e.Append(Value(first))
	}

	return e
}

func (e *Element) appendAnyAll(args []any) {
	for _, a := range args {
		e.Append(Value(a))
	}
}

// setAttrEntry routes an Attr to the raw slot or the ordered map.
func (e *Element) setAttrEntry(a Attr) {
	if a.Key == rawAttrKey {
		if s, ok := a.Value.(string); ok {
			e.SetRawAttr(s)
		}
		return
	}
	e.SetAttr(a.Key, a.Value)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Void returns true if the element is a void element.
func (e *Element) Void() bool { return e.void }

// Append adds a child, panicking with a *StructuralError if the element
// is void. It returns the element for chaining.
func (e *Element) Append(c Child) *Element {
	if c == nil || c == Nothing {
		return e
	}
	if e.void {
		panic(structural(CodeVoidChild, "Element.Append",
			fmt.Sprintf("<%s> is a void element and cannot have children", e.tag),
			"move the content next to the element instead of inside it"))
	}
	e.Node.Append(c)
	return e
}

// AppendAll appends each child in order via Append.
func (e *Element) AppendAll(children ...Child) *Element {
	for _, c := range children {
		e.Append(c)
	}
	return e
}

// Map binds the collection to this element and appends it as a child.
// Like Append, it panics on void elements.
func (e *Element) Map(c *Collection) *Element {
	if c == nil {
		return e
	}
	if e.void {
		panic(structural(CodeVoidChild, "Element.Map",
			fmt.Sprintf("<%s> is a void element and cannot have children", e.tag),
			"map the collection into the element's parent instead"))
	}
	c.Bind(&e.Node)
	e.Node.children = append(e.Node.children, c)
	return e
}

// SetAttr sets an attribute, preserving first-insertion order across
// overwrites. It returns the element for chaining.
func (e *Element) SetAttr(key string, value any) *Element {
	if e.index == nil {
		e.index = make(map[string]int)
	}
	if i, ok := e.index[key]; ok {
		e.attrs[i].Value = value
		return e
	}
	e.index[key] = len(e.attrs)
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// Attr reads an attribute value. If the attribute is absent, the first
// default is returned, or nil if none is given.
func (e *Element) Attr(key string, def ...any) any {
	if e.index != nil {
		if i, ok := e.index[key]; ok {
			return e.attrs[i].Value
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// SetRawAttr stores a string emitted verbatim in the opening tag:
// unquoted, unescaped and with no key name. It occupies one slot in the
// attribute order like any other attribute.
func (e *Element) SetRawAttr(s string) *Element {
	if e.index == nil {
		e.index = make(map[string]int)
	}
	if i, ok := e.index[rawAttrKey]; ok {
		e.attrs[i].Value = s
		return e
	}
	e.index[rawAttrKey] = len(e.attrs)
	e.attrs = append(e.attrs, Attr{Key: rawAttrKey, Value: s})
	return e
}

// Apply invokes fn with the element itself for in-place configuration.
func (e *Element) Apply(fn func(*Element)) *Element {
	if fn != nil {
		fn(e)
	}
	return e
}

// ClassIf is a conditional class name for SetClasses.
type ClassIf struct {
	Name string
	On   bool
}

// SetClasses rebuilds the class attribute from the given arguments and
// overwrites any previous value. Each argument is a string, a []string,
// a ClassIf, a []ClassIf, or a map[string]bool (applied in sorted key
// order). Names are de-duplicated preserving first insertion; only
// names whose condition is true make it into the attribute, joined with
// single spaces.
func (e *Element) SetClasses(args ...any) *Element {
	e.SetAttr("class", MergeClasses(args...))
	return e
}

// MergeClasses merges class arguments into a single space-joined value
// using the SetClasses rules.
func MergeClasses(args ...any) string {
	var order []string
	on := make(map[string]bool)

	add := func(name string, cond bool) {
		if name == "" {
			return
		}
		if _, seen := on[name]; !seen {
			order = append(order, name)
		}
		on[name] = cond
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			add(v, true)
		case []string:
			for _, s := range v {
				add(s, true)
			}
		case ClassIf:
			add(v.Name, v.On)
		case []ClassIf:
			for _, c := range v {
				add(c.Name, c.On)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				add(k, v[k])
			}
		}
	}

	var b strings.Builder
	for _, name := range order {
		if !on[name] {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
	}
	return b.String()
}

// Render writes the element as HTML. Void elements render as
// <tag attrs>; everything else as <tag attrs>children</tag>.
func (e *Element) Render(w io.Writer) error {
	attrs, err := e.attrString()
	if err != nil {
		return err
	}

	if e.void {
		_, err = io.WriteString(w, "<"+e.tag+attrs+">")
		return err
	}

	if _, err = io.WriteString(w, "<"+e.tag+attrs+">"); err != nil {
		return err
	}
	if err = e.Node.Render(w); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</"+e.tag+">")
	return err
}

// attrString renders the attribute list in insertion order.
func (e *Element) attrString() (string, error) {
	if len(e.attrs) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, a := range e.attrs {
		if a.Key == rawAttrKey {
			if s, ok := a.Value.(string); ok && s != "" {
				b.WriteByte(' ')
				b.WriteString(s)
			}
			continue
		}

		value := a.Value
		switch fn := value.(type) {
		case AttrFunc:
			if fn == nil {
				continue
			}
			value = fn(e)
		case func(e *Element) any:
			if fn == nil {
				continue
			}
			value = fn(e)
		}

		switch {
		case value == nil:
			// Omitted.
		case value == false && booleanAttrs[a.Key]:
			// Omitted; false only disables attributes in the boolean set.
		case value == true || (booleanAttrs[a.Key] && attrTruthy(value)):
			b.WriteByte(' ')
			b.WriteString(escapeHTML(a.Key))
		default:
			b.WriteByte(' ')
			b.WriteString(escapeHTML(a.Key))
			b.WriteString(`="`)
			b.WriteString(escapeHTML(attrValueString(value)))
			b.WriteByte('"')
		}
	}
	return b.String(), nil
}

// attrTruthy reports general truthiness for boolean-set attributes.
func attrTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// attrValueString stringifies a non-boolean attribute value.
func attrValueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Snapshot is a structural reflection of an element subtree. Attribute
// thunks are evaluated eagerly when the snapshot is taken; element
// children are snapshotted recursively; every other child kind is
// passed through untouched, including any thunks it may contain.
type Snapshot struct {
	Tag      string
	Void     bool
	Attrs    []Attr
	Children []any
}

// Snapshot captures the element's current structure.
func (e *Element) Snapshot() *Snapshot {
	s := &Snapshot{Tag: e.tag, Void: e.void}

	for _, a := range e.attrs {
		value := a.Value
		switch fn := value.(type) {
		case AttrFunc:
			if fn != nil {
				value = fn(e)
			}
		case func(e *Element) any:
			if fn != nil {
				value = fn(e)
			}
		}
		s.Attrs = append(s.Attrs, Attr{Key: a.Key, Value: value})
	}

	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			s.Children = append(s.Children, el.Snapshot())
			continue
		}
		s.Children = append(s.Children, c)
	}
	return s
}
