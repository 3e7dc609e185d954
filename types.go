package portablehtml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Document is an ordered list of Portable Text blocks.
// Documents are plain values; rendering never mutates them.
type Document []Block

// Block is a Portable Text node: either a text block (_type == "block") with
// styled span children, or a custom object block whose payload lives in Raw.
type Block struct {
	// Required
	Type string
	Key  string

	// Text block fields
	Style    string
	Children []Span
	MarkDefs []MarkDef

	// List fields
	ListItem string
	Level    int

	// Raw holds unknown/custom fields and preserves explicit nulls.
	// For custom object blocks this is the render payload.
	Raw map[string]any
}

// Span is an inline node in a block's children array. Usually _type == "span";
// inline objects are allowed too, in which case Text is nil and Raw holds the
// object fields.
type Span struct {
	Type  string
	Text  *string
	Marks []string

	Raw map[string]any
}

// MarkDef is an annotation definition referenced by key from span marks
// (e.g. a link object carrying an href in Raw).
type MarkDef struct {
	Key  string
	Type string

	Raw map[string]any
}

// Decode parses JSON Portable Text into a Document.
// - Requires _type on all blocks, spans and markDefs
// - Captures unknown fields into Raw (including explicit nulls)
// - Does not semantically validate; unknown types are fine
func Decode(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []json.RawMessage
	if err := dec.Decode(&rows); err != nil {
		return nil, wrap("decode", "", err)
	}

	doc := make(Document, 0, len(rows))
	for i, row := range rows {
		b, err := parseBlock(row, fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, err
		}
		doc = append(doc, b)
	}
	return doc, nil
}

// DecodeString is a convenience wrapper for Decode.
func DecodeString(s string) (Document, error) {
	return Decode(strings.NewReader(s))
}

// IsText reports whether this block is a Portable Text text block.
func (b *Block) IsText() bool { return b != nil && b.Type == "block" }

// GetStyle returns the block style, defaulting to "normal".
func (b *Block) GetStyle() string {
	if b.Style != "" {
		return b.Style
	}
	return "normal"
}

// GetText concatenates all span text in the block.
func (b *Block) GetText() string {
	var buf strings.Builder
	for _, child := range b.Children {
		if child.Text != nil {
			buf.WriteString(*child.Text)
		}
	}
	return buf.String()
}

// GetLevel returns the list nesting level, defaulting to 1.
func (b *Block) GetLevel() int {
	if b.Level > 0 {
		return b.Level
	}
	return 1
}

// isListEntry reports whether the block participates in list grouping.
func (b *Block) isListEntry() bool { return b.IsText() && b.ListItem != "" }

// HasMark checks if a span carries a specific mark reference.
func (s *Span) HasMark(mark string) bool {
	for _, m := range s.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// NewBlock creates a text block with a fresh _key.
func NewBlock(style string) *Block {
	return &Block{
		Type:     "block",
		Key:      newKey(),
		Style:    style,
		Children: []Span{},
		MarkDefs: []MarkDef{},
		Raw:      map[string]any{},
	}
}

// NewObject creates a custom object block with a fresh _key.
func NewObject(objType string) *Block {
	return &Block{
		Type: objType,
		Key:  newKey(),
		Raw:  map[string]any{},
	}
}

// AddSpan appends a text span to the block.
func (b *Block) AddSpan(text string, marks ...string) *Block {
	b.Children = append(b.Children, Span{
		Type:  "span",
		Text:  &text,
		Marks: marks,
		Raw:   map[string]any{},
	})
	return b
}

// AddMarkDef appends an annotation definition to the block.
func (b *Block) AddMarkDef(key, markType string, fields map[string]any) *Block {
	if fields == nil {
		fields = map[string]any{}
	}
	b.MarkDefs = append(b.MarkDefs, MarkDef{Key: key, Type: markType, Raw: fields})
	return b
}

// AsListItem tags the block as a list entry with the given style and level.
func (b *Block) AsListItem(style string, level int) *Block {
	b.ListItem = style
	b.Level = level
	return b
}

func newKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

//
// Parsing (path aware)
//

func parseBlock(raw []byte, path string) (Block, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Block{}, wrap("block", path, err)
	}

	typ, err := requireType(obj)
	if err != nil {
		return Block{}, wrap("block", path, err)
	}

	b := Block{Type: typ, Raw: map[string]any{}}

	for k, v := range obj {
		switch k {
		case "_type":
		case "_key":
			if s, ok := v.(string); ok {
				b.Key = s
			} else {
				b.Raw[k] = v
			}
		case "style":
			if s, ok := v.(string); ok {
				b.Style = s
			} else {
				b.Raw[k] = v // preserve explicit null and odd shapes
			}
		case "listItem":
			if s, ok := v.(string); ok {
				b.ListItem = s
			} else {
				b.Raw[k] = v
			}
		case "level":
			if n, ok := v.(json.Number); ok {
				iv, err := n.Int64()
				if err != nil {
					return Block{}, wrap("block", path+".level", ErrInvalidNumber)
				}
				b.Level = int(iv)
			} else {
				b.Raw[k] = v
			}
		case "children":
			if v == nil {
				b.Raw[k] = nil
				continue
			}
			children, err := parseSpans(v, path+".children")
			if err != nil {
				return Block{}, err
			}
			b.Children = children
		case "markDefs":
			if v == nil {
				b.Raw[k] = nil
				continue
			}
			defs, err := parseMarkDefs(v, path+".markDefs")
			if err != nil {
				return Block{}, err
			}
			b.MarkDefs = defs
		default:
			b.Raw[k] = v
		}
	}

	return b, nil
}

func parseSpans(v any, path string) ([]Span, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, wrap("block", path, ErrExpectedArray)
	}

	out := make([]Span, 0, len(arr))
	for i, item := range arr {
		spath := fmt.Sprintf("%s[%d]", path, i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, wrap("span", spath, ErrExpectedObject)
		}
		s, err := parseSpan(obj, spath)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseSpan(obj map[string]any, path string) (Span, error) {
	typ, err := requireType(obj)
	if err != nil {
		return Span{}, wrap("span", path, err)
	}

	s := Span{Type: typ, Raw: map[string]any{}}

	for k, v := range obj {
		switch k {
		case "_type":
		case "text":
			if str, ok := v.(string); ok {
				s.Text = &str
			} else {
				s.Raw[k] = v
			}
		case "marks":
			if v == nil {
				s.Raw[k] = nil
				continue
			}
			arr, ok := v.([]any)
			if !ok {
				return Span{}, wrap("span", path+".marks", ErrInvalidMarks)
			}
			marks := make([]string, 0, len(arr))
			for _, m := range arr {
				ms, ok := m.(string)
				if !ok {
					return Span{}, wrap("span", path+".marks", ErrInvalidMarks)
				}
				marks = append(marks, ms)
			}
			s.Marks = marks
		default:
			s.Raw[k] = v
		}
	}

	return s, nil
}

func parseMarkDefs(v any, path string) ([]MarkDef, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, wrap("block", path, ErrExpectedArray)
	}

	out := make([]MarkDef, 0, len(arr))
	for i, item := range arr {
		mpath := fmt.Sprintf("%s[%d]", path, i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, wrap("markDef", mpath, ErrExpectedObject)
		}

		typ, err := requireType(obj)
		if err != nil {
			return nil, wrap("markDef", mpath, err)
		}

		md := MarkDef{Type: typ, Raw: map[string]any{}}
		for k, val := range obj {
			switch k {
			case "_type":
			case "_key":
				if s, ok := val.(string); ok {
					md.Key = s
				} else {
					md.Raw[k] = val
				}
			default:
				md.Raw[k] = val
			}
		}
		out = append(out, md)
	}
	return out, nil
}

func requireType(obj map[string]any) (string, error) {
	t, ok := obj["_type"]
	if !ok {
		return "", ErrMissingType
	}
	ts, ok := t.(string)
	if !ok || ts == "" {
		return "", ErrInvalidType
	}
	return ts, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrExpectedObject
	}
	return obj, nil
}
