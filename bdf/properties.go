package bdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/bdf/core"
)

// PropertyValue is a property table entry: either an integer or a piece of
// text. BDF knows no other value kinds.
type PropertyValue interface {
	fmt.Stringer
	propertyValue()
}

// IntValue is an integer property value.
type IntValue int64

// TextValue is a text property value (the content of a double-quoted
// string in the font file, without the quotes).
type TextValue string

func (v IntValue) propertyValue()  {}
func (v TextValue) propertyValue() {}

func (v IntValue) String() string  { return fmt.Sprintf("%d", int64(v)) }
func (v TextValue) String() string { return string(v) }

// Property names a font property. The constants below cover the well-known
// XLFD properties, each with an expected value kind; arbitrary other keys
// occur in the wild and are looked up by their verbatim name.
type Property string

// Well-known font properties.
const (
	Copyright          Property = "COPYRIGHT"
	Notice             Property = "NOTICE"
	Foundry            Property = "FOUNDRY"
	FamilyName         Property = "FAMILY_NAME"
	WeightName         Property = "WEIGHT_NAME"
	Slant              Property = "SLANT"
	PixelSize          Property = "PIXEL_SIZE"
	PointSize          Property = "POINT_SIZE"
	ResolutionX        Property = "RESOLUTION_X"
	ResolutionY        Property = "RESOLUTION_Y"
	Spacing            Property = "SPACING"
	AverageWidth       Property = "AVERAGE_WIDTH"
	CharsetRegistry    Property = "CHARSET_REGISTRY"
	CharsetEncoding    Property = "CHARSET_ENCODING"
	FontAscent         Property = "FONT_ASCENT"
	FontDescent        Property = "FONT_DESCENT"
	DefaultChar        Property = "DEFAULT_CHAR"
	UnderlinePosition  Property = "UNDERLINE_POSITION"
	UnderlineThickness Property = "UNDERLINE_THICKNESS"
	CapHeight          Property = "CAP_HEIGHT"
	XHeight            Property = "X_HEIGHT"
)

type valueKind int

const (
	kindInt valueKind = iota
	kindText
)

// expectedKind lists the value kind each well-known property must carry.
var expectedKind = map[Property]valueKind{
	Copyright:          kindText,
	Notice:             kindText,
	Foundry:            kindText,
	FamilyName:         kindText,
	WeightName:         kindText,
	Slant:              kindText,
	PixelSize:          kindInt,
	PointSize:          kindInt,
	ResolutionX:        kindInt,
	ResolutionY:        kindInt,
	Spacing:            kindText,
	AverageWidth:       kindInt,
	CharsetRegistry:    kindText,
	CharsetEncoding:    kindText,
	FontAscent:         kindInt,
	FontDescent:        kindInt,
	DefaultChar:        kindInt,
	UnderlinePosition:  kindInt,
	UnderlineThickness: kindInt,
	CapHeight:          kindInt,
	XHeight:            kindInt,
}

// Errors returned by Properties.TryGet.
var (
	ErrPropertyMissing = errors.New("font property not present")
	ErrPropertyType    = errors.New("font property has wrong value kind")
)

// Properties is a font's property table. Keys are unique and case-sensitive;
// iteration order is sorted by key. The zero value is an empty table.
type Properties struct {
	table *treemap.Map // property name (string) → PropertyValue
}

// Len returns the number of properties in the table.
func (p Properties) Len() int {
	if p.table == nil {
		return 0
	}
	return p.table.Size()
}

// TryGet looks up a property by name. For well-known properties the stored
// value must be of the expected kind; otherwise TryGet fails with a wrapped
// ErrPropertyType. Absent keys fail with a wrapped ErrPropertyMissing.
func (p Properties) TryGet(id Property) (PropertyValue, error) {
	var v interface{}
	found := false
	if p.table != nil {
		v, found = p.table.Get(string(id))
	}
	if !found {
		return nil, core.WrapError(ErrPropertyMissing, core.EMISSING,
			"font property %s not present", id)
	}
	value := v.(PropertyValue)
	if kind, known := expectedKind[id]; known && kind != kindOf(value) {
		return nil, core.WrapError(ErrPropertyType, core.EINVALID,
			"font property %s has wrong value kind", id)
	}
	return value, nil
}

// Each calls f for every property, in sorted key order.
func (p Properties) Each(f func(name string, value PropertyValue)) {
	if p.table == nil {
		return
	}
	p.table.Each(func(key, value interface{}) {
		f(key.(string), value.(PropertyValue))
	})
}

func (p Properties) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	sep := ""
	p.Each(func(name string, value PropertyValue) {
		fmt.Fprintf(&sb, "%s%s=%v", sep, name, value)
		sep = " "
	})
	sb.WriteString("}")
	return sb.String()
}

func kindOf(v PropertyValue) valueKind {
	if _, ok := v.(IntValue); ok {
		return kindInt
	}
	return kindText
}

// --- Parsing ---------------------------------------------------------------

// parseProperties parses the optional STARTPROPERTIES…ENDPROPERTIES section.
// If no STARTPROPERTIES statement is next in the input, an empty table is
// returned and the input is left untouched.
//
// The count declared by STARTPROPERTIES is informational only; it is not
// checked against the number of entries actually present.
func parseProperties(in string) (Properties, string, error) {
	declared, rest, err := statement(skipComments(in), "STARTPROPERTIES", parseUint)
	if err != nil {
		if errors.Is(err, errNoKeyword) {
			return Properties{}, in, nil
		}
		return Properties{}, in, err
	}
	table := treemap.NewWithStringComparator()
	for {
		rest = skipComments(rest)
		if r, err := bareStatement(rest, "ENDPROPERTIES"); err == nil {
			rest = r
			break
		} else if !errors.Is(err, errNoKeyword) {
			return Properties{}, in, err
		}
		name, value, r, err := parsePropertyEntry(rest)
		if err != nil {
			return Properties{}, in, err
		}
		table.Put(name, value)
		rest = r
	}
	if int(declared) != table.Size() {
		trace().Infof("BDF declares %d properties, has %d", declared, table.Size())
	}
	return Properties{table: table}, rest, nil
}

// parsePropertyEntry parses one interior line of the properties section:
// a key followed by either a double-quoted string or an integer. Quoted
// strings have no escape processing; the content between the quotes is
// taken verbatim.
func parsePropertyEntry(in string) (string, PropertyValue, string, error) {
	name, rest := token(skipSpace(in))
	if name == "" {
		return "", nil, in, errors.New("expected property key")
	}
	rest, err := hspace1(rest)
	if err != nil {
		return "", nil, in, fmt.Errorf("property %s: %w", name, err)
	}
	var value PropertyValue
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return "", nil, in, fmt.Errorf("property %s: unterminated string", name)
		}
		value = TextValue(rest[1 : 1+end])
		rest = rest[end+2:]
	} else {
		i, r, err := parseInteger(rest)
		if err != nil {
			return "", nil, in, fmt.Errorf("property %s: %w", name, err)
		}
		value = IntValue(i)
		rest = r
	}
	rest, _ = lineEnding(skipHSpace(rest))
	return name, value, rest, nil
}
