package iec

// Direction classifies a located variable as an input, an output, or an
// internal memory point. It is encoded by the I/Q/M flag in the variable
// name.
type Direction int

const (
	DirIn Direction = iota
	DirOut
	DirMem
)

// directionNames maps each direction to the IECLDT_* suffix used in the
// generated source.
var directionNames = map[Direction]string{
	DirIn:  "IN",
	DirOut: "OUT",
	DirMem: "MEM",
}

// directionFlags maps each direction back to its single-character flag.
var directionFlags = map[Direction]byte{
	DirIn:  'I',
	DirOut: 'Q',
	DirMem: 'M',
}

func (d Direction) String() string {
	return directionNames[d]
}

// Flag returns the single-character flag for the direction, as it appears
// in located variable names.
func (d Direction) Flag() byte {
	return directionFlags[d]
}

// DirectionFromFlag maps a direction flag character to its Direction.
// Unknown flags map to DirMem, preserving the permissive behavior of the
// original generator.
func DirectionFromFlag(flag byte) Direction {
	switch flag {
	case 'I':
		return DirIn
	case 'Q':
		return DirOut
	default:
		return DirMem
	}
}

// SizeClass is the bit-width category of a located variable, encoded by the
// X/B/W/D/L flag in the variable name.
type SizeClass int

const (
	SizeBit SizeClass = iota
	SizeByte
	SizeWord
	SizeDoubleWord
	SizeLongWord
)

// sizeClassNames maps each size class to the IECLST_* suffix used in the
// generated source.
var sizeClassNames = map[SizeClass]string{
	SizeBit:        "BIT",
	SizeByte:       "BYTE",
	SizeWord:       "WORD",
	SizeDoubleWord: "DOUBLEWORD",
	SizeLongWord:   "LONGWORD",
}

func (s SizeClass) String() string {
	return sizeClassNames[s]
}

// SizeClassFromFlag maps a size flag character to its SizeClass. The G flag
// marks a synthetic boolean group and maps to SizeBit. Unknown flags map to
// SizeLongWord, preserving the permissive behavior of the original
// generator.
func SizeClassFromFlag(flag byte) SizeClass {
	switch flag {
	case 'G', 'X':
		return SizeBit
	case 'B':
		return SizeByte
	case 'W':
		return SizeWord
	case 'D':
		return SizeDoubleWord
	default:
		return SizeLongWord
	}
}

// Declaration is one parsed located variable line. A boolean group
// aggregation may rewrite Name to a synthetic group symbol and reset Minor.
type Declaration struct {
	Name      string
	Type      string
	Direction Direction
	Size      SizeClass
	Major     uint16
	// Minor is only meaningful for bit-addressed declarations.
	Minor uint16
}

// knownValueTypes lists the value types of the runtime's IecGlueValueType
// enum. Declared types outside this set still emit, but are worth a warning.
var knownValueTypes = map[string]struct{}{
	"BOOL":  {},
	"BYTE":  {},
	"SINT":  {},
	"USINT": {},
	"INT":   {},
	"UINT":  {},
	"WORD":  {},
	"DINT":  {},
	"UDINT": {},
	"DWORD": {},
	"REAL":  {},
	"LREAL": {},
	"LWORD": {},
	"LINT":  {},
	"ULINT": {},
}

// KnownValueType reports whether typ appears in the runtime's value type
// enum.
func KnownValueType(typ string) bool {
	_, ok := knownValueTypes[typ]
	return ok
}
