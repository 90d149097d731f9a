package column

// ColumnDataType identifies the declared data type of a column.
type ColumnDataType int

const (
	TypeUnknown ColumnDataType = iota
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeBytes
	TypeTimestamp
)

var columnDataTypeNames = map[ColumnDataType]string{
	TypeUnknown:   "unknown",
	TypeBool:      "bool",
	TypeInt8:      "int8",
	TypeInt16:     "int16",
	TypeInt32:     "int32",
	TypeInt64:     "int64",
	TypeUInt8:     "uint8",
	TypeUInt16:    "uint16",
	TypeUInt32:    "uint32",
	TypeUInt64:    "uint64",
	TypeFloat32:   "float32",
	TypeFloat64:   "float64",
	TypeString:    "string",
	TypeBytes:     "bytes",
	TypeTimestamp: "timestamp",
}

func (t ColumnDataType) String() string {
	if name, ok := columnDataTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MetaColumn describes a result-set column. It is an immutable value
// record; each column keeps its own copy.
type MetaColumn struct {
	// Name is the column name as reported by the data source
	Name string
	// Length is the declared maximum length, zero when not applicable
	Length uint
	// Precision is the declared precision, valid for floating point and
	// decimal columns only (zero for other data types)
	Precision uint
	// Position is the zero-based ordinal position within the result set
	Position uint
	// Type is the declared data type tag
	Type ColumnDataType
}
