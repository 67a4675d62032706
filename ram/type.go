package ram

// TypeAttribute classifies the payload a value slot carries.
type TypeAttribute uint8

const (
	Symbol TypeAttribute = iota
	Signed
	Unsigned
	Float
	Record
)

func (t TypeAttribute) String() string {
	switch t {
	case Symbol:
		return "symbol"
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case Record:
		return "record"
	}
	return "unknown"
}
