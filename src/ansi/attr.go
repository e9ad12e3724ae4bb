package ansi

// Attr is a bitmask of text attributes. Merging is bitwise-or, so
// combining attributes is commutative and applying one twice is a no-op.
type Attr int32

const (
	AttrRegular   Attr = 0
	Bold               = Attr(1)
	Dim                = Attr(1 << 1)
	Italic             = Attr(1 << 2)
	Underline          = Attr(1 << 3)
	Blink              = Attr(1 << 4)
	Reverse            = Attr(1 << 5)
	Hidden             = Attr(1 << 6)
	Strikethrough      = Attr(1 << 7)
)

func (a Attr) Merge(b Attr) Attr {
	return a | b
}

func (a Attr) Has(b Attr) bool {
	return a&b == b
}

var attrCodes = []struct {
	attr Attr
	code string
}{
	{Bold, "1"},
	{Dim, "2"},
	{Italic, "3"},
	{Underline, "4"},
	{Blink, "5"},
	{Reverse, "7"},
	{Hidden, "8"},
	{Strikethrough, "9"},
}

// Codes returns the SGR code of each active attribute, always in the same
// order.
func (a Attr) Codes() []string {
	codes := []string{}
	for _, ac := range attrCodes {
		if a&ac.attr > 0 {
			codes = append(codes, ac.code)
		}
	}
	return codes
}
