package sketch

// Kind identifies the variant of a Thing.
type Kind uint8

const (
	// KindInvalid is the zero Kind. A Thing with this kind was not built by
	// one of the constructors and cannot be drawn.
	KindInvalid Kind = iota
	KindRectangle
	KindCircle
	KindTriangle
	KindEllipse
	KindText
	KindLine
	KindImage
)

var kindNames = [...]string{
	KindInvalid:   "Invalid",
	KindRectangle: "Rectangle",
	KindCircle:    "Circle",
	KindTriangle:  "Triangle",
	KindEllipse:   "Ellipse",
	KindText:      "Text",
	KindLine:      "Line",
	KindImage:     "Image",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is one of the seven drawable kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

// Kinds returns the drawable kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindRectangle, KindCircle, KindTriangle, KindEllipse,
		KindText, KindLine, KindImage,
	}
}
