package record

// Symbol is a route point's direction symbol code.
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolStraightAhead
	SymbolKeepLeft
	SymbolKeepRight
	SymbolLeft
	SymbolBackward
	SymbolRight
	SymbolLeftRearward
	SymbolRightRearward
)

var symbolNames = map[Symbol]string{
	SymbolNone:          "none",
	SymbolStraightAhead: "straight ahead",
	SymbolKeepLeft:      "keep left",
	SymbolKeepRight:     "keep right",
	SymbolLeft:          "left",
	SymbolBackward:      "backward",
	SymbolRight:         "right",
	SymbolLeftRearward:  "left rearward",
	SymbolRightRearward: "right rearward",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown symbol"
}

// SymbolFromName maps a direction name back to its code. Unknown names map
// to SymbolNone.
func SymbolFromName(name string) Symbol {
	for s, n := range symbolNames {
		if n == name {
			return s
		}
	}
	return SymbolNone
}
