package record

// glyphLen is the size of one on-device glyph: an 11x16 1-bit-per-pixel
// image stored as two 11-byte bit planes, column-major, LSB topmost.
const glyphLen = 22

// glyphFor returns the display bitmap for a char table entry. Characters
// without a builtin bitmap render as '?'.
func glyphFor(r rune) [glyphLen]byte {
	if g, ok := glyphBitmaps[r]; ok {
		return g
	}
	return glyphBitmaps['?']
}

// Builtin glyph bitmaps, derived from DejaVu Sans at size 8. The vendor
// software ships its own set; the device accepts either.
var glyphBitmaps = map[rune][glyphLen]byte{
	0x0000: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+0000
	0x0020: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ' '
	0x0061: {0x00, 0x80, 0xd0, 0x50, 0x50, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'a'
	0x0062: {0x00, 0xfe, 0xfe, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'b'
	0x0063: {0x00, 0xc0, 0xe0, 0x10, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'c'
	0x0064: {0x00, 0xe0, 0xf0, 0x10, 0x10, 0xfe, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'd'
	0x0065: {0x00, 0xc0, 0xe0, 0x50, 0x50, 0x70, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // 'e'
	0x0066: {0x00, 0x10, 0xfc, 0xfe, 0x12, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'f'
	0x0067: {0x00, 0xe0, 0xf0, 0x10, 0x10, 0xf0, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x0b, 0x0a, 0x0a, 0x0f, 0x07, 0x00, 0x00, 0x00, 0x00}, // 'g'
	0x0068: {0x00, 0xfe, 0xfe, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'h'
	0x0069: {0x00, 0xf6, 0xf6, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'i'
	0x006a: {0x00, 0x00, 0xf6, 0xf6, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x0f, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'j'
	0x006b: {0x00, 0xfe, 0xfe, 0xc0, 0xe0, 0x30, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00, 0x00, 0x00}, // 'k'
	0x006c: {0x00, 0xfe, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'l'
	0x006d: {0x00, 0xf0, 0xf0, 0x10, 0x10, 0xf0, 0xf0, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03}, // 'm'
	0x006e: {0x00, 0xf0, 0xf0, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'n'
	0x006f: {0x00, 0xe0, 0xf0, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'o'
	0x0070: {0x00, 0xf0, 0xf0, 0x10, 0x10, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'p'
	0x0071: {0x00, 0xe0, 0xf0, 0x10, 0x10, 0xf0, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x0f, 0x0f, 0x00, 0x00, 0x00, 0x00}, // 'q'
	0x0072: {0x00, 0xf0, 0xf0, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'r'
	0x0073: {0x00, 0x60, 0xf0, 0xd0, 0x90, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // 's'
	0x0074: {0x00, 0x10, 0xfc, 0xfc, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00}, // 't'
	0x0075: {0x00, 0xf0, 0xf0, 0x00, 0x00, 0xf0, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'u'
	0x0076: {0x00, 0x00, 0x10, 0xf0, 0xc0, 0x00, 0xc0, 0xf0, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'v'
	0x0077: {0x00, 0x30, 0xf0, 0x80, 0xe0, 0x70, 0xe0, 0x80, 0xf0, 0x30, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00}, // 'w'
	0x0078: {0x00, 0x00, 0x30, 0xe0, 0xc0, 0xe0, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x01, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00}, // 'x'
	0x0079: {0x00, 0x10, 0x70, 0xe0, 0x00, 0xc0, 0x70, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x0d, 0x07, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'y'
	0x007a: {0x00, 0x10, 0x90, 0xd0, 0x70, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'z'
	0x0041: {0x00, 0x00, 0xc0, 0xf8, 0x9c, 0x9c, 0xf8, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0x01, 0x00, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00}, // 'A'
	0x0042: {0x00, 0xfc, 0xfc, 0x24, 0x24, 0x24, 0xfc, 0xd8, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00}, // 'B'
	0x0043: {0x00, 0xf0, 0xf8, 0x0c, 0x04, 0x04, 0x04, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x02, 0x03, 0x00, 0x00, 0x00}, // 'C'
	0x0044: {0x00, 0xfc, 0xfc, 0x04, 0x04, 0x0c, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'D'
	0x0045: {0x00, 0xfc, 0xfc, 0x24, 0x24, 0x24, 0x24, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // 'E'
	0x0046: {0x00, 0xfc, 0xfc, 0x24, 0x24, 0x24, 0x24, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'F'
	0x0047: {0x00, 0xf0, 0xf8, 0x0c, 0x04, 0x44, 0xc4, 0xcc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00}, // 'G'
	0x0048: {0x00, 0xfc, 0xfc, 0x20, 0x20, 0x20, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00}, // 'H'
	0x0049: {0x00, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'I'
	0x004a: {0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'J'
	0x004b: {0x00, 0xfc, 0xfc, 0x60, 0xf0, 0x98, 0x0c, 0x04, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00, 0x00}, // 'K'
	0x004c: {0x00, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // 'L'
	0x004d: {0x00, 0xfc, 0xfc, 0x1c, 0x60, 0xc0, 0x70, 0x1c, 0xfc, 0xfc, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00}, // 'M'
	0x004e: {0x00, 0xfc, 0xfc, 0x18, 0x60, 0x80, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x01, 0x03, 0x03, 0x00, 0x00, 0x00}, // 'N'
	0x004f: {0x00, 0xf0, 0xf8, 0x0c, 0x04, 0x04, 0x0c, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00}, // 'O'
	0x0050: {0x00, 0xfc, 0xfc, 0x44, 0x44, 0x44, 0x7c, 0x38, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'P'
	0x0051: {0x00, 0xf0, 0xf8, 0x0c, 0x04, 0x04, 0x0c, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x0f, 0x09, 0x00, 0x00, 0x00}, // 'Q'
	0x0052: {0x00, 0xfc, 0xfc, 0x44, 0x44, 0xfc, 0xb8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00, 0x00}, // 'R'
	0x0053: {0x00, 0x38, 0x3c, 0x64, 0x64, 0xc4, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x02, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'S'
	0x0054: {0x00, 0x04, 0x04, 0x04, 0xfc, 0xfc, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'T'
	0x0055: {0x00, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x02, 0x02, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00}, // 'U'
	0x0056: {0x00, 0x04, 0x3c, 0xf0, 0x80, 0x80, 0xf0, 0x3c, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // 'V'
	0x0057: {0x04, 0x7c, 0xe0, 0x80, 0x78, 0x1c, 0x78, 0x80, 0xe0, 0x7c, 0x04, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00}, // 'W'
	0x0058: {0x00, 0x04, 0x8c, 0xf8, 0x60, 0x60, 0xf8, 0x8c, 0x04, 0x00, 0x00, 0x00, 0x02, 0x03, 0x01, 0x00, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00}, // 'X'
	0x0059: {0x00, 0x04, 0x0c, 0x38, 0xe0, 0xe0, 0x38, 0x0c, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, // 'Y'
	0x005a: {0x00, 0x04, 0x84, 0xc4, 0x64, 0x34, 0x1c, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x02, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00}, // 'Z'
	0x0031: {0x00, 0x04, 0x04, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x03, 0x03, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // '1'
	0x0032: {0x00, 0x04, 0x84, 0xc4, 0x64, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // '2'
	0x0033: {0x00, 0x08, 0x24, 0x24, 0x24, 0xfc, 0xd8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}, // '3'
	0x0034: {0x00, 0xc0, 0xa0, 0x98, 0x84, 0xfc, 0xfc, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // '4'
	0x0035: {0x00, 0x3c, 0x3c, 0x24, 0x24, 0xe4, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // '5'
	0x0036: {0x00, 0xf0, 0xf8, 0x24, 0x24, 0xe4, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // '6'
	0x0037: {0x00, 0x04, 0x04, 0xc4, 0xf4, 0x3c, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '7'
	0x0038: {0x00, 0xd8, 0xfc, 0x24, 0x24, 0xfc, 0xd8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // '8'
	0x0039: {0x00, 0x38, 0x7c, 0x44, 0x44, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // '9'
	0x0030: {0x00, 0xf0, 0xf8, 0x04, 0x04, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // '0'
	0x00e4: {0x00, 0x80, 0xd4, 0x50, 0x54, 0xf0, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // U+00E4
	0x00f6: {0x00, 0xe0, 0xf4, 0x10, 0x10, 0xf4, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // U+00F6
	0x00fc: {0x00, 0xf0, 0xf4, 0x00, 0x00, 0xf4, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // U+00FC
	0x00c4: {0x00, 0x00, 0xc0, 0xf9, 0x9c, 0x9c, 0xf9, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0x01, 0x00, 0x00, 0x01, 0x03, 0x02, 0x00, 0x00}, // U+00C4
	0x00d6: {0x00, 0xf0, 0xf8, 0x0d, 0x04, 0x04, 0x0d, 0xf8, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00}, // U+00D6
	0x00dc: {0x00, 0xfc, 0xfc, 0x01, 0x00, 0x01, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x02, 0x02, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00}, // U+00DC
	0x00df: {0x00, 0xfc, 0xfe, 0x02, 0x72, 0xfe, 0xcc, 0x80, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00}, // U+00DF
	0x00b0: {0x00, 0x80, 0x40, 0x40, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+00B0
	0x005e: {0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00}, // '^'
	0x0021: {0x00, 0x7c, 0x7c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '!'
	0x0022: {0x00, 0x80, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '"'
	0x00a7: {0x00, 0x64, 0xfe, 0xda, 0xf2, 0x70, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+00A7
	0x0024: {0x00, 0x8c, 0x9e, 0x9a, 0xff, 0xb2, 0xf2, 0x62, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '$'
	0x0025: {0x00, 0x18, 0x24, 0x24, 0x18, 0xc0, 0x30, 0x88, 0x44, 0x40, 0x80, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x01, 0x02, 0x02, 0x01}, // '%'
	0x0026: {0x00, 0xc0, 0xe8, 0x3c, 0x64, 0xc4, 0x84, 0xe0, 0x60, 0x00, 0x00, 0x00, 0x01, 0x01, 0x02, 0x02, 0x03, 0x01, 0x03, 0x00, 0x00, 0x00}, // '&'
	0x002f: {0x00, 0x00, 0xc0, 0x1c, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '/'
	0x0028: {0x00, 0xe0, 0xf8, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '('
	0x0029: {0x00, 0x04, 0xf8, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x07, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ')'
	0x003d: {0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00}, // '='
	0x003f: {0x00, 0x04, 0x64, 0x74, 0x3c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '?'
	0x0060: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '`'
	0x00b4: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+00B4
	0x005c: {0x00, 0x02, 0x1c, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '\\'
	0x007d: {0x00, 0x04, 0x04, 0xbc, 0xf8, 0x40, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x08, 0x0f, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '}'
	0x005d: {0x00, 0x04, 0x04, 0xfc, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x08, 0x0f, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ']'
	0x005b: {0x00, 0xfc, 0xfc, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x08, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '['
	0x007b: {0x00, 0x40, 0x40, 0xf8, 0xbc, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0x0f, 0x08, 0x08, 0x00, 0x00, 0x00, 0x00}, // '{'
	0x00b2: {0x00, 0x60, 0x20, 0x20, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0x03, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+00B2
	0x00b3: {0x00, 0x20, 0x60, 0x60, 0xa0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // U+00B3
	0x002c: {0x00, 0x00, 0xc0, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ','
	0x002e: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '.'
	0x002d: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '-'
	0x003b: {0x00, 0x00, 0xcc, 0xcc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ';'
	0x003a: {0x00, 0x30, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ':'
	0x005f: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00}, // '_'
	0x00b5: {0x00, 0xf0, 0xf0, 0x00, 0x00, 0xf0, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x02, 0x02, 0x01, 0x03, 0x02, 0x00, 0x00, 0x00}, // U+00B5
	0x007c: {0x00, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '|'
	0x003c: {0x00, 0xc0, 0xc0, 0xc0, 0x20, 0x20, 0x20, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x02, 0x00, 0x00, 0x00}, // '<'
	0x003e: {0x00, 0x10, 0x20, 0x20, 0x20, 0xc0, 0xc0, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '>'
	0x0023: {0x00, 0x80, 0xa0, 0xe0, 0xbc, 0xa0, 0xf0, 0xac, 0x20, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, // '#'
	0x0027: {0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '\''
	0x002b: {0x00, 0x40, 0x40, 0x40, 0xf8, 0x40, 0x40, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // '+'
	0x002a: {0x00, 0x40, 0x80, 0xe0, 0x80, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, // '*'
	0x007e: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x02, 0x02, 0x01, 0x00, 0x00, 0x00}, // '~'
	0x0040: {0x00, 0x78, 0x84, 0x32, 0x49, 0x85, 0x85, 0x49, 0xfe, 0x86, 0x38, 0x00, 0x00, 0x00, 0x01, 0x02, 0x02, 0x02, 0x02, 0x01, 0x00, 0x00}, // '@'
	0x20ac: {0x00, 0xa0, 0xe0, 0xf8, 0xac, 0xa4, 0x24, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00}, // U+20AC
}
