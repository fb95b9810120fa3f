package link

// crc16 computes CRC-16/XMODEM (poly 0x1021, zero init), the checksum the
// device appends to received bulk chunks. Sent chunks use sum8 instead; the
// firmware uses the two algorithms asymmetrically and they must not be
// unified.
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = (crc << 8) ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}

var crc16Table = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if (crc & 0x8000) != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// sum8 is the modulo-256 payload sum trailing each sent chunk.
func sum8(data []byte) byte {
	var s byte
	for _, b := range data {
		s += b
	}
	return s
}
