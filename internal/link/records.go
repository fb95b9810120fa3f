package link

// ParseRecords slices the payloads of a bulk receive into fixed-size records
// of recLen bytes.
//
// A record may straddle a chunk boundary; the remainder is pulled from the
// front of the next chunk before slicing continues. A slice that is entirely
// 0xFF is end-of-chunk padding: it is discarded and ends slicing for that
// chunk. A trailing fragment shorter than recLen at the very end of the
// stream is dropped.
func ParseRecords(chunks [][]byte, recLen int) [][]byte {
	var recs [][]byte
	for _, chunk := range chunks {
		if n := len(recs); n > 0 && len(recs[n-1]) != recLen {
			// The previous chunk ended mid-record.
			need := recLen - len(recs[n-1])
			if need > len(chunk) {
				need = len(chunk)
			}
			recs[n-1] = append(recs[n-1], chunk[:need]...)
			chunk = chunk[need:]
		}
		for i := 0; i < len(chunk); i += recLen {
			end := i + recLen
			if end > len(chunk) {
				end = len(chunk)
			}
			slice := chunk[i:end]
			if isPadding(slice) {
				break
			}
			recs = append(recs, append([]byte(nil), slice...))
		}
	}
	if n := len(recs); n > 0 && len(recs[n-1]) != recLen {
		recs = recs[:n-1]
	}
	return recs
}

func isPadding(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c != 0xFF {
			return false
		}
	}
	return true
}
