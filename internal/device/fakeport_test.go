package device

import "github.com/codingforfun/navi2move/internal/link"

// fakePort scripts the device side of a conversation. Each script entry is
// served across as many reads as the caller needs; an empty entry models one
// timed-out read. An exhausted script times out forever.
type fakePort struct {
	script [][]byte
	cur    []byte

	writes  [][]byte
	bauds   []int
	breaks  int
	flushes int
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.cur) == 0 {
		if len(p.script) == 0 {
			return 0, nil
		}
		p.cur = p.script[0]
		p.script = p.script[1:]
		if len(p.cur) == 0 {
			return 0, nil
		}
	}
	n := copy(b, p.cur)
	p.cur = p.cur[n:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.writes = append(p.writes, append([]byte(nil), b...))
	return len(b), nil
}

func (p *fakePort) Close() error { return nil }

func (p *fakePort) SetBaud(baud int) error {
	p.bauds = append(p.bauds, baud)
	return nil
}

func (p *fakePort) SendBreak() error {
	p.breaks++
	return nil
}

func (p *fakePort) Flush() error {
	p.flushes++
	return nil
}

// respLine renders body as a complete checksummed response line.
func respLine(body string) []byte {
	return []byte(body + "*" + link.Checksum([]byte(body)) + "\r\n")
}
