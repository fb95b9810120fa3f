package link

import (
	"errors"
	"testing"
)

func TestChecksum(t *testing.T) {
	if got := Checksum([]byte("POEM12,14")); got != "3D" {
		t.Fatalf("Checksum = %s, want 3D", got)
	}
	// A leading '$' does not take part in the checksum.
	if got := Checksum([]byte("$POEM12,14")); got != "3D" {
		t.Fatalf("Checksum with $ = %s, want 3D", got)
	}
}

func TestSendCommand(t *testing.T) {
	p := &fakePort{}
	ch := quietChannel(p)
	if err := ch.SendCommand("$POEM12,14"); err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if len(p.writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(p.writes))
	}
	if got, want := string(p.writes[0]), "$POEM12,14*3D\r\n"; got != want {
		t.Fatalf("wrote %q, want %q", got, want)
	}
}

func TestVerifyChecksum(t *testing.T) {
	if err := VerifyChecksum("$POEM200,12*0A\r\n"); err != nil {
		t.Fatalf("valid line rejected: %v", err)
	}
	// Lowercase hex digits are accepted.
	if err := VerifyChecksum("$POEM200,12*0a\r\n"); err != nil {
		t.Fatalf("lowercase checksum rejected: %v", err)
	}

	err := VerifyChecksum("$POEM200,12*0B\r\n")
	if !errors.Is(err, ErrBadChecksum) {
		t.Fatalf("flipped checksum: got %v, want ErrBadChecksum", err)
	}
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("ErrBadChecksum does not specialize ErrBadResponse: %v", err)
	}

	if err := VerifyChecksum("$POEM200,12\r\n"); !errors.Is(err, ErrBadChecksum) {
		t.Fatalf("unchecksummed line: got %v, want ErrBadChecksum", err)
	}
}

func TestResponse(t *testing.T) {
	p := &fakePort{script: [][]byte{[]byte("$POEM200,12*0A\r\n")}}
	ch := quietChannel(p)
	line, err := ch.Response("$POEM200,12", true)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if line != "$POEM200,12*0A\r\n" {
		t.Fatalf("Response line = %q", line)
	}
}

func TestResponseWrongPrefix(t *testing.T) {
	p := &fakePort{script: [][]byte{[]byte("$POEM200,12*0A\r\n")}}
	ch := quietChannel(p)
	_, err := ch.Response("$POEM103", true)
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("got %v, want ErrBadResponse", err)
	}
	if errors.Is(err, ErrBadChecksum) {
		t.Fatalf("prefix mismatch must not report a checksum error: %v", err)
	}
}

func TestResponseTimeoutTruncates(t *testing.T) {
	// A timed-out read ends the line early; the truncated line then fails
	// checksum validation.
	p := &fakePort{script: [][]byte{[]byte("$POEM200,")}}
	ch := quietChannel(p)
	if _, err := ch.Response("$POEM200,12", true); !errors.Is(err, ErrBadChecksum) {
		t.Fatalf("got %v, want ErrBadChecksum", err)
	}
}
