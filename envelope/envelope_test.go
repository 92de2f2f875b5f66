package envelope_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wippyai/wirecodec/envelope"
	"github.com/wippyai/wirecodec/wire"
)

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		wire.EncodeString("alice"),
		wire.EncodeUint64(42),
		{}, // empty payloads are legal
		wire.EncodeInt16Slice([]int16{1, -1}),
	}

	var b envelope.Builder
	for _, p := range payloads {
		b.Append(p)
	}

	parts, err := envelope.Split(b.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(parts) != len(payloads) {
		t.Fatalf("got %d payloads, want %d", len(parts), len(payloads))
	}
	for i := range payloads {
		if !bytes.Equal(parts[i], payloads[i]) {
			t.Errorf("payload %d: got %v, want %v", i, parts[i], payloads[i])
		}
	}
}

func TestFrameLayout(t *testing.T) {
	var b envelope.Builder
	b.Append([]byte{0xAA, 0xBB})
	want := []byte{0x00, 0x00, 0x00, 0x02, 0xAA, 0xBB}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("got %v, want %v", b.Bytes(), want)
	}
	if b.Len() != len(want) {
		t.Errorf("Len: got %d, want %d", b.Len(), len(want))
	}
}

func TestSplitEmpty(t *testing.T) {
	parts, err := envelope.Split(nil)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(parts) != 0 {
		t.Errorf("got %v, want no payloads", parts)
	}
}

func TestSplitTruncatedHeader(t *testing.T) {
	_, err := envelope.Split([]byte{0x00, 0x00, 0x01})
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestSplitOverrunningFrame(t *testing.T) {
	// Header claims ten bytes; only two follow.
	_, err := envelope.Split([]byte{0x00, 0x00, 0x00, 0x0A, 0x01, 0x02})
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestSplitConsumesEntireInput(t *testing.T) {
	var b envelope.Builder
	b.Append([]byte{0x01})
	// A stray trailing byte is a cut-short header for the next frame.
	data := append(b.Bytes(), 0xFF)
	_, err := envelope.Split(data)
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestReset(t *testing.T) {
	var b envelope.Builder
	b.Append([]byte{0x01, 0x02})
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset: got %d, want 0", b.Len())
	}
	b.Append([]byte{0x03})
	parts, err := envelope.Split(b.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(parts) != 1 || !bytes.Equal(parts[0], []byte{0x03}) {
		t.Errorf("got %v, want [[3]]", parts)
	}
}

func FuzzSplit(f *testing.F) {
	var seed envelope.Builder
	seed.Append([]byte("payload"))
	seed.Append(nil)
	f.Add(seed.Bytes())
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x00, 0x0A})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		parts, err := envelope.Split(data)
		if err != nil {
			return
		}
		// Accepted input must rebuild byte for byte.
		var b envelope.Builder
		for _, p := range parts {
			b.Append(p)
		}
		if !bytes.Equal(b.Bytes(), data) {
			t.Errorf("rebuild changed bytes for %v", data)
		}
	})
}
