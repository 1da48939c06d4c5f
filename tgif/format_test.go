package tgif

import (
	"encoding/binary"
	"errors"
	"testing"
)

// encodeValid builds a well-formed multi-chunk file for corruption tests.
func encodeValid(t *testing.T) []byte {
	t.Helper()
	img := gradientImage(32, 40)
	opts := DefaultOptions()
	opts.ChunkSize = 32 * 8 // 8 rows per chunk, 5 chunks
	data, err := Encode(img, &opts)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHeaderLayout(t *testing.T) {
	data := encodeValid(t)

	if string(data[:4]) != Magic {
		t.Errorf("magic = %q", data[:4])
	}
	if data[4] != Version {
		t.Errorf("version = %d", data[4])
	}
	if w := binary.BigEndian.Uint32(data[5:9]); w != 32 {
		t.Errorf("width = %d", w)
	}
	if h := binary.BigEndian.Uint32(data[9:13]); h != 40 {
		t.Errorf("height = %d", h)
	}
	if data[13] != DefaultRemainderBits {
		t.Errorf("remainder bits = %d", data[13])
	}
	if r := binary.BigEndian.Uint32(data[14:18]); r != 8 {
		t.Errorf("rows per chunk = %d", r)
	}
	if c := binary.BigEndian.Uint32(data[18:22]); c != 5 {
		t.Errorf("chunk count = %d", c)
	}

	// First directory entry starts right after the directory itself.
	if off := binary.BigEndian.Uint64(data[headerSize:]); off != uint64(headerSize+5*dirEntrySize) {
		t.Errorf("first chunk offset = %d", off)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	data := encodeValid(t)
	data[0] = 'X'
	if _, err := Decode(data); !errors.Is(err, ErrBadMagic) {
		t.Errorf("got %v, want ErrBadMagic", err)
	}

	if _, err := Decode(nil); !errors.Is(err, ErrBadMagic) {
		t.Errorf("empty file: got %v, want ErrBadMagic", err)
	}
	if _, err := Decode([]byte("TG")); !errors.Is(err, ErrBadMagic) {
		t.Errorf("two bytes: got %v, want ErrBadMagic", err)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data := encodeValid(t)
	data[4] = Version + 1
	if _, err := Decode(data); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	data := encodeValid(t)
	if _, err := Decode(data[:headerSize-3]); !errors.Is(err, ErrCorruptDirectory) {
		t.Errorf("got %v, want ErrCorruptDirectory", err)
	}
}

func TestDecodeCorruptHeaderFields(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func([]byte)
		want   error
	}{
		{"zero width", func(d []byte) { binary.BigEndian.PutUint32(d[5:9], 0) }, ErrCorruptDirectory},
		{"zero height", func(d []byte) { binary.BigEndian.PutUint32(d[9:13], 0) }, ErrCorruptDirectory},
		{"huge dimensions", func(d []byte) {
			binary.BigEndian.PutUint32(d[5:9], 1<<20)
			binary.BigEndian.PutUint32(d[9:13], 1<<20)
		}, ErrImageTooLarge},
		{"remainder bits out of range", func(d []byte) { d[13] = 9 }, ErrCorruptDirectory},
		{"zero rows per chunk", func(d []byte) { binary.BigEndian.PutUint32(d[14:18], 0) }, ErrCorruptDirectory},
		{"chunk count mismatch", func(d []byte) { binary.BigEndian.PutUint32(d[18:22], 3) }, ErrCorruptDirectory},
	}

	for _, tc := range mutations {
		data := encodeValid(t)
		tc.mutate(data)
		if _, err := Decode(data); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeCorruptDirectory(t *testing.T) {
	entry := func(data []byte, i int) []byte {
		return data[headerSize+i*dirEntrySize:]
	}

	mutations := []struct {
		name   string
		mutate func([]byte)
	}{
		{"offset beyond file", func(d []byte) {
			binary.BigEndian.PutUint64(entry(d, 2), uint64(len(d)))
		}},
		{"length beyond file", func(d []byte) {
			binary.BigEndian.PutUint32(entry(d, 4)[8:], 1<<30)
		}},
		{"overlapping entries", func(d []byte) {
			first := binary.BigEndian.Uint64(entry(d, 0))
			binary.BigEndian.PutUint64(entry(d, 1), first)
		}},
		{"offset inside directory", func(d []byte) {
			binary.BigEndian.PutUint64(entry(d, 0), 4)
		}},
		{"zero length entry", func(d []byte) {
			binary.BigEndian.PutUint32(entry(d, 3)[8:], 0)
		}},
		{"offset overflow", func(d []byte) {
			binary.BigEndian.PutUint64(entry(d, 2), ^uint64(0)-2)
		}},
	}

	for _, tc := range mutations {
		data := encodeValid(t)
		tc.mutate(data)
		if _, err := Decode(data); !errors.Is(err, ErrCorruptDirectory) {
			t.Errorf("%s: got %v, want ErrCorruptDirectory", tc.name, err)
		}
	}
}

func TestDecodeTruncatedDirectory(t *testing.T) {
	data := encodeValid(t)
	if _, err := Decode(data[:headerSize+dirEntrySize*2]); !errors.Is(err, ErrCorruptDirectory) {
		t.Errorf("got %v, want ErrCorruptDirectory", err)
	}
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data := encodeValid(t)
	// Cutting the payload invalidates the last directory entry's span.
	if _, err := Decode(data[:len(data)-1]); !errors.Is(err, ErrCorruptDirectory) {
		t.Errorf("got %v, want ErrCorruptDirectory", err)
	}
}
