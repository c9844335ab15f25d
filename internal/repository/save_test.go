package repository

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeState(t *testing.T) {
	raw := []byte(`{"turn":42,"planet":{"temperature":-12.5}}`)

	blob, hash, err := encodeState(raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(hash) != 32 {
		t.Fatalf("hash length = %d, want 32", len(hash))
	}

	got, err := decodeState(blob, hash)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("round trip changed the payload: %q", got)
	}
}

func TestDecodeRejectsTamperedBlob(t *testing.T) {
	raw := bytes.Repeat([]byte(`{"credits":5000}`), 100)
	blob, hash, err := encodeState(raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tampered := append([]byte(nil), blob...)
	tampered[len(tampered)/2] ^= 0xff

	if _, err := decodeState(tampered, hash); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("tampered blob: err = %v, want ErrCorruptSave", err)
	}
}

func TestDecodeRejectsWrongHash(t *testing.T) {
	blob, hash, err := encodeState([]byte(`{"turn":1}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	wrong := append([]byte(nil), hash...)
	wrong[0] ^= 0xff

	if _, err := decodeState(blob, wrong); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("wrong hash: err = %v, want ErrCorruptSave", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := decodeState([]byte("not lz4 at all"), make([]byte, 32)); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("garbage blob: err = %v, want ErrCorruptSave", err)
	}
}
