package metadata

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// sampleTokens is the single-buffer dump used across the repo's tests.
func sampleTokens() []string {
	return []string{
		"a000", "a000",
		"1", "0",
		"4", "0",
		"4", "0",
		"4", "0",
		"20", "0",
		"8", "0",
		"b000", "0",
		"400", "0",
		"0", "0",
		"10", "0",
		"20", "0",
		"c000", "0",
		"1", "0",
		"d000", "0",
		"100", "0",
		"200", "0",
	}
}

func TestDecodeSample(t *testing.T) {
	rec, err := Decode(sampleTokens())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := &Record{
		StartAddr:        V(0xa000),
		KernelID:         V(1),
		KernelSizeX:      V(4),
		KernelSizeY:      V(4),
		KernelSizeZ:      V(4),
		WfSize:           V(32),
		WgSize:           V(8),
		MetaDataBaseAddr: V(0xb000),
		LdsSize:          V(1024),
		PdsSize:          V(0),
		SgprUsage:        V(16),
		VgprUsage:        V(32),
		PdsBaseAddr:      V(0xc000),
		NumBuffers:       1,
		BufferBase:       []Value{V(0xd000)},
		BufferSize:       []Value{V(256)},
		BufferAllocSize:  []Value{V(512)},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeKeepsRawToken(t *testing.T) {
	tokens := sampleTokens()
	tokens[0] = "0000A000"
	rec, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.StartAddr.Raw != "0000A000" || rec.StartAddr.Uint != 0xa000 {
		t.Fatalf("unexpected start addr: %+v", rec.StartAddr)
	}
	if rec.StartAddr.Hex() != "0x0000A000" {
		t.Fatalf("unexpected hex: %q", rec.StartAddr.Hex())
	}
}

func TestDecodeZeroBuffers(t *testing.T) {
	tokens := sampleTokens()[:28]
	tokens[26] = "0"
	rec, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.NumBuffers != 0 {
		t.Fatalf("unexpected buffer count: %d", rec.NumBuffers)
	}
	if len(rec.BufferBase) != 0 || len(rec.BufferSize) != 0 || len(rec.BufferAllocSize) != 0 {
		t.Fatalf("expected empty buffer arrays: %+v", rec)
	}
	if len(rec.Buffers()) != 0 {
		t.Fatalf("expected no buffers")
	}
}

func TestDecodeGroupedBufferOrder(t *testing.T) {
	rec := &Record{
		NumBuffers:      3,
		BufferBase:      []Value{V(0x1000), V(0x2000), V(0x3000)},
		BufferSize:      []Value{V(1), V(2), V(3)},
		BufferAllocSize: []Value{V(16), V(32), V(48)},
	}
	tokens, err := Tokens(rec)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	// bases, then sizes, then alloc sizes.
	tail := tokens[2*scalarWords:]
	wantTail := []string{
		"1000", "0", "2000", "0", "3000", "0",
		"1", "0", "2", "0", "3", "0",
		"10", "0", "20", "0", "30", "0",
	}
	if diff := cmp.Diff(wantTail, tail); diff != "" {
		t.Fatalf("token layout mismatch (-want +got):\n%s", diff)
	}

	got, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bufs := got.Buffers()
	if len(bufs) != 3 {
		t.Fatalf("unexpected buffers: %+v", bufs)
	}
	for i, b := range bufs {
		if b.Index != i {
			t.Fatalf("buffer %d has index %d", i, b.Index)
		}
		if b.Base.Uint != uint64(i+1)*0x1000 || b.Size.Uint != uint64(i+1) || b.AllocSize.Uint != uint64(i+1)*16 {
			t.Fatalf("buffer %d mismatched: %+v", i, b)
		}
	}
}

func TestDecodeIgnoresTrailingTokens(t *testing.T) {
	tokens := append(sampleTokens(), "dead", "beef", "not-hex")
	rec, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.NumBuffers != 1 {
		t.Fatalf("unexpected buffer count: %d", rec.NumBuffers)
	}
}

func TestDecodeTruncatedFixedField(t *testing.T) {
	tokens := sampleTokens()[:25]
	_, err := Decode(tokens)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	var trunc TruncatedInputError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedInputError, got %T", err)
	}
	if trunc.Field != "pdsBaseAddr" || trunc.Offset != 24 || trunc.Have != 1 || trunc.Want != WordTokens {
		t.Fatalf("unexpected truncation detail: %+v", trunc)
	}
}

func TestDecodeTruncatedEveryPrefix(t *testing.T) {
	full := sampleTokens()
	for n := 0; n < len(full); n++ {
		if _, err := Decode(full[:n]); !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix %d: expected ErrTruncated, got %v", n, err)
		}
	}
}

func TestDecodeBufferCountExceedsStream(t *testing.T) {
	tokens := sampleTokens()
	tokens[26] = "2"
	_, err := Decode(tokens)
	var trunc TruncatedInputError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedInputError, got %v", err)
	}
	if trunc.Field != "buffers" || trunc.Want != 12 || trunc.Have != 6 {
		t.Fatalf("unexpected truncation detail: %+v", trunc)
	}
}

func TestDecodeHugeBufferCount(t *testing.T) {
	tokens := sampleTokens()
	tokens[26] = "ffffffffffffffff"
	_, err := Decode(tokens)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeMalformedToken(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		token  string
		field  string
	}{
		{"non-hex value", 4, "4g", "kernelSizeX"},
		{"prefixed value", 16, "0x400", "ldsSize"},
		{"discarded half", 3, "zz", "kernelId"},
		{"buffer entry", 30, "-100", "bufferSize[0]"},
		{"overflow", 0, "1ffffffffffffffff", "startAddr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := sampleTokens()
			tokens[tc.offset] = tc.token
			_, err := Decode(tokens)
			if !errors.Is(err, ErrMalformedToken) {
				t.Fatalf("expected ErrMalformedToken, got %v", err)
			}
			var bad MalformedTokenError
			if !errors.As(err, &bad) {
				t.Fatalf("expected MalformedTokenError, got %T", err)
			}
			if bad.Offset != tc.offset || bad.Token != tc.token || bad.Field != tc.field {
				t.Fatalf("unexpected detail: %+v", bad)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec, err := Decode(sampleTokens())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		t.Fatalf("encode: %v", err)
	}
	tokens, err := ScanTokens(&buf)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	again, err := Decode(tokens)
	if err != nil {
		t.Fatalf("decode again: %v", err)
	}
	if diff := cmp.Diff(rec, again, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round-trip mismatch (-first +second):\n%s", diff)
	}
}

func TestEncodeRejectsMismatchedArrays(t *testing.T) {
	rec := &Record{NumBuffers: 2, BufferBase: []Value{V(1)}}
	if err := Encode(&bytes.Buffer{}, rec); !errors.Is(err, ErrBufferMismatch) {
		t.Fatalf("expected ErrBufferMismatch, got %v", err)
	}
	if _, err := Tokens(nil); !errors.Is(err, ErrBufferMismatch) {
		t.Fatalf("expected ErrBufferMismatch for nil record, got %v", err)
	}
}

func TestScanTokensTrimsAndSkipsBlankLines(t *testing.T) {
	in := "  a000 \r\n\n\t\na000\n   \n1\n0"
	tokens, err := ScanTokens(strings.NewReader(in))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"a000", "a000", "1", "0"}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTokensFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.meta")
	content := strings.Join(sampleTokens(), "\n\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tokens, err := ReadTokens(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(sampleTokens(), tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTokensMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.meta")
	_, err := ReadTokens(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Op != "read" || ioErr.Path != path {
		t.Fatalf("unexpected IOError: %+v", ioErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}
