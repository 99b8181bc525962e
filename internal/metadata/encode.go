package metadata

import (
	"bufio"
	"io"
	"strconv"
)

// scalarWords is the number of fixed words before the buffer arrays,
// numBuffers included.
const scalarWords = 14

// Encode writes rec in the dump format Decode reads: one token per line, each
// value followed by a zero second half.
func Encode(w io.Writer, rec *Record) error {
	tokens, err := Tokens(rec)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		bw.WriteString(tok)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Tokens returns the encoded form of rec as a token slice.
func Tokens(rec *Record) ([]string, error) {
	if rec == nil || rec.NumBuffers < 0 ||
		len(rec.BufferBase) != rec.NumBuffers ||
		len(rec.BufferSize) != rec.NumBuffers ||
		len(rec.BufferAllocSize) != rec.NumBuffers {
		return nil, ErrBufferMismatch
	}
	out := make([]string, 0, WordTokens*(scalarWords+3*rec.NumBuffers))
	for _, f := range rec.scalarFields() {
		out = append(out, token(*f.dst), "0")
	}
	out = append(out, token(Value{Uint: uint64(rec.NumBuffers)}), "0")
	for _, arr := range [][]Value{rec.BufferBase, rec.BufferSize, rec.BufferAllocSize} {
		for _, v := range arr {
			out = append(out, token(v), "0")
		}
	}
	return out, nil
}

// V builds a Value from an integer, using lowercase hex as its raw form.
func V(n uint64) Value {
	return Value{Raw: strconv.FormatUint(n, 16), Uint: n}
}

func token(v Value) string {
	if v.Raw != "" {
		return v.Raw
	}
	return strconv.FormatUint(v.Uint, 16)
}
