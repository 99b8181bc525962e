package metadata

import (
	"fmt"
	"strconv"
)

// Decode consumes tokens positionally and returns the descriptor they encode.
// Each field takes one word (WordTokens tokens). The fixed fields come first,
// then numBuffers, then numBuffers words each of bufferBase, bufferSize and
// bufferAllocSize, grouped per array. Tokens past the end of the layout are
// ignored.
func Decode(tokens []string) (*Record, error) {
	d := &decoder{tokens: tokens}
	rec := &Record{}

	for _, f := range rec.scalarFields() {
		v, err := d.word(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	count, err := d.word("numBuffers")
	if err != nil {
		return nil, err
	}
	n, err := d.bufferCount(count)
	if err != nil {
		return nil, err
	}
	rec.NumBuffers = n

	if rec.BufferBase, err = d.array("bufferBase", n); err != nil {
		return nil, err
	}
	if rec.BufferSize, err = d.array("bufferSize", n); err != nil {
		return nil, err
	}
	if rec.BufferAllocSize, err = d.array("bufferAllocSize", n); err != nil {
		return nil, err
	}
	return rec, nil
}

type decoder struct {
	tokens []string
	pos    int
}

func (d *decoder) remaining() int {
	return len(d.tokens) - d.pos
}

// word reads one field: the value token followed by the discarded half.
func (d *decoder) word(name string) (Value, error) {
	if d.remaining() < WordTokens {
		return Value{}, TruncatedInputError{
			Field:  name,
			Offset: d.pos,
			Want:   WordTokens,
			Have:   d.remaining(),
		}
	}
	v, err := d.parse(name, d.pos)
	if err != nil {
		return Value{}, err
	}
	if _, err := d.parse(name, d.pos+1); err != nil {
		return Value{}, err
	}
	d.pos += WordTokens
	return v, nil
}

func (d *decoder) parse(name string, offset int) (Value, error) {
	raw := d.tokens[offset]
	n, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return Value{}, MalformedTokenError{
			Field:  name,
			Offset: offset,
			Token:  raw,
			Err:    err,
		}
	}
	return Value{Raw: raw, Uint: n}, nil
}

// bufferCount checks that the three buffer arrays fit in what is left of the
// stream before anything is allocated for them.
func (d *decoder) bufferCount(count Value) (int, error) {
	perBuffer := uint64(3 * WordTokens)
	left := uint64(d.remaining())
	if count.Uint > left/perBuffer {
		want := maxInt
		if count.Uint <= uint64(maxInt)/perBuffer {
			want = int(count.Uint * perBuffer)
		}
		return 0, TruncatedInputError{
			Field:  "buffers",
			Offset: d.pos,
			Want:   want,
			Have:   d.remaining(),
		}
	}
	return int(count.Uint), nil
}

func (d *decoder) array(name string, n int) ([]Value, error) {
	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.word(fmt.Sprintf("%s[%d]", name, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

const maxInt = int(^uint(0) >> 1)
