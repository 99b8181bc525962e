package metadata

// WordTokens is the number of tokens one field occupies in the dump. Only the
// first token of a word carries the value; the second is skipped.
const WordTokens = 2

// Value is one decoded field: the token as written and its integer value.
type Value struct {
	Raw  string
	Uint uint64
}

// Hex renders the original token text with a 0x prefix.
func (v Value) Hex() string {
	return "0x" + v.Raw
}

// Record is a decoded kernel-launch descriptor. It is built once by Decode
// and treated as read-only afterwards.
type Record struct {
	StartAddr        Value
	KernelID         Value
	KernelSizeX      Value
	KernelSizeY      Value
	KernelSizeZ      Value
	WfSize           Value
	WgSize           Value
	MetaDataBaseAddr Value
	LdsSize          Value
	PdsSize          Value
	SgprUsage        Value
	VgprUsage        Value
	PdsBaseAddr      Value

	NumBuffers      int
	BufferBase      []Value
	BufferSize      []Value
	BufferAllocSize []Value
}

// Buffer is one (base, size, allocated size) descriptor.
type Buffer struct {
	Index     int
	Base      Value
	Size      Value
	AllocSize Value
}

// Buffers zips the three buffer arrays by index.
func (r *Record) Buffers() []Buffer {
	out := make([]Buffer, 0, r.NumBuffers)
	for i := 0; i < r.NumBuffers; i++ {
		out = append(out, Buffer{
			Index:     i,
			Base:      r.BufferBase[i],
			Size:      r.BufferSize[i],
			AllocSize: r.BufferAllocSize[i],
		})
	}
	return out
}

// scalarFields lists the fixed fields in dump order.
func (r *Record) scalarFields() []field {
	return []field{
		{"startAddr", &r.StartAddr},
		{"kernelId", &r.KernelID},
		{"kernelSizeX", &r.KernelSizeX},
		{"kernelSizeY", &r.KernelSizeY},
		{"kernelSizeZ", &r.KernelSizeZ},
		{"wfSize", &r.WfSize},
		{"wgSize", &r.WgSize},
		{"metaDataBaseAddr", &r.MetaDataBaseAddr},
		{"ldsSize", &r.LdsSize},
		{"pdsSize", &r.PdsSize},
		{"sgprUsage", &r.SgprUsage},
		{"vgprUsage", &r.VgprUsage},
		{"pdsBaseAddr", &r.PdsBaseAddr},
	}
}

type field struct {
	name string
	dst  *Value
}
