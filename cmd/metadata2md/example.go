package main

import (
	"os"

	"github.com/danmuck/kernelmeta/internal/metadata"
)

// exampleRecord is a two-buffer vector-add launch used by -example.
func exampleRecord() *metadata.Record {
	return &metadata.Record{
		StartAddr:        metadata.V(0x80000000),
		KernelID:         metadata.V(0),
		KernelSizeX:      metadata.V(4),
		KernelSizeY:      metadata.V(1),
		KernelSizeZ:      metadata.V(1),
		WfSize:           metadata.V(32),
		WgSize:           metadata.V(4),
		MetaDataBaseAddr: metadata.V(0x90000000),
		LdsSize:          metadata.V(0x1000),
		PdsSize:          metadata.V(0x400),
		SgprUsage:        metadata.V(40),
		VgprUsage:        metadata.V(24),
		PdsBaseAddr:      metadata.V(0x9a000000),
		NumBuffers:       2,
		BufferBase:       []metadata.Value{metadata.V(0x90000000), metadata.V(0x90002000)},
		BufferSize:       []metadata.Value{metadata.V(0x40), metadata.V(0x200000)},
		BufferAllocSize:  []metadata.Value{metadata.V(0x1000), metadata.V(0x200000)},
	}
}

func writeExample(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &metadata.IOError{Op: "write", Path: path, Err: err}
	}
	if err := metadata.Encode(f, exampleRecord()); err != nil {
		f.Close()
		return &metadata.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &metadata.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
