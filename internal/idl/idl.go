// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindProtobuf
	FileKindProtobufDesc
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindProtobuf:
		return "protobuf"
	case FileKindProtobufDesc:
		return "protobuf-descriptor"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	Files []string
}

// CompileResponse carries one descriptor per input file, in no particular
// order. Generation of the output source happens downstream, one file
// descriptor at a time.
type CompileResponse struct {
	Files []*descriptorpb.FileDescriptorProto
}

type Location struct {
	Line   int32
	Column int32
	Offset int64
}
