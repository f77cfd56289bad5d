package compiler

import (
	"context"

	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/exc"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/idl"
)

// SubCompiler converts one input file into file descriptors. Source files
// yield exactly one descriptor; descriptor set files may yield several.
type SubCompiler interface {
	CompileFile(ctx context.Context, r exc.Reporter, file idl.File) ([]*descriptorpb.FileDescriptorProto, error)
}

func DefaultSubCompilers() map[idl.FileKind]SubCompiler {
	return map[idl.FileKind]SubCompiler{
		idl.FileKindProtobuf:     &SubCompilerProtobuf{},
		idl.FileKindProtobufDesc: &SubCompilerProtobufDesc{},
	}
}
