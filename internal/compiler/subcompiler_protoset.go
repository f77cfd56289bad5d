package compiler

import (
	"context"
	"errors"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/exc"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/idl"
)

// SubCompilerProtobufDesc reads pre-compiled descriptor set files, such as
// the output of protoc --descriptor_set_out.
type SubCompilerProtobufDesc struct{}

func (self *SubCompilerProtobufDesc) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) ([]*descriptorpb.FileDescriptorProto, error) {
	b, err := file.Body(ctx)
	if err != nil {
		return nil, r.Report(exc.WrapUnknown(exc.Location{URI: file.Path(ctx)}, err))
	}
	defer b.Close(ctx)
	raw, err := readAll(ctx, b)
	if err != nil {
		return nil, r.Report(exc.WrapUnknown(exc.Location{URI: file.Path(ctx)}, err))
	}
	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(raw, set); err != nil {
		return nil, r.Report(exc.Wrap(exc.Location{URI: file.Path(ctx)}, exc.CodeDescriptorSetDecodeError, err))
	}
	return set.File, nil
}

func readAll(ctx context.Context, body idl.FileBody) ([]byte, error) {
	var out []byte
	for {
		b, err := body.Read(ctx, 4096)
		out = append(out, b...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if len(b) == 0 {
			return out, nil
		}
	}
}
