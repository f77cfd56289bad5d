package plugin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

func pingFile() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("ping.proto"),
		Package: proto.String("p"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Ping"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:   proto.String("seq"),
						Number: proto.Int32(1),
						Type:   descriptorpb.FieldDescriptorProto_TYPE_UINT64.Enum(),
						Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
					},
				},
			},
		},
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "ping.lisp", OutputName("ping.proto"))
	require.Equal(t, "dir/sub/ping.lisp", OutputName("dir/sub/ping.proto"))
	require.Equal(t, "odd.protoset.lisp", OutputName("odd.protoset"))
}

func TestRespond(t *testing.T) {
	t.Parallel()
	dependency := &descriptorpb.FileDescriptorProto{
		Name:   proto.String("dep.proto"),
		Syntax: proto.String("proto3"),
	}
	request := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"ping.proto"},
		ProtoFile:      []*descriptorpb.FileDescriptorProto{dependency, pingFile()},
	}
	response := Respond(request)
	require.Nil(t, response.Error)
	require.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), response.GetSupportedFeatures())
	// Only the requested file generates, not its dependency.
	require.Len(t, response.File, 1)
	require.Equal(t, "ping.lisp", response.File[0].GetName())
	require.Contains(t, response.File[0].GetContent(), "(proto:define-schema 'ping")
	require.Contains(t, response.File[0].GetContent(), "(proto:define-message ping")
}

func TestRespondMissingDescriptor(t *testing.T) {
	t.Parallel()
	request := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"absent.proto"},
	}
	response := Respond(request)
	require.NotNil(t, response.Error)
	require.Contains(t, response.GetError(), "absent.proto")
}

func TestRespondUnknownSyntax(t *testing.T) {
	t.Parallel()
	bad := pingFile()
	bad.Syntax = proto.String("editions")
	request := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"ping.proto"},
		ProtoFile:      []*descriptorpb.FileDescriptorProto{bad},
	}
	response := Respond(request)
	require.NotNil(t, response.Error)
	require.Contains(t, response.GetError(), "unknown syntax")
	require.Empty(t, response.File)
}

func TestRun(t *testing.T) {
	t.Parallel()
	request := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"ping.proto"},
		ProtoFile:      []*descriptorpb.FileDescriptorProto{pingFile()},
	}
	raw, err := proto.Marshal(request)
	require.Nil(t, err)

	var out bytes.Buffer
	require.Nil(t, Run(bytes.NewReader(raw), &out))

	response := &pluginpb.CodeGeneratorResponse{}
	require.Nil(t, proto.Unmarshal(out.Bytes(), response))
	require.Len(t, response.File, 1)
	require.Equal(t, "ping.lisp", response.File[0].GetName())
}
