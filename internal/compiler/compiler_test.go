// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/exc"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/fs"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/idl"
)

type fsMap map[string]idl.File

func (self fsMap) Open(ctx context.Context, uri string) ([]idl.File, error) {
	f, ok := self[uri]
	if !ok {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, "file not found")
	}
	return []idl.File{f}, nil
}

func (self fsMap) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsuportedFileSystemOperation, "read only")
}

func newTestCompiler(t *testing.T, files fsMap) idl.Compiler {
	t.Helper()
	c, err := New(OptionWithFS(files))
	require.Nil(t, err)
	return c
}

func TestCompileProtobufSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source := `syntax = "proto3";
package greet;
message Hello {
    string name = 1;
}
`
	c := newTestCompiler(t, fsMap{
		"/greet.proto": fs.NewFileString("/greet.proto", source, idl.FileKindProtobuf),
	})
	out, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/greet.proto"}})
	require.Nil(t, err)
	require.Len(t, out.Files, 1)
	require.Equal(t, "/greet.proto", out.Files[0].GetName())
	require.Equal(t, "greet", out.Files[0].GetPackage())
	require.Len(t, out.Files[0].MessageType, 1)
	require.Equal(t, "Hello", out.Files[0].MessageType[0].GetName())
}

func TestCompileDescriptorSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{Name: proto.String("a.proto"), Syntax: proto.String("proto3")},
			{Name: proto.String("b.proto"), Syntax: proto.String("proto3")},
		},
	}
	raw, err := proto.Marshal(set)
	require.Nil(t, err)

	c := newTestCompiler(t, fsMap{
		"/bundle.protoset": fs.NewFileString("/bundle.protoset", string(raw), idl.FileKindProtobufDesc),
	})
	out, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/bundle.protoset"}})
	require.Nil(t, err)
	require.Len(t, out.Files, 2)
	names := []string{out.Files[0].GetName(), out.Files[1].GetName()}
	require.ElementsMatch(t, []string{"a.proto", "b.proto"}, names)
}

func TestCompileDeduplicatesTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source := `syntax = "proto3";
message One {}
`
	c := newTestCompiler(t, fsMap{
		"/one.proto": fs.NewFileString("/one.proto", source, idl.FileKindProtobuf),
	})
	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files: []string{"/one.proto", "/one.proto", "one.proto"},
	})
	require.Nil(t, err)
	require.Len(t, out.Files, 1)
}

func TestCompileParseError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestCompiler(t, fsMap{
		"/broken.proto": fs.NewFileString("/broken.proto", "syntax = ;", idl.FileKindProtobuf),
	})
	_, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/broken.proto"}})
	require.NotNil(t, err)
}

func TestCompileCorruptDescriptorSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestCompiler(t, fsMap{
		"/bad.protoset": fs.NewFileString("/bad.protoset", "\xff\xff\xff not a descriptor set", idl.FileKindProtobufDesc),
	})
	_, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/bad.protoset"}})
	require.NotNil(t, err)
}

func TestCompileUnsupportedFormat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestCompiler(t, fsMap{
		"/data.bin": fs.NewFileString("/data.bin", "whatever", idl.FileKind(99)),
	})
	_, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/data.bin"}})
	require.NotNil(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeUnsupportedFileFormat, e.Code())
}

func TestCompileMissingFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestCompiler(t, fsMap{})
	_, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/absent.proto"}})
	require.NotNil(t, err)
}
