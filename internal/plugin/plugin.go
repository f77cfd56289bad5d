// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/generator"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

// OutputName maps an input file name to the name of its generated source
// file.
func OutputName(name string) string {
	return strings.TrimSuffix(name, ".proto") + ".lisp"
}

// Generate renders the Lisp source for a single file descriptor.
func Generate(file *descriptorpb.FileDescriptorProto) (string, error) {
	fg, err := generator.NewFileGenerator(file)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	p := printer.New(&b)
	fg.GenerateSource(p)
	if err := p.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Respond generates every file named by the request and assembles the plugin
// response. A failed file aborts the batch through the response error, which
// is the protoc plugin contract for generator failures.
func Respond(request *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	response := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	byName := make(map[string]*descriptorpb.FileDescriptorProto, len(request.ProtoFile))
	for _, file := range request.ProtoFile {
		byName[file.GetName()] = file
	}
	for _, name := range request.FileToGenerate {
		file := byName[name]
		if file == nil {
			response.Error = proto.String(fmt.Sprintf("no descriptor for %s in request", name))
			return response
		}
		content, err := Generate(file)
		if err != nil {
			response.Error = proto.String(err.Error())
			return response
		}
		response.File = append(response.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(OutputName(name)),
			Content: proto.String(content),
		})
	}
	return response
}

// Run implements the protoc plugin protocol: a serialized
// CodeGeneratorRequest on in, a serialized CodeGeneratorResponse on out.
func Run(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	request := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(raw, request); err != nil {
		return err
	}
	raw, err = proto.Marshal(Respond(request))
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}
