// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

var (
	_ Declaration = (*ServiceGenerator)(nil)
	_ RpcExporter = (*ServiceGenerator)(nil)
)

// ServiceGenerator renders one service declaration. The service's defining
// symbol is exported from the primary package while the per-method call stubs
// are exported from the RPC sibling package; the two sets never mix.
type ServiceGenerator struct {
	service    *descriptorpb.ServiceDescriptorProto
	lispName   string
	ownPackage string
}

func NewServiceGenerator(service *descriptorpb.ServiceDescriptorProto, ownPackage string) *ServiceGenerator {
	return &ServiceGenerator{
		service:    service,
		lispName:   LispName(service.GetName()),
		ownPackage: ownPackage,
	}
}

func (self *ServiceGenerator) Generate(p *printer.Printer) {
	p.Printf("\n(proto:define-service %s\n", self.lispName)
	p.Print("    ()")
	for _, method := range self.service.Method {
		input, _ := QualifiedLispName(method.GetInputType(), self.ownPackage)
		output, _ := QualifiedLispName(method.GetOutputType(), self.ownPackage)
		p.Printf("\n  (%s (%s => %s)", LispName(method.GetName()), input, output)
		if method.GetClientStreaming() {
			p.Print(" :input-streaming cl:t")
		}
		if method.GetServerStreaming() {
			p.Print(" :output-streaming cl:t")
		}
		p.Print(")")
	}
	p.Print(")\n")
}

func (self *ServiceGenerator) AddExports(exports *ExportList) {
	exports.Append(self.lispName)
}

func (self *ServiceGenerator) AddRpcExports(exports *ExportList) {
	for _, method := range self.service.Method {
		exports.Append("call-" + LispName(method.GetName()))
	}
}
