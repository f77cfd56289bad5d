// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

var _ Declaration = (*EnumGenerator)(nil)

// EnumGenerator renders one enum declaration, top-level or nested. Nested
// enums carry their containing message's Lisp name as a dotted prefix.
type EnumGenerator struct {
	enum     *descriptorpb.EnumDescriptorProto
	lispName string
}

func NewEnumGenerator(enum *descriptorpb.EnumDescriptorProto, prefix string) *EnumGenerator {
	name := LispName(enum.GetName())
	if prefix != "" {
		name = prefix + "." + name
	}
	return &EnumGenerator{
		enum:     enum,
		lispName: name,
	}
}

func (self *EnumGenerator) Generate(p *printer.Printer) {
	p.Printf("\n(proto:define-enum %s\n", self.lispName)
	p.Print("    ()")
	for _, value := range self.enum.Value {
		p.Printf("\n  (%s :index %d)", LispName(value.GetName()), value.GetNumber())
	}
	p.Print(")\n")
}

func (self *EnumGenerator) AddExports(exports *ExportList) {
	exports.Append(self.lispName)
	for _, value := range self.enum.Value {
		exports.Append(LispName(value.GetName()))
	}
}
