// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

var (
	_ Declaration        = (*MessageGenerator)(nil)
	_ PackageContributor = (*MessageGenerator)(nil)
)

// MessageGenerator renders one message declaration along with everything
// nested inside it. Nested enums and messages are emitted before the message
// body so their names are defined by the time the fields reference them; the
// nesting is flattened into dotted Lisp names (outer.inner).
type MessageGenerator struct {
	message        *descriptorpb.DescriptorProto
	lispName       string
	ownPackage     string
	nestedEnums    []*EnumGenerator
	nestedMessages []*MessageGenerator
}

func NewMessageGenerator(message *descriptorpb.DescriptorProto, prefix string, ownPackage string) *MessageGenerator {
	name := LispName(message.GetName())
	if prefix != "" {
		name = prefix + "." + name
	}
	self := &MessageGenerator{
		message:        message,
		lispName:       name,
		ownPackage:     ownPackage,
		nestedEnums:    make([]*EnumGenerator, 0, len(message.EnumType)),
		nestedMessages: make([]*MessageGenerator, 0, len(message.NestedType)),
	}
	for _, enum := range message.EnumType {
		self.nestedEnums = append(self.nestedEnums, NewEnumGenerator(enum, name))
	}
	for _, nested := range message.NestedType {
		self.nestedMessages = append(self.nestedMessages, NewMessageGenerator(nested, name, ownPackage))
	}
	return self
}

func (self *MessageGenerator) Generate(p *printer.Printer) {
	for _, enum := range self.nestedEnums {
		enum.Generate(p)
	}
	for _, nested := range self.nestedMessages {
		nested.Generate(p)
	}
	p.Printf("\n(proto:define-message %s\n", self.lispName)
	p.Print("    ()")
	for _, field := range self.message.Field {
		p.Print("\n  " + fieldClause(field, self.ownPackage))
	}
	p.Print(")\n")
	for _, extension := range self.message.Extension {
		GenerateExtension(p, extension, self.ownPackage)
	}
}

// AddExports appends the message's own name followed by every nested
// declaration's exports, in declaration order.
func (self *MessageGenerator) AddExports(exports *ExportList) {
	exports.Append(self.lispName)
	for _, enum := range self.nestedEnums {
		enum.AddExports(exports)
	}
	for _, nested := range self.nestedMessages {
		nested.AddExports(exports)
	}
}

// AddPackages inserts the Lisp package of every foreign type referenced by
// this message's fields and extensions, recursively. Insertion is idempotent.
func (self *MessageGenerator) AddPackages(packages *PackageSet) {
	for _, field := range self.message.Field {
		self.addFieldPackage(packages, field)
	}
	for _, extension := range self.message.Extension {
		self.addFieldPackage(packages, extension)
	}
	for _, nested := range self.nestedMessages {
		nested.AddPackages(packages)
	}
}

func (self *MessageGenerator) addFieldPackage(packages *PackageSet, field *descriptorpb.FieldDescriptorProto) {
	if _, _, pkg := fieldType(field, self.ownPackage); pkg != "" {
		packages.Add(pkg)
	}
}
