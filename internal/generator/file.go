// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/exc"
	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

// FileGenerator owns the overall structure of one generated Lisp source file:
// package declarations, the schema registration header, the declaration
// sections in their fixed order, and the export manifests. Rendering of the
// individual declarations is delegated to one sub-generator per top-level
// enum, message, and service, built at construction in declaration order.
// One instance generates exactly one file and is not shared across
// goroutines.
type FileGenerator struct {
	file        *descriptorpb.FileDescriptorProto
	lispPackage string
	schemaName  string
	syntax      string
	enums       []*EnumGenerator
	messages    []*MessageGenerator
	services    []*ServiceGenerator
}

// NewFileGenerator builds the sub-generator lists and resolves the file's
// package and schema identifiers. A syntax value other than proto2 or proto3
// is a contract violation by the upstream front end and fails construction;
// nothing is ever emitted for such a file.
func NewFileGenerator(file *descriptorpb.FileDescriptorProto) (*FileGenerator, error) {
	self := &FileGenerator{
		file:        file,
		lispPackage: FileLispPackage(file),
		schemaName:  SchemaName(file.GetName()),
		enums:       make([]*EnumGenerator, 0, len(file.EnumType)),
		messages:    make([]*MessageGenerator, 0, len(file.MessageType)),
		services:    make([]*ServiceGenerator, 0, len(file.Service)),
	}
	for _, enum := range file.EnumType {
		self.enums = append(self.enums, NewEnumGenerator(enum, ""))
	}
	for _, message := range file.MessageType {
		self.messages = append(self.messages, NewMessageGenerator(message, "", file.GetPackage()))
	}
	for _, service := range file.Service {
		self.services = append(self.services, NewServiceGenerator(service, file.GetPackage()))
	}
	switch file.GetSyntax() {
	case "", "proto2":
		self.syntax = ":proto2"
	case "proto3":
		self.syntax = ":proto3"
	default:
		return nil, exc.New(
			exc.Location{URI: file.GetName()},
			exc.CodeUnknownSyntax,
			fmt.Sprintf("unknown syntax %q", file.GetSyntax()),
		)
	}
	return self, nil
}

// GenerateSource writes the complete Lisp source for the file. Sections are
// emitted in a fixed order regardless of declaration order in the input:
// enums, then messages, then extensions, then services.
func (self *FileGenerator) GenerateSource(p *printer.Printer) {
	p.Printf(";;; %s.lisp\n", self.file.GetName())
	p.Print(";;;\n")
	p.Print(";;; Generated by the protocol buffer compiler. DO NOT EDIT!\n")

	// Just in case multiple schema are written to the same file.
	p.Print("\n(cl:in-package #:common-lisp-user)\n")

	packages := NewPackageSet()
	if self.lispPackage != "" {
		packages.Add(self.lispPackage)
		if len(self.services) > 0 {
			packages.Add(self.lispPackage + "-RPC")
		}
	}
	for _, message := range self.messages {
		message.AddPackages(packages)
	}

	p.Print("\n#+sbcl (cl:declaim (cl:optimize (cl:debug 0) (sb-c:store-coverage-data 0)))\n")
	for _, name := range packages.Names() {
		p.Print("\n(cl:eval-when (:compile-toplevel :load-toplevel :execute)\n")
		p.Printf("  (cl:unless (cl:find-package %q)\n", name)
		p.Printf("    (cl:defpackage %q (:use))))\n", name)
	}

	if self.lispPackage != "" {
		p.Printf("\n(cl:in-package %q)\n", self.lispPackage)
	}

	p.Print("\n(cl:eval-when (:compile-toplevel :load-toplevel :execute)\n")
	p.Printf("(proto:define-schema '%s\n", self.schemaName)
	p.Indent()
	p.Indent()
	// Schema options, one per line once there is more than one.
	p.Printf(":syntax %s", self.syntax)
	if self.file.GetPackage() != "" {
		p.Printf("\n:package %q", self.file.GetPackage())
	}
	if len(self.file.Dependency) > 0 {
		p.Print("\n:import '(")
		for offset, dependency := range self.file.Dependency {
			if offset > 0 {
				p.Print("\n          ")
			}
			p.Printf("%q", dependency)
		}
		p.Print(")")
	}
	p.Print("))\n")
	p.Outdent()
	p.Outdent()

	exports := &ExportList{}
	exports.Append(self.schemaName)

	if len(self.enums) > 0 {
		p.Print("\n;; Top-Level enums.\n")
		for _, enum := range self.enums {
			enum.Generate(p)
			enum.AddExports(exports)
		}
	}

	if len(self.messages) > 0 {
		p.Print("\n;; Top-Level messages.\n")
		for _, message := range self.messages {
			message.Generate(p)
			message.AddExports(exports)
		}
	}

	if len(self.file.Extension) > 0 {
		p.Print("\n;; Top-Level extensions.\n")
		for _, extension := range self.file.Extension {
			GenerateExtension(p, extension, self.file.GetPackage())
		}
	}

	rpcExports := &ExportList{}
	if len(self.services) > 0 {
		p.Print("\n;; Services.\n")
		for _, service := range self.services {
			service.Generate(p)
			service.AddExports(exports)
			service.AddRpcExports(rpcExports)
		}
	}

	// Register the schema by pathname.
	p.Print("\n\n(cl:eval-when (:compile-toplevel :load-toplevel :execute)\n")
	p.Printf("(cl:setf (cl:gethash #P%q proto-impl::*all-schemas*)\n", self.file.GetName())
	p.Printf("         (proto:find-schema '%s)))\n", self.schemaName)

	if self.lispPackage != "" {
		if !exports.Empty() {
			self.generateExports(p, exports)
		}
		if !rpcExports.Empty() {
			p.Printf("\n(cl:in-package %q)\n", self.lispPackage+"-RPC")
			self.generateExports(p, rpcExports)
		}
	}
}

func (self *FileGenerator) generateExports(p *printer.Printer, exports *ExportList) {
	p.Print("\n(cl:export '(")
	for offset, symbol := range exports.Symbols() {
		if offset > 0 {
			p.Print("\n             ")
		}
		p.Print(symbol)
	}
	p.Print("))\n")
}
