// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

// GenerateExtension renders one extension field as a define-extend form on
// its extendee. ownPackage is the protobuf package of the scope declaring the
// extension, used to qualify the extendee and the field type.
func GenerateExtension(p *printer.Printer, field *descriptorpb.FieldDescriptorProto, ownPackage string) {
	extendee, _ := QualifiedLispName(field.GetExtendee(), ownPackage)
	p.Printf("\n(proto:define-extend %s\n", extendee)
	p.Print("    ()")
	p.Print("\n  " + fieldClause(field, ownPackage))
	p.Print(")\n")
}
