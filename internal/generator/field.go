// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

var scalarLispTypes = map[descriptorpb.FieldDescriptorProto_Type]string{
	descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:   "cl:double-float",
	descriptorpb.FieldDescriptorProto_TYPE_FLOAT:    "cl:single-float",
	descriptorpb.FieldDescriptorProto_TYPE_INT64:    "proto:int64",
	descriptorpb.FieldDescriptorProto_TYPE_UINT64:   "proto:uint64",
	descriptorpb.FieldDescriptorProto_TYPE_INT32:    "proto:int32",
	descriptorpb.FieldDescriptorProto_TYPE_FIXED64:  "proto:fixed64",
	descriptorpb.FieldDescriptorProto_TYPE_FIXED32:  "proto:fixed32",
	descriptorpb.FieldDescriptorProto_TYPE_BOOL:     "cl:boolean",
	descriptorpb.FieldDescriptorProto_TYPE_STRING:   "cl:string",
	descriptorpb.FieldDescriptorProto_TYPE_BYTES:    "proto:byte-vector",
	descriptorpb.FieldDescriptorProto_TYPE_UINT32:   "proto:uint32",
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED32: "proto:sfixed32",
	descriptorpb.FieldDescriptorProto_TYPE_SFIXED64: "proto:sfixed64",
	descriptorpb.FieldDescriptorProto_TYPE_SINT32:   "proto:sint32",
	descriptorpb.FieldDescriptorProto_TYPE_SINT64:   "proto:sint64",
}

// fieldType maps a field descriptor to its Lisp type name, the cl-protobufs
// field kind, and the foreign Lisp package referenced by the type, if any.
// A named type is recognized by its type name rather than the type enum
// because descriptors built without linking leave the enum unset.
func fieldType(field *descriptorpb.FieldDescriptorProto, ownPackage string) (string, string, string) {
	if typeName := field.GetTypeName(); typeName != "" {
		kind := ":message"
		if field.GetType() == descriptorpb.FieldDescriptorProto_TYPE_ENUM {
			kind = ":enum"
		}
		name, pkg := QualifiedLispName(typeName, ownPackage)
		return name, kind, pkg
	}
	return scalarLispTypes[field.GetType()], ":scalar", ""
}

func fieldLabel(field *descriptorpb.FieldDescriptorProto) string {
	switch field.GetLabel() {
	case descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		return "(:required)"
	case descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		return "(:repeated :list)"
	default:
		return "(:optional)"
	}
}

// fieldClause renders one field of a message, extend, or group form.
func fieldClause(field *descriptorpb.FieldDescriptorProto, ownPackage string) string {
	typeName, kind, _ := fieldType(field, ownPackage)
	var b strings.Builder
	fmt.Fprintf(&b, "(%s :index %d :type %s :kind %s :label %s",
		LispName(field.GetName()), field.GetNumber(), typeName, kind, fieldLabel(field))
	if field.DefaultValue != nil {
		fmt.Fprintf(&b, " :default %s", defaultLiteral(field))
	}
	if field.GetOptions().GetPacked() {
		b.WriteString(" :packed cl:t")
	}
	b.WriteString(")")
	return b.String()
}

// defaultLiteral renders a proto2 default value as a Lisp literal. The
// descriptor carries defaults in textual form; only the quoting differs per
// type.
func defaultLiteral(field *descriptorpb.FieldDescriptorProto) string {
	value := field.GetDefaultValue()
	// Only enum fields among the named types carry defaults, so a type name
	// alone marks an enum constant even when the type enum is unset.
	if field.GetTypeName() != "" {
		return ":" + LispName(value)
	}
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING,
		descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return fmt.Sprintf("%q", value)
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		if value == "true" {
			return "cl:t"
		}
		return "cl:nil"
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return ":" + LispName(value)
	default:
		return value
	}
}
