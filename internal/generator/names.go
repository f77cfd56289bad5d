// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// SchemaName derives the schema identifier that names the generated schema
// object: the base name of the file path with any extension stripped,
// lower-cased. Empty input maps to an empty result.
func SchemaName(path string) string {
	name := path
	if slash := strings.LastIndexAny(name, `\/`); slash >= 0 {
		name = name[slash+1:]
	}
	if period := strings.LastIndexByte(name, '.'); period >= 0 {
		name = name[:period]
	}
	return strings.ToLower(name)
}

// FileLispPackage derives the Lisp package that scopes the file's generated
// symbols from the declared protobuf package. Lisp package names are
// conventionally upper-case; underscores become hyphens and dots are kept.
// A file without a package yields an empty result, meaning no package scoping.
func FileLispPackage(file *descriptorpb.FileDescriptorProto) string {
	return lispPackageName(file.GetPackage())
}

func lispPackageName(protoPackage string) string {
	return strings.ToUpper(strings.ReplaceAll(protoPackage, "_", "-"))
}

// LispName converts a protobuf identifier, CamelCase or SNAKE_CASE, into the
// lower kebab-case form used for Lisp symbols. Runs of upper-case letters are
// kept together so that HTTPServer becomes http-server.
func LispName(ident string) string {
	var b strings.Builder
	b.Grow(len(ident) + 4)
	runes := []rune(ident)
	for offset, r := range runes {
		switch {
		case r == '_':
			b.WriteByte('-')
			continue
		case isUpper(r) && offset > 0:
			prev := runes[offset-1]
			nextLower := offset+1 < len(runes) && isLower(runes[offset+1])
			if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(toLower(r))
	}
	return b.String()
}

// QualifiedLispName converts an already-resolved dotted type name into a Lisp
// symbol name, package-qualified when the type lives outside ownPackage. The
// second return value is the foreign Lisp package, or empty when the type is
// local; callers that must pre-declare packages collect it. No resolution
// happens here: package and type segments are split by the protobuf naming
// convention of lower-case packages and capitalized type names.
func QualifiedLispName(typeName string, ownPackage string) (string, string) {
	name := strings.TrimPrefix(typeName, ".")
	if ownPackage != "" && strings.HasPrefix(name, ownPackage+".") {
		return lispDotted(name[len(ownPackage)+1:]), ""
	}
	segments := strings.Split(name, ".")
	split := 0
	for split < len(segments)-1 && startsLower(segments[split]) {
		split = split + 1
	}
	if split == 0 {
		return lispDotted(name), ""
	}
	pkg := lispPackageName(strings.Join(segments[:split], "."))
	return pkg + "::" + lispDotted(strings.Join(segments[split:], ".")), pkg
}

// lispDotted maps a dotted chain of type names to its Lisp spelling, keeping
// the dots that mark nesting.
func lispDotted(chain string) string {
	segments := strings.Split(chain, ".")
	for offset, segment := range segments {
		segments[offset] = LispName(segment)
	}
	return strings.Join(segments, ".")
}

func startsLower(s string) bool {
	return len(s) > 0 && isLower(rune(s[0]))
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
