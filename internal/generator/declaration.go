// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"sort"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

// Declaration is the capability shared by every top-level declaration
// generator. Generate renders the declaration into the output stream and is
// called exactly once. AddExports appends the symbols the declaration
// introduces into the primary package, in declaration order.
type Declaration interface {
	Generate(p *printer.Printer)
	AddExports(exports *ExportList)
}

// PackageContributor is implemented by declarations whose rendering can
// reference packages beyond the file's own, which therefore must be declared
// up front. Only messages contribute.
type PackageContributor interface {
	AddPackages(packages *PackageSet)
}

// RpcExporter is implemented by declarations that introduce symbols into the
// RPC sibling package rather than the primary one. Only services contribute.
type RpcExporter interface {
	AddRpcExports(exports *ExportList)
}

// ExportList is an ordered accumulator of export symbol names. Order is
// preserved and duplicates are kept; the emitted export form reflects exactly
// what was appended.
type ExportList struct {
	symbols []string
}

func (self *ExportList) Append(symbols ...string) {
	self.symbols = append(self.symbols, symbols...)
}

func (self *ExportList) Symbols() []string {
	return self.symbols
}

func (self *ExportList) Empty() bool {
	return len(self.symbols) == 0
}

// PackageSet accumulates the distinct Lisp package names that must be
// declared before any declaration references them.
type PackageSet struct {
	names map[string]bool
}

func NewPackageSet() *PackageSet {
	return &PackageSet{
		names: map[string]bool{},
	}
}

func (self *PackageSet) Add(name string) {
	self.names[name] = true
}

func (self *PackageSet) Contains(name string) bool {
	return self.names[name]
}

// Names returns the accumulated package names in lexicographic byte order.
// The set itself is unordered; sorting keeps emission deterministic across
// runs and platforms.
func (self *PackageSet) Names() []string {
	names := make([]string, 0, len(self.names))
	for name := range self.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
