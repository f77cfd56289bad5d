// © 2025 Lisproto LLC
//
// SPDX-License-Identifier: Apache-2.0

package printer

import (
	"fmt"
	"io"
	"strings"
)

const indentStep = "  "

// Printer is an append-only text emitter with lazy indentation. The current
// indent is written at the start of every line that has content; lines that
// consist of a bare newline stay empty. Writes to the underlying sink are
// assumed infallible (both driver modes use in-memory buffers); the first
// write error, if any, is retained and suppresses all further output.
type Printer struct {
	w       io.Writer
	indent  string
	atStart bool
	err     error
}

func New(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		atStart: true,
	}
}

// Indent increases the indentation of subsequent lines by one step.
func (self *Printer) Indent() {
	self.indent += indentStep
}

// Outdent reverses one Indent.
func (self *Printer) Outdent() {
	if len(self.indent) >= len(indentStep) {
		self.indent = self.indent[:len(self.indent)-len(indentStep)]
	}
}

// Print writes text verbatim except for indentation handling at line starts.
func (self *Printer) Print(text string) {
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl == 0 {
			self.write("\n")
			self.atStart = true
			text = text[1:]
			continue
		}
		line := text
		if nl > 0 {
			line = text[:nl]
		}
		if self.atStart && self.indent != "" {
			self.write(self.indent)
		}
		self.atStart = false
		self.write(line)
		text = text[len(line):]
	}
}

func (self *Printer) Printf(format string, args ...any) {
	self.Print(fmt.Sprintf(format, args...))
}

// Err reports the first error returned by the underlying writer.
func (self *Printer) Err() error {
	return self.err
}

func (self *Printer) write(s string) {
	if self.err != nil {
		return
	}
	_, self.err = io.WriteString(self.w, s)
}
