package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		emit     func(p *Printer)
		expected string
	}{
		{
			name: "plain text",
			emit: func(p *Printer) {
				p.Print("hello\nworld\n")
			},
			expected: "hello\nworld\n",
		},
		{
			name: "indent applies at line start",
			emit: func(p *Printer) {
				p.Print("(top\n")
				p.Indent()
				p.Print(":a 1\n:b 2\n")
				p.Outdent()
				p.Print(")\n")
			},
			expected: "(top\n  :a 1\n  :b 2\n)\n",
		},
		{
			name: "blank lines stay empty",
			emit: func(p *Printer) {
				p.Indent()
				p.Print("a\n\nb\n")
			},
			expected: "  a\n\n  b\n",
		},
		{
			name: "indent is not applied mid-line",
			emit: func(p *Printer) {
				p.Indent()
				p.Print("a")
				p.Print("b\n")
			},
			expected: "  ab\n",
		},
		{
			name: "nested indent",
			emit: func(p *Printer) {
				p.Indent()
				p.Indent()
				p.Print("deep\n")
				p.Outdent()
				p.Print("shallow\n")
			},
			expected: "    deep\n  shallow\n",
		},
		{
			name: "outdent at zero is a no-op",
			emit: func(p *Printer) {
				p.Outdent()
				p.Print("a\n")
			},
			expected: "a\n",
		},
		{
			name: "printf",
			emit: func(p *Printer) {
				p.Printf("(%s :index %d)\n", "red", 0)
			},
			expected: "(red :index 0)\n",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var b strings.Builder
			p := New(&b)
			testCase.emit(p)
			require.NoError(t, p.Err())
			require.Equal(t, testCase.expected, b.String())
		})
	}
}
