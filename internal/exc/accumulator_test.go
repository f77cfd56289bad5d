package exc

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	t.Parallel()
	r := NewReporter([]string{CodeProtobufParseError})

	fatal := New(Location{URI: "/a.proto"}, CodeUnknownSyntax, "unknown syntax")
	require.Equal(t, fatal, r.Report(fatal))

	nonFatal := New(Location{URI: "/b.proto"}, CodeProtobufParseError, "bad token")
	require.Nil(t, r.Report(nonFatal))

	reported := r.Reported()
	require.Len(t, reported, 2)
	require.Equal(t, CodeUnknownSyntax, reported[0].Code())
	require.Equal(t, CodeProtobufParseError, reported[1].Code())
}

func TestWrapUnwrap(t *testing.T) {
	t.Parallel()
	e := Wrap(Location{URI: "/c.proto"}, CodeEOF, io.EOF)
	require.True(t, errors.Is(e, io.EOF))
	require.Equal(t, CodeEOF, e.Code())
	require.Equal(t, "/c.proto", e.Location().URI)

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))
}
