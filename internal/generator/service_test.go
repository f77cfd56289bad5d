package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.lisproto.org/protoc-gen-lisp/internal/printer"
)

func monitorService() *descriptorpb.ServiceDescriptorProto {
	return &descriptorpb.ServiceDescriptorProto{
		Name: proto.String("Monitor"),
		Method: []*descriptorpb.MethodDescriptorProto{
			{
				Name:       proto.String("GetStatus"),
				InputType:  proto.String(".p.StatusRequest"),
				OutputType: proto.String(".p.StatusReply"),
			},
			{
				Name:            proto.String("WatchEvents"),
				InputType:       proto.String(".p.WatchRequest"),
				OutputType:      proto.String(".p.Event"),
				ServerStreaming: proto.Bool(true),
			},
			{
				Name:            proto.String("Exchange"),
				InputType:       proto.String(".p.Frame"),
				OutputType:      proto.String(".p.Frame"),
				ClientStreaming: proto.Bool(true),
				ServerStreaming: proto.Bool(true),
			},
		},
	}
}

func TestServiceGenerator(t *testing.T) {
	t.Parallel()
	sg := NewServiceGenerator(monitorService(), "p")

	var b strings.Builder
	p := printer.New(&b)
	sg.Generate(p)
	require.NoError(t, p.Err())

	expected := `
(proto:define-service monitor
    ()
  (get-status (status-request => status-reply))
  (watch-events (watch-request => event) :output-streaming cl:t)
  (exchange (frame => frame) :input-streaming cl:t :output-streaming cl:t))
`
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestServiceGeneratorExports(t *testing.T) {
	t.Parallel()
	sg := NewServiceGenerator(monitorService(), "p")

	exports := &ExportList{}
	sg.AddExports(exports)
	require.Equal(t, []string{"monitor"}, exports.Symbols())

	rpcExports := &ExportList{}
	sg.AddRpcExports(rpcExports)
	require.Equal(t, []string{"call-get-status", "call-watch-events", "call-exchange"}, rpcExports.Symbols())
}
