package exc

const (
	CodeUnknownFatal                  = "L0000"
	CodeFileNotFound                  = "L0001"
	CodeUnsuportedFileSystemOperation = "L0002"
	CodePermissionDenied              = "L0003"
	CodeUnsupportedFileFormat         = "L0004"
	CodeUnexpectedEOF                 = "L0005"
	CodeProtobufParseError            = "L0006"
	CodeDescriptorSetDecodeError      = "L0007"
	CodeUnknownSyntax                 = "L0008"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{}
)
