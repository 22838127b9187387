package source

type (
	// FileID uniquely identifies a source buffer within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source buffer.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (test, stdin, generated).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single assembly source buffer.
// Content is borrowed from the caller and must not be mutated while any
// lexer or token referencing it is alive.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
