package ctx

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"babble/internal/ir"
)

// exportSchemaVersion guards the binary export format; bump it whenever the
// shape of Snapshot changes.
const exportSchemaVersion uint16 = 1

// Snapshot is the flat, serializable view of a fully-linked Context that
// §6.4's IR export produces for downstream emitters. Unlike Context itself,
// it carries no lookup indices — just the insertion-ordered value lists a
// consumer needs to regenerate every map it cares about.
type Snapshot struct {
	Schema       uint16
	Classes      []ir.Class
	Methods      []ir.Method
	Constructors []ir.Constructor
	Functions    []ir.Function
	StdFunctions []ir.StdFunction
	Enums        []ir.Enum
	SourceFiles  []ir.SourceFile
	Modules      []ir.Module
}

// Snapshot captures the Context's current contents in insertion order. Call
// it only after Link reports no errors — a snapshot of an unlinked Context
// may contain dangling ids.
func (c *Context) Snapshot() Snapshot {
	return Snapshot{
		Schema:       exportSchemaVersion,
		Classes:      c.classes.Values(),
		Methods:      c.methods.Values(),
		Constructors: c.constructors.Values(),
		Functions:    c.functions.Values(),
		StdFunctions: c.stdFunctions.Values(),
		Enums:        c.enums.Values(),
		SourceFiles:  c.sourceFiles.Values(),
		Modules:      c.modules.Values(),
	}
}

// Export writes the Context's Snapshot to w as msgpack, the binary format
// downstream code generators consume (§6.4).
func (c *Context) Export(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(c.Snapshot())
}

// ImportSnapshot decodes a Snapshot previously written by Export. It is
// provided for tooling (dump/inspect commands) that needs to read a
// snapshot back without re-running extraction; the extraction engine itself
// never reads its own export.
func ImportSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.NewDecoder(r).Decode(&snap)
	return snap, err
}
