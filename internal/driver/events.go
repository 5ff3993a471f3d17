package driver

// Stage identifies one phase of the extraction pipeline a file passes
// through, in order: provider parsing, matcher dispatch, then (once, after
// every file) the link phase.
type Stage uint8

const (
	StageParse Stage = iota + 1
	StageMatch
	StageLink
)

// Status is a file's current standing within its Stage.
type Status uint8

const (
	StatusQueued Status = iota + 1
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one file's progress through the pipeline. CompileAndExtract
// sends these on the optional channel a caller supplies; internal/ui's
// progress view is the one consumer in this repo, but nothing here depends
// on it.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
