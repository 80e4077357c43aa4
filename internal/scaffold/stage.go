package scaffold

// Stage is a step of a scaffold run.
type Stage int

const (
	StageValidating Stage = iota
	StageResolving
	StageRendering
	StageMaterializing
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageValidating:    "validating",
	StageResolving:     "resolving",
	StageRendering:     "rendering",
	StageMaterializing: "materializing",
	StageDone:          "done",
	StageFailed:        "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
