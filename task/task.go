package task

type TaskFlag int32

const (
	TaskFlagForeground TaskFlag = 1 << iota
	TaskFlagLegacy
	TaskFlagRound
	TaskFlagPadded
	TaskFlagALL TaskFlag = (1 << iota) - 1
)

type Task struct {
	ID          string         `json:"id"`
	Flags       TaskFlag       `json:"flags"`
	Input       TaskInput      `json:"input"`
	Output      TaskOutput     `json:"output"`
	Background  string         `json:"background"`   // hex #rrggbb, empty means auto extract
	Fallback    string         `json:"fallback"`     // hex used when auto extraction finds no match
	TargetRatio float64        `json:"target_ratio"` // 0.6
	PadRatio    float64        `json:"pad_ratio"`    // 0.65
	CanvasSize  int            `json:"canvas_size"`  // 512
	Densities   map[string]int `json:"densities"`    // mdpi: 108, hdpi: 162, ...
	Limits      TaskLimits     `json:"limits"`
}

type TaskLimits struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

type TaskInput struct {
	Path   string `json:"path"`
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type TaskOutput struct {
	Dir string `json:"dir"`
}
