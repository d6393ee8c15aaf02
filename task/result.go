package task

import (
	"fmt"
	"time"
)

type ResultState int32

const (
	_ ResultState = iota
	ResultStateSuccess
	ResultStateFailed
)

func (r ResultState) String() string {
	switch r {
	case ResultStateSuccess:
		return "SUCCESS"
	case ResultStateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("UNKNOWN TYPE %d", r)
	}
}

type Result struct {
	ID           string       `json:"id"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
	State        ResultState  `json:"state"`
	Message      string       `json:"message"`
	Background   string       `json:"background"` // hex of the color composited behind the icon
	ImageInput   ResultFile   `json:"image_input"`
	ImageOutputs []ResultFile `json:"image_outputs"`
}

type ResultFile struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Tier        string `json:"tier,omitempty"`
	SHA3        string `json:"sha3"`
	ContentType string `json:"content_type"`
	Path        string `json:"path"`
	Size        int    `json:"size"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}
