package icon_processor

import (
	"encoding/json"
	"errors"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/ostia/icon-processor/go/internal/configure"
	"github.com/ostia/icon-processor/go/internal/global"
	"github.com/ostia/icon-processor/go/task"
	"go.uber.org/zap"
)

// Run drives one task per configured source through a bounded worker
// pool and blocks until every task has finished. A missing input file
// is reported and skipped, it never stops the remaining tasks.
func Run(gCtx global.Context) {
	tasks := TasksFromConfig(gCtx.Config())
	if len(tasks) == 0 {
		zap.S().Warnw("no sources configured, nothing to do")

		return
	}

	jobCount := gCtx.Config().Worker.Jobs
	if jobCount <= 0 {
		jobCount = runtime.GOMAXPROCS(0)
	}

	workers := make(chan Worker, jobCount)
	for i := 0; i < jobCount; i++ {
		workers <- Worker{}
	}

	zap.S().Infof("Starting job worker with %d jobs", jobCount)

	wg := sync.WaitGroup{}

	for _, tsk := range tasks {
		worker := <-workers

		zap.S().Infow("new task",
			"task_id", tsk.ID,
		)

		wg.Add(1)

		go func(tsk task.Task) {
			defer func() {
				workers <- worker
				wg.Done()
			}()

			result := task.Result{
				ID:    tsk.ID,
				State: task.ResultStateFailed,
			}

			err := worker.Work(gCtx, tsk, &result)
			if err != nil {
				result.Message = err.Error()

				if errors.Is(err, ErrMissingInput) {
					zap.S().Errorw("input file missing, skipping task",
						"task_id", tsk.ID,
						"error", err,
					)
				} else {
					zap.S().Errorw("task processing failed",
						"task_id", tsk.ID,
						"error", err,
					)
				}
			} else {
				result.State = task.ResultStateSuccess
			}

			resultData, err := json.Marshal(result)
			if err != nil {
				zap.S().Errorw("failed to marshal result",
					"error", err,
				)
			} else {
				zap.S().Infow("task finished",
					"task_id", tsk.ID,
					"state", result.State.String(),
					"result", json.RawMessage(resultData),
				)
			}
		}(tsk)
	}

	wg.Wait()
}

// TasksFromConfig expands the pipeline config into concrete tasks,
// filling unset knobs with the defaults the original tooling shipped.
func TasksFromConfig(cfg *configure.Config) []task.Task {
	p := cfg.Pipeline

	densities := p.Densities
	if len(densities) == 0 {
		densities = DefaultDensities
	}

	canvasSize := p.CanvasSize
	if canvasSize <= 0 {
		canvasSize = 512
	}

	targetRatio := p.TargetRatio
	if targetRatio <= 0 {
		targetRatio = 0.6
	}

	padRatio := p.PadRatio
	if padRatio <= 0 {
		padRatio = 0.65
	}

	fallback := p.Fallback
	if fallback == "" {
		fallback = "#0183fd"
	}

	tasks := make([]task.Task, 0, len(p.Sources))

	for _, src := range p.Sources {
		tasks = append(tasks, task.Task{
			ID:    uuid.New().String(),
			Flags: task.TaskFlagALL,
			Input: task.TaskInput{
				Path:   src.Path,
				Bucket: src.Bucket,
				Key:    src.Key,
			},
			Output: task.TaskOutput{
				Dir: src.Output,
			},
			Background:  p.Background,
			Fallback:    fallback,
			TargetRatio: targetRatio,
			PadRatio:    padRatio,
			CanvasSize:  canvasSize,
			Densities:   densities,
			Limits: task.TaskLimits{
				MaxWidth:  p.MaxWidth,
				MaxHeight: p.MaxHeight,
			},
		})
	}

	return tasks
}
