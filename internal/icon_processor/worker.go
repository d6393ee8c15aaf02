package icon_processor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
	"github.com/ostia/icon-processor/go/container"
	"github.com/ostia/icon-processor/go/internal/global"
	"github.com/ostia/icon-processor/go/internal/raster"
	"github.com/ostia/icon-processor/go/task"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

var ErrMissingInput = errors.New("input file does not exist")

type Worker struct{}

func (w Worker) Work(ctx global.Context, tsk task.Task, result *task.Result) (err error) {
	if result == nil {
		return fmt.Errorf("nil for result")
	}

	zap.S().Debugw("starting new task",
		"task_id", tsk.ID,
	)

	finish := ctx.Inst().Prometheus.StartTask()
	result.StartedAt = time.Now()

	defer func() {
		if pnk := recover(); pnk != nil {
			err = multierr.Append(fmt.Errorf("panic at runtime: %v", pnk), err)
		}

		result.FinishedAt = time.Now()

		finish(err == nil)
	}()

	done := ctx.Inst().Prometheus.ReadSource()

	raw, match, err := w.readSource(ctx, tsk)
	if err != nil {
		if errors.Is(err, ErrMissingInput) {
			return err
		}

		return multierr.Append(fmt.Errorf("failed at read source"), err)
	}

	zap.S().Debugw("read source",
		"task_id", tsk.ID,
		"content_type", match.MIME.Value,
	)

	done()

	ctx.Inst().Prometheus.TotalBytesRead(len(raw))

	src, _, err := ctx.Inst().Codec.Decode(raw)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed at decode source"), err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	zap.S().Debugw("decoded source",
		"width", width,
		"height", height,
		"task_id", tsk.ID,
	)

	if (tsk.Limits.MaxWidth != 0 && tsk.Limits.MaxWidth < width) || (tsk.Limits.MaxHeight != 0 && tsk.Limits.MaxHeight < height) {
		return fmt.Errorf("file dimensions are too big (%dx%d where the limit is %dx%d)", width, height, tsk.Limits.MaxWidth, tsk.Limits.MaxHeight)
	}

	h := sha3.New512()

	_, err = h.Write(raw)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed at hash input file"), err)
	}

	result.ImageInput = task.ResultFile{
		Name:        path.Base(inputName(tsk)),
		SHA3:        hex.EncodeToString(h.Sum(nil)),
		ContentType: match.MIME.Value,
		Path:        inputName(tsk),
		Width:       width,
		Height:      height,
		Size:        len(raw),
	}

	bg, err := w.pickBackground(tsk, src)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed at pick background"), err)
	}

	result.Background = raster.Hex(bg)

	zap.S().Debugw("picked background",
		"background", result.Background,
		"task_id", tsk.ID,
	)

	done = ctx.Inst().Prometheus.ComposeVariants()

	variants, err := w.composeVariants(tsk, src, bg)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed at compose variants"), err)
	}

	zap.S().Debugw("composed variants",
		"variant_count", len(variants),
		"task_id", tsk.ID,
	)

	done()

	done = ctx.Inst().Prometheus.ExportOutputs()

	err = w.exportOutputs(ctx, tsk, variants, result)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed at export outputs"), err)
	}

	zap.S().Debugw("exported outputs",
		"output_count", len(result.ImageOutputs),
		"task_id", tsk.ID,
	)

	done()

	return nil
}

func inputName(tsk task.Task) string {
	if tsk.Input.Path != "" {
		return tsk.Input.Path
	}

	return path.Join(tsk.Input.Bucket, tsk.Input.Key)
}

func (Worker) readSource(ctx global.Context, tsk task.Task) (raw []byte, match types.Type, err error) {
	defer func() {
		if pnk := recover(); pnk != nil {
			err = multierr.Append(fmt.Errorf("panic at runtime: %v", pnk), err)
		}
	}()

	if tsk.Input.Bucket != "" {
		buf := aws.NewWriteAtBuffer([]byte{})

		err = ctx.Inst().S3.DownloadFile(ctx, buf, &awss3.GetObjectInput{
			Bucket: aws.String(tsk.Input.Bucket),
			Key:    aws.String(tsk.Input.Key),
		})
		if err != nil {
			return nil, types.Type{}, multierr.Append(fmt.Errorf("failed at s3 download"), err)
		}

		raw = buf.Bytes()
	} else {
		if !ctx.Inst().FileStore.Exists(tsk.Input.Path) {
			return nil, types.Type{}, fmt.Errorf("%w: %s", ErrMissingInput, tsk.Input.Path)
		}

		raw, err = ctx.Inst().FileStore.Read(tsk.Input.Path)
		if err != nil {
			return nil, types.Type{}, multierr.Append(fmt.Errorf("failed at read file"), err)
		}
	}

	match = container.Match(raw)
	switch match {
	case matchers.TypePng, matchers.TypeJpeg:
	default:
		return nil, types.Type{}, fmt.Errorf("failed at match: unsupported image format: %v", match.Extension)
	}

	return raw, match, nil
}

func (Worker) pickBackground(tsk task.Task, src image.Image) (color.NRGBA, error) {
	if tsk.Background != "" {
		return raster.ParseHex(tsk.Background)
	}

	fallback, err := raster.ParseHex(tsk.Fallback)
	if err != nil {
		return color.NRGBA{}, err
	}

	return raster.DominantColor(src, raster.BlueDominant, fallback), nil
}

func (Worker) composeVariants(tsk task.Task, src image.Image, bg color.NRGBA) (variants map[string]image.Image, err error) {
	defer func() {
		if pnk := recover(); pnk != nil {
			err = multierr.Append(fmt.Errorf("panic at runtime: %v", pnk), err)
		}
	}()

	variants = map[string]image.Image{}

	if tsk.Flags&task.TaskFlagForeground != 0 {
		img, err := raster.Compose(src, bg, tsk.TargetRatio, tsk.CanvasSize, raster.MaskNone)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("failed at compose foreground"), err)
		}

		variants[RoleForeground] = img
	}

	if tsk.Flags&task.TaskFlagLegacy != 0 {
		img, err := raster.Compose(src, bg, tsk.TargetRatio, tsk.CanvasSize, raster.MaskNone)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("failed at compose legacy"), err)
		}

		variants[RoleLegacy] = img
	}

	if tsk.Flags&task.TaskFlagRound != 0 {
		img, err := raster.Compose(src, bg, tsk.TargetRatio, tsk.CanvasSize, raster.MaskCircle)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("failed at compose round"), err)
		}

		variants[RoleRound] = img
	}

	if tsk.Flags&task.TaskFlagPadded != 0 {
		img, err := raster.Pad(src, tsk.PadRatio, color.NRGBA{})
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("failed at pad"), err)
		}

		variants[RolePadded] = img
	}

	return variants, nil
}

// exportOutputs writes every planned target. A failed target is logged
// and folded into the returned error but never stops its siblings.
func (w Worker) exportOutputs(ctx global.Context, tsk task.Task, variants map[string]image.Image, result *task.Result) (err error) {
	defer func() {
		if pnk := recover(); pnk != nil {
			err = multierr.Append(fmt.Errorf("panic at runtime: %v", pnk), err)
		}
	}()

	roles := make([]string, 0, len(variants))
	for role := range variants {
		if role != RolePadded {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)

	var exportErr error

	for _, target := range PlanAndroidMipmaps(roles, tsk.Densities, tsk.Output.Dir) {
		resized, err := raster.Resize(variants[target.Role], target.Size, target.Size)
		if err != nil {
			exportErr = multierr.Append(exportErr, multierr.Append(fmt.Errorf("failed at resize %s/%s", target.Tier, target.Role), err))
			zap.S().Errorw("failed to resize target",
				"tier", target.Tier,
				"role", target.Role,
				"error", err,
			)

			continue
		}

		if err := w.writeOutput(ctx, path.Join(target.Directory, target.Filename), resized, target.Role, target.Tier, result); err != nil {
			exportErr = multierr.Append(exportErr, err)
		}
	}

	if padded, ok := variants[RolePadded]; ok {
		// padded output keeps its native resolution, only the border grows
		if err := w.writeOutput(ctx, path.Join(tsk.Output.Dir, "icon_padded.png"), padded, RolePadded, "", result); err != nil {
			exportErr = multierr.Append(exportErr, err)
		}
	}

	return exportErr
}

func (Worker) writeOutput(ctx global.Context, pth string, img image.Image, role string, tier string, result *task.Result) error {
	data, err := ctx.Inst().Codec.EncodePNG(img)
	if err != nil {
		zap.S().Errorw("failed to encode target",
			"path", pth,
			"error", err,
		)

		return multierr.Append(fmt.Errorf("failed at encode %s", pth), err)
	}

	if err := ctx.Inst().FileStore.MkdirAll(path.Dir(pth)); err != nil {
		zap.S().Errorw("failed to make target dir",
			"path", pth,
			"error", err,
		)

		return multierr.Append(fmt.Errorf("failed at mkdir %s", path.Dir(pth)), err)
	}

	if err := ctx.Inst().FileStore.Write(pth, data); err != nil {
		zap.S().Errorw("failed to write target",
			"path", pth,
			"error", err,
		)

		return multierr.Append(fmt.Errorf("failed at write %s", pth), err)
	}

	ctx.Inst().Prometheus.TotalBytesWritten(len(data))
	ctx.Inst().Prometheus.TotalTargetsExported(1)

	h := sha3.New512()

	if _, err := h.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("failed at hash output"), err)
	}

	b := img.Bounds()

	result.ImageOutputs = append(result.ImageOutputs, task.ResultFile{
		Name:        path.Base(pth),
		Role:        role,
		Tier:        tier,
		SHA3:        hex.EncodeToString(h.Sum(nil)),
		ContentType: container.MimePNG,
		Path:        pth,
		Size:        len(data),
		Width:       b.Dx(),
		Height:      b.Dy(),
	})

	zap.S().Debugw("wrote output",
		"path", pth,
		"size", len(data),
	)

	return nil
}
