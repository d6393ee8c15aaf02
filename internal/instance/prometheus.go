package instance

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Prometheus interface {
	Register(r prometheus.Registerer)

	StartTask() func(success bool)

	ReadSource() func()
	ComposeVariants() func()
	ExportOutputs() func()

	TotalTargetsExported(int)
	TotalBytesRead(int)
	TotalBytesWritten(int)
}
