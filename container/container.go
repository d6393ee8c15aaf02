package container

import (
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

func Match(data []byte) types.Type {
	t, _ := filetype.Match(data)

	return t
}
