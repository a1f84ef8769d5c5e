package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var boldSource *text.GoTextFaceSource

// loadBoldFont 返回指定字号的 Go Bold 字体
// 字体源只解析一次，之后按字号创建 face
func loadBoldFont(size float64) (*text.GoTextFace, error) {
	if boldSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		boldSource = source
	}

	return &text.GoTextFace{
		Source:    boldSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
