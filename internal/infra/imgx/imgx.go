package imgx

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"  // 注册 GIF 解码器（输入不一定总是 png）
	_ "image/jpeg" // 注册 JPEG 解码器

	_ "golang.org/x/image/bmp"  // 注册 BMP 解码器
	_ "golang.org/x/image/tiff" // 注册 TIFF 解码器
	_ "golang.org/x/image/webp" // 注册 WebP 解码器
)

// ReencodePNG 把任意可解码的图片重编码为“干净”的 RGBA PNG。
//
// 约束：
// - 输入允许是 PNG/JPEG/GIF/BMP/TIFF/WebP（依赖已注册的解码器）
// - 输出固定为显式四通道（RGBA）的 PNG，辅助元数据不保留
// - 压缩级别用编码器默认值（不做最大压缩，速度换体积）
// - 可见像素内容不变：同尺寸、逐坐标同色
func ReencodePNG(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("输入为空")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("图片尺寸无效")
	}

	// 无论源是索引色/灰度/无 alpha 的 RGB，统一落到显式 RGBA。
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	var out bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&out, dst); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
