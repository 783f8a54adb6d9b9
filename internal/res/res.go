// Package res 负责把“可执行文件自身的位置”解析为固定的 Android 资源目录，
// 并给出固定顺序的五个候选文件。路径解析与当前工作目录无关。
package res

import (
	"os"
	"path/filepath"

	"github.com/mycafe-app/iconfix/internal/domain"
)

// 通过可替换的函数指针，让测试能模拟可执行文件位置。
var executableFunc = os.Executable

// Locate 返回资源基目录：<可执行文件所在目录的上一级>/android/app/src/main/res。
// 约定：二进制放在仓库根目录的下一级（例如 <root>/scripts/ 或 <root>/bin/）。
// 符号链接会先解析，保证“按真实位置”定位。
func Locate() (string, error) {
	exe, err := executableFunc()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	root := filepath.Dir(filepath.Dir(resolved))
	return filepath.Join(root, "android", "app", "src", "main", "res"), nil
}

// Candidates 返回 base 下五个候选文件，顺序固定（mdpi → xxxhdpi）。
func Candidates(base string) []domain.IconTarget {
	base = filepath.Clean(base)
	targets := make([]domain.IconTarget, 0, len(domain.MipmapDirs))
	for _, d := range domain.MipmapDirs {
		targets = append(targets, domain.IconTarget{
			Density: d,
			AbsPath: filepath.Join(base, d, domain.IconName),
		})
	}
	return targets
}
