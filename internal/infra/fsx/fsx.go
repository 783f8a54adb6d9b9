package fsx

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// 通过可替换的函数指针，让测试能稳定模拟 rename 失败。
var renameFunc = os.Rename

// TmpPath 返回 dst 的同目录临时路径：扩展名替换为 ".tmp.png"。
// 例如 ".../ic_launcher.png" -> ".../ic_launcher.tmp.png"。
// 临时文件必须与目标同目录，才能保证 rename 的原子性。
func TmpPath(dst string) string {
	ext := filepath.Ext(dst)
	return strings.TrimSuffix(dst, ext) + ".tmp.png"
}

// ReplaceFileAtomic 把 data 原子地替换到 dst（临时文件 + rename，覆盖已有文件）。
//
// 语义：
// - 任一步失败：临时文件被清理，dst 保持替换前的字节不变
// - rename 成功：dst 完整持有新内容（观察者永远看不到半成品）
//
// fsync：临时文件做 Sync；目录 Sync 采用 best-effort（避免平台差异导致误报失败）。
func ReplaceFileAtomic(dst string, data []byte) error {
	tmpName := TmpPath(dst)

	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		_ = tmp.Close()
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAll(tmp, data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// rename 原子替换到最终文件名。
	if err := renameFunc(tmpName, dst); err != nil {
		return err
	}
	renamed = true

	_ = syncDirBestEffort(filepath.Dir(dst))
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func syncDirBestEffort(dir string) error {
	// Windows 上目录 Sync 的语义与支持情况不稳定，这里直接跳过。
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
