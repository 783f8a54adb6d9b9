package res

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mycafe-app/iconfix/internal/domain"
)

func TestLocate_RelativeToExecutable(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "scripts")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	exe := filepath.Join(binDir, "iconfix")
	if err := os.WriteFile(exe, []byte{}, 0o755); err != nil {
		t.Fatalf("写入假二进制失败：%v", err)
	}

	old := executableFunc
	executableFunc = func() (string, error) { return exe, nil }
	defer func() { executableFunc = old }()

	base, err := Locate()
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	// t.TempDir 在 macOS 上可能经过符号链接，基准也要先解析。
	wantRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks 失败：%v", err)
	}
	want := filepath.Join(wantRoot, "android", "app", "src", "main", "res")
	if base != want {
		t.Fatalf("基目录不符合预期：got=%q want=%q", base, want)
	}
}

func TestCandidates_FixedOrder(t *testing.T) {
	base := filepath.Join("repo", "android", "app", "src", "main", "res")
	targets := Candidates(base)

	if len(targets) != 5 {
		t.Fatalf("期望 5 个候选，实际 %d", len(targets))
	}
	wantDirs := []string{"mipmap-mdpi", "mipmap-hdpi", "mipmap-xhdpi", "mipmap-xxhdpi", "mipmap-xxxhdpi"}
	for i, tg := range targets {
		if tg.Density != wantDirs[i] {
			t.Fatalf("第 %d 个密度不符合预期：got=%q want=%q", i, tg.Density, wantDirs[i])
		}
		want := filepath.Join(base, wantDirs[i], domain.IconName)
		if tg.AbsPath != want {
			t.Fatalf("第 %d 个路径不符合预期：got=%q want=%q", i, tg.AbsPath, want)
		}
	}
}
