package main

import (
	"fmt"
	"os"

	"github.com/mycafe-app/iconfix/internal/app/run"
	"github.com/mycafe-app/iconfix/internal/manifest"
	"github.com/mycafe-app/iconfix/internal/res"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		if isHelp(args[0]) {
			printUsage(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "未知参数：%q\n\n", args[0])
		printUsage(os.Stderr)
		os.Exit(2)
	}

	resBase, err := res.Locate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "定位资源目录失败：%v\n", err)
		os.Exit(1)
	}

	// manifest 检查只产生 stderr 提示，不影响 stdout 契约与退出码。
	if declared, checked := manifest.CheckLauncherIcon(resBase); checked && !declared {
		fmt.Fprintf(os.Stderr, "warning: AndroidManifest.xml 未声明 android:icon=%q\n", manifest.LauncherIconRef)
	}

	if _, err := run.Execute(resBase, newPrinter(os.Stdout)); err != nil {
		os.Exit(1)
	}
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `用法：
  iconfix

把 <repo>/android/app/src/main/res/mipmap-{mdpi,hdpi,xhdpi,xxhdpi,xxxhdpi}/ic_launcher.png
重编码为干净的 RGBA PNG（原子替换，可见内容不变）。路径按二进制自身位置解析，
与当前工作目录无关；缺失的文件跳过，首个处理失败立即终止。

  -h, --help  显示帮助
`)
}
