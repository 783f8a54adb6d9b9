// Package manifest 对 AndroidManifest.xml 做一次只读的启动器图标声明检查。
//
// 约束：
// - 只读不写，结论只用于提示（stderr 警告），不影响处理流程与退出码
// - manifest 缺失或无法解析视为“无结论”，静默跳过
package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FileName 是 manifest 的固定文件名，与 res/ 同级（android/app/src/main/）。
const FileName = "AndroidManifest.xml"

// LauncherIconRef 是 <application> 上期望的图标引用。
const LauncherIconRef = "@mipmap/ic_launcher"

// CheckLauncherIcon 检查 res 基目录旁的 manifest 是否声明了 @mipmap/ic_launcher。
//
// 返回值：
// - declared=true：<application android:icon> 引用了 ic_launcher
// - declared=false 且 checked=true：manifest 存在但未引用（值得警告）
// - checked=false：manifest 不存在或解析失败（无结论，调用方应保持沉默）
func CheckLauncherIcon(resBase string) (declared, checked bool) {
	path := filepath.Join(filepath.Dir(filepath.Clean(resBase)), FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return false, false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return false, false
	}

	app := doc.Find("application").First()
	if app.Length() == 0 {
		return false, false
	}

	// html 解析器会把属性名按小写保留，"android:icon" 本身已是小写。
	icon := strings.TrimSpace(app.AttrOr("android:icon", ""))
	return icon == LauncherIconRef, true
}
