package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const manifestWithIcon = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.mycafe.app">
    <application
        android:icon="@mipmap/ic_launcher"
        android:label="@string/app_name">
        <activity android:name=".MainActivity"/>
    </application>
</manifest>
`

const manifestOtherIcon = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.mycafe.app">
    <application android:icon="@drawable/legacy_icon"/>
</manifest>
`

// writeMain 搭一个 android/app/src/main/{AndroidManifest.xml,res} 的最小骨架。
func writeMain(t *testing.T, manifest string) (resBase string) {
	t.Helper()
	mainDir := filepath.Join(t.TempDir(), "android", "app", "src", "main")
	resBase = filepath.Join(mainDir, "res")
	if err := os.MkdirAll(resBase, 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(mainDir, FileName), []byte(manifest), 0o644); err != nil {
			t.Fatalf("写入 manifest 失败：%v", err)
		}
	}
	return resBase
}

func TestCheckLauncherIcon_Declared(t *testing.T) {
	resBase := writeMain(t, manifestWithIcon)
	declared, checked := CheckLauncherIcon(resBase)
	if !checked {
		t.Fatalf("manifest 存在，期望 checked=true")
	}
	if !declared {
		t.Fatalf("期望识别出 @mipmap/ic_launcher 引用")
	}
}

func TestCheckLauncherIcon_OtherIcon(t *testing.T) {
	resBase := writeMain(t, manifestOtherIcon)
	declared, checked := CheckLauncherIcon(resBase)
	if !checked {
		t.Fatalf("manifest 存在，期望 checked=true")
	}
	if declared {
		t.Fatalf("@drawable/legacy_icon 不应算作 ic_launcher 引用")
	}
}

func TestCheckLauncherIcon_Missing(t *testing.T) {
	resBase := writeMain(t, "")
	if _, checked := CheckLauncherIcon(resBase); checked {
		t.Fatalf("manifest 缺失应是无结论（checked=false）")
	}
}
