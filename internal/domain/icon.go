package domain

// IconName 是每个密度目录下的固定目标文件名。
const IconName = "ic_launcher.png"

// MipmapDirs 是固定的五个密度目录，顺序即处理顺序（不可变）。
// 顺序是对外契约的一部分：输出行必须按该顺序逐目录出现。
var MipmapDirs = [5]string{
	"mipmap-mdpi",
	"mipmap-hdpi",
	"mipmap-xhdpi",
	"mipmap-xxhdpi",
	"mipmap-xxxhdpi",
}

// IconTarget 是一次运行中的单个候选文件（密度目录 + 解析后的绝对路径）。
type IconTarget struct {
	Density string
	AbsPath string
}
