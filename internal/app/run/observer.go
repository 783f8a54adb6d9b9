package run

import "github.com/mycafe-app/iconfix/internal/domain"

// Observer 用于把“逐文件结果”从核心执行流程中解耦出来。
//
// 约束：
// - run 包只负责发事件，不做任何输出（stdout 的行格式是 cmd 层的契约）。
// - 事件严格按固定目录顺序、单 goroutine 串行触发，实现无需并发安全。
type Observer interface {
	// OnSkip 在候选文件不存在时调用（良性，不终止运行）。
	OnSkip(t domain.IconTarget)
	// OnOK 在单个文件成功重编码并原子替换后调用。
	OnOK(t domain.IconTarget)
	// OnError 在单个文件处理失败时调用；该事件之后运行立即终止。
	OnError(t domain.IconTarget, err error)
	// OnDone 仅在五个目录全部跳过或成功后调用。
	OnDone(rr domain.RunReport)
}
