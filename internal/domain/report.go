package domain

const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// FileResult 是单个候选文件的处理结果。
// Err 仅在 Status=failed 时非空；skipped 表示文件不存在（良性，不是错误）。
type FileResult struct {
	Density string
	Path    string
	Status  string
	Err     string
}

// RunReport 汇总一次运行：按处理顺序的逐文件结果 + 统计。
// 该结构只服务内部（测试/观察者）；stdout 的行格式由 cmd 层负责。
type RunReport struct {
	ResBase string
	Results []FileResult
	Summary ReportSummary
}

type ReportSummary struct {
	OK      int
	Skipped int
	Failed  int
}

// Finalize 由 Results 计算 Summary（幂等，可重复调用）。
func (r *RunReport) Finalize() {
	var s ReportSummary
	for _, fr := range r.Results {
		switch fr.Status {
		case StatusOK:
			s.OK++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	r.Summary = s
}
