package run

import (
	"os"

	"github.com/mycafe-app/iconfix/internal/domain"
	"github.com/mycafe-app/iconfix/internal/infra/fsx"
	"github.com/mycafe-app/iconfix/internal/infra/imgx"
	"github.com/mycafe-app/iconfix/internal/res"
)

// Execute 按固定顺序处理 resBase 下的五个候选文件。
//
// 语义（硬约束）：
// - 文件不存在：跳过，继续处理下一个目录（不是错误）
// - 任何其他失败（stat/读取/解码/编码/替换）：立即终止，剩余目录不再处理
// - 返回的 RunReport 含截至终止点的全部逐文件结果；err 非空表示运行失败
//
// 严格串行、无并发；重跑是安全的：已成功的文件已原子落定。
func Execute(resBase string, obs Observer) (domain.RunReport, error) {
	rr := domain.RunReport{
		ResBase: resBase,
		Results: make([]domain.FileResult, 0, len(domain.MipmapDirs)),
	}

	for _, t := range res.Candidates(resBase) {
		if _, err := os.Stat(t.AbsPath); err != nil {
			if os.IsNotExist(err) {
				rr.Results = append(rr.Results, domain.FileResult{
					Density: t.Density,
					Path:    t.AbsPath,
					Status:  domain.StatusSkipped,
				})
				if obs != nil {
					obs.OnSkip(t)
				}
				continue
			}
			// 只有“不存在”是良性的；权限等 stat 失败按处理失败对待。
			return failed(rr, t, err, obs)
		}

		if err := reencodeFile(t.AbsPath); err != nil {
			return failed(rr, t, err, obs)
		}

		rr.Results = append(rr.Results, domain.FileResult{
			Density: t.Density,
			Path:    t.AbsPath,
			Status:  domain.StatusOK,
		})
		if obs != nil {
			obs.OnOK(t)
		}
	}

	rr.Finalize()
	if obs != nil {
		obs.OnDone(rr)
	}
	return rr, nil
}

// reencodeFile 读取 → 重编码为 RGBA PNG → 原子替换。
// 任一步失败都保证原文件逐字节不变（替换只发生在 rename 成功时）。
func reencodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := imgx.ReencodePNG(data)
	if err != nil {
		return err
	}
	return fsx.ReplaceFileAtomic(path, out)
}

func failed(rr domain.RunReport, t domain.IconTarget, err error, obs Observer) (domain.RunReport, error) {
	rr.Results = append(rr.Results, domain.FileResult{
		Density: t.Density,
		Path:    t.AbsPath,
		Status:  domain.StatusFailed,
		Err:     err.Error(),
	})
	rr.Finalize()
	if obs != nil {
		obs.OnError(t, err)
	}
	return rr, err
}
