package main

import (
	"fmt"
	"io"

	"github.com/mycafe-app/iconfix/internal/domain"
)

// printer 实现 run.Observer，负责 stdout 的固定行格式。
//
// 行格式是对外契约（下游脚本按前缀匹配），不可改动：
//
//	Skip (missing): <path>
//	OK: <path>
//	Error <path>: <message>
//	Done.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer { return &printer{w: w} }

func (p *printer) OnSkip(t domain.IconTarget) {
	fmt.Fprintf(p.w, "Skip (missing): %s\n", t.AbsPath)
}

func (p *printer) OnOK(t domain.IconTarget) {
	fmt.Fprintf(p.w, "OK: %s\n", t.AbsPath)
}

func (p *printer) OnError(t domain.IconTarget, err error) {
	fmt.Fprintf(p.w, "Error %s: %v\n", t.AbsPath, err)
}

func (p *printer) OnDone(domain.RunReport) {
	fmt.Fprintln(p.w, "Done.")
}
