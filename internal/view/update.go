package view

import (
	"github.com/xonecas/viewengine/internal/style"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// LineCol identifies a position by line and byte-column.
type LineCol struct {
	Line, Col int
}

// Update is the set of state changes the host should apply after one
// handle_event call.
type Update struct {
	Lines      *LineRange
	Size       *widthcache.Size
	Scroll     *LineCol
	Styles     []style.New
	Pasteboard *string
}

// LineRange is a half-open range of line indices.
type LineRange struct {
	Start, End int
}

// updateBuilder accumulates an Update over the course of handling one
// event.
type updateBuilder struct {
	inner Update
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{}
}

func (u *updateBuilder) invalLines(start, end int) {
	if u.inner.Lines == nil {
		u.inner.Lines = &LineRange{Start: start, End: end}
		return
	}
	if start < u.inner.Lines.Start {
		u.inner.Lines.Start = start
	}
	if end > u.inner.Lines.End {
		u.inner.Lines.End = end
	}
}

func (u *updateBuilder) contentSize(sz widthcache.Size) {
	u.inner.Size = &sz
}

func (u *updateBuilder) scrollTo(lc LineCol) {
	u.inner.Scroll = &lc
}

func (u *updateBuilder) newStyles(news []style.New) {
	u.inner.Styles = news
}

func (u *updateBuilder) setPasteboard(text string) {
	u.inner.Pasteboard = &text
}

func (u *updateBuilder) build() Update {
	return u.inner
}
