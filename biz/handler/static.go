package handler

import (
	"context"
	"io/fs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/campus_inventory/pkg/static"
)

// Index serves the embedded single page UI.
func Index(ctx context.Context, c *app.RequestContext) {
	web, err := static.WebFS()
	if err != nil {
		writeInternalError(c, err)
		return
	}
	page, err := fs.ReadFile(web, "index.html")
	if err != nil {
		writeNotFound(c, err)
		return
	}
	c.Data(consts.StatusOK, "text/html; charset=utf-8", page)
}
