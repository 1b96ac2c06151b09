package handler

import (
	"context"
	"errors"
	"io/fs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/campus_inventory/biz/dal/store"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/biz/service/inventory"
	"github.com/yi-nology/campus_inventory/biz/service/reference"
	"github.com/yi-nology/campus_inventory/pkg/common"
	"github.com/yi-nology/campus_inventory/pkg/storage"
)

// Ping answers liveness probes.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, common.OK(map[string]string{"message": "pong"}))
}

func respondOK(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, common.OK(data))
}

func writeBadRequest(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code:  consts.StatusBadRequest,
		Msg:   err.Error(),
		Error: err.Error(),
	})
}

func writeInternalError(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code:  consts.StatusInternalServerError,
		Msg:   "internal error",
		Error: err.Error(),
	})
}

func writeNotFound(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code:  consts.StatusNotFound,
		Msg:   err.Error(),
		Error: err.Error(),
	})
}

func writeUnavailable(c *app.RequestContext, err error, data interface{}) {
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code:  consts.StatusServiceUnavailable,
		Msg:   "backend unavailable",
		Error: err.Error(),
		Data:  data,
	})
}

// isBackendError reports failures of the record store or reference source.
func isBackendError(err error) bool {
	return errors.Is(err, store.ErrStoreUnavailable) || errors.Is(err, reference.ErrReferenceDataUnavailable)
}

// writeServiceError maps service errors onto response codes.
func writeServiceError(ctx context.Context, c *app.RequestContext, err error) {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(consts.StatusOK, common.CommonResponse{
			Code:  consts.StatusBadRequest,
			Msg:   verr.Message(),
			Error: verr.Error(),
		})
	case isBackendError(err):
		hlog.CtxWarnf(ctx, "backend unavailable: %v", err)
		writeUnavailable(c, err, nil)
	case errors.Is(err, fs.ErrNotExist):
		writeNotFound(c, err)
	case errors.Is(err, inventory.ErrExportDisabled), errors.Is(err, storage.ErrReadOnly):
		c.JSON(consts.StatusOK, common.CommonResponse{
			Code:  consts.StatusNotImplemented,
			Msg:   err.Error(),
			Error: err.Error(),
		})
	default:
		hlog.CtxErrorf(ctx, "request failed: %v", err)
		writeInternalError(c, err)
	}
}

func filtersFromQuery(c *app.RequestContext) api.AssetFilters {
	return api.AssetFilters{
		Site:     c.Query("site"),
		Building: c.Query("building"),
		Status:   c.Query("status"),
	}
}
