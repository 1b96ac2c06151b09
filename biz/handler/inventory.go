package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/biz/service/inventory"
	"github.com/yi-nology/campus_inventory/biz/service/reference"
	"github.com/yi-nology/campus_inventory/pkg/common"
	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/storage"
	"github.com/yi-nology/campus_inventory/pkg/validator"
)

// InventoryHandler exposes the asset form, dashboard and lookup endpoints.
type InventoryHandler struct {
	service   *inventory.Service
	reference *reference.Provider
	storage   storage.Storage
}

func NewInventoryHandler(service *inventory.Service, ref *reference.Provider, st storage.Storage) *InventoryHandler {
	return &InventoryHandler{service: service, reference: ref, storage: st}
}

// ListSites returns the sorted site names.
func (h *InventoryHandler) ListSites(ctx context.Context, c *app.RequestContext) {
	sites, err := h.reference.ListSites(ctx)
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, map[string]any{"sites": sites})
}

// ListBuildings returns the sorted buildings of one site.
func (h *InventoryHandler) ListBuildings(ctx context.Context, c *app.RequestContext) {
	site := c.Param("site")
	buildings, err := h.reference.ListBuildings(ctx, site)
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, map[string]any{"site": site, "buildings": buildings})
}

// RefreshReference drops the cached reference table.
func (h *InventoryHandler) RefreshReference(ctx context.Context, c *app.RequestContext) {
	h.reference.Invalidate()
	respondOK(c, nil)
}

// GetVocabulary returns the enum options of the form and filter sentinels.
func (h *InventoryHandler) GetVocabulary(ctx context.Context, c *app.RequestContext) {
	respondOK(c, map[string]any{
		"vocabulary":  h.service.Vocabulary(),
		"placeholder": constants.PlaceholderOption,
		"all_sites":   "Todas",
		"all_other":   "Todos",
	})
}

// SubmitAsset registers one asset. Rejections echo the input back.
func (h *InventoryHandler) SubmitAsset(ctx context.Context, c *app.RequestContext) {
	var in api.AssetInput
	if err := c.BindJSON(&in); err != nil {
		writeBadRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	record, err := h.service.Submit(ctx, in)
	if err != nil {
		var verr *inventory.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(consts.StatusOK, common.CommonResponse{
				Code:  consts.StatusBadRequest,
				Msg:   verr.Message(),
				Error: verr.Error(),
				Data:  api.SubmitRejection{Kind: string(verr.Kind), Field: verr.Field, Input: in},
			})
		case isBackendError(err):
			writeUnavailable(c, err, api.SubmitRejection{Kind: "StoreUnavailable", Input: in})
		default:
			writeServiceError(ctx, c, err)
		}
		return
	}
	respondOK(c, record)
}

// RefreshAssets drops the cached records so the next read reloads the store.
func (h *InventoryHandler) RefreshAssets(ctx context.Context, c *app.RequestContext) {
	h.service.Refresh()
	respondOK(c, nil)
}

// ListAssets returns the filtered record table.
func (h *InventoryHandler) ListAssets(ctx context.Context, c *app.RequestContext) {
	records, err := h.service.Records(ctx, filtersFromQuery(c))
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, api.AssetList{Total: len(records), Records: records})
}

// GetDashboard returns counters, chart series, selector options and rows.
func (h *InventoryHandler) GetDashboard(ctx context.Context, c *app.RequestContext) {
	dashboard, err := h.service.Dashboard(ctx, filtersFromQuery(c))
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, dashboard)
}

// SearchAssets looks up records by asset tag.
func (h *InventoryHandler) SearchAssets(ctx context.Context, c *app.RequestContext) {
	result, err := h.service.Search(ctx, c.Query("tag"))
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, result)
}

// ExportAssets writes the filtered records to an xlsx file.
func (h *InventoryHandler) ExportAssets(ctx context.Context, c *app.RequestContext) {
	result, err := h.service.Export(ctx, filtersFromQuery(c))
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	respondOK(c, result)
}

// DownloadExport streams a previously exported workbook.
func (h *InventoryHandler) DownloadExport(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	fileName := c.Param("fileName")
	if _, err := uuid.Parse(fileID); err != nil {
		writeBadRequest(c, errors.New("invalid file id"))
		return
	}
	if fileName == "" || strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
		writeBadRequest(c, errors.New("invalid file name"))
		return
	}
	if h.storage == nil {
		writeServiceError(ctx, c, inventory.ErrExportDisabled)
		return
	}

	rc, err := h.storage.GetObject(ctx, inventory.ExportKey(fileID, fileName))
	if err != nil {
		writeServiceError(ctx, c, err)
		return
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Data(consts.StatusOK, validator.ContentTypeXLSX, content)
}
