package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetTicketReport returns the support-ticket report as JSON, or as an xlsx
// attachment when format=xlsx.
func (c *ReportController) GetTicketReport(ctx echo.Context) error {
	filter, format := c.parseFilters(ctx)
	c.logger.Debug("relatório solicitado", zap.Any("filter", filter), zap.String("format", format))

	data, total, err := c.reportService.GetTicketReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		rows := make([][]interface{}, len(data))
		for i, item := range data {
			rows[i] = rowToSlice(item)
		}
		return respondWithXLSX(ctx, "Chamados", reportHeaders, rows, "relatorio_chamados")
	}
	return utils.SuccessResponse(ctx, data, "Relatório gerado com sucesso", http.StatusOK, total)
}

// GetEquipmentReport returns the equipment inventory report, filtered by
// status/type and creation date range.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	var filter dto.EquipmentReportFilter
	format := parseDateRange(ctx, &filter.DateFrom, &filter.DateTo)
	filter.Statuses = parseListParam(ctx, "statuses")
	filter.Types = parseListParam(ctx, "types")

	data, total, err := c.reportService.GetEquipmentReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		rows := make([][]interface{}, len(data))
		for i, item := range data {
			rows[i] = equipmentRowToSlice(item)
		}
		return respondWithXLSX(ctx, "Equipamentos", equipmentReportHeaders, rows, "relatorio_equipamentos")
	}
	return utils.SuccessResponse(ctx, data, "Relatório gerado com sucesso", http.StatusOK, total)
}

func (c *ReportController) parseFilters(ctx echo.Context) (dto.ReportFilter, string) {
	var filter dto.ReportFilter
	format := parseDateRange(ctx, &filter.DateFrom, &filter.DateTo)

	filter.Statuses = parseListParam(ctx, "statuses")
	filter.Priorities = parseListParam(ctx, "priorities")
	filter.Categories = parseListParam(ctx, "categories")

	return filter, format
}

func parseDateRange(ctx echo.Context, from, to **time.Time) string {
	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			*from = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			*to = &t
		}
	}
	return strings.ToLower(ctx.QueryParam("format"))
}

func parseListParam(ctx echo.Context, name string) []string {
	if arr, ok := ctx.QueryParams()[name+"[]"]; ok {
		return arr
	}
	if s := ctx.QueryParam(name); s != "" {
		return strings.Split(s, ",")
	}
	return nil
}

var reportHeaders = []string{
	"ID do chamado", "Título", "Categoria", "Prioridade", "Status",
	"Solicitante", "Responsável", "Equipamento", "Data de abertura", "Data de conclusão",
}

var equipmentReportHeaders = []string{
	"ID do equipamento", "Nome", "Marca", "Modelo", "Número de série",
	"Tipo", "Status", "Localização", "Usuário", "Data de cadastro",
}

const reportDateFmt = "02/01/2006 15:04"

func rowToSlice(item dto.ReportItemDTO) []interface{} {
	var completedAt string
	if item.CompletedAt != nil {
		completedAt = item.CompletedAt.Format(reportDateFmt)
	}

	return []interface{}{
		item.TicketID, item.Title, item.Category, item.Priority, item.Status,
		item.CreatorName, item.AssigneeName, item.EquipmentName,
		item.CreatedAt.Format(reportDateFmt), completedAt,
	}
}

func equipmentRowToSlice(item dto.EquipmentReportItemDTO) []interface{} {
	return []interface{}{
		item.EquipmentID, item.Name, item.Brand, item.Model, item.SerialNumber,
		item.Type, item.Status, item.Location, item.UserName,
		item.CreatedAt.Format(reportDateFmt),
	}
}

func respondWithXLSX(ctx echo.Context, sheet string, headers []string, rows [][]interface{}, filePrefix string) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", lastCol+"1", style)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &rows[i])
	}
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", lastCol, 22)

	fileName := fmt.Sprintf("%s_%s.xlsx", filePrefix, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
