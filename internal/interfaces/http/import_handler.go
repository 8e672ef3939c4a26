package http

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/application/importer"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// csvImporter contrato mínimo que necesita el handler; lo implementa *importer.ImportUseCase.
type csvImporter interface {
	Import(ctx context.Context, in importer.Input) (*dto.ImportResult, error)
}

// ImportHandler maneja la carga masiva de archivos CSV/XLSX (protegido: admin o manager).
type ImportHandler struct {
	uc      csvImporter
	timeout time.Duration
	log     *logger.Logger
}

// NewImportHandler construye el handler. timeout acota la duración de cada importación (0 = sin límite).
func NewImportHandler(uc csvImporter, timeout time.Duration, log *logger.Logger) *ImportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportHandler{uc: uc, timeout: timeout, log: log}
}

// ImportCSV godoc
// @Summary      Importar CSV/XLSX a una tienda
// @Description  Detecta el tipo de archivo (ventas, inventario, productos, clientes, proveedores) por sus encabezados
// @Description  e importa fila a fila. Los fallos por fila se reportan en errors sin detener el lote.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true  "Archivo CSV o XLSX"
// @Param        storeId  formData  int     true  "ID de la tienda destino"
// @Success      200      {object}  dto.ImportResult
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/import/csv [post]
func (h *ImportHandler) ImportCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Error: "No file provided"})
	}
	rawStore := strings.TrimSpace(c.FormValue("storeId"))
	if rawStore == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_STORE", Error: "No store selected"})
	}
	storeID, err := strconv.ParseInt(rawStore, 10, 64)
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STORE", Error: "Invalid store ID: " + rawStore})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Error: "No file provided"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Error: "Uploaded file could not be read"})
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.uc.Import(ctx, importer.Input{FileName: fh.Filename, Data: data, StoreID: storeID})
	if err != nil {
		if importer.IsBadInput(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Error: err.Error()})
		}
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("file", fh.Filename).
			Int64("store_id", storeID).
			Bool("timeout", errors.Is(err, context.DeadlineExceeded)).
			Msg("importación fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "Failed to import CSV: " + err.Error()})
	}
	return c.JSON(res)
}
