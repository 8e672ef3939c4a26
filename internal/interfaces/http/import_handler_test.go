package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/application/importer"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	apphttp "github.com/jhoicas/multistore-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/multistore-api/pkg/jwt"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

type stubImporter struct {
	got    importer.Input
	called bool
	res    *dto.ImportResult
	err    error
	ctxOK  bool
}

func (s *stubImporter) Import(ctx context.Context, in importer.Input) (*dto.ImportResult, error) {
	s.called = true
	s.got = in
	_, s.ctxOK = ctx.Deadline()
	return s.res, s.err
}

func buildImportApp(stub *stubImporter) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Importer:      stub,
		ImportTimeout: time.Minute,
		JWTSecret:     testJWTSecret,
		JWTIssuer:     testIssuer,
		Log:           logger.Nop(),
	})
	return app
}

// multipartBody arma el formulario; fileName vacío omite el archivo y storeID nil omite el campo.
func multipartBody(t *testing.T, fileName, content string, storeID *string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if storeID != nil {
		require.NoError(t, w.WriteField("storeId", *storeID))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postImport(t *testing.T, app *fiber.App, role, fileName, content string, storeID *string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	body, contentType := multipartBody(t, fileName, content, storeID)
	req := httptest.NewRequest(http.MethodPost, "/api/import/csv", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var errBody dto.ErrorResponse
	if resp.StatusCode != http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	}
	return resp, errBody
}

func ptr(s string) *string { return &s }

func TestImportCSV_OK(t *testing.T) {
	stub := &stubImporter{res: &dto.ImportResult{Success: 2, Failed: 1, Errors: []dto.RowError{{Row: 3, Error: "Product name is required"}}, Type: "products"}}
	app := buildImportApp(stub)

	resp, _ := postImport(t, app, pkgjwt.RoleManager, "products.csv", "product,show in store\nA,\n", ptr("4"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.ImportResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *stub.res, got)

	assert.Equal(t, int64(4), stub.got.StoreID)
	assert.Equal(t, "products.csv", stub.got.FileName)
	assert.Equal(t, "product,show in store\nA,\n", string(stub.got.Data))
	assert.True(t, stub.ctxOK, "la importación corre con un deadline")
}

func TestImportCSV_ErroresDeEntrada(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		storeID  *string
		want     string
	}{
		{"sin archivo", "", ptr("1"), "No file provided"},
		{"sin tienda", "a.csv", nil, "No store selected"},
		{"tienda vacía", "a.csv", ptr("  "), "No store selected"},
		{"tienda no numérica", "a.csv", ptr("abc"), "Invalid store ID: abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubImporter{}
			resp, body := postImport(t, buildImportApp(stub), pkgjwt.RoleAdmin, tc.fileName, "x", tc.storeID)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.want, body.Error)
			assert.False(t, stub.called)
		})
	}
}

func TestImportCSV_ArchivoSinFilas_Retorna400(t *testing.T) {
	stub := &stubImporter{err: csvimport.ErrNotEnoughRows}
	resp, body := postImport(t, buildImportApp(stub), pkgjwt.RoleAdmin, "a.csv", "product\n", ptr("1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CSV must have headers and at least one data row", body.Error)
}

func TestImportCSV_ErrorInterno_Retorna500(t *testing.T) {
	stub := &stubImporter{err: fmt.Errorf("import aborted after 3 of 10 rows: %w", context.DeadlineExceeded)}
	resp, body := postImport(t, buildImportApp(stub), pkgjwt.RoleAdmin, "a.csv", "x", ptr("1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to import CSV: import aborted after 3 of 10 rows: context deadline exceeded", body.Error)
}

func TestImportCSV_RolCliente_Retorna403(t *testing.T) {
	stub := &stubImporter{}
	resp, body := postImport(t, buildImportApp(stub), pkgjwt.RoleCustomer, "a.csv", "x", ptr("1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.False(t, stub.called)
}
