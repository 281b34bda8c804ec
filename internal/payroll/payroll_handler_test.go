package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool                `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError           `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	runFn            func(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.PayslipResponse, error)
	getPeriodsFn     func(ctx context.Context) ([]payroll.PeriodResponse, error)
	getPeriodFn      func(ctx context.Context, year, month int) (payroll.PeriodResponse, error)
	getPayslipsFn    func(ctx context.Context, year, month int, viewer payroll.Viewer) ([]payroll.PayslipResponse, error)
	getPayslipByIDFn func(ctx context.Context, id string, viewer payroll.Viewer) (payroll.PayslipResponse, error)
	exportCSVFn      func(ctx context.Context, year, month int) ([]byte, error)
	exportXLSXFn     func(ctx context.Context, year, month int) ([]byte, error)
	exportPDFFn      func(ctx context.Context, id string, viewer payroll.Viewer) ([]byte, error)
}

func (f *fakePayrollService) Run(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.PayslipResponse, error) {
	return f.runFn(ctx, req)
}

func (f *fakePayrollService) GetPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	return f.getPeriodsFn(ctx)
}

func (f *fakePayrollService) GetPeriod(ctx context.Context, year, month int) (payroll.PeriodResponse, error) {
	return f.getPeriodFn(ctx, year, month)
}

func (f *fakePayrollService) GetPayslips(ctx context.Context, year, month int, viewer payroll.Viewer) ([]payroll.PayslipResponse, error) {
	return f.getPayslipsFn(ctx, year, month, viewer)
}

func (f *fakePayrollService) GetPayslipByID(ctx context.Context, id string, viewer payroll.Viewer) (payroll.PayslipResponse, error) {
	return f.getPayslipByIDFn(ctx, id, viewer)
}

func (f *fakePayrollService) ExportCSV(ctx context.Context, year, month int) ([]byte, error) {
	return f.exportCSVFn(ctx, year, month)
}

func (f *fakePayrollService) ExportXLSX(ctx context.Context, year, month int) ([]byte, error) {
	return f.exportXLSXFn(ctx, year, month)
}

func (f *fakePayrollService) ExportPayslipPDF(ctx context.Context, id string, viewer payroll.Viewer) ([]byte, error) {
	return f.exportPDFFn(ctx, id, viewer)
}

func setupPayrollRouter(svc payroll.Service, email, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	handler := payroll.NewHandler(svc)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	})

	router.POST("/payroll/run", handler.Run)
	router.GET("/payroll/periods/:year/:month", handler.GetPeriod)
	router.GET("/payroll/export/:year/:month/csv", handler.ExportCSV)
	router.GET("/payslips", handler.GetPayslips)
	router.GET("/payslips/:id", handler.GetPayslipById)
	return router
}

func TestPayrollHandler_Run(t *testing.T) {
	svc := &fakePayrollService{
		runFn: func(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.PayslipResponse, error) {
			assert.Equal(t, 2025, req.Year)
			assert.Equal(t, 1, req.Month)
			assert.True(t, req.Finalize)
			return []payroll.PayslipResponse{
				{ID: uuid.NewString(), NetPay: decimal.RequireFromString("27900.00")},
			}, nil
		},
	}
	router := setupPayrollRouter(svc, "hr@example.com", "hr")

	req := httptest.NewRequest(http.MethodPost, "/payroll/run",
		strings.NewReader(`{"year":2025,"month":1,"finalize":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := mustDecodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Run_InvalidMonth(t *testing.T) {
	svc := &fakePayrollService{
		runFn: func(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.PayslipResponse, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	}
	router := setupPayrollRouter(svc, "hr@example.com", "hr")

	req := httptest.NewRequest(http.MethodPost, "/payroll/run",
		strings.NewReader(`{"year":2025,"month":13}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := mustDecodeEnvelope(t, rec.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestPayrollHandler_Run_FinalizedConflict(t *testing.T) {
	svc := &fakePayrollService{
		runFn: func(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.PayslipResponse, error) {
			return nil, payrollerrors.ErrPeriodFinalized
		},
	}
	router := setupPayrollRouter(svc, "hr@example.com", "hr")

	req := httptest.NewRequest(http.MethodPost, "/payroll/run",
		strings.NewReader(`{"year":2025,"month":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayrollHandler_GetPeriod_NonNumericParams(t *testing.T) {
	svc := &fakePayrollService{
		getPeriodFn: func(ctx context.Context, year, month int) (payroll.PeriodResponse, error) {
			t.Fatal("service must not be called for non-numeric params")
			return payroll.PeriodResponse{}, nil
		},
	}
	router := setupPayrollRouter(svc, "hr@example.com", "hr")

	req := httptest.NewRequest(http.MethodGet, "/payroll/periods/abc/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_ExportCSV_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		exportCSVFn: func(ctx context.Context, year, month int) ([]byte, error) {
			return nil, payrollerrors.ErrPeriodNotFound
		},
	}
	router := setupPayrollRouter(svc, "hr@example.com", "hr")

	req := httptest.NewRequest(http.MethodGet, "/payroll/export/2030/1/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayrollHandler_GetPayslips_PassesViewer(t *testing.T) {
	svc := &fakePayrollService{
		getPayslipsFn: func(ctx context.Context, year, month int, viewer payroll.Viewer) ([]payroll.PayslipResponse, error) {
			assert.Equal(t, "asha@example.com", viewer.Email)
			assert.Equal(t, "employee", viewer.Role)
			assert.Equal(t, 2025, year)
			assert.Equal(t, 1, month)
			return nil, nil
		},
	}
	router := setupPayrollRouter(svc, "asha@example.com", "employee")

	req := httptest.NewRequest(http.MethodGet, "/payslips?year=2025&month=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayrollHandler_GetPayslipById_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getPayslipByIDFn: func(ctx context.Context, id string, viewer payroll.Viewer) (payroll.PayslipResponse, error) {
			return payroll.PayslipResponse{}, payrollerrors.ErrPayslipNotFound
		},
	}
	router := setupPayrollRouter(svc, "asha@example.com", "employee")

	req := httptest.NewRequest(http.MethodGet, "/payslips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
