package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/events"
	"github.com/straye-as/pipeline-api/internal/http/handler"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"github.com/straye-as/pipeline-api/internal/service"
	"github.com/straye-as/pipeline-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type handlerFixture struct {
	db       *gorm.DB
	board    *pipeline.Board
	leads    *handler.LeadHandler
	pipeline *handler.PipelineHandler
	company  *handler.CompanyHandler
	service  *service.PipelineService
}

func setupHandlers(t *testing.T) *handlerFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)
	board := pipeline.NewBoard(nil)
	coordinator := pipeline.NewCoordinator(board, leadRepo, activityRepo, pipeline.NewLogAuditSink(logger))

	leadService := service.NewLeadService(leadRepo, activityRepo, coordinator, events.NoopPublisher{},
		service.LeadServiceConfig{PersistTimeout: 5 * time.Second}, logger)
	pipelineService := service.NewPipelineService(board, leadRepo, logger)

	return &handlerFixture{
		db:       db,
		board:    board,
		leads:    handler.NewLeadHandler(leadService, logger),
		pipeline: handler.NewPipelineHandler(pipelineService, logger),
		company:  handler.NewCompanyHandler(pipelineService, logger),
		service:  pipelineService,
	}
}

func (f *handlerFixture) refresh(t *testing.T) {
	t.Helper()
	_, err := f.service.RefreshBoard(context.Background())
	require.NoError(t, err)
}

func newRequest(t *testing.T, method, target string, body interface{}, params map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)

	ctx := auth.WithUserContext(req.Context(), &auth.UserContext{
		UserID:      uuid.MustParse("7d1f3a9e-4b2c-4e8f-9a61-0c5d2e7b8f10"),
		DisplayName: "Ana Silva",
		Role:        auth.RoleAuthenticated,
	})
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// =============================================================================
// Leads
// =============================================================================

func TestLeadHandler_Create(t *testing.T) {
	f := setupHandlers(t)

	t.Run("valid lead", func(t *testing.T) {
		rr := httptest.NewRecorder()
		f.leads.Create(rr, newRequest(t, http.MethodPost, "/leads", map[string]interface{}{
			"name":        "  Ana Silva ",
			"companyName": "Acme",
			"email":       "ana@acme.test",
			"currency":    "usd",
		}, nil))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		lead := decode[domain.LeadDTO](t, rr)
		assert.Equal(t, "Ana Silva", lead.Name)
		assert.Equal(t, domain.LeadStatusNew, lead.Status)
		assert.Equal(t, domain.PipelineStageNone, lead.PipelineStage)
		assert.Equal(t, "USD", lead.Currency)
		assert.Equal(t, "Acme", lead.CompanyKey)

		_, ok := f.board.Get(lead.ID)
		assert.True(t, ok, "created lead is on the board")
	})

	t.Run("validation error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		f.leads.Create(rr, newRequest(t, http.MethodPost, "/leads", map[string]interface{}{
			"email":  "not-an-email",
			"status": "archived",
		}, nil))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decode[domain.APIError](t, rr)
		assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
		assert.Contains(t, apiErr.Errors, "name")
		assert.Contains(t, apiErr.Errors, "email")
		assert.Contains(t, apiErr.Errors, "status")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := newRequest(t, http.MethodPost, "/leads", nil, nil)
		req.Body = http.NoBody
		rr := httptest.NewRecorder()
		f.leads.Create(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLeadHandler_GetByID(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Bruno")

	rr := httptest.NewRecorder()
	f.leads.GetByID(rr, newRequest(t, http.MethodGet, "/leads/"+lead.ID.String(), nil, map[string]string{"id": lead.ID.String()}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bruno", decode[domain.LeadDTO](t, rr).Name)

	rr = httptest.NewRecorder()
	f.leads.GetByID(rr, newRequest(t, http.MethodGet, "/leads/x", nil, map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	missing := uuid.New().String()
	rr = httptest.NewRecorder()
	f.leads.GetByID(rr, newRequest(t, http.MethodGet, "/leads/"+missing, nil, map[string]string{"id": missing}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLeadHandler_List(t *testing.T) {
	f := setupHandlers(t)
	testutil.CreateTestLead(t, f.db, "Carla", testutil.WithStatus(domain.LeadStatusQualified))
	testutil.CreateTestLead(t, f.db, "Duarte")
	testutil.CreateTestLead(t, f.db, "Eva", testutil.WithStage(domain.PipelineStageLost))

	rr := httptest.NewRecorder()
	f.leads.List(rr, newRequest(t, http.MethodGet, "/leads?status=qualified", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[domain.PaginatedResponse](t, rr).Total)

	rr = httptest.NewRecorder()
	f.leads.List(rr, newRequest(t, http.MethodGet, "/leads?activeOnly=true&pageSize=1", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[domain.PaginatedResponse](t, rr)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	rr = httptest.NewRecorder()
	f.leads.List(rr, newRequest(t, http.MethodGet, "/leads?status=archived", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLeadHandler_ChangeStatus(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Filipa", testutil.WithCompany("Globex"))
	f.refresh(t)
	params := map[string]string{"id": lead.ID.String()}

	rr := httptest.NewRecorder()
	f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
		domain.ChangeLeadStatusRequest{Status: domain.LeadStatusContacted}, params))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	result := decode[domain.StatusTransitionDTO](t, rr)
	assert.True(t, result.Changed)
	assert.True(t, result.AuditRecorded)
	assert.Equal(t, domain.LeadStatusNew, result.FromStatus)
	assert.Equal(t, domain.LeadStatusContacted, result.ToStatus)
	assert.Equal(t, 1, result.Lead.ContactCount)

	t.Run("same status is a no-op", func(t *testing.T) {
		rr := httptest.NewRecorder()
		f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
			domain.ChangeLeadStatusRequest{Status: domain.LeadStatusContacted}, params))
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[domain.StatusTransitionDTO](t, rr)
		assert.False(t, result.Changed)
		assert.Equal(t, 1, result.Lead.ContactCount)
	})

	t.Run("unknown status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
			map[string]string{"status": "archived"}, params))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown lead", func(t *testing.T) {
		rr := httptest.NewRecorder()
		f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
			domain.ChangeLeadStatusRequest{Status: domain.LeadStatusQualified}, map[string]string{"id": uuid.New().String()}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLeadHandler_ChangeStatus_PersistFailure(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Gil", testutil.WithStatus(domain.LeadStatusCallback))
	f.refresh(t)
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("connection reset"))
	}))

	rr := httptest.NewRecorder()
	f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
		domain.ChangeLeadStatusRequest{Status: domain.LeadStatusQualified}, map[string]string{"id": lead.ID.String()}))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	failed := decode[domain.StatusChangeFailedDTO](t, rr)
	assert.Equal(t, domain.ErrorTypeBadGateway, failed.Type)
	assert.Equal(t, lead.ID, failed.LeadID)
	assert.Equal(t, domain.LeadStatusCallback, failed.CurrentStatus)

	onBoard, ok := f.board.Get(lead.ID)
	require.True(t, ok)
	assert.Equal(t, domain.LeadStatusCallback, onBoard.Status)
}

func TestLeadHandler_ChangeStatus_DeletedInStore(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Gil", testutil.WithStatus(domain.LeadStatusCallback))
	f.refresh(t)
	require.NoError(t, f.db.Delete(&domain.Lead{}, "id = ?", lead.ID).Error)

	rr := httptest.NewRecorder()
	f.leads.ChangeStatus(rr, newRequest(t, http.MethodPost, "/leads/x/status",
		domain.ChangeLeadStatusRequest{Status: domain.LeadStatusQualified}, map[string]string{"id": lead.ID.String()}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	_, ok := f.board.Get(lead.ID)
	assert.False(t, ok)
}

func TestLeadHandler_LogContactAndActivities(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Hugo")
	params := map[string]string{"id": lead.ID.String()}
	next := "2026-11-02"

	rr := httptest.NewRecorder()
	f.leads.LogContact(rr, newRequest(t, http.MethodPost, "/leads/x/contacts", domain.LogContactRequest{
		ActivityType:     domain.LeadActivityCall,
		Description:      "Intro call",
		Outcome:          "Wants a demo",
		NextFollowupDate: &next,
	}, params))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[domain.LeadDTO](t, rr)
	assert.Equal(t, 1, updated.ContactCount)
	require.NotNil(t, updated.NextFollowupDate)
	assert.Equal(t, next, *updated.NextFollowupDate)

	rr = httptest.NewRecorder()
	f.leads.LogContact(rr, newRequest(t, http.MethodPost, "/leads/x/contacts", map[string]string{
		"activityType": "status_change",
		"description":  "not a contact",
	}, params))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	f.leads.ListActivities(rr, newRequest(t, http.MethodGet, "/leads/x/activities", nil, params))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[domain.PaginatedResponse](t, rr).Total)
}

func TestLeadHandler_Delete(t *testing.T) {
	f := setupHandlers(t)
	lead := testutil.CreateTestLead(t, f.db, "Ines")
	f.refresh(t)
	params := map[string]string{"id": lead.ID.String()}

	rr := httptest.NewRecorder()
	f.leads.Delete(rr, newRequest(t, http.MethodDelete, "/leads/x", nil, params))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, ok := f.board.Get(lead.ID)
	assert.False(t, ok)

	rr = httptest.NewRecorder()
	f.leads.Delete(rr, newRequest(t, http.MethodDelete, "/leads/x", nil, params))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// =============================================================================
// Pipeline and companies
// =============================================================================

func TestPipelineHandler_Board(t *testing.T) {
	f := setupHandlers(t)
	testutil.CreateTestLead(t, f.db, "Joana", testutil.WithStatus(domain.LeadStatusQualified), testutil.WithValue(1000))
	testutil.CreateTestLead(t, f.db, "Luis", testutil.WithStatus(domain.LeadStatusQualified), testutil.WithValue(500))
	testutil.CreateTestLead(t, f.db, "Marta")

	rr := httptest.NewRecorder()
	f.pipeline.Refresh(rr, newRequest(t, http.MethodPost, "/pipeline/refresh", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 3, decode[domain.BoardRefreshDTO](t, rr).Leads)

	rr = httptest.NewRecorder()
	f.pipeline.Board(rr, newRequest(t, http.MethodGet, "/pipeline/board", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	board := decode[domain.PipelineBoardDTO](t, rr)
	assert.Equal(t, 3, board.TotalLeads)
	require.Len(t, board.Columns, len(domain.AllLeadStatuses()))
	assert.Equal(t, domain.LeadStatusNew, board.Columns[0].Status)
	assert.Equal(t, 1, board.Columns[0].Count)

	for _, col := range board.Columns {
		if col.Status == domain.LeadStatusQualified {
			assert.Equal(t, 2, col.Count)
			assert.Equal(t, 1500.0, col.TotalEstimatedValue)
		}
	}
}

func TestPipelineHandler_Statuses(t *testing.T) {
	f := setupHandlers(t)

	rr := httptest.NewRecorder()
	f.pipeline.Statuses(rr, newRequest(t, http.MethodGet, "/pipeline/statuses", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	catalog := decode[domain.StatusCatalogDTO](t, rr)
	assert.Len(t, catalog.Statuses, len(domain.AllLeadStatuses()))
	assert.Len(t, catalog.Stages, len(domain.AllPipelineStages()))
	for _, opt := range catalog.Statuses {
		assert.NotEmpty(t, opt.Label, opt.Value)
		assert.NotEmpty(t, opt.Color, opt.Value)
	}
}

func TestCompanyHandler(t *testing.T) {
	f := setupHandlers(t)
	testutil.CreateTestLead(t, f.db, "Nuno", testutil.WithCompany("Acme & Sons"), testutil.WithStage(domain.PipelineStageDemo))
	testutil.CreateTestLead(t, f.db, "Olga", testutil.WithCompany(" Acme & Sons "))
	testutil.CreateTestLead(t, f.db, "Paulo", testutil.WithCompany("Initech"), testutil.WithStage(domain.PipelineStageWon))
	f.refresh(t)

	rr := httptest.NewRecorder()
	f.company.List(rr, newRequest(t, http.MethodGet, "/companies", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]domain.CompanyDTO](t, rr), 2)

	rr = httptest.NewRecorder()
	f.company.List(rr, newRequest(t, http.MethodGet, "/companies?status=closed", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	closed := decode[[]domain.CompanyDTO](t, rr)
	require.Len(t, closed, 1)
	assert.Equal(t, "Initech", closed[0].Key)

	rr = httptest.NewRecorder()
	f.company.List(rr, newRequest(t, http.MethodGet, "/companies?status=bogus", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	r := chi.NewRouter()
	r.Get("/companies/{key}", f.company.GetByKey)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies/"+url.PathEscape("Acme & Sons"), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	company := decode[domain.CompanyDTO](t, rr)
	assert.Equal(t, 2, company.TotalLeads)
	assert.Equal(t, domain.CompanyStatusDemo, company.GeneralStatus)
	assert.Len(t, company.Leads, 2)

	rr = httptest.NewRecorder()
	f.company.GetByKey(rr, newRequest(t, http.MethodGet, "/companies/Nope", nil, map[string]string{"key": "Nope"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompanyHandler_GetByKey_EscapedNames(t *testing.T) {
	f := setupHandlers(t)
	names := []string{"50% Off", "A%20B Ltd", "North/South Trading", "Acme & Sons"}
	for _, name := range names {
		testutil.CreateTestLead(t, f.db, "Contact "+name, testutil.WithCompany(name))
	}
	testutil.CreateTestLead(t, f.db, "Decoy", testutil.WithCompany("A B Ltd"))
	f.refresh(t)

	r := chi.NewRouter()
	r.Get("/companies/{key}", f.company.GetByKey)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies/"+url.PathEscape(name), nil))

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			company := decode[domain.CompanyDTO](t, rr)
			assert.Equal(t, name, company.Key)
			assert.Equal(t, 1, company.TotalLeads)
		})
	}
}
