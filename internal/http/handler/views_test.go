package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docstatus/internal/doclist"
	"docstatus/internal/model"
	"docstatus/internal/repository"
	"docstatus/internal/service"
	serviceMocks "docstatus/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var viewDocs = []model.Document{
	{ID: "doc-b", Filename: "beta.pdf", State: model.StateComplete, UpdatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	{ID: "doc-a", Filename: "alpha.txt", State: model.StateQueued, UpdatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
}

type viewFixture struct {
	app   *fiber.App
	svc   *serviceMocks.MockDocumentService
	views *doclist.Registry
}

func newViewFixture(t *testing.T) *viewFixture {
	t.Helper()
	svc := new(serviceMocks.MockDocumentService)
	views := doclist.NewRegistry(time.Minute, time.Minute, nil)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, svc, NewViewHandler(svc, views, nil, nil, 100))
	return &viewFixture{app: app, svc: svc, views: views}
}

// create opens a view over viewDocs and returns its ID.
func (f *viewFixture) create(t *testing.T) string {
	t.Helper()
	f.svc.On("List", mock.Anything, service.ListOptions{
		Limit:      100,
		SortField:  repository.SortByUpdatedAt,
		Descending: true,
	}).Return(&service.DocumentListResult{Items: viewDocs, Total: len(viewDocs)}, nil).Once()

	resp, err := f.app.Test(httptest.NewRequest(http.MethodPost, "/views", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body createViewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.ID)
	return body.ID
}

func (f *viewFixture) do(t *testing.T, method, path string) (*http.Response, doclist.Snapshot) {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	var snap doclist.Snapshot
	if resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	}
	return resp, snap
}

func rowKeys(s doclist.Snapshot) []string {
	out := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		out = append(out, r.Key)
	}
	return out
}

func TestViews_CreateAndGet(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	resp, snap := f.do(t, http.MethodGet, "/views/"+id)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"doc-b", "doc-a"}, rowKeys(snap))
	assert.Equal(t, "(2) records.", snap.Footer)
	assert.Equal(t, doclist.DefaultSort, snap.Sort)

	resp, _ = f.do(t, http.MethodGet, "/views/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViews_CreateWithSort(t *testing.T) {
	f := newViewFixture(t)
	f.svc.On("List", mock.Anything, service.ListOptions{
		Limit:     100,
		SortField: repository.SortByFilename,
	}).Return(&service.DocumentListResult{Items: []model.Document{viewDocs[1], viewDocs[0]}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/views", strings.NewReader(`{"sort":"column2","descending":false}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body createViewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, doclist.SortState{Key: doclist.ColumnName}, body.View.Sort)
	assert.Equal(t, []string{"doc-a", "doc-b"}, rowKeys(body.View))
	f.svc.AssertExpectations(t)

	req = httptest.NewRequest(http.MethodPost, "/views", strings.NewReader(`{"sort":"column9"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = f.app.Test(req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestViews_CreateListError(t *testing.T) {
	f := newViewFixture(t)
	f.svc.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	resp, _ := f.app.Test(httptest.NewRequest(http.MethodPost, "/views", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 0, f.views.Len())
}

func TestViews_ActivateColumn(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	// first activation of the active column flips it to ascending
	resp, snap := f.do(t, http.MethodPost, "/views/"+id+"/columns/"+doclist.ColumnLastUpdated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"doc-a", "doc-b"}, rowKeys(snap))
	assert.Equal(t, "Sorted Oldest to Newest", snap.Columns[4].SortLabel)

	_, snap = f.do(t, http.MethodPost, "/views/"+id+"/columns/"+doclist.ColumnLastUpdated)
	assert.Equal(t, []string{"doc-b", "doc-a"}, rowKeys(snap))

	_, snap = f.do(t, http.MethodPost, "/views/"+id+"/columns/"+doclist.ColumnName)
	assert.Equal(t, []string{"doc-a", "doc-b"}, rowKeys(snap))

	resp, _ = f.do(t, http.MethodPost, "/views/"+id+"/columns/column42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViews_DeleteRow(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	f.svc.On("Delete", mock.Anything, "doc-a").Return(nil).Once()
	resp, snap := f.do(t, http.MethodDelete, "/views/"+id+"/rows/doc-a")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"doc-b"}, rowKeys(snap))

	f.svc.On("Delete", mock.Anything, "doc-b").Return(errors.New("storage down")).Once()
	resp, _ = f.do(t, http.MethodDelete, "/views/"+id+"/rows/doc-b")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	_, snap = f.do(t, http.MethodGet, "/views/"+id)
	assert.Equal(t, []string{"doc-b"}, rowKeys(snap))

	resp, _ = f.do(t, http.MethodDelete, "/views/"+id+"/rows/doc-zzz")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	f.svc.AssertExpectations(t)
}

func TestViews_DeleteRow_NotFoundUpstream(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	f.svc.On("Delete", mock.Anything, "doc-a").Return(service.ErrNotFound).Once()
	resp, _ := f.do(t, http.MethodDelete, "/views/"+id+"/rows/doc-a")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViews_ReindexRow(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	f.svc.On("Reindex", mock.Anything, "doc-b").Return(&model.Document{ID: "doc-b"}, nil).Once()
	resp, snap := f.do(t, http.MethodPost, "/views/"+id+"/rows/doc-b/reindex")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Len(t, snap.Rows, 2)
	f.svc.AssertExpectations(t)
}

func TestViews_ConfirmDeleteFlow(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	resp, _ := f.do(t, http.MethodPost, "/views/"+id+"/confirm")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, snap := f.do(t, http.MethodPost, "/views/"+id+"/rows/doc-b/delete-request")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, doclist.PhasePending, snap.Phase)
	require.NotNil(t, snap.Target)
	assert.Equal(t, "doc-b", snap.Target.Key)

	_, snap = f.do(t, http.MethodPost, "/views/"+id+"/cancel")
	assert.Equal(t, doclist.PhaseIdle, snap.Phase)

	resp, _ = f.do(t, http.MethodPost, "/views/"+id+"/cancel")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	f.do(t, http.MethodPost, "/views/"+id+"/rows/doc-b/delete-request")
	f.svc.On("Delete", mock.Anything, "doc-b").Return(nil).Once()
	resp, snap = f.do(t, http.MethodPost, "/views/"+id+"/confirm")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"doc-a"}, rowKeys(snap))
	assert.Nil(t, snap.Target)
	f.svc.AssertExpectations(t)
}

func TestViews_InvokeRow(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	resp, snap := f.do(t, http.MethodPost, "/views/"+id+"/rows/doc-a/invoke")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, snap.Target)
	assert.Equal(t, "alpha.txt", snap.Target.Name)

	resp, _ = f.do(t, http.MethodPost, "/views/"+id+"/rows/missing/invoke")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViews_Close(t *testing.T) {
	f := newViewFixture(t)
	id := f.create(t)

	resp, _ := f.do(t, http.MethodDelete, "/views/"+id)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = f.do(t, http.MethodGet, "/views/"+id)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = f.do(t, http.MethodDelete, "/views/"+id)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
