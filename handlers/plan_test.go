package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"deskly/models"
	"deskly/services/plansync"

	"github.com/gin-gonic/gin"
)

type fakeRemote struct {
	floors map[int]*models.RemoteFloorResponse
}

func (f *fakeRemote) GetFloor(_ context.Context, _ string, n int) (*models.RemoteFloorResponse, error) {
	resp, ok := f.floors[n]
	if !ok {
		return nil, fmt.Errorf("floor %d not found", n)
	}
	return resp, nil
}

func (f *fakeRemote) CreateFloorSpaces(context.Context, models.CreateFloorSpacesRequest) error {
	return nil
}

func (f *fakeRemote) GetSpaceTypes(context.Context, string) ([]models.SpaceType, error) {
	return []models.SpaceType{{ID: "st-desk", Name: "Desk"}}, nil
}

type memStore struct {
	mu    sync.Mutex
	snaps map[string]models.PlanSnapshot
}

func (s *memStore) Get(_ context.Context, locationID string) (*models.PlanSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[locationID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *memStore) Put(_ context.Context, locationID string, snap models.PlanSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snaps == nil {
		s.snaps = map[string]models.PlanSnapshot{}
	}
	s.snaps[locationID] = snap
	return nil
}

func newPlanRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &plansync.Service{
		Remote: &fakeRemote{floors: map[int]*models.RemoteFloorResponse{
			1: {Floor: models.RemoteFloor{Polygon: []models.Point{
				{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300},
			}}},
		}},
		Store:    &memStore{},
		ProbeMax: 2,
	}
	h := NewPlanHandler(svc)
	r := gin.New()
	r.POST("/api/plans/:locationID/load", h.LoadPlanHandler)
	r.POST("/api/plans/:locationID/save", h.SavePlanHandler)
	r.GET("/api/plans/:locationID/export", h.ExportPlanHandler)
	r.POST("/api/plans/:locationID/import", h.ImportPlanHandler)
	r.DELETE("/api/plans/:locationID/session", h.ClosePlanHandler)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanHandlers_ConcurrentImportExport(t *testing.T) {
	r := newPlanRouter()

	if w := do(t, r, http.MethodPost, "/api/plans/loc-1/load", nil); w.Code != http.StatusOK {
		t.Fatalf("load status = %d, body %s", w.Code, w.Body)
	}
	export := do(t, r, http.MethodGet, "/api/plans/loc-1/export", nil)
	if export.Code != http.StatusOK {
		t.Fatalf("export status = %d, body %s", export.Code, export.Body)
	}
	plan := export.Body.Bytes()

	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if w := do(t, r, http.MethodPost, "/api/plans/loc-1/import", plan); w.Code != http.StatusOK {
				errs <- fmt.Sprintf("import status = %d", w.Code)
			}
		}()
		go func() {
			defer wg.Done()
			if w := do(t, r, http.MethodGet, "/api/plans/loc-1/export", nil); w.Code != http.StatusOK {
				errs <- fmt.Sprintf("export status = %d", w.Code)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestPlanHandlers_NoSessionIs404(t *testing.T) {
	r := newPlanRouter()
	for _, tt := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/plans/loc-9/save"},
		{http.MethodGet, "/api/plans/loc-9/export"},
		{http.MethodPost, "/api/plans/loc-9/import"},
		{http.MethodDelete, "/api/plans/loc-9/session"},
	} {
		if w := do(t, r, tt.method, tt.path, []byte(`{}`)); w.Code != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tt.method, tt.path, w.Code)
		}
	}
}

func TestPlanHandlers_CloseTearsDownSession(t *testing.T) {
	r := newPlanRouter()
	if w := do(t, r, http.MethodPost, "/api/plans/loc-1/load", nil); w.Code != http.StatusOK {
		t.Fatalf("load status = %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/api/plans/loc-1/session", nil); w.Code != http.StatusOK {
		t.Fatalf("close status = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/plans/loc-1/export", nil); w.Code != http.StatusNotFound {
		t.Errorf("export after close status = %d, want 404", w.Code)
	}
}
