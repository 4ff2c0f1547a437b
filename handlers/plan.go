package handlers

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"deskly/config"
	"deskly/models"
	"deskly/services/editor"
	"deskly/services/plansync"
	"deskly/utils"

	"github.com/gin-gonic/gin"
)

// PlanHandler owns one editor session per location. Sessions are
// created on load and torn down explicitly; there is no process-wide
// editor state outside this handler.
type PlanHandler struct {
	Sync *plansync.Service

	mu       sync.Mutex
	sessions map[string]*planSession
}

// planSession pairs a session with the lock that serializes it. Gin
// runs handlers on separate goroutines while the session itself is
// single-goroutine, so every touch of sess goes through mu.
type planSession struct {
	mu   sync.Mutex
	sess *editor.Session
	deb  *plansync.Debouncer
}

// NewPlanHandler constructs the handler around a sync service.
func NewPlanHandler(syncSvc *plansync.Service) *PlanHandler {
	return &PlanHandler{
		Sync:     syncSvc,
		sessions: map[string]*planSession{},
	}
}

func (h *PlanHandler) session(locationID string) (*planSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ps, ok := h.sessions[locationID]
	return ps, ok
}

func debounceDelay() time.Duration {
	ms := config.AppConfig.CacheDebounceMs
	if ms <= 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

// LoadPlanHandler reconciles local cache and remote floors into a
// fresh session and returns the resulting snapshot.
func (h *PlanHandler) LoadPlanHandler(c *gin.Context) {
	locationID := c.Param("locationID")
	mode := editor.ModeEdit
	if c.Query("mode") == "view" {
		mode = editor.ModeView
	}

	snap, err := h.Sync.Load(c.Request.Context(), locationID, mode == editor.ModeEdit)
	if err != nil {
		if errors.Is(err, plansync.ErrStaleLoad) {
			utils.JSONError(c, http.StatusConflict, "load superseded", "a newer load for this location is in flight")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to load floor plan", err.Error())
		return
	}

	sess := editor.NewSession(locationID, mode)
	sess.Restore(*snap)

	h.mu.Lock()
	if old, ok := h.sessions[locationID]; ok && old.deb != nil {
		old.deb.Stop()
	}
	ps := &planSession{sess: sess}
	if mode == editor.ModeEdit {
		ps.deb = h.Sync.AttachDebounce(sess, locationID, debounceDelay())
	}
	h.sessions[locationID] = ps
	h.mu.Unlock()

	ps.mu.Lock()
	out := ps.sess.Snapshot()
	ps.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

// SavePlanHandler pushes the session's floors to the remote API.
func (h *PlanHandler) SavePlanHandler(c *gin.Context) {
	locationID := c.Param("locationID")
	ps, ok := h.session(locationID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no active session", "load the plan before saving")
		return
	}

	ps.mu.Lock()
	snap := ps.sess.Snapshot()
	ps.mu.Unlock()

	if err := h.Sync.Save(c.Request.Context(), locationID, snap); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "save aborted", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// ExportPlanHandler streams the plan file for download.
func (h *PlanHandler) ExportPlanHandler(c *gin.Context) {
	ps, ok := h.session(c.Param("locationID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no active session", "load the plan before exporting")
		return
	}
	ps.mu.Lock()
	data, err := ps.sess.Export()
	ps.mu.Unlock()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "export failed", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="floorplan.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportPlanHandler replaces the session's floors from an uploaded
// plan file. Invalid files leave the session untouched.
func (h *PlanHandler) ImportPlanHandler(c *gin.Context) {
	ps, ok := h.session(c.Param("locationID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no active session", "load the plan before importing")
		return
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read upload", err.Error())
		return
	}
	ps.mu.Lock()
	err = ps.sess.Import(data)
	var snap models.PlanSnapshot
	if err == nil {
		snap = ps.sess.Snapshot()
	}
	ps.mu.Unlock()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "import rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ClosePlanHandler tears a session down, stopping its debounced
// cache writes.
func (h *PlanHandler) ClosePlanHandler(c *gin.Context) {
	locationID := c.Param("locationID")
	h.mu.Lock()
	ps, ok := h.sessions[locationID]
	if ok {
		if ps.deb != nil {
			ps.deb.Stop()
		}
		delete(h.sessions, locationID)
	}
	h.mu.Unlock()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "no active session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
