package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	pderrors "github.com/matzehuels/plotdeck/pkg/errors"
	"github.com/matzehuels/plotdeck/pkg/pipeline"
	"github.com/matzehuels/plotdeck/pkg/store"
)

// renderResponse is the body returned by POST /api/render.
// Artifact bytes are base64-encoded by encoding/json.
type renderResponse struct {
	ID        string             `json:"id"`
	ChartHash string             `json:"chart_hash"`
	Stats     renderStats        `json:"stats"`
	Cache     pipeline.CacheInfo `json:"cache"`
	Artifacts map[string][]byte  `json:"artifacts"`
}

type renderStats struct {
	SeriesCount  int    `json:"series_count"`
	PointCount   int    `json:"point_count"`
	LabelCount   int    `json:"label_count"`
	NudgedLabels int    `json:"nudged_labels"`
	ParseTime    string `json:"parse_time"`
	LayoutTime   string `json:"layout_time"`
	RenderTime   string `json:"render_time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// The API accepts inline data only; file paths would read the
	// server's filesystem.
	if opts.Data == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "data is required"})
		return
	}
	opts.Input = ""
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(result.Chart.Title, string(result.Chart.Kind), opts.Style)
	rec.SeriesCount = result.Stats.SeriesCount
	rec.PointCount = result.Stats.PointCount
	rec.LabelCount = result.Stats.LabelCount
	rec.NudgedLabels = result.Stats.NudgedLabels
	for format, data := range result.Artifacts {
		rec.Artifacts = append(rec.Artifacts, store.Artifact{
			Format: format,
			Style:  opts.Style,
			Size:   len(data),
		})
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.logger.Error("store chart record", "err", err)
	}

	writeJSON(w, http.StatusOK, renderResponse{
		ID:        rec.ID,
		ChartHash: result.ChartHash,
		Stats: renderStats{
			SeriesCount:  result.Stats.SeriesCount,
			PointCount:   result.Stats.PointCount,
			LabelCount:   result.Stats.LabelCount,
			NudgedLabels: result.Stats.NudgedLabels,
			ParseTime:    result.Stats.ParseTime.Round(time.Microsecond).String(),
			LayoutTime:   result.Stats.LayoutTime.Round(time.Microsecond).String(),
			RenderTime:   result.Stats.RenderTime.Round(time.Microsecond).String(),
		},
		Cache:     result.CacheInfo,
		Artifacts: result.Artifacts,
	})
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": recs})
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := pderrors.ValidateChartID(id); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid chart id"})
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "chart not found"})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := pderrors.ValidateChartID(id); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid chart id"})
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain error codes to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch pderrors.GetCode(err) {
	case pderrors.ErrCodeInvalidInput, pderrors.ErrCodeInvalidCoordinate,
		pderrors.ErrCodeInvalidDataset, pderrors.ErrCodeInvalidFormat,
		pderrors.ErrCodeInvalidStyle, pderrors.ErrCodeInvalidKind,
		pderrors.ErrCodeInvalidConfig, pderrors.ErrCodeInvalidPath,
		pderrors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case pderrors.ErrCodeNotFound, pderrors.ErrCodeChartNotFound,
		pderrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case pderrors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: pderrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
