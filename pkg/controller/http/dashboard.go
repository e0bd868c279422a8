package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/utils/apperr"
)

// ErrTagBadRequest marks request decoding failures
var ErrTagBadRequest = goerr.NewTag("bad_request")

// maxInputBodySize limits POST /api/inputs payloads
const maxInputBodySize = 64 << 10

// DashboardHandler serves the chart API
type DashboardHandler struct {
	dashboard interfaces.Dashboard
	renderer  interfaces.ChartRenderer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard interfaces.Dashboard, renderer interfaces.ChartRenderer) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		renderer:  renderer,
	}
}

type payloadRequest struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}

type selectionRequest struct {
	Site    types.SiteID    `json:"site"`
	Payload *payloadRequest `json:"payload"`
}

type inputRequest struct {
	EventID   types.EventID     `json:"event_id"`
	Input     types.InputID     `json:"input"`
	Selection *selectionRequest `json:"selection"`
	// Format is "json" (default), "png" or "svg". Image formats attach a
	// rendered data URI to every update.
	Format string `json:"format"`
}

type updateResponse struct {
	Output types.OutputID     `json:"output"`
	Chart  *model.ChartResult `json:"chart"`
	Image  string             `json:"image,omitempty"`
}

type inputResponse struct {
	EventID types.EventID    `json:"event_id"`
	Updates []updateResponse `json:"updates"`
}

// apply overlays the request onto the default selection
func (s *selectionRequest) apply(sel model.Selection) model.Selection {
	if s == nil {
		return sel
	}
	if s.Site != "" {
		sel.Site = s.Site
	}
	if s.Payload != nil {
		if s.Payload.Low != nil {
			sel.Payload.Low = *s.Payload.Low
		}
		if s.Payload.High != nil {
			sel.Payload.High = *s.Payload.High
		}
	}
	return sel
}

// HandleOptions returns the selector configuration
func (h *DashboardHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.dashboard.Options(r.Context()))
}

// HandleChart computes one output from query parameters and returns it as
// JSON or as an image
func (h *DashboardHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	output := types.OutputID(chi.URLParam(r, "output"))

	sel, err := h.selectionFromQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	format, isImage, err := imageFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.dashboard.Compute(ctx, output, sel)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if !isImage {
		writeJSON(w, r, http.StatusOK, result)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, result, format); err != nil {
		h.fail(w, r, goerr.Wrap(err, "failed to render chart", goerr.V("output", output)))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to write chart image"))
	}
}

// HandleInputs dispatches one input change event and returns every
// recomputed output, rendered when the request asks for an image format.
// Each output is computed once per event.
func (h *DashboardHandler) HandleInputs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inputRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBodySize))
	if err := decoder.Decode(&req); err != nil {
		h.fail(w, r, goerr.Wrap(err, "invalid input event", goerr.T(ErrTagBadRequest)))
		return
	}
	if req.Input == "" {
		h.fail(w, r, goerr.New("input is required", goerr.T(ErrTagBadRequest)))
		return
	}

	format, isImage, err := imageFormat(req.Format)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	event := model.InputEvent{
		ID:        req.EventID,
		Input:     req.Input,
		Selection: req.Selection.apply(h.dashboard.DefaultSelection(ctx)),
	}
	if event.ID == "" {
		event.ID = types.NewEventID()
	}

	updates, err := h.dashboard.Dispatch(ctx, event)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := inputResponse{
		EventID: event.ID,
		Updates: make([]updateResponse, 0, len(updates)),
	}
	for _, update := range updates {
		item := updateResponse{Output: update.Output, Chart: update.Chart}
		if isImage {
			item.Image, err = h.dataURI(update.Chart, format)
			if err != nil {
				h.fail(w, r, goerr.Wrap(err, "failed to render chart",
					goerr.V("output", update.Output),
					goerr.V("event_id", event.ID)))
				return
			}
		}
		resp.Updates = append(resp.Updates, item)
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// dataURI renders result as a base64 data URI usable as an image source
func (h *DashboardHandler) dataURI(result *model.ChartResult, format types.ImageFormat) (string, error) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, result, format); err != nil {
		return "", err
	}
	return "data:" + format.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// selectionFromQuery reads site, low and high. Absent values fall back to
// the default selection.
func (h *DashboardHandler) selectionFromQuery(r *http.Request) (model.Selection, error) {
	query := r.URL.Query()
	sel := h.dashboard.DefaultSelection(r.Context())

	if site := query.Get("site"); site != "" {
		sel.Site = types.SiteID(site)
	}

	for _, bound := range []struct {
		name string
		dst  *float64
	}{
		{name: "low", dst: &sel.Payload.Low},
		{name: "high", dst: &sel.Payload.High},
	} {
		raw := query.Get(bound.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Selection{}, goerr.Wrap(err, "invalid payload bound",
				goerr.V("param", bound.name),
				goerr.V("value", raw),
				goerr.T(ErrTagBadRequest))
		}
		*bound.dst = v
	}

	return sel, nil
}

func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}
	writeError(w, r, err, status)
}
