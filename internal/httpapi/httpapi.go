// Package httpapi exposes the color tools as a small REST API.
//
// Every route mirrors an MCP tool, so the same engine can serve both
// MCP-speaking clients over stdio and plain HTTP consumers. Soft lookup
// failures (missing images, out-of-bounds coordinates) map to 404 and
// malformed requests to 400; everything else is a 500.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tdhoang/color-tools-mcp/internal/colorspace"
	"github.com/tdhoang/color-tools-mcp/internal/extraction"
	"github.com/tdhoang/color-tools-mcp/internal/imaging"
	"github.com/tdhoang/color-tools-mcp/internal/naming"
	"github.com/tdhoang/color-tools-mcp/internal/palette"
)

// API serves color operations over HTTP, sharing the buffer cache and
// named-color table with the MCP server.
type API struct {
	cache *imaging.BufferCache
	namer *naming.Namer
}

// New creates an API backed by the given cache and color table.
func New(cache *imaging.BufferCache, namer *naming.Namer) *API {
	return &API{cache: cache, namer: namer}
}

// Router builds the chi router with all API routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", a.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/dimensions", a.handleDimensions)
		r.Get("/sample", a.handleSample)
		r.Get("/sample/center", a.handleSampleCenter)
		r.Get("/sample/region", a.handleSampleRegion)
		r.Get("/sample/grid", a.handleSampleGrid)
		r.Get("/palette", a.handlePalette)
		r.Get("/preview", a.handlePreview)
		r.Get("/convert", a.handleConvert)
		r.Get("/name", a.handleName)
		r.Post("/cache/clear", a.handleCacheClear)
	})

	return r
}

// colorPayload is one fully expanded color in an API response.
type colorPayload struct {
	colorspace.Expansion
	Alpha        int    `json:"alpha"`
	Name         string `json:"name"`
	NameVi       string `json:"name_vi"`
	Brightness   int    `json:"brightness"`
	ContrastText string `json:"contrast_text"`
}

func (a *API) expand(s imaging.Sample) colorPayload {
	rgb := colorspace.RGB{R: int(s.R), G: int(s.G), B: int(s.B)}
	entry := a.namer.NearestEntry(rgb.Hex())
	return colorPayload{
		Expansion:    colorspace.Expand(rgb),
		Alpha:        int(s.A),
		Name:         entry.Name,
		NameVi:       entry.NameVi,
		Brightness:   rgb.Brightness(),
		ContrastText: rgb.ContrastText(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeOpError maps engine errors onto HTTP status codes.
func writeOpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, imaging.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, colorspace.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// intQuery parses an integer query parameter, returning def when absent.
func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func floatQuery(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type dimensionsResponse struct {
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (a *API) handleDimensions(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	width, height, err := a.cache.Dimensions(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dimensionsResponse{URI: uri, Width: width, Height: height})
}

type sampleResponse struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Method string       `json:"method"`
	Color  colorPayload `json:"color"`
}

func (a *API) handleSample(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	x, err := intQuery(r, "x", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid x parameter")
		return
	}
	y, err := intQuery(r, "y", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid y parameter")
		return
	}

	ext := extraction.Select(a.cache, uri)
	sample, err := ext.ColorAt(uri, x, y)
	if err != nil {
		writeOpError(w, err)
		return
	}

	method := "direct"
	if _, ok := ext.(*extraction.Heuristic); ok {
		method = "heuristic"
	}
	writeJSON(w, http.StatusOK, sampleResponse{X: x, Y: y, Method: method, Color: a.expand(*sample)})
}

func (a *API) handleSampleCenter(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	buf, err := a.cache.Load(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	sample, err := imaging.CenterColor(buf)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sampleResponse{
		X:      buf.Width / 2,
		Y:      buf.Height / 2,
		Method: "direct",
		Color:  a.expand(*sample),
	})
}

func (a *API) handleSampleRegion(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	x, err := intQuery(r, "x", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid x parameter")
		return
	}
	y, err := intQuery(r, "y", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid y parameter")
		return
	}
	radius, err := intQuery(r, "radius", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid radius parameter")
		return
	}

	buf, err := a.cache.Load(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	sample, err := imaging.RegionAverage(buf, x, y, radius)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sampleResponse{X: x, Y: y, Method: "direct", Color: a.expand(*sample)})
}

type gridResponse struct {
	GridSize int            `json:"grid_size"`
	Samples  []colorPayload `json:"samples"`
}

func (a *API) handleSampleGrid(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	gridSize, err := intQuery(r, "grid_size", 3)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid grid_size parameter")
		return
	}

	buf, err := a.cache.Load(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	samples := imaging.GridSample(buf, gridSize)
	payloads := make([]colorPayload, len(samples))
	for i, s := range samples {
		payloads[i] = a.expand(s)
	}
	writeJSON(w, http.StatusOK, gridResponse{GridSize: gridSize, Samples: payloads})
}

type paletteColor struct {
	palette.Cluster
	Name   string `json:"name"`
	NameVi string `json:"name_vi"`
}

type paletteResponse struct {
	Strategy string         `json:"strategy"`
	Colors   []paletteColor `json:"colors"`
}

func (a *API) handlePalette(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	strategy := r.URL.Query().Get("strategy")
	if strategy == "" {
		strategy = string(palette.StrategyDominant)
	}
	maxColors, err := intQuery(r, "max_colors", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid max_colors parameter")
		return
	}
	sampleRate, err := intQuery(r, "sample_rate", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sample_rate parameter")
		return
	}
	quality, err := intQuery(r, "quality", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quality parameter")
		return
	}

	buf, err := a.cache.Load(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	clusters, err := palette.Extract(buf, palette.Strategy(strategy), palette.Options{
		MaxColors:  maxColors,
		SampleRate: sampleRate,
		Quality:    quality,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	colors := make([]paletteColor, len(clusters))
	for i, c := range clusters {
		entry := a.namer.NearestEntry(c.Hex)
		colors[i] = paletteColor{Cluster: c, Name: entry.Name, NameVi: entry.NameVi}
	}
	writeJSON(w, http.StatusOK, paletteResponse{Strategy: strategy, Colors: colors})
}

func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeError(w, http.StatusBadRequest, "missing uri parameter")
		return
	}
	x1, err1 := intQuery(r, "x1", 0)
	y1, err2 := intQuery(r, "y1", 0)
	x2, err3 := intQuery(r, "x2", 0)
	y2, err4 := intQuery(r, "y2", 0)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		writeError(w, http.StatusBadRequest, "invalid region coordinates")
		return
	}
	scale, err := floatQuery(r, "scale", 1.0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scale parameter")
		return
	}

	buf, err := a.cache.Load(uri)
	if err != nil {
		writeOpError(w, err)
		return
	}
	preview, err := imaging.Preview(buf, x1, y1, x2, y2, scale)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

type convertResponse struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Result interface{} `json:"result"`
}

func (a *API) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := colorspace.Format(q.Get("from"))
	to := colorspace.Format(q.Get("to"))
	raw := q.Get("value")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing value parameter")
		return
	}

	value, err := decodeValue(raw, from)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := colorspace.Convert(value, from, to)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{From: string(from), To: string(to), Result: result})
}

// decodeValue parses the value query parameter: a bare hex string for the
// hex format, a JSON object of components for everything else.
func decodeValue(raw string, from colorspace.Format) (interface{}, error) {
	if from == colorspace.FormatHex {
		return raw, nil
	}

	switch from {
	case colorspace.FormatRGB:
		var c colorspace.RGB
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	case colorspace.FormatHSL:
		var c colorspace.HSL
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	case colorspace.FormatHSV:
		var c colorspace.HSV
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	case colorspace.FormatCMYK:
		var c colorspace.CMYK
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	case colorspace.FormatYUV:
		var c colorspace.YUV
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	case colorspace.FormatRYB:
		var c colorspace.RYB
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, colorspace.ErrUnsupportedFormat
	}
}

type nameResponse struct {
	Hex     string `json:"hex"`
	Nearest string `json:"nearest"`
	Name    string `json:"name"`
	NameEn  string `json:"name_en"`
	NameVi  string `json:"name_vi"`
}

func (a *API) handleName(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")
	if hex == "" {
		writeError(w, http.StatusBadRequest, "missing hex parameter")
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}
	entry := a.namer.NearestEntry(hex)
	writeJSON(w, http.StatusOK, nameResponse{
		Hex:     hex,
		Nearest: entry.Hex,
		Name:    a.namer.Nearest(hex, lang),
		NameEn:  entry.Name,
		NameVi:  entry.NameVi,
	})
}

type cacheClearResponse struct {
	Cleared int `json:"cleared"`
}

func (a *API) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	n := a.cache.Len()
	a.cache.Clear()
	writeJSON(w, http.StatusOK, cacheClearResponse{Cleared: n})
}
