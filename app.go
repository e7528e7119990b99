package main

import (
	"context"
	"log"

	"github.com/chazu/domekit/pkg/dome"
	"github.com/chazu/domekit/pkg/engine"
)

// defaultPalette is used by the frontend form before the user picks colors.
var defaultPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
}

// MeshData is the JSON-serializable mesh format sent to the frontend. The
// renderer owns shading, camera, lighting, and background; it only receives
// buffers.
type MeshData struct {
	Positions  []float32 `json:"positions"`
	Faces      []uint32  `json:"faces"`
	FaceColors []uint32  `json:"faceColors"`
	Edges      []uint32  `json:"edges"`
	Palette    []string  `json:"palette"`
	Variant    string    `json:"variant"`
}

// ErrorData is a JSON-serializable error for the frontend.
type ErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// GenerateResult is the full result returned to the frontend.
type GenerateResult struct {
	Meshes []MeshData  `json:"meshes"`
	Errors []ErrorData `json:"errors"`
}

// NewApp creates a new App with a script engine.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Variants returns the variant names for the frontend's shape selector.
func (a *App) Variants() []string {
	var names []string
	for _, v := range dome.Variants() {
		names = append(names, v.Name())
	}
	return names
}

// DefaultPalette returns the starting palette for the frontend form.
func (a *App) DefaultPalette() []string {
	return defaultPalette
}

// Generate builds one dome from the form controls. This is the primary
// binding: the frontend calls it on every parameter change and replaces the
// rendered mesh with the result, discarding stale in-flight responses.
func (a *App) Generate(radius float64, frequency int, variantName string, palette []string) GenerateResult {
	result := GenerateResult{
		Meshes: []MeshData{},
		Errors: []ErrorData{},
	}

	variant, err := dome.ParseVariant(variantName)
	if err != nil {
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	mesh, err := dome.Generate(dome.Params{
		Radius:    radius,
		Frequency: frequency,
		Variant:   variant,
		Palette:   palette,
	})
	if err != nil {
		log.Printf("Generate error: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	result.Meshes = append(result.Meshes, meshData(mesh, variant.Name()))
	return result
}

// Evaluate takes Lisp source and returns mesh data + errors for every dome
// the script declares.
func (a *App) Evaluate(source string) GenerateResult {
	result := GenerateResult{
		Meshes: []MeshData{},
		Errors: []ErrorData{},
	}

	// Step 1: Evaluate the Lisp source into dome requests.
	requests, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, ErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Generate a mesh per request.
	for i, p := range requests {
		mesh, err := dome.Generate(p)
		if err != nil {
			log.Printf("Generate error for dome #%d: %v", i, err)
			result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
			return result
		}
		result.Meshes = append(result.Meshes, meshData(mesh, p.Variant.Name()))
	}

	return result
}

// meshData converts a dome.Mesh to the frontend format.
func meshData(m *dome.Mesh, variant string) MeshData {
	return MeshData{
		Positions:  m.Positions,
		Faces:      m.Faces,
		FaceColors: m.FaceColors,
		Edges:      m.Edges,
		Palette:    m.Palette,
		Variant:    variant,
	}
}
