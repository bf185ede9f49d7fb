package server

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/scene"
)

const testSceneFile = `# Scene: Single Sphere
# Group: Test Scenes
camera:
  look_from: [0, 0, 4]
  look_at: [0, 0, 0]
  vfov: 90
materials:
  - {name: red, type: lambertian, albedo: [200, 100, 50]}
spheres:
  - {center: [0, 0, 0], radius: 1, material: red}
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "single.yaml"), []byte(testSceneFile), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	ts := httptest.NewServer(NewServer(0, dir).Handler())
	t.Cleanup(ts.Close)
	return ts
}

type sseEvent struct {
	Type string
	Data string
}

func readSSEEvents(t *testing.T, body io.Reader) []sseEvent {
	t.Helper()
	var events []sseEvent
	var current sseEvent

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.Type = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.Data = strings.TrimPrefix(line, "data: ")
		case line == "" && current.Type != "":
			events = append(events, current)
			current = sseEvent{}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to read SSE stream: %v", err)
	}
	return events
}

func getJSON(t *testing.T, url string, status int, target interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != status {
		t.Fatalf("GET %s: expected status %d, got %d", url, status, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	getJSON(t, ts.URL+"/api/health", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer(t)

	var response scene.ScenesResponse
	getJSON(t, ts.URL+"/api/scenes", http.StatusOK, &response)

	if len(response.Groups) != 2 {
		t.Fatalf("Expected built-in and test groups, got %+v", response.Groups)
	}
	if response.Groups[0].Name != "Built-in Scenes" {
		t.Errorf("Built-in scenes should come first, got %q", response.Groups[0].Name)
	}
	fileGroup := response.Groups[1]
	if fileGroup.Name != "Test Scenes" || len(fileGroup.Scenes) != 1 || fileGroup.Scenes[0].ID != "file:single" {
		t.Errorf("Unexpected file scene group %+v", fileGroup)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	ts := newTestServer(t)

	var response struct {
		Scene    string                 `json:"scene"`
		Defaults map[string]interface{} `json:"defaults"`
	}
	getJSON(t, ts.URL+"/api/scene-config?scene=file:single", http.StatusOK, &response)

	if response.Defaults["width"] != 600.0 || response.Defaults["spheres"] != 1.0 {
		t.Errorf("Unexpected defaults %v", response.Defaults)
	}

	var errBody map[string]string
	getJSON(t, ts.URL+"/api/scene-config?scene=nope", http.StatusBadRequest, &errBody)
	if !strings.Contains(errBody["error"], "unknown scene") {
		t.Errorf("Unexpected error %q", errBody["error"])
	}
}

func TestHandleRender_StreamsPasses(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=file:single&width=16&height=16&maxSamples=2&maxPasses=2&tiles=false")
	if err != nil {
		t.Fatalf("Render request failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected SSE content type, got %q", ct)
	}

	events := readSSEEvents(t, resp.Body)
	var passes []PassUpdate
	sawComplete := false
	for _, event := range events {
		switch event.Type {
		case "passComplete":
			var update PassUpdate
			if err := json.Unmarshal([]byte(event.Data), &update); err != nil {
				t.Fatalf("Bad pass update: %v", err)
			}
			passes = append(passes, update)
		case "complete":
			sawComplete = true
		case "error":
			t.Fatalf("Unexpected error event: %s", event.Data)
		}
	}

	if len(passes) != 2 {
		t.Fatalf("Expected 2 passes, got %d", len(passes))
	}
	last := passes[len(passes)-1]
	if !last.IsComplete || last.MinSamples != 2 || last.TotalPixels != 256 {
		t.Errorf("Unexpected final pass %+v", last)
	}
	if last.ImageData == "" || last.PrimitiveCount != 1 {
		t.Errorf("Final pass should carry an image and sphere count")
	}
	if !sawComplete {
		t.Error("Missing complete event")
	}
}

func TestHandleRender_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"width too small", "width=5", "width must be between"},
		{"bad samples", "maxSamples=abc", "invalid maxSamples"},
		{"unknown scene", "scene=nope", "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("Render request failed: %v", err)
			}
			defer resp.Body.Close()

			events := readSSEEvents(t, resp.Body)
			if len(events) == 0 {
				t.Fatal("Expected an error event")
			}
			last := events[len(events)-1]
			if last.Type != "error" || !strings.Contains(last.Data, tt.message) {
				t.Errorf("Expected error containing %q, got %+v", tt.message, last)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	ts := newTestServer(t)

	var hit InspectResponse
	getJSON(t, ts.URL+"/api/inspect?scene=file:single&width=16&height=16&x=8&y=8", http.StatusOK, &hit)
	if !hit.Hit || hit.GeometryType != "sphere" || hit.MaterialType != "lambertian" {
		t.Fatalf("Expected a lambertian sphere hit, got %+v", hit)
	}
	if !hit.FrontFace || hit.Distance < 2.9 || hit.Distance > 3.1 {
		t.Errorf("Expected a front-face hit about 3 units away, got %+v", hit)
	}
	material := hit.Properties["material"].(map[string]interface{})
	if material["color"] != "#c86432" {
		t.Errorf("Expected albedo color #c86432, got %v", material["color"])
	}

	var miss InspectResponse
	getJSON(t, ts.URL+"/api/inspect?scene=file:single&width=16&height=16&x=0&y=0", http.StatusOK, &miss)
	if miss.Hit {
		t.Errorf("Corner pixel should miss the sphere, got %+v", miss)
	}

	var errBody map[string]string
	getJSON(t, ts.URL+"/api/inspect?scene=file:single&width=16&height=16&x=16&y=0", http.StatusBadRequest, &errBody)
	if errBody["error"] != "Pixel coordinates out of bounds" {
		t.Errorf("Unexpected error %q", errBody["error"])
	}
}
