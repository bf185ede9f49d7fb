package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Material types understood by scene files
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialDielectric = "dielectric"
)

// ErrInvalidSceneFile is wrapped by every validation error
var ErrInvalidSceneFile = errors.New("invalid scene file")

// Vec3Spec is an [x, y, z] triple
type Vec3Spec [3]float64

// ColorSpec is an [r, g, b] triple of 0-255 channels
type ColorSpec [3]uint8

// SceneFile is the YAML description of a sphere scene
type SceneFile struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Camera      CameraSpec      `yaml:"camera"`
	Sampling    SamplingSpec    `yaml:"sampling"`
	Background  *BackgroundSpec `yaml:"background"`
	Materials   []MaterialSpec  `yaml:"materials"`
	Spheres     []SphereSpec    `yaml:"spheres"`
}

// CameraSpec describes the camera. A missing up vector means +Y and a zero
// focus distance focuses on look_at.
type CameraSpec struct {
	LookFrom      Vec3Spec  `yaml:"look_from"`
	LookAt        Vec3Spec  `yaml:"look_at"`
	Up            *Vec3Spec `yaml:"up"`
	VFov          float64   `yaml:"vfov"`
	Aperture      float64   `yaml:"aperture"`
	FocusDistance float64   `yaml:"focus_distance"`
}

// SamplingSpec holds image settings; zero fields keep the defaults
type SamplingSpec struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

// BackgroundSpec is the sky gradient
type BackgroundSpec struct {
	Top    ColorSpec `yaml:"top"`
	Bottom ColorSpec `yaml:"bottom"`
}

// MaterialSpec is a named material definition
type MaterialSpec struct {
	Name            string     `yaml:"name"`
	Type            string     `yaml:"type"`
	Albedo          *ColorSpec `yaml:"albedo"`
	Fuzz            float64    `yaml:"fuzz"`
	RefractiveIndex float64    `yaml:"refractive_index"`
}

// SphereSpec places a sphere with a named material
type SphereSpec struct {
	Center   Vec3Spec `yaml:"center"`
	Radius   float64  `yaml:"radius"`
	Material string   `yaml:"material"`
}

// ParseSceneFile decodes and validates a scene file. Unknown keys are errors.
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrInvalidSceneFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneFile, err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadSceneFile loads and parses a YAML scene file that lives under root
func LoadSceneFile(root, filename string) (*SceneFile, error) {
	if err := validateFilePath(root, filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// Validate checks the camera placement, references and material parameters.
// Geometric limits such as positive radii are checked when the shapes are built.
func (f *SceneFile) Validate() error {
	if len(f.Spheres) == 0 {
		return fmt.Errorf("%w: no spheres", ErrInvalidSceneFile)
	}

	names := make(map[string]bool, len(f.Materials))
	for i, m := range f.Materials {
		if m.Name == "" {
			return fmt.Errorf("%w: material %d has no name", ErrInvalidSceneFile, i)
		}
		if names[m.Name] {
			return fmt.Errorf("%w: duplicate material %q", ErrInvalidSceneFile, m.Name)
		}
		names[m.Name] = true

		if err := m.validate(); err != nil {
			return fmt.Errorf("%w: material %q: %v", ErrInvalidSceneFile, m.Name, err)
		}
	}

	for i, s := range f.Spheres {
		if !names[s.Material] {
			return fmt.Errorf("%w: sphere %d uses unknown material %q", ErrInvalidSceneFile, i, s.Material)
		}
	}

	if f.Camera.LookFrom == f.Camera.LookAt {
		return fmt.Errorf("%w: camera look_from and look_at must differ", ErrInvalidSceneFile)
	}
	if f.Camera.FocusDistance < 0 {
		return fmt.Errorf("%w: camera focus_distance must not be negative, got %g", ErrInvalidSceneFile, f.Camera.FocusDistance)
	}

	return nil
}

func (m MaterialSpec) validate() error {
	switch m.Type {
	case MaterialLambertian:
		if m.Albedo == nil {
			return errors.New("lambertian needs an albedo")
		}
	case MaterialMetal:
		if m.Albedo == nil {
			return errors.New("metal needs an albedo")
		}
		if m.Fuzz < 0 {
			return fmt.Errorf("fuzz must not be negative, got %g", m.Fuzz)
		}
	case MaterialDielectric:
		if !(m.RefractiveIndex > 0) {
			return fmt.Errorf("refractive index must be positive, got %g", m.RefractiveIndex)
		}
	default:
		return fmt.Errorf("unknown type %q", m.Type)
	}
	return nil
}

// validateFilePath validates a file path for security issues. The cleaned
// path must stay inside root.
func validateFilePath(root, filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if root == "" {
		return fmt.Errorf("scenes directory cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml files are allowed")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid scenes directory: %w", err)
	}
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("file path must be in %s", root)
	}

	return nil
}
