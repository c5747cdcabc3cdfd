package fare

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// LinearModel is a fitted linear regression: Intercept + sum(Coefficients[i] * x[i]).
// It is never mutated after loading and may be shared between goroutines.
type LinearModel struct {
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Samples      int       `json:"samples,omitempty"`
	TrainedAt    time.Time `json:"trained_at"`
}

// LoadModel reads a model artifact from path. Every failure wraps ErrModelLoad.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelLoad, err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrModelLoad, path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrModelLoad, path, err)
	}

	return &m, nil
}

// Save writes the model to path as JSON. The file is replaced atomically.
func (m *LinearModel) Save(path string) error {
	if err := m.validate(); err != nil {
		return fmt.Errorf("fare: refusing to save model: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("fare: failed to encode model: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fare: failed to create model directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".model-*.json")
	if err != nil {
		return fmt.Errorf("fare: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("fare: failed to write model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fare: failed to write model: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("fare: failed to move model into place: %w", err)
	}

	return nil
}

// Predict evaluates the model on x, which must follow the order of Features.
func (m *LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: expected %d features, got %d", ErrInvalidFeature, len(m.Coefficients), len(x))
	}

	y := m.Intercept
	for i, c := range m.Coefficients {
		y += c * x[i]
	}
	return y, nil
}

func (m *LinearModel) validate() error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("model has no coefficients")
	}
	if len(m.Features) != len(m.Coefficients) {
		return fmt.Errorf("model has %d feature names for %d coefficients", len(m.Features), len(m.Coefficients))
	}

	seen := make(map[string]struct{}, len(m.Features))
	for _, name := range m.Features {
		if name == "" {
			return fmt.Errorf("model has an empty feature name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate feature name %q", name)
		}
		seen[name] = struct{}{}
	}

	for i, c := range m.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(m.Intercept) || math.IsInf(m.Intercept, 0) {
		return fmt.Errorf("intercept is not finite")
	}

	return nil
}
