package svgenius

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options tunes the engine. Weights and tolerances that are not positive,
// and an empty Easing, select their defaults.
type Options struct {
	// CurveWeight multiplies the length of curve segments when the
	// equalizer decides where to insert anchors. It is a tuning heuristic:
	// values above one favour curves, which lose more shape per anchor.
	CurveWeight float64 `toml:"curve_weight" yaml:"curve_weight"`

	// LineTolerance is the distance under which a line or quadratic
	// command is treated as zero length by the optimizer.
	LineTolerance float64 `toml:"line_tolerance" yaml:"line_tolerance"`

	// JoinTolerance is the looser distance used for degenerate cubic
	// joins left behind by splicing.
	JoinTolerance float64 `toml:"join_tolerance" yaml:"join_tolerance"`

	// Padding is the fraction of the content size added on every side of
	// an output viewport.
	Padding float64 `toml:"padding" yaml:"padding"`

	// Precision is the maximum number of decimals in output path data.
	// Zero keeps numbers exact.
	Precision int `toml:"precision" yaml:"precision"`

	// Easing shapes the interpolation parameter.
	Easing Easing `toml:"easing" yaml:"easing"`
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		CurveWeight:   1.5,
		LineTolerance: 1e-3,
		JoinTolerance: 1,
		Padding:       0.1,
		Easing:        EaseInOut,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.CurveWeight <= 0 {
		o.CurveWeight = def.CurveWeight
	}
	if o.LineTolerance <= 0 {
		o.LineTolerance = def.LineTolerance
	}
	if o.JoinTolerance <= 0 {
		o.JoinTolerance = def.JoinTolerance
	}
	if o.Padding < 0 {
		o.Padding = def.Padding
	}
	if o.Precision < 0 {
		o.Precision = 0
	}
	if o.Easing == "" {
		o.Easing = def.Easing
	}
	return o
}

// LoadOptions reads options from a TOML or YAML file, chosen by the file
// extension. Fields missing from the file keep their defaults.
func LoadOptions(name string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(name)
	if err != nil {
		return opts, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	default:
		return opts, fmt.Errorf("options %s: unsupported file type", name)
	}
	if err != nil {
		return DefaultOptions(), fmt.Errorf("options %s: %w", name, err)
	}
	opts = opts.withDefaults()
	if _, err := ParseEasing(string(opts.Easing)); err != nil {
		return DefaultOptions(), fmt.Errorf("options %s: %w", name, err)
	}
	return opts, nil
}
