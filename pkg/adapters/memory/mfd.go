package memory

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/quakeforge/logictree/pkg/ports"
)

// MFD extends the boundary MFD contract with deep copying, which Source.Clone
// needs to keep copies independently mutable.
type MFD interface {
	ports.MFD
	Clone() MFD
}

// decode maps a modify parameter bundle onto a typed parameter struct.
func decode(params map[string]any, out any) error {
	if err := mapstructure.Decode(params, out); err != nil {
		return fmt.Errorf("decoding modify parameters: %w", err)
	}
	return nil
}

// TruncatedGRMFD is a doubly truncated Gutenberg-Richter distribution.
type TruncatedGRMFD struct {
	AVal     float64
	BVal     float64
	MinMag   float64
	MaxMag   float64
	BinWidth float64
}

// Modify supports set_ab, increment_b, increment_max_mag and set_max_mag.
func (m *TruncatedGRMFD) Modify(operation string, params map[string]any) error {
	switch operation {
	case "set_ab":
		var p struct {
			AVal float64 `mapstructure:"a_val"`
			BVal float64 `mapstructure:"b_val"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		m.AVal, m.BVal = p.AVal, p.BVal
	case "increment_b":
		var p struct {
			Value float64 `mapstructure:"value"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		m.BVal += p.Value
	case "increment_max_mag":
		var p struct {
			Value float64 `mapstructure:"value"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		m.MaxMag += p.Value
	case "set_max_mag":
		var p struct {
			Value float64 `mapstructure:"value"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		m.MaxMag = p.Value
	default:
		return fmt.Errorf("%w: %q on a truncated GR MFD", ports.ErrUnsupportedOperation, operation)
	}
	return nil
}

// Clone returns an independent copy.
func (m *TruncatedGRMFD) Clone() MFD {
	c := *m
	return &c
}

// EvenlyDiscretizedMFD is an MFD given by explicit occurrence rates per
// magnitude bin.
type EvenlyDiscretizedMFD struct {
	MinMag          float64
	BinWidth        float64
	OccurrenceRates []float64
}

// Modify supports set_mfd, replacing the whole discretization.
func (m *EvenlyDiscretizedMFD) Modify(operation string, params map[string]any) error {
	if operation != "set_mfd" {
		return fmt.Errorf("%w: %q on an evenly discretized MFD", ports.ErrUnsupportedOperation, operation)
	}
	var p struct {
		MinMag          float64   `mapstructure:"min_mag"`
		BinWidth        float64   `mapstructure:"bin_width"`
		OccurrenceRates []float64 `mapstructure:"occurrence_rates"`
	}
	if err := decode(params, &p); err != nil {
		return err
	}
	m.MinMag = p.MinMag
	m.BinWidth = p.BinWidth
	m.OccurrenceRates = append([]float64(nil), p.OccurrenceRates...)
	return nil
}

// Clone returns an independent copy, rates included.
func (m *EvenlyDiscretizedMFD) Clone() MFD {
	c := *m
	c.OccurrenceRates = append([]float64(nil), m.OccurrenceRates...)
	return &c
}
