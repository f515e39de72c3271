// Package models defines the records produced by breakpoint extraction.
package models

import (
	"bytes"
	"encoding/json"
)

// Method is the susceptibility testing method a breakpoint applies to.
type Method string

const (
	// MethodMIC is broth/agar dilution, thresholds in mg/L.
	MethodMIC Method = "MIC"
	// MethodDisk is disk diffusion, thresholds are zone diameters in mm.
	MethodDisk Method = "DISK"
)

// Unit returns the measurement unit for the method.
func (m Method) Unit() string {
	if m == MethodDisk {
		return "mm"
	}
	return "mg/L"
}

// BreakpointRecord is a single clinical breakpoint for one agent, one
// organism group and one method.
type BreakpointRecord struct {
	// Guideline identifies the source edition (e.g. "EUCAST 2026").
	Guideline string
	// OrganismGroup is the canonical organism group name.
	OrganismGroup string
	// Antimicrobial is the display name with footnote markers removed.
	Antimicrobial string
	// AB is the short antimicrobial code.
	AB string
	// Category is the drug class header in effect for the row (nil if none seen yet).
	Category *string
	// Method is MIC or DISK.
	Method Method
	// BreakpointS is the susceptible threshold.
	BreakpointS *float64
	// BreakpointR is the resistant threshold.
	BreakpointR *float64
	// DiskDose is the disk potency label. Only meaningful for DISK records.
	DiskDose *string
	// Unit is "mg/L" for MIC and "mm" for DISK.
	Unit string
	// Indication is the clinical indication qualifier (nil if none).
	Indication *string
	// Source is the classification tag (e.g. "clinical").
	Source string
}

type micRecordJSON struct {
	Guideline     string   `json:"guideline"`
	OrganismGroup string   `json:"organism_group"`
	Antimicrobial string   `json:"antimicrobial"`
	AB            string   `json:"ab"`
	Category      *string  `json:"category"`
	Method        Method   `json:"method"`
	BreakpointS   *float64 `json:"breakpoint_S"`
	BreakpointR   *float64 `json:"breakpoint_R"`
	Unit          string   `json:"unit"`
	Indication    *string  `json:"indication"`
	Source        string   `json:"source"`
}

type diskRecordJSON struct {
	Guideline     string   `json:"guideline"`
	OrganismGroup string   `json:"organism_group"`
	Antimicrobial string   `json:"antimicrobial"`
	AB            string   `json:"ab"`
	Category      *string  `json:"category"`
	Method        Method   `json:"method"`
	DiskDose      *string  `json:"disk_dose"`
	BreakpointS   *float64 `json:"breakpoint_S"`
	BreakpointR   *float64 `json:"breakpoint_R"`
	Unit          string   `json:"unit"`
	Indication    *string  `json:"indication"`
	Source        string   `json:"source"`
}

// MarshalJSON writes the record with a fixed key order. DISK records carry
// disk_dose right after method; MIC records omit the key.
func (r BreakpointRecord) MarshalJSON() ([]byte, error) {
	if r.Method == MethodDisk {
		return marshalRecord(diskRecordJSON{
			Guideline:     r.Guideline,
			OrganismGroup: r.OrganismGroup,
			Antimicrobial: r.Antimicrobial,
			AB:            r.AB,
			Category:      r.Category,
			Method:        r.Method,
			DiskDose:      r.DiskDose,
			BreakpointS:   r.BreakpointS,
			BreakpointR:   r.BreakpointR,
			Unit:          r.Unit,
			Indication:    r.Indication,
			Source:        r.Source,
		})
	}
	return marshalRecord(micRecordJSON{
		Guideline:     r.Guideline,
		OrganismGroup: r.OrganismGroup,
		Antimicrobial: r.Antimicrobial,
		AB:            r.AB,
		Category:      r.Category,
		Method:        r.Method,
		BreakpointS:   r.BreakpointS,
		BreakpointR:   r.BreakpointR,
		Unit:          r.Unit,
		Indication:    r.Indication,
		Source:        r.Source,
	})
}

// marshalRecord encodes v without HTML escaping so agent names keep
// characters such as '<' and '&' verbatim.
func marshalRecord(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON accepts both the MIC and DISK layouts.
func (r *BreakpointRecord) UnmarshalJSON(data []byte) error {
	var raw diskRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = BreakpointRecord{
		Guideline:     raw.Guideline,
		OrganismGroup: raw.OrganismGroup,
		Antimicrobial: raw.Antimicrobial,
		AB:            raw.AB,
		Category:      raw.Category,
		Method:        raw.Method,
		DiskDose:      raw.DiskDose,
		BreakpointS:   raw.BreakpointS,
		BreakpointR:   raw.BreakpointR,
		Unit:          raw.Unit,
		Indication:    raw.Indication,
		Source:        raw.Source,
	}
	return nil
}
