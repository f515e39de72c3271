package models

import (
	"encoding/json"
	"testing"
)

func TestMethodUnit(t *testing.T) {
	if got := MethodMIC.Unit(); got != "mg/L" {
		t.Errorf("MIC unit = %q", got)
	}
	if got := MethodDisk.Unit(); got != "mm" {
		t.Errorf("DISK unit = %q", got)
	}
}

func TestBreakpointRecordJSON(t *testing.T) {
	s, r := 14.0, 13.0
	dose, category := "10", "Penicillins"
	in := []BreakpointRecord{
		{
			Guideline:     "EUCAST 2026",
			OrganismGroup: "Enterobacterales",
			Antimicrobial: "Ampicillin",
			AB:            "AMP",
			Method:        MethodMIC,
			BreakpointS:   &s,
			Unit:          "mg/L",
			Source:        "clinical",
		},
		{
			Guideline:     "EUCAST 2026",
			OrganismGroup: "Enterobacterales",
			Antimicrobial: "Ampicillin",
			AB:            "AMP",
			Category:      &category,
			Method:        MethodDisk,
			DiskDose:      &dose,
			BreakpointS:   &s,
			BreakpointR:   &r,
			Unit:          "mm",
			Source:        "clinical",
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out []BreakpointRecord
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	mic, disk := out[0], out[1]
	if mic.Method != MethodMIC || mic.AB != "AMP" || mic.Category != nil || mic.DiskDose != nil || mic.BreakpointR != nil {
		t.Errorf("unexpected MIC record: %+v", mic)
	}
	if mic.BreakpointS == nil || *mic.BreakpointS != 14 {
		t.Errorf("MIC BreakpointS = %v, expected 14", mic.BreakpointS)
	}
	if disk.Method != MethodDisk || disk.DiskDose == nil || *disk.DiskDose != "10" {
		t.Errorf("unexpected DISK record: %+v", disk)
	}
	if disk.Category == nil || *disk.Category != "Penicillins" {
		t.Errorf("DISK Category = %v, expected Penicillins", disk.Category)
	}
	if disk.BreakpointR == nil || *disk.BreakpointR != 13 {
		t.Errorf("DISK BreakpointR = %v, expected 13", disk.BreakpointR)
	}
}

func TestBreakpointRecordUnmarshalMICLayout(t *testing.T) {
	data := []byte(`{"guideline":"EUCAST 2026","organism_group":"Pseudomonas aeruginosa",
		"antimicrobial":"Piperacillin-tazobactam","ab":"TZP","category":null,"method":"MIC",
		"breakpoint_S":0.001,"breakpoint_R":16,"unit":"mg/L","indication":"uti","source":"clinical"}`)

	var rec BreakpointRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if rec.AB != "TZP" || rec.Method != MethodMIC || rec.Unit != "mg/L" || rec.DiskDose != nil {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.BreakpointS == nil || *rec.BreakpointS != 0.001 {
		t.Errorf("BreakpointS = %v, expected 0.001", rec.BreakpointS)
	}
	if rec.Indication == nil || *rec.Indication != "uti" {
		t.Errorf("Indication = %v, expected uti", rec.Indication)
	}

	if err := json.Unmarshal([]byte(`{"breakpoint_S":"eight"}`), &rec); err == nil {
		t.Errorf("expected error for non-numeric threshold")
	}
}
