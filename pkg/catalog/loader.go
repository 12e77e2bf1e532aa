package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropcal/entities"
)

// LoadFromFiles returns the built-in catalog extended (or overridden) by
// operator-supplied sheets. Any path may be empty; the corresponding source is
// skipped. cropsCSV carries one row per crop, activitiesCSV one row per
// activity, and stagesXLSX optionally carries critical-stage notes.
func LoadFromFiles(cropsCSV, activitiesCSV, stagesXLSX string) (*Catalog, error) {
	c := New()

	var loaded map[string]*CropTemplate
	if cropsCSV != "" {
		var err error
		loaded, err = loadCropsCSV(cropsCSV)
		if err != nil {
			return nil, err
		}
	}
	if activitiesCSV != "" {
		if loaded == nil {
			return nil, errors.New("activities sheet given without a crops sheet")
		}
		if err := loadActivitiesCSV(activitiesCSV, loaded); err != nil {
			return nil, err
		}
	}
	if stagesXLSX != "" && loaded != nil {
		_ = loadStageNotesXLSX(stagesXLSX, loaded)
	}

	for _, t := range loaded {
		if len(t.Activities) == 0 {
			return nil, fmt.Errorf("crop %q has no activities", t.Name)
		}
		c.put(*t)
	}
	return c, nil
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type headerMap map[string]int

func readHeader(head []string) headerMap {
	h := headerMap{}
	for i, v := range head {
		h[normHeader(v)] = i
	}
	return h
}

func (h headerMap) findAny(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[normHeader(k)]; ok {
			return idx
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func loadCropsCSV(path string) (map[string]*CropTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	h := readHeader(head)

	cName := h.findAny("Crop", "name", "crop_name")
	cDur := h.findAny("DurationDays", "duration", "days")
	cTMin := h.findAny("TempMin", "temp_min", "mintemp")
	cTMax := h.findAny("TempMax", "temp_max", "maxtemp")
	cRain := h.findAny("RainfallThresholdMm", "rainfall_threshold_mm", "rainthreshold")
	cPhLo := h.findAny("SoilPhMin", "ph_min")
	cPhHi := h.findAny("SoilPhMax", "ph_max")
	cSci := h.findAny("ScientificName", "scientific_name")
	cSrc := h.findAny("DataSource", "source")

	if cName == -1 || cDur == -1 {
		return nil, fmt.Errorf("crops sheet missing required columns. Found headers: %v\nNeed at least: Crop, DurationDays", head)
	}

	out := map[string]*CropTemplate{}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		dur, _ := strconv.Atoi(cell(rec, cDur))
		if dur <= 0 {
			continue // skip invalid rows
		}
		name := cell(rec, cName)
		if name == "" {
			continue
		}
		tmin, _ := strconv.ParseFloat(cell(rec, cTMin), 64)
		tmax, _ := strconv.ParseFloat(cell(rec, cTMax), 64)
		rain, _ := strconv.ParseFloat(cell(rec, cRain), 64)
		phLo, _ := strconv.ParseFloat(cell(rec, cPhLo), 64)
		phHi, _ := strconv.ParseFloat(cell(rec, cPhHi), 64)
		if rain == 0 {
			rain = 50 // provider default when the sheet omits it
		}
		out[name] = &CropTemplate{
			Name:           name,
			ScientificName: cell(rec, cSci),
			DurationDays:   dur,
			Optimal: entities.OptimalConditions{
				TempMin:             tmin,
				TempMax:             tmax,
				RainfallThresholdMm: rain,
				SoilPh:              [2]float64{phLo, phHi},
			},
			DataSource:       cell(rec, cSrc),
			ValidationStatus: "Operator-supplied sheet",
		}
	}
	return out, nil
}

func loadActivitiesCSV(path string, crops map[string]*CropTemplate) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	h := readHeader(head)

	cCrop := h.findAny("Crop", "crop_name")
	cName := h.findAny("Name", "activity", "activity_name")
	cDay := h.findAny("Day", "day_offset", "offset")
	cCat := h.findAny("Category", "type")
	cDesc := h.findAny("Description", "desc", "notes")
	cSrc := h.findAny("Source", "reference")

	if cCrop == -1 || cName == -1 || cDay == -1 || cCat == -1 {
		return fmt.Errorf("activities sheet missing required columns. Found headers: %v\nNeed at least: Crop, Name, Day, Category", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		t, ok := crops[cell(rec, cCrop)]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(cell(rec, cDay))
		if err != nil || day < 0 || day > t.DurationDays {
			continue // offsets must stay inside the crop duration
		}
		src := cell(rec, cSrc)
		if src == "" {
			src = "Standard practice"
		}
		t.Activities = append(t.Activities, ActivityTemplate{
			Name:        cell(rec, cName),
			Day:         day,
			Category:    cell(rec, cCat),
			Description: cell(rec, cDesc),
			Source:      src,
		})
	}
	return nil
}

// loadStageNotesXLSX reads an optional workbook of critical-stage notes:
// columns Crop, Stage, Note on the first sheet.
func loadStageNotesXLSX(path string, crops map[string]*CropTemplate) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return err
	}
	h := readHeader(rows[0])
	cCrop := h.findAny("Crop")
	cStage := h.findAny("Stage")
	cNote := h.findAny("Note", "notes")
	if cCrop == -1 || cStage == -1 || cNote == -1 {
		return nil
	}
	for _, rec := range rows[1:] {
		t, ok := crops[cell(rec, cCrop)]
		if !ok {
			continue
		}
		stage, note := cell(rec, cStage), cell(rec, cNote)
		if stage == "" || note == "" {
			continue
		}
		if t.Optimal.CriticalStages == nil {
			t.Optimal.CriticalStages = map[string]string{}
		}
		t.Optimal.CriticalStages[stage] = note
	}
	return nil
}
