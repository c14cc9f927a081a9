package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hayate891/naev/pkg/mission"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <mission.json> [...]\n", os.Args[0])
		os.Exit(1)
	}

	validator := &MissionValidator{}
	failed := false

	for _, filename := range os.Args[1:] {
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid.\n", filename)
	}

	if failed {
		os.Exit(1)
	}
}

type MissionValidator struct {
	errors []string
}

func (v *MissionValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("mission file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidMissionFilename(nameWithoutExt) {
		return fmt.Errorf("mission filename '%s' must be lowercase snake_case (e.g., cargo_run.json, not cargo-run.json or CargoRun.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var d mission.Data
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&d); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateMission(&d, nameWithoutExt)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *MissionValidator) validateMission(d *mission.Data, filename string) {
	if d.Name == "" {
		v.addError("mission is missing a name")
	} else {
		v.validateIDFormat("mission name", d.Name)
		if d.Name != filename {
			v.addError(fmt.Sprintf("mission name '%s' should match the filename '%s.json'", d.Name, filename))
		}
	}

	switch d.Avail.Location {
	case mission.AvailabilityBar:
		// Bar missions materialize as patrons, so the display fields
		// must all be present.
		if d.NPC == "" {
			v.addError("bar mission is missing an npc name")
		}
		if d.Portrait == "" {
			v.addError("bar mission is missing a portrait")
		}
		if d.Description == "" {
			v.addError("bar mission is missing a description")
		}
	case mission.AvailabilityComputer:
		if d.Description == "" {
			v.addError("computer mission is missing a description")
		}
	case "":
		v.addError("mission is missing an availability location")
	default:
		v.addError(fmt.Sprintf("unknown availability location '%s' (expected 'bar' or 'computer')", d.Avail.Location))
	}

	if d.Avail.Chance < 0 || d.Avail.Chance > 100 {
		v.addError(fmt.Sprintf("availability chance %d is out of range (0-100)", d.Avail.Chance))
	}

	if d.Portrait != "" && !strings.HasPrefix(d.Portrait, "gfx/") {
		v.addError(fmt.Sprintf("portrait path '%s' should live under gfx/", d.Portrait))
	}

	for _, spob := range d.Spobs {
		if spob == "" {
			v.addError("spobs list contains an empty entry")
		}
	}
	for _, faction := range d.Factions {
		if faction == "" {
			v.addError("factions list contains an empty entry")
		}
	}
}

func (v *MissionValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *MissionValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidMissionFilename(name string) bool {
	// Allow 'x.' prefix for experimental missions
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
