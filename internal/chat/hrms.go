package chat

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"hr-backend/internal/shared/telemetry"
)

// HRMS exposes employee and policy lookups over locally stored JSON data.
// It stands in for a real HRMS integration; the data files tolerate both a
// map-keyed-by-id shape and an {"employees": [...]} list shape.
type HRMS struct {
	employees map[string]any
	policies  map[string]any
}

// policyAliases normalizes section names across data-file vintages.
var policyAliases = map[string][]string{
	"onboarding":     {"onboarding", "onboarding_policy", "onboarding_checklist"},
	"work_from_home": {"work_from_home", "wfh", "remote", "wfh_policy", "remote_work_policy"},
	"leave":          {"leave", "leave_policy"},
	"dress_code":     {"dress_code", "dresscode", "attire"},
}

// LoadHRMS reads employees.json and policies.json from dataDir. Missing or
// malformed files yield an empty dataset, not an error.
func LoadHRMS(dataDir string) *HRMS {
	return &HRMS{
		employees: loadJSON(filepath.Join(dataDir, "employees.json")),
		policies:  loadJSON(filepath.Join(dataDir, "policies.json")),
	}
}

func loadJSON(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		telemetry.Error("chat.hrms_data_invalid", map[string]any{"path": path, "err": err.Error()})
		return map[string]any{}
	}
	return out
}

// Employee returns the record for an employee id, or nil.
func (h *HRMS) Employee(id string) map[string]any {
	if emp, ok := h.employees[id].(map[string]any); ok {
		return emp
	}
	list, ok := h.employees["employees"].([]any)
	if !ok {
		return nil
	}
	for _, item := range list {
		emp, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if asString(emp["id"]) == id {
			return emp
		}
	}
	return nil
}

// Policies returns the full policy dataset.
func (h *HRMS) Policies() map[string]any {
	return h.policies
}

// Policy returns one policy section, resolved through the alias table.
func (h *HRMS) Policy(section string) map[string]any {
	keys, ok := policyAliases[section]
	if !ok {
		keys = []string{section}
	}
	for _, k := range keys {
		if v, ok := h.policies[k].(map[string]any); ok {
			return v
		}
	}
	return nil
}

// LeaveBalance returns the employee's leave balance map, or nil.
func (h *HRMS) LeaveBalance(id string) map[string]any {
	return employeeSection(h.Employee(id), "leave_balance")
}

// Attendance returns the employee's attendance map, or nil.
func (h *HRMS) Attendance(id string) map[string]any {
	return employeeSection(h.Employee(id), "attendance")
}

// Performance returns the employee's performance map, or nil.
func (h *HRMS) Performance(id string) map[string]any {
	return employeeSection(h.Employee(id), "performance")
}

func employeeSection(emp map[string]any, key string) map[string]any {
	if emp == nil {
		return nil
	}
	if v, ok := emp[key].(map[string]any); ok {
		return v
	}
	return nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
