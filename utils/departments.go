package utils

// ValidDepartments is the single source of truth for the municipal
// departments issues can be routed to. Order is stable and is what
// clients render in their dropdowns.
var ValidDepartments = []string{
	"MCD",
	"PWD",
	"Traffic",
	"Water Supply",
	"Electricity",
}

// IsValidDepartment reports whether department is exactly one of the
// valid department names (case-sensitive).
func IsValidDepartment(department string) bool {
	for _, d := range ValidDepartments {
		if d == department {
			return true
		}
	}
	return false
}

// GetDepartments returns a copy of the valid department names.
func GetDepartments() []string {
	departments := make([]string, len(ValidDepartments))
	copy(departments, ValidDepartments)
	return departments
}
