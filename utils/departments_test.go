package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDepartment_ValidNames(t *testing.T) {
	for _, d := range []string{"MCD", "PWD", "Traffic", "Water Supply", "Electricity"} {
		assert.True(t, IsValidDepartment(d), "expected %q to be valid", d)
	}
}

func TestIsValidDepartment_InvalidNames(t *testing.T) {
	invalid := []string{
		"",
		"mcd",
		"pwd",
		"TRAFFIC",
		"Water supply",
		"Water Supply ",
		" MCD",
		"Sanitation",
		"Fire",
	}
	for _, d := range invalid {
		assert.False(t, IsValidDepartment(d), "expected %q to be invalid", d)
	}
}

func TestGetDepartments_StableOrder(t *testing.T) {
	want := []string{"MCD", "PWD", "Traffic", "Water Supply", "Electricity"}
	assert.Equal(t, want, GetDepartments())
	assert.Equal(t, want, GetDepartments())
}

func TestGetDepartments_ReturnsCopy(t *testing.T) {
	got := GetDepartments()
	got[0] = "mutated"
	assert.Equal(t, "MCD", GetDepartments()[0])
}
