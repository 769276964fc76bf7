package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validIssue() Issue {
	return Issue{
		Title:       "Broken streetlight on 5th Avenue",
		Description: "The light has been out for a week",
		IssueType:   RoadInfrastructure,
		Department:  "PWD",
		Status:      Reported,
		Location:    Location{Latitude: 20.932185, Longitude: 77.757218},
	}
}

func TestIssueValidate_OK(t *testing.T) {
	issue := validIssue()
	assert.Empty(t, issue.Validate())
}

func TestIssueValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Issue)
		message string
	}{
		{
			"title too short",
			func(i *Issue) { i.Title = "Pit" },
			"title must be between 5 and 100 characters",
		},
		{
			"latitude out of range",
			func(i *Issue) { i.Location.Latitude = 91 },
			"latitude must be between -90 and 90",
		},
		{
			"longitude out of range",
			func(i *Issue) { i.Location.Longitude = -180.5 },
			"longitude must be between -180 and 180",
		},
		{
			"unknown issue type",
			func(i *Issue) { i.IssueType = "Potholes" },
			"issueType must be a valid issue category",
		},
		{
			"unknown department",
			func(i *Issue) { i.Department = "Sanitation" },
			"department must be one of: MCD, PWD, Traffic, Water Supply, Electricity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := validIssue()
			tt.mutate(&issue)
			assert.Contains(t, issue.Validate(), tt.message)
		})
	}
}

func TestIssueValidate_BoundaryCoordinates(t *testing.T) {
	issue := validIssue()
	issue.Location = Location{Latitude: -90, Longitude: 180}
	assert.Empty(t, issue.Validate())
}

func TestIsValidIssueType(t *testing.T) {
	assert.True(t, IsValidIssueType("Road Infrastructure"))
	assert.True(t, IsValidIssueType("Public Safety"))
	assert.False(t, IsValidIssueType("road infrastructure"))
	assert.False(t, IsValidIssueType(""))
}
