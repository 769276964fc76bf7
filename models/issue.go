package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civic-reporter-be/utils"
)

// IssueType enum
type IssueType string

const (
	RoadInfrastructure IssueType = "Road Infrastructure"
	WasteManagement    IssueType = "Waste Management"
	Environmental      IssueType = "Environmental Issues"
	Utilities          IssueType = "Utilities & Infrastructure"
	PublicSafety       IssueType = "Public Safety"
	OtherIssue         IssueType = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "Reported"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
	Rejected   IssueStatus = "Rejected"
	Pending    IssueStatus = "Pending"
)

// ValidIssueTypes lists the accepted issue categories; RoadInfrastructure
// is the default when a client omits the field.
var ValidIssueTypes = []IssueType{
	RoadInfrastructure,
	WasteManagement,
	Environmental,
	Utilities,
	PublicSafety,
	OtherIssue,
}

// IsValidIssueType reports whether t is one of the accepted categories.
func IsValidIssueType(t string) bool {
	for _, v := range ValidIssueTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

// Location is the geotagged position of an issue.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// Issue represents a civic issue reported by a citizen.
type Issue struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CustomIssueID string              `bson:"customIssueId" json:"customIssueId"`
	CitizenID     primitive.ObjectID  `bson:"citizenId" json:"citizenId"`
	IssueType     IssueType           `bson:"issueType" json:"issueType"`
	Title         string              `bson:"title" json:"title"`
	Description   string              `bson:"description" json:"description"`
	Status        IssueStatus         `bson:"status" json:"status"`
	Location      Location            `bson:"location" json:"location"`
	Department    string              `bson:"department" json:"department"`
	HandledBy     *primitive.ObjectID `bson:"handledBy,omitempty" json:"handledBy,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the field constraints the storage schema enforces and
// returns one message per violation.
func (i *Issue) Validate() []string {
	var errs []string
	if len(i.Title) < 5 || len(i.Title) > 100 {
		errs = append(errs, "title must be between 5 and 100 characters")
	}
	if i.Location.Latitude < -90 || i.Location.Latitude > 90 {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if i.Location.Longitude < -180 || i.Location.Longitude > 180 {
		errs = append(errs, "longitude must be between -180 and 180")
	}
	if !IsValidIssueType(string(i.IssueType)) {
		errs = append(errs, "issueType must be a valid issue category")
	}
	if !utils.IsValidDepartment(i.Department) {
		errs = append(errs, "department must be one of: MCD, PWD, Traffic, Water Supply, Electricity")
	}
	return errs
}

// EnsureIssueIndexes creates the unique indexes on title and customIssueId.
// The duplicate-title pre-check in the intake handler is a UX nicety; these
// indexes are the actual uniqueness guarantee.
func EnsureIssueIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "customIssueId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
