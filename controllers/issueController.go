package controllers

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"civic-reporter-be/models"
	"civic-reporter-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// CreateIssue handles a citizen's multipart issue submission: it
// validates the fields, mints the human-readable issue code, persists
// the issue and stores any attached media.
func CreateIssue(c *gin.Context) {
	citizenID, exists := c.Get("citizen_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Citizen not authenticated"})
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(citizenID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid citizen ID"})
		return
	}

	title := c.DefaultPostForm("title", "Untitled")
	description := c.PostForm("description")
	issueType := c.PostForm("issueType")
	department := c.PostForm("department")

	loc, err := parseLocation(c.PostForm("location"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location JSON format"})
		return
	}

	missing := missingFields(title, description, loc, issueType, department)
	if anyMissing(missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please fill all the required fields",
			"missing": missing,
		})
		return
	}

	if !utils.IsValidDepartment(department) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":  "Invalid department. Must be one of: MCD, PWD, Traffic, Water Supply, Electricity",
			"received": department,
		})
		return
	}

	now := time.Now()
	issue := models.Issue{
		ID:          primitive.NewObjectID(),
		CitizenID:   reporterID,
		IssueType:   models.IssueType(issueType),
		Title:       title,
		Description: description,
		Status:      models.Reported,
		Location: models.Location{
			Latitude:  *loc.Latitude,
			Longitude: *loc.Longitude,
			Address:   loc.Address,
		},
		Department: department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if errs := issue.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  errs,
		})
		return
	}

	issueCollection := getCollection("issues")
	counterCollection := getCollection("counters")
	mediaCollection := getCollection("media")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// UX pre-check only; the unique index on title is the real guard.
	count, err := issueCollection.CountDocuments(ctx, bson.M{"title": title})
	if err != nil {
		serverError(c, "Error checking existing issue", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Issue with this title already exists"})
		return
	}

	seq, err := models.NextSequence(ctx, counterCollection, models.IssueCounterName)
	if err != nil {
		serverError(c, "Error allocating issue sequence", err)
		return
	}
	issue.CustomIssueID = utils.FormatIssueCode(now, seq)

	if _, err := issueCollection.InsertOne(ctx, issue); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Issue with this title already exists"})
			return
		}
		serverError(c, "Error inserting issue", err)
		return
	}

	files := formFiles(c)
	uploadDir := getenv("UPLOAD_DIR", "uploads")

	// Attachments are independent of each other, so the writes run in
	// parallel; the indexed slice keeps the response in input order.
	mediaDocs := make([]models.Media, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			url, err := saveUpload(c, uploadDir, fh)
			if err != nil {
				return err
			}
			media := models.Media{
				ID:        primitive.NewObjectID(),
				IssueID:   issue.ID,
				FileType:  models.ClassifyFileType(fh.Header.Get("Content-Type")),
				URL:       url,
				Filename:  fh.Filename,
				CreatedAt: time.Now(),
			}
			if _, err := mediaCollection.InsertOne(gctx, media); err != nil {
				return err
			}
			mediaDocs[i] = media
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		serverError(c, "Error saving issue media", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Issue created",
		"issue":   issue,
		"media":   mediaDocs,
	})
}

// GetIssues lists issues. Admin requesters only see issues routed to
// their own department; everyone else sees all of them.
func GetIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := getCollection("issues")
	mediaCollection := getCollection("media")
	citizenCollection := getCollection("citizens")

	query := bson.M{}
	if role, _ := c.Get("role"); role == "admin" {
		adminIDVal, _ := c.Get("admin_id")
		adminIDStr, _ := adminIDVal.(string)
		adminID, err := primitive.ObjectIDFromHex(adminIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid admin ID"})
			return
		}

		var admin models.Admin
		err = getCollection("admins").FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
			} else {
				log.Println("Error resolving admin:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			}
			return
		}
		if admin.Department != "" {
			query["department"] = admin.Department
		}
	}

	cursor, err := issueCollection.Find(ctx, query)
	if err != nil {
		log.Println("Error fetching issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		log.Println("Error decoding issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	summaries := make([]gin.H, 0, len(issues))
	for _, issue := range issues {
		reportedBy := "Anonymous"
		var citizen models.Citizen
		if err := citizenCollection.FindOne(ctx, bson.M{"_id": issue.CitizenID}).Decode(&citizen); err == nil && citizen.FullName != "" {
			reportedBy = citizen.FullName
		}

		var image interface{}
		var media models.Media
		if err := mediaCollection.FindOne(ctx, bson.M{"issueID": issue.ID}).Decode(&media); err == nil {
			image = media.URL
		}

		summaries = append(summaries, gin.H{
			"_id":         issue.ID,
			"title":       issue.Title,
			"description": issue.Description,
			"type":        issue.IssueType,
			"location":    issue.Location,
			"department":  issue.Department,
			"reportedBy":  reportedBy,
			"reportedAt":  issue.CreatedAt,
			"image":       image,
			"status":      issue.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"issues": summaries})
}

// GetDepartments returns the valid department names for client dropdowns.
func GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": utils.GetDepartments()})
}

// formFiles flattens every uploaded file part, preserving the order the
// parts arrived in within each field.
func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, fhs := range form.File {
		files = append(files, fhs...)
	}
	return files
}

// serverError logs the cause and answers with a generic 500; the detail
// is exposed only in development mode.
func serverError(c *gin.Context, logMsg string, err error) {
	log.Println(logMsg+":", err)
	body := gin.H{"message": "Internal server error"}
	if os.Getenv("GO_ENV") == "development" {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
