package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IssueCounterName is the counter backing issue code suffixes.
const IssueCounterName = "issueIdCounter"

// Counter is a named monotonically increasing sequence.
type Counter struct {
	ID  string `bson:"_id" json:"id"`
	Seq int64  `bson:"seq" json:"seq"`
}

// NextSequence atomically increments the named counter and returns the
// post-increment value, creating the counter at 1 if it does not exist.
// The increment and read are a single findOneAndUpdate so two concurrent
// callers can never observe the same value.
func NextSequence(ctx context.Context, collection *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter Counter
	err := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
