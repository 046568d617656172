package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"urdu-digest/models"
)

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection("articles")}
}

// UpsertByURL upserts an article uniquely identified by its url and
// returns the document id.
func (r *ArticleRepository) UpsertByURL(ctx context.Context, a *models.Article) (primitive.ObjectID, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	filter := bson.M{"url": a.URL}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": a.CreatedAt,
			"view_count": int64(0),
		},
		"$set": bson.M{
			"updated_at":  a.UpdatedAt,
			"status":      a.Status,
			"url":         a.URL,
			"title":       a.Title,
			"content":     a.Content,
			"top_image":   a.TopImage,
			"rendered":    a.Rendered,
			"fetched_at":  a.FetchedAt,
			"digest":      a.Digest,
			"translation": a.Translation,
		},
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return oid, nil
	}
	// Updated an existing document: reload to get its id.
	existing, err := r.FindByURL(ctx, a.URL)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return existing.ID, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) FindByURL(ctx context.Context, url string) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"url": url}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

type ListArticlesOptions struct {
	Page     int
	PageSize int
}

// List returns articles ordered by created_at desc with simple
// pagination.
func (r *ArticleRepository) List(ctx context.Context, in ListArticlesOptions) ([]models.Article, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Article
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// IncrementViewCount bumps view_count and returns the new value.
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	var updated models.Article
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return 0, err
	}
	return updated.ViewCount, nil
}
