package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

const defaultCollection = "profiles"

// ProfileRepository stores profiles in a single collection. Field names
// match the documents written by earlier versions of the directory, so the
// password hash lives under "password".
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database, collection string) *ProfileRepository {
	if collection == "" {
		collection = defaultCollection
	}
	return &ProfileRepository{col: db.Collection(collection)}
}

type profileDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role,omitempty"`
	Bio       string             `bson:"bio,omitempty"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *profileDocument) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Role:         d.Role,
		Bio:          d.Bio,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// containsPattern builds a case-insensitive regex that matches s literally.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// List returns profiles newest first. Query and NameContains are literal,
// case-insensitive substring matches.
func (r *ProfileRepository) List(ctx context.Context, f ports.ProfileFilter) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Query != "" {
		re := containsPattern(f.Query)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"email": re},
			bson.M{"role": re},
		}
	}
	if f.NameContains != "" {
		filter["name"] = containsPattern(f.NameContains)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []profileDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	out := make([]*domain.Profile, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail matches the whole address, ignoring case.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	re := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}
	return r.findOne(ctx, bson.M{"email": re})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.M) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := profileDocument{
		ID:        primitive.NewObjectID(),
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		Bio:       p.Bio,
		Password:  p.PasswordHash,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return doc.toDomain(), nil
}

// Update sets only the supplied fields and returns the document after the update.
func (r *ProfileRepository) Update(ctx context.Context, id string, c ports.ProfileChanges) (*domain.Profile, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": c.UpdatedAt}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Email != nil {
		set["email"] = *c.Email
	}
	if c.Role != nil {
		set["role"] = *c.Role
	}
	if c.Bio != nil {
		set["bio"] = *c.Bio
	}
	if c.PasswordHash != nil {
		set["password"] = *c.PasswordHash
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc profileDocument
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the list and login queries rely on.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_ci").SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
