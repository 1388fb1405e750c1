package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/food-planner/seeder/internal/core/domain"
)

const CollectionRoles = "Roles"

type RoleRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{db: db, coll: db.Collection(CollectionRoles)}
}

type mongoRole struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

func (r *RoleRepository) CreateCollection(ctx context.Context) error {
	return createCollection(ctx, r.db, CollectionRoles)
}

// InsertMany writes all roles in a single ordered insert.
func (r *RoleRepository) InsertMany(ctx context.Context, roles []domain.Role) error {
	docs := make([]interface{}, 0, len(roles))
	for _, role := range roles {
		doc, err := toMongoRole(role)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return writeError("insert", CollectionRoles, err)
	}
	return nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}

	var docs []mongoRole
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(docs))
	for _, d := range docs {
		roles = append(roles, fromMongoRole(d))
	}
	return roles, nil
}

func toMongoRole(role domain.Role) (mongoRole, error) {
	id, err := primitive.ObjectIDFromHex(role.ID)
	if err != nil {
		return mongoRole{}, fmt.Errorf("role %s: %w", role.Name, err)
	}
	return mongoRole{ID: id, Name: role.Name}, nil
}

func fromMongoRole(d mongoRole) domain.Role {
	return domain.Role{ID: d.ID.Hex(), Name: d.Name}
}
