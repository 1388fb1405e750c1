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

const CollectionUsers = "Users"

type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(CollectionUsers)}
}

// Field names follow the layout the food-planner API reads.
type mongoUser struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Roles    []mongoRole        `bson:"roles"`
	Menu     []mongoMenuItem    `bson:"menu"`
}

type mongoMenuItem struct {
	ID                    string            `bson:"id"`
	Name                  string            `bson:"name"`
	Ingredients           []mongoIngredient `bson:"ingredients"`
	Categories            []string          `bson:"categories"`
	CourseType            string            `bson:"courseType"`
	PrimarilyCarbohydrate bool              `bson:"primarilyCarbohydrate"`
	Recipe                string            `bson:"recipe"`
}

type mongoIngredient struct {
	Name     string `bson:"name"`
	Quantity int    `bson:"quantity"`
	Unit     string `bson:"unit"`
}

func (r *UserRepository) CreateCollection(ctx context.Context) error {
	return createCollection(ctx, r.db, CollectionUsers)
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	doc, err := toMongoUser(user)
	if err != nil {
		return err
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return writeError("insert", CollectionUsers, err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, fromMongoUser(d))
	}
	return users, nil
}

func toMongoUser(u *domain.User) (mongoUser, error) {
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return mongoUser{}, fmt.Errorf("user %s: %w", u.Username, err)
	}

	doc := mongoUser{
		ID:       id,
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
		Roles:    make([]mongoRole, 0, len(u.Roles)),
		Menu:     make([]mongoMenuItem, 0, len(u.Menu)),
	}
	for _, role := range u.Roles {
		rd, err := toMongoRole(role)
		if err != nil {
			return mongoUser{}, fmt.Errorf("user %s: %w", u.Username, err)
		}
		doc.Roles = append(doc.Roles, rd)
	}
	for _, m := range u.Menu {
		item := mongoMenuItem{
			ID:                    m.ID,
			Name:                  m.Name,
			Ingredients:           make([]mongoIngredient, 0, len(m.Ingredients)),
			Categories:            append([]string{}, m.Categories...),
			CourseType:            string(m.CourseType),
			PrimarilyCarbohydrate: m.PrimarilyCarbohydrate,
			Recipe:                m.Recipe,
		}
		for _, ing := range m.Ingredients {
			item.Ingredients = append(item.Ingredients, mongoIngredient(ing))
		}
		doc.Menu = append(doc.Menu, item)
	}
	return doc, nil
}

func fromMongoUser(d mongoUser) domain.User {
	u := domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
	}
	for _, r := range d.Roles {
		u.Roles = append(u.Roles, fromMongoRole(r))
	}
	for _, m := range d.Menu {
		item := domain.MenuItem{
			ID:                    m.ID,
			Name:                  m.Name,
			Categories:            m.Categories,
			CourseType:            domain.CourseType(m.CourseType),
			PrimarilyCarbohydrate: m.PrimarilyCarbohydrate,
			Recipe:                m.Recipe,
		}
		for _, ing := range m.Ingredients {
			item.Ingredients = append(item.Ingredients, domain.Ingredient(ing))
		}
		u.Menu = append(u.Menu, item)
	}
	return u
}
