package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credibank/credit-system/internal/core/domain"
)

const collectionCustomers = "customers"

// CustomerRepository implements ports.CustomerRepository using MongoDB.
// Unique indexes on cpf and email enforce the cross-customer uniqueness
// invariant; a conflicting write fails instead of silently succeeding.
type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

type customerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	CPF          string             `bson:"cpf"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	ZipCode      string             `bson:"zip_code"`
	Street       string             `bson:"street"`
	Income       float64            `bson:"income"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func toCustomerDoc(c *domain.Customer) customerDoc {
	return customerDoc{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		CPF:          c.CPF,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		ZipCode:      c.Address.ZipCode,
		Street:       c.Address.Street,
		Income:       c.Income,
		CreatedAt:    c.CreatedAt.UTC(),
	}
}

func (d customerDoc) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		CPF:          d.CPF,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Address: domain.Address{
			ZipCode: d.ZipCode,
			Street:  d.Street,
		},
		Income:    d.Income,
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a new customer document and returns the stored entity with
// its generated id.
func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toCustomerDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCustomerExists
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID retrieves a customer by its hex id. A malformed id is treated the
// same as an absent one.
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	var d customerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return d.toDomain(), nil
}

// Update persists the mutable profile fields. CPF, email and password hash are
// left untouched.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	update := bson.M{"$set": bson.M{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"income":     c.Income,
		"zip_code":   c.Address.ZipCode,
		"street":     c.Address.Street,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes backing the cpf and email
// invariants.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cpf", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
