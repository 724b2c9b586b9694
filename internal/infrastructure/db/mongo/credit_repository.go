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

const collectionCredits = "credits"

// CreditRepository implements ports.CreditRepository using MongoDB. The unique
// index on credit_code guarantees codes are never reused.
type CreditRepository struct {
	col *mongo.Collection
}

func NewCreditRepository(db *mongo.Database) *CreditRepository {
	return &CreditRepository{col: db.Collection(collectionCredits)}
}

type creditDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	CreditCode           string             `bson:"credit_code"`
	CreditValue          float64            `bson:"credit_value"`
	DayFirstInstallment  time.Time          `bson:"day_first_installment"`
	NumberOfInstallments int                `bson:"number_of_installments"`
	Status               string             `bson:"status"`
	CustomerID           string             `bson:"customer_id"`
	CustomerEmail        string             `bson:"customer_email,omitempty"`
	CustomerIncome       *float64           `bson:"customer_income,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
}

func toCreditDoc(c *domain.Credit) creditDoc {
	return creditDoc{
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		DayFirstInstallment:  c.DayFirstInstallment.UTC(),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
		CustomerID:           c.CustomerID,
		CustomerEmail:        c.CustomerEmail,
		CustomerIncome:       c.CustomerIncome,
		CreatedAt:            c.CreatedAt.UTC(),
	}
}

func (d creditDoc) toDomain() *domain.Credit {
	return &domain.Credit{
		ID:                   d.ID.Hex(),
		CreditCode:           d.CreditCode,
		CreditValue:          d.CreditValue,
		DayFirstInstallment:  d.DayFirstInstallment,
		NumberOfInstallments: d.NumberOfInstallments,
		Status:               domain.CreditStatus(d.Status),
		CustomerID:           d.CustomerID,
		CustomerEmail:        d.CustomerEmail,
		CustomerIncome:       d.CustomerIncome,
		CreatedAt:            d.CreatedAt,
	}
}

// Create inserts a new credit document and backfills the generated id.
func (r *CreditRepository) Create(ctx context.Context, c *domain.Credit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toCreditDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCreditCodeExists
		}
		return fmt.Errorf("insert credit: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByCreditCode retrieves a credit by its code regardless of owner.
func (r *CreditRepository) FindByCreditCode(ctx context.Context, creditCode string) (*domain.Credit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d creditDoc
	if err := r.col.FindOne(ctx, bson.M{"credit_code": creditCode}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCreditNotFound
		}
		return nil, fmt.Errorf("find credit: %w", err)
	}
	return d.toDomain(), nil
}

// FindAllByCustomerID returns the customer's credits in creation order.
func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID string) ([]*domain.Credit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}

	var docs []creditDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode credits: %w", err)
	}

	credits := make([]*domain.Credit, len(docs))
	for i, d := range docs {
		credits[i] = d.toDomain()
	}
	return credits, nil
}

func (r *CreditRepository) DeleteAllByCustomerID(ctx context.Context, customerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return fmt.Errorf("delete credits: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique credit_code index and the listing index.
func (r *CreditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "credit_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
