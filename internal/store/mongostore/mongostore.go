// Package mongostore implements store.Store on top of MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	BudgetCollection   = "budgets"
	TemplateCollection = "templates"
)

type Store struct {
	client    *mongo.Client
	budgets   *mongo.Collection
	templates *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Connect connects to the MongoDB server at uri and makes sure the
// indexes of the database exist.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:    client,
		budgets:   db.Collection(BudgetCollection),
		templates: db.Collection(TemplateCollection),
	}

	err = s.ensureIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("database", database).Msg("connected to MongoDB")
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.budgets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "year", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("owner_year_month"),
	})
	if err != nil {
		return fmt.Errorf("error creating budget index: %w", err)
	}

	_, err = s.templates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("owner_created"),
	})
	if err != nil {
		return fmt.Errorf("error creating template index: %w", err)
	}

	return nil
}

// translate maps driver errors to the errors of the models package.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
	}

	if mongo.IsDuplicateKeyError(err) {
		return models.ErrBudgetMonthNotUnique
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return models.ErrGeneral
}

// decodeError handles documents that cannot be converted back to models.
func decodeError(err error) error {
	log.Error().Err(err).Msg("stored document could not be decoded")
	return models.ErrGeneral
}

func budgetFilter(f store.BudgetFilter) bson.M {
	filter := bson.M{"owner_id": f.OwnerID}
	if f.Year != 0 {
		filter["year"] = f.Year
	}
	if f.Month != 0 {
		filter["month"] = f.Month
	}
	return filter
}

func (s *Store) ListBudgets(ctx context.Context, f store.BudgetFilter) ([]models.MonthlyBudget, int64, error) {
	filter := budgetFilter(f)

	opts := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}).
		SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts = opts.SetLimit(int64(f.Limit))
	}

	cursor, err := s.budgets.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, translate(err, "budget")
	}

	var docs []budgetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, translate(err, "budget")
	}

	count, err := s.budgets.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate(err, "budget")
	}

	budgets := make([]models.MonthlyBudget, 0, len(docs))
	for _, d := range docs {
		b, err := d.model()
		if err != nil {
			return nil, 0, decodeError(err)
		}
		budgets = append(budgets, b)
	}

	return budgets, count, nil
}

func (s *Store) findBudget(ctx context.Context, filter bson.M, opts ...options.Lister[options.FindOneOptions]) (models.MonthlyBudget, error) {
	var doc budgetDocument
	err := s.budgets.FindOne(ctx, filter, opts...).Decode(&doc)
	if err != nil {
		return models.MonthlyBudget{}, translate(err, "budget")
	}

	b, err := doc.model()
	if err != nil {
		return models.MonthlyBudget{}, decodeError(err)
	}

	return b, nil
}

func (s *Store) GetBudget(ctx context.Context, id uuid.UUID) (models.MonthlyBudget, error) {
	return s.findBudget(ctx, bson.M{"_id": id.String()})
}

func (s *Store) PreviousBudget(ctx context.Context, ownerID string, year, month int) (models.MonthlyBudget, error) {
	return s.findBudget(ctx,
		bson.M{"owner_id": ownerID, "year": year, "month": bson.M{"$lt": month}},
		options.FindOne().SetSort(bson.D{{Key: "month", Value: -1}}),
	)
}

func (s *Store) BudgetExists(ctx context.Context, ownerID string, year, month int) (bool, error) {
	count, err := s.budgets.CountDocuments(ctx, bson.M{"owner_id": ownerID, "year": year, "month": month})
	if err != nil {
		return false, translate(err, "budget")
	}
	return count > 0, nil
}

func (s *Store) CreateBudget(ctx context.Context, budget *models.MonthlyBudget) error {
	now := time.Now().UTC()
	budget.ID = uuid.New()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	budget.Normalize()

	_, err := s.budgets.InsertOne(ctx, newBudgetDocument(*budget))
	return translate(err, "budget")
}

// SaveBudget replaces the stored document. If it does not exist anymore,
// it is inserted again.
func (s *Store) SaveBudget(ctx context.Context, budget *models.MonthlyBudget) error {
	budget.UpdatedAt = time.Now().UTC()
	budget.Normalize()

	_, err := s.budgets.ReplaceOne(ctx,
		bson.M{"_id": budget.ID.String()},
		newBudgetDocument(*budget),
		options.Replace().SetUpsert(true),
	)
	return translate(err, "budget")
}

func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	res, err := s.budgets.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err, "budget")
	}

	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "budget")
	}

	return nil
}

func (s *Store) DeleteBudgetsForYear(ctx context.Context, ownerID string, year int) (int64, error) {
	res, err := s.budgets.DeleteMany(ctx, bson.M{"owner_id": ownerID, "year": year})
	if err != nil {
		return 0, translate(err, "budget")
	}
	return res.DeletedCount, nil
}

func (s *Store) ListTemplates(ctx context.Context, f store.TemplateFilter) ([]models.BudgetTemplate, error) {
	cursor, err := s.templates.Find(ctx,
		bson.M{"owner_id": f.OwnerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, translate(err, "template")
	}

	var docs []templateDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err, "template")
	}

	templates := make([]models.BudgetTemplate, 0, len(docs))
	for _, d := range docs {
		if !f.MatchName(d.TemplateName) {
			continue
		}

		t, err := d.model()
		if err != nil {
			return nil, decodeError(err)
		}
		templates = append(templates, t)
	}

	return templates, nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (models.BudgetTemplate, error) {
	var doc templateDocument
	err := s.templates.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		return models.BudgetTemplate{}, translate(err, "template")
	}

	t, err := doc.model()
	if err != nil {
		return models.BudgetTemplate{}, decodeError(err)
	}

	return t, nil
}

func (s *Store) CreateTemplate(ctx context.Context, template *models.BudgetTemplate) error {
	now := time.Now().UTC()
	template.ID = uuid.New()
	template.CreatedAt = now
	template.UpdatedAt = now
	template.Normalize()

	_, err := s.templates.InsertOne(ctx, newTemplateDocument(*template))
	return translate(err, "template")
}

func (s *Store) SaveTemplate(ctx context.Context, template *models.BudgetTemplate) error {
	template.UpdatedAt = time.Now().UTC()
	template.Normalize()

	_, err := s.templates.ReplaceOne(ctx,
		bson.M{"_id": template.ID.String()},
		newTemplateDocument(*template),
		options.Replace().SetUpsert(true),
	)
	return translate(err, "template")
}

func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	res, err := s.templates.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err, "template")
	}

	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "template")
	}

	return nil
}

// DeleteOwner deletes budgets first, then templates. It is not atomic.
func (s *Store) DeleteOwner(ctx context.Context, ownerID string) error {
	for _, c := range []*mongo.Collection{s.budgets, s.templates} {
		_, err := c.DeleteMany(ctx, bson.M{"owner_id": ownerID})
		if err != nil {
			return translate(err, c.Name())
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	err := s.client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Error().Err(err).Msg("MongoDB ping failed")
		return models.ErrGeneral
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	err := s.client.Disconnect(ctx)
	if err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	log.Info().Msg("disconnected from MongoDB")
	return nil
}

// Drop deletes the whole database. It is used to clean up after tests.
func (s *Store) Drop(ctx context.Context) error {
	return s.budgets.Database().Drop(ctx)
}
