package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
)

// Collection names predate this service; they are the ones visible in the
// production Atlas cluster.
const (
	usersCollection     = "Usuario"
	tasksCollection     = "Tarefa"
	clientsCollection   = "Cliente"
	campaignsCollection = "Campanha"
)

// operationTimeout bounds every store round-trip so a slow primary cannot
// block a request indefinitely.
const operationTimeout = 5 * time.Second

// Compile-time interface assertions.
var (
	_ UserRepository     = (*MongoUserRepo)(nil)
	_ TaskRepository     = (*MongoTaskRepo)(nil)
	_ ClientRepository   = (*MongoClientRepo)(nil)
	_ CampaignRepository = (*MongoCampaignRepo)(nil)
)

// Connect establishes the single shared client for the process. Connection
// options mirror what the Atlas cluster was provisioned for. Failure here is
// fatal: the service cannot run without its store.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(10 * time.Second).
		SetConnectTimeout(20 * time.Second).
		SetMaxPoolSize(50).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, operationTimeout)
}

// parseID treats malformed identifiers as not-found rather than a distinct
// error, matching how callers handle unknown ids.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

func findAllLimit(limit int64) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

// MongoUserRepo implements UserRepository over the Usuario collection.
type MongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection(usersCollection)}
}

func (r *MongoUserRepo) FindAll(ctx context.Context, limit int64) ([]domain.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{}, findAllLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.User{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *MongoUserRepo) Update(ctx context.Context, id string, patch domain.UserPatch) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": userSetDoc(patch, time.Now().UTC())})
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoUserRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// MongoTaskRepo implements TaskRepository over the Tarefa collection.
type MongoTaskRepo struct {
	col *mongo.Collection
}

func NewMongoTaskRepo(db *mongo.Database) *MongoTaskRepo {
	return &MongoTaskRepo{col: db.Collection(tasksCollection)}
}

func (r *MongoTaskRepo) FindAll(ctx context.Context, limit int64) ([]domain.Task, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{}, findAllLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepo) FindByID(ctx context.Context, id string) (domain.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Task{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var task domain.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, fmt.Errorf("find task by id: %w", err)
	}
	return task, nil
}

// FindByUser returns all tasks owned by the given user. The stored schema
// drifted over time: the owner reference exists under two field names and as
// either an ObjectID or its hex string. A single $or covers every shape;
// new writes always store idUsuario as an ObjectID.
func (r *MongoTaskRepo) FindByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, taskOwnerFilter(userID))
	if err != nil {
		return nil, fmt.Errorf("find tasks by user: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks by user: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepo) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, task)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}
	task.ID = res.InsertedID.(primitive.ObjectID)
	return task, nil
}

func (r *MongoTaskRepo) Update(ctx context.Context, id string, patch domain.TaskPatch) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": taskSetDoc(patch, time.Now().UTC())})
	if err != nil {
		return false, fmt.Errorf("update task: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoTaskRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoTaskRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

// MongoClientRepo implements ClientRepository over the Cliente collection.
type MongoClientRepo struct {
	col *mongo.Collection
}

func NewMongoClientRepo(db *mongo.Database) *MongoClientRepo {
	return &MongoClientRepo{col: db.Collection(clientsCollection)}
}

func (r *MongoClientRepo) FindAll(ctx context.Context, limit int64) ([]domain.Client, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{}, findAllLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

func (r *MongoClientRepo) FindByID(ctx context.Context, id string) (domain.Client, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Client{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var client domain.Client
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, fmt.Errorf("find client by id: %w", err)
	}
	return client, nil
}

// Search matches a case-insensitive substring against name, city, and
// company name.
func (r *MongoClientRepo) Search(ctx context.Context, query string) ([]domain.Client, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, clientSearchFilter(query))
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode client search: %w", err)
	}
	return clients, nil
}

func (r *MongoClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, client)
	if err != nil {
		return domain.Client{}, fmt.Errorf("insert client: %w", err)
	}
	client.ID = res.InsertedID.(primitive.ObjectID)
	return client, nil
}

func (r *MongoClientRepo) Update(ctx context.Context, id string, patch domain.ClientPatch) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": clientSetDoc(patch, time.Now().UTC())})
	if err != nil {
		return false, fmt.Errorf("update client: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoClientRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// MongoCampaignRepo implements the read-only CampaignRepository over the
// Campanha collection.
type MongoCampaignRepo struct {
	col *mongo.Collection
}

func NewMongoCampaignRepo(db *mongo.Database) *MongoCampaignRepo {
	return &MongoCampaignRepo{col: db.Collection(campaignsCollection)}
}

func (r *MongoCampaignRepo) FindAll(ctx context.Context, limit int64) ([]domain.Campaign, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{}, findAllLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []domain.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *MongoCampaignRepo) FindByID(ctx context.Context, id string) (domain.Campaign, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Campaign{}, err
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	var campaign domain.Campaign
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&campaign); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Campaign{}, domain.ErrNotFound
		}
		return domain.Campaign{}, fmt.Errorf("find campaign by id: %w", err)
	}
	return campaign, nil
}

func (r *MongoCampaignRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}
