package vehicleRepo

import (
	"context"
	"fmt"
	"time"

	"drivehub/database"
	"drivehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{coll: database.Collection("vehicles")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "review_status", Value: 1}, {Key: "location", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a listing by its unique ID.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// Search retrieves approved listings matching the criteria. Listings that
// have not passed review are never returned here, whatever their
// availability.
func (r *MongoVehicleRepo) Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"review_status": models.ReviewApproved}
	if criteria.Type != "" {
		filter["type"] = criteria.Type
	}
	if criteria.Location != "" {
		filter["location"] = criteria.Location
	}
	if availableOnly {
		filter["status"] = models.VehicleAvailable
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

// GetByOwner retrieves all listings of one owner, any review status.
func (r *MongoVehicleRepo) GetByOwner(ownerID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

// GetAll retrieves every listing for the admin review queue.
func (r *MongoVehicleRepo) GetAll() ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

// Locations returns the distinct locations of approved listings.
func (r *MongoVehicleRepo) Locations() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "location", bson.M{"review_status": models.ReviewApproved})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	locations := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			locations = append(locations, s)
		}
	}
	return locations, nil
}

// Create inserts a new listing.
func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update modifies an existing listing.
func (r *MongoVehicleRepo) Update(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	vehicle.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": vehicle.ID}, bson.M{"$set": vehicle})
	if err != nil {
		return fmt.Errorf("failed to update vehicle with id %s: %w", vehicle.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", vehicle.ID)
	}
	return nil
}

// Delete removes a listing by its ID.
func (r *MongoVehicleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", id)
	}
	return nil
}

// CountsByReviewStatus aggregates the admin dashboard stats.
func (r *MongoVehicleRepo) CountsByReviewStatus() (*models.ReviewStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$review_status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate review stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode review stats: %w", err)
	}

	stats := &models.ReviewStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.ReviewPending:
			stats.Pending = row.Count
		case models.ReviewApproved:
			stats.Approved = row.Count
		case models.ReviewRejected:
			stats.Rejected = row.Count
		}
	}
	return stats, nil
}
