package vehicle

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"glossify/database"
	"glossify/models"
)

// MongoReferenceRepo is the MongoDB-backed ReferenceRepository.
type MongoReferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoReferenceRepo returns a repo bound to the vehicle_reference collection.
func NewMongoReferenceRepo() *MongoReferenceRepo {
	return &MongoReferenceRepo{coll: database.DB().Collection("vehicle_reference")}
}

// GetReference fetches the dropdown reference data for one vehicle type.
func (r *MongoReferenceRepo) GetReference(ctx context.Context, vehicleType models.VehicleType) (*models.VehicleReference, error) {
	var ref models.VehicleReference
	err := r.coll.FindOne(ctx, bson.M{"type": vehicleType}).Decode(&ref)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle reference for %s: %w", vehicleType, err)
	}
	return &ref, nil
}
