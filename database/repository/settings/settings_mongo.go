package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"gamelounge/database"
	"gamelounge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Well-known singleton document ids.
const (
	pricingDocID = "pricing"
	setupDocID   = "setup_availability"
	adminDocID   = "admin_credentials"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.DB().Collection("settings")}
}

// --- Pricing table ---

// GetPricingTable retrieves the pricing record. Returns nil when absent.
func (r *MongoSettingsRepo) GetPricingTable(ctx context.Context) (*models.PricingTable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var table models.PricingTable
	if err := r.coll.FindOne(ctx, bson.M{"id": pricingDocID}).Decode(&table); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pricing table: %w", err)
	}
	return &table, nil
}

// EnsurePricingTable seeds the defaults when absent and returns the current record.
func (r *MongoSettingsRepo) EnsurePricingTable(ctx context.Context) (*models.PricingTable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	defaults := models.DefaultPricingTable()
	filter := bson.M{"id": pricingDocID}
	update := bson.M{"$setOnInsert": bson.M{
		"id":         pricingDocID,
		"rates":      defaults.Rates,
		"version":    int64(1),
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var table models.PricingTable
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to seed pricing table: %w", err)
	}
	return &table, nil
}

// UpdatePricingRates merges partial rate changes and bumps the record version.
func (r *MongoSettingsRepo) UpdatePricingRates(ctx context.Context, rates map[string]int) (*models.PricingTable, error) {
	if _, err := r.EnsurePricingTable(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for category, rate := range rates {
		set["rates."+category] = rate
	}
	update := bson.M{"$set": set, "$inc": bson.M{"version": int64(1)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var table models.PricingTable
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": pricingDocID}, update, opts).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to update pricing table: %w", err)
	}
	return &table, nil
}

// --- Setup inventory ---

// GetSetupInventory retrieves the setup record. Returns nil when absent.
func (r *MongoSettingsRepo) GetSetupInventory(ctx context.Context) (*models.SetupInventory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var inv models.SetupInventory
	if err := r.coll.FindOne(ctx, bson.M{"id": setupDocID}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch setup inventory: %w", err)
	}
	return &inv, nil
}

// EnsureSetupInventory seeds the all-enabled default when absent and returns
// the current record.
func (r *MongoSettingsRepo) EnsureSetupInventory(ctx context.Context) (*models.SetupInventory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	defaults := models.DefaultSetupInventory()
	filter := bson.M{"id": setupDocID}
	update := bson.M{"$setOnInsert": bson.M{
		"id":         setupDocID,
		"setups":     defaults.Setups,
		"version":    int64(1),
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var inv models.SetupInventory
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to seed setup inventory: %w", err)
	}
	return &inv, nil
}

// UpdateSetupFlags merges partial enabled-flag changes and bumps the record version.
func (r *MongoSettingsRepo) UpdateSetupFlags(ctx context.Context, flags map[string]bool) (*models.SetupInventory, error) {
	if _, err := r.EnsureSetupInventory(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for id, enabled := range flags {
		set["setups."+id] = enabled
	}
	update := bson.M{"$set": set, "$inc": bson.M{"version": int64(1)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inv models.SetupInventory
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": setupDocID}, update, opts).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to update setup inventory: %w", err)
	}
	return &inv, nil
}

// --- Admin credentials ---

// GetAdminCredentials retrieves the stored admin credentials. Returns nil when
// the init endpoint has never been called.
func (r *MongoSettingsRepo) GetAdminCredentials(ctx context.Context) (*models.AdminCredentials, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var creds models.AdminCredentials
	if err := r.coll.FindOne(ctx, bson.M{"id": adminDocID}).Decode(&creds); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin credentials: %w", err)
	}
	return &creds, nil
}

// SetAdminCredentials stores (or replaces) the admin credentials.
func (r *MongoSettingsRepo) SetAdminCredentials(ctx context.Context, creds *models.AdminCredentials) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := bson.M{
		"id":            adminDocID,
		"username":      creds.Username,
		"password_hash": creds.PasswordHash,
		"created_at":    creds.CreatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": adminDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to store admin credentials: %w", err)
	}
	return nil
}
