// Package model holds the GORM-specific structs mirroring the database tables and
// their mapping to domain entities.
package model

import (
	"github.com/google/uuid"
)

// Record is implemented by every persistence model backing a generic repository.
type Record[E any] interface {
	TableName() string
	// PrimaryKey names the primary-key column. It is checked against the schema once.
	PrimaryKey() string
	RecordID() uuid.UUID
	ToEntity() *E
	FromEntity(*E)
}

// Preloader lists the relation paths loaded when a row is returned from a write.
type Preloader interface {
	DefaultPreloads() []string
}

// StoreScoped lists the filter paths that reach a store id. A row belongs to a store
// when any path matches.
type StoreScoped interface {
	StorePaths() []string
}

// PatchNormalizer converts patch values into column types the driver understands.
type PatchNormalizer interface {
	NormalizePatch(patch map[string]any)
}

// All lists every model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&CountryModel{},
		&RegionModel{},
		&CityModel{},
		&RoleModel{},
		&UserModel{},
		&StoreModel{},
		&ConfigurationModel{},
		&EnrolmentModel{},
		&DeviceModel{},
		&TelevisionModel{},
		&SimModel{},
		&PlanModel{},
		&PaymentModel{},
		&ActionModel{},
		&FactoryResetProtectionModel{},
		&AccountTypeModel{},
		&StoreContactModel{},
	}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id

	return &v
}
