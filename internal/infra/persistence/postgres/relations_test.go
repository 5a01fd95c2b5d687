package postgres

import (
	"context"
	"testing"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestModels_RelationsOwningKeysAreBelongsTo(t *testing.T) {
	db := newTestDB(t)

	for _, value := range model.All() {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(value))
		assert.NoError(t, checkOwnedRelations(stmt.Schema), stmt.Schema.Table)
	}
}

func TestAutoMigrate_PutsForeignKeysOnOwningTables(t *testing.T) {
	db := newTestDB(t)

	var country, region string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "country").Scan(&country).Error)
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "region").Scan(&region).Error)

	assert.NotContains(t, country, "REFERENCES")
	assert.Contains(t, region, "REFERENCES `country`")
}

// keyedRegion names its key column like the country's primary key and leaves gorm to
// guess the direction of the relation.
type keyedRegion struct {
	ID        uuid.UUID           `gorm:"column:region_id;type:uuid;primaryKey"`
	Name      string              `gorm:"type:varchar(100)"`
	CountryID uuid.UUID           `gorm:"type:uuid"`
	Country   *model.CountryModel `gorm:"foreignKey:CountryID;references:ID"`
}

func (keyedRegion) TableName() string { return "region" }

func (keyedRegion) PrimaryKey() string { return "region_id" }

func (m *keyedRegion) RecordID() uuid.UUID { return m.ID }

func (m *keyedRegion) ToEntity() *entity.Region {
	return &entity.Region{ID: m.ID, Name: m.Name, CountryID: m.CountryID}
}

func (m *keyedRegion) FromEntity(e *entity.Region) { m.ID, m.Name, m.CountryID = e.ID, e.Name, e.CountryID }

func TestNewRepository_RejectsRelationNotMappedAsBelongsTo(t *testing.T) {
	db := newTestDB(t)

	_, err := NewRepository[entity.Region, keyedRegion](db)
	assert.ErrorIs(t, err, repository.ErrInvalidRelation)
}

func TestRepository_UpdateChecksReassignedReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	users := mustRepo(t, NewUserRepository, f.db)
	user := f.users["customer-0"]

	for column, relation := range map[string]string{"city_id": "city", "role_id": "role"} {
		t.Run(column, func(t *testing.T) {
			_, err := users.Update(ctx, user.ID, repository.Patch{column: uuid.New()})

			var rerr *repository.ReferenceNotFoundError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, relation, rerr.Relation)
			assert.Equal(t, column, rerr.Column)
		})
	}

	t.Run("enrolment_id", func(t *testing.T) {
		devices := mustRepo(t, NewDeviceRepository, f.db)
		device := f.createDevice(t, f.createEnrolment(t, user, f.users["vendor-0"]), "777")

		_, err := devices.Update(ctx, device.ID, repository.Patch{"enrolment_id": uuid.New()})

		var rerr *repository.ReferenceNotFoundError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "enrolment", rerr.Relation)
	})
}

func TestRepository_DefaultRelationsAfterCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	regions := mustRepo(t, NewRegionRepository, f.db)

	region, err := regions.Create(ctx, &entity.Region{Name: "Cundinamarca", CountryID: f.country.ID})
	require.NoError(t, err)
	require.NotNil(t, region.Country)
	assert.Equal(t, f.country.ID, region.Country.ID)

	user := f.users["vendor-1"]
	require.NotNil(t, user.City)
	require.NotNil(t, user.Role)

	enrolment := f.createEnrolment(t, f.users["customer-1"], user)
	require.NotNil(t, enrolment.User)
	require.NotNil(t, enrolment.Vendor)
	assert.Equal(t, user.ID, enrolment.Vendor.ID)

	device := f.createDevice(t, enrolment, "888")
	require.NotNil(t, device.Enrolment)
	assert.Equal(t, enrolment.ID, device.Enrolment.ID)
}
