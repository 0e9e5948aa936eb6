package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"travelmate/internal/app/server/config"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DB{DatabaseURI: "postgres://localhost/travelmate", Migrations: "migrations"},
	}
}

func TestMigration_Up(t *testing.T) {
	tests := []struct {
		name     string
		upErr    error
		closeErr error
		wantErr  string
	}{
		{name: "success"},
		{name: "no change is not an error", upErr: migrate.ErrNoChange},
		{name: "up fails", upErr: errors.New("dirty database"), wantErr: "dirty database"},
		{name: "close fails", closeErr: errors.New("source closed"), wantErr: "source closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockM := new(MockMigrator)
			mockM.On("Up").Return(tt.upErr)
			mockM.On("Close").Return(tt.closeErr, nil)

			var gotSource, gotDB string
			engine := func(source, db string) (Migrator, error) {
				gotSource, gotDB = source, db
				return mockM, nil
			}

			err := NewMigration(testConfig(), engine).Up()

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "file://migrations", gotSource)
			assert.Equal(t, "postgres://localhost/travelmate", gotDB)
			mockM.AssertExpectations(t)
		})
	}
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testConfig(), engine).Up()

	assert.EqualError(t, err, "engine crash")
}
