package services

import (
	"testing"

	"lmsmodules/mocks"
	"lmsmodules/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// repoDeps bundles the mocked repositories and the sqlmock that backs the
// transactions the services open.
type repoDeps struct {
	base    repository.BaseRepository
	sql     sqlmock.Sqlmock
	groups  *mocks.ModuleGroupRepository
	modules *mocks.ModuleRepository
	funcs   *mocks.ModuleFunctionRepository
}

func newRepoDeps(t *testing.T) *repoDeps {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})

	return &repoDeps{
		base:    repository.NewBaseRepositoryWithDB(db),
		sql:     sqlMock,
		groups:  mocks.NewModuleGroupRepository(t),
		modules: mocks.NewModuleRepository(t),
		funcs:   mocks.NewModuleFunctionRepository(t),
	}
}

func (d *repoDeps) groupService() ModuleGroupService {
	return NewModuleGroupServiceWithDeps(d.base, d.groups, d.modules, d.funcs)
}

func (d *repoDeps) moduleService() ModuleService {
	return NewModuleServiceWithDeps(d.base, d.groups, d.modules, d.funcs)
}
