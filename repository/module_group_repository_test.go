package repository

import (
	"regexp"
	"testing"
	"time"

	"lmsmodules/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var groupColumns = []string{"id", "group_name", "description", "icon", "url", "created_by_id", "created_at", "updated_by_id", "updated_at"}
var moduleColumns = []string{"id", "name", "url", "icon", "description", "module_group_id", "created_by_id", "created_at", "updated_by_id", "updated_at"}

func TestModuleGroupCreate_PersistsAttachedModules(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, fixedClock(testNow))

	group := &models.ModuleGroup{
		Name: "Content Management",
		Icon: "FolderOpen",
		URL:  "/admin/content",
		Modules: []models.Module{
			{Name: "Courses", URL: "/admin/courses"},
			{Name: "Tags", URL: "/admin/tags", Audit: models.Audit{CreatedByID: 2}},
		},
		Audit: models.Audit{CreatedByID: 1},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `module_groups`")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `modules`")).
		WillReturnResult(sqlmock.NewResult(20, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(nil, group))

	assert.Equal(t, uint(7), group.ID)
	assert.Equal(t, testNow, group.CreatedAt)
	assert.Equal(t, testNow, group.UpdatedAt)
	for _, m := range group.Modules {
		assert.Equal(t, uint(7), m.ModuleGroupID, "module %s", m.Name)
		assert.Equal(t, testNow, m.CreatedAt)
	}
	assert.Equal(t, uint(1), group.Modules[0].CreatedByID, "creator inherited from group")
	assert.Equal(t, uint(2), group.Modules[1].CreatedByID, "explicit creator kept")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupCreate_StorageErrorRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, fixedClock(testNow))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `module_groups`")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Create(nil, &models.ModuleGroup{Name: "Analytics", Icon: "Chart", URL: "/admin/analytics"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupGetByIDWithModules(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `module_groups` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(groupColumns).
			AddRow(7, "Content Management", nil, "FolderOpen", "/admin/content", 1, testNow, nil, testNow))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `modules` WHERE `modules`.`module_group_id` = ?")).
		WillReturnRows(sqlmock.NewRows(moduleColumns).
			AddRow(20, "Courses", "/admin/courses", nil, nil, 7, 1, testNow, nil, testNow).
			AddRow(21, "Tags", "/admin/tags", "Tag", nil, 7, 1, testNow, nil, testNow))

	group, err := repo.GetByIDWithModules(nil, 7)
	require.NoError(t, err)

	assert.Equal(t, "Content Management", group.Name)
	require.Len(t, group.Modules, 2)
	assert.Equal(t, "Courses", group.Modules[0].Name)
	require.NotNil(t, group.Modules[1].Icon)
	assert.Equal(t, "Tag", *group.Modules[1].Icon)
	assert.Nil(t, group.Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupGetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `module_groups` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(groupColumns))

	group, err := repo.GetByID(nil, 99)
	assert.Nil(t, group)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupUpdate_AdvancesUpdatedAtOnly(t *testing.T) {
	db, mock := setupMockDB(t)
	// The clock reports the same instant as the stored updated_at.
	repo := NewModuleGroupRepositoryWithDB(db, fixedClock(testNow))

	createdAt := testNow.Add(-time.Hour)
	group := &models.ModuleGroup{
		ID:   7,
		Name: "Content",
		Icon: "FolderOpen",
		URL:  "/admin/content",
		Audit: models.Audit{
			CreatedByID: 1,
			CreatedAt:   createdAt,
			UpdatedAt:   testNow,
			UpdatedByID: models.UintPtr(3),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `module_groups` SET `group_name`=?,`description`=?,`icon`=?,`url`=?,`updated_by_id`=?,`updated_at`=? WHERE `id` = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(nil, group))

	assert.Equal(t, createdAt, group.CreatedAt)
	assert.Equal(t, testNow.Add(time.Millisecond), group.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupUpdate_MissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, fixedClock(testNow))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `module_groups` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(nil, &models.ModuleGroup{ID: 42, Name: "Gone", Icon: "x", URL: "/x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `module_groups` WHERE `module_groups`.`id` = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(nil, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleGroupCountModulesByGroup(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewModuleGroupRepositoryWithDB(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT module_group_id, COUNT(*) AS total FROM `modules`")).
		WillReturnRows(sqlmock.NewRows([]string{"module_group_id", "total"}).
			AddRow(1, 3).
			AddRow(4, 1))

	counts, err := repo.CountModulesByGroup(nil)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{1: 3, 4: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
