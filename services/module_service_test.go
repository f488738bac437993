package services

import (
	"context"
	"errors"
	"testing"

	"lmsmodules/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateModule_RequiresGroup(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	_, err := svc.CreateModule(context.Background(), &models.Module{Name: "Courses", URL: "/c"}, 1)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCreateModule_ResetsIDAndStampsCreator(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	module := &models.Module{
		ID:            123,
		Name:          "Courses",
		URL:           "/admin/courses",
		ModuleGroupID: 3,
		Audit:         models.Audit{UpdatedByID: models.UintPtr(8)},
	}

	deps.sql.ExpectBegin()
	deps.groups.On("GetByID", mock.Anything, uint(3)).Return(&models.ModuleGroup{ID: 3}, nil).Once()
	deps.modules.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Module) bool {
		return m.ID == 0 && m.CreatedByID == 6 && m.UpdatedByID == nil
	})).Return(nil).Once()
	deps.sql.ExpectCommit()

	_, err := svc.CreateModule(context.Background(), module, 6)
	require.NoError(t, err)
}

func TestCreateModule_UnknownGroup(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.sql.ExpectBegin()
	deps.groups.On("GetByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound).Once()
	deps.sql.ExpectRollback()

	_, err := svc.CreateModule(context.Background(), &models.Module{Name: "Courses", URL: "/c", ModuleGroupID: 3}, 1)
	assert.ErrorIs(t, err, ErrModuleGroupNotFound)
}

func TestUpdateModule_MovesToAnotherGroup(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	stored := &models.Module{ID: 10, Name: "Courses", URL: "/admin/courses", ModuleGroupID: 3,
		Audit: models.Audit{CreatedByID: 1}}

	deps.sql.ExpectBegin()
	deps.modules.On("GetByID", mock.Anything, uint(10)).Return(stored, nil).Once()
	deps.groups.On("GetByID", mock.Anything, uint(4)).Return(&models.ModuleGroup{ID: 4}, nil).Once()
	deps.modules.On("Update", mock.Anything, stored).Return(nil).Once()
	deps.sql.ExpectCommit()

	updated, err := svc.UpdateModule(context.Background(), 10, &models.Module{
		Name:          "All Courses",
		URL:           "/admin/courses",
		Icon:          models.StringPtr("Book"),
		ModuleGroupID: 4,
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, uint(4), updated.ModuleGroupID)
	assert.Equal(t, "All Courses", updated.Name)
	assert.Equal(t, "Book", *updated.Icon)
	assert.Equal(t, uint(1), updated.CreatedByID)
	assert.Equal(t, uint(2), *updated.UpdatedByID)
}

func TestUpdateModule_KeepsGroupWhenUnset(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	stored := &models.Module{ID: 10, Name: "Courses", URL: "/admin/courses", ModuleGroupID: 3}

	deps.sql.ExpectBegin()
	deps.modules.On("GetByID", mock.Anything, uint(10)).Return(stored, nil).Once()
	deps.modules.On("Update", mock.Anything, stored).Return(nil).Once()
	deps.sql.ExpectCommit()

	updated, err := svc.UpdateModule(context.Background(), 10, &models.Module{Name: "Courses", URL: "/courses"}, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(3), updated.ModuleGroupID)
	deps.groups.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateModule_TargetGroupMissing(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.sql.ExpectBegin()
	deps.modules.On("GetByID", mock.Anything, uint(10)).Return(&models.Module{ID: 10, ModuleGroupID: 3}, nil).Once()
	deps.groups.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound).Once()
	deps.sql.ExpectRollback()

	_, err := svc.UpdateModule(context.Background(), 10, &models.Module{Name: "x", URL: "/x", ModuleGroupID: 9}, 2)
	assert.ErrorIs(t, err, ErrModuleGroupNotFound)
}

func TestDeleteModule_RemovesFunctionsFirst(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	var order []string
	deps.sql.ExpectBegin()
	deps.modules.On("GetByID", mock.Anything, uint(10)).Return(&models.Module{ID: 10}, nil).Once()
	deps.funcs.On("DeleteByModuleIDs", mock.Anything, []uint{10}).
		Run(func(mock.Arguments) { order = append(order, "functions") }).
		Return(int64(3), nil).Once()
	deps.modules.On("Delete", mock.Anything, uint(10)).
		Run(func(mock.Arguments) { order = append(order, "module") }).
		Return(nil).Once()
	deps.sql.ExpectCommit()

	require.NoError(t, svc.DeleteModule(context.Background(), 10))
	assert.Equal(t, []string{"functions", "module"}, order)
}

func TestDeleteModule_NotFound(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.sql.ExpectBegin()
	deps.modules.On("GetByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound).Once()
	deps.sql.ExpectRollback()

	assert.ErrorIs(t, svc.DeleteModule(context.Background(), 10), ErrModuleNotFound)
}

func TestGetModuleByID_StorageError(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.modules.On("GetByIDWithFunctions", mock.Anything, uint(10)).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.GetModuleByID(context.Background(), 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrModuleNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAllModules(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.modules.On("GetAll", mock.Anything).Return([]models.Module{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

	modules, err := svc.GetAllModules(context.Background())
	require.NoError(t, err)
	assert.Len(t, modules, 3)
}

func TestGetModulesByGroupID(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.groups.On("GetByID", mock.Anything, uint(3)).Return(&models.ModuleGroup{ID: 3}, nil).Once()
	deps.modules.On("GetByModuleGroupID", mock.Anything, uint(3)).
		Return([]models.Module{{ID: 10, ModuleGroupID: 3}}, nil).Once()

	modules, err := svc.GetModulesByGroupID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, uint(3), modules[0].ModuleGroupID)
}

func TestGetModulesByGroupID_UnknownGroup(t *testing.T) {
	deps := newRepoDeps(t)
	svc := deps.moduleService()

	deps.groups.On("GetByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.GetModulesByGroupID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrModuleGroupNotFound)
}
