package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/internal/store/mock"
	"github.com/vpetrenko/go-identity-server/models"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mockPasswordCleanupService, *mockAuditService) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	cleanup := &mockPasswordCleanupService{}
	audit := &mockAuditService{}

	// permission checks are exercised in the permission service tests; here
	// they pass so the per-operation behaviour stays in focus
	svc := NewUserService(&mockPermissionService{}, mockUsers, cleanup, audit, logger.Nop())
	return svc, mockUsers, cleanup, audit
}

var adminActor = models.Principal{UserID: "admin-1", Roles: []models.Role{models.RoleAdmin}}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	mockUsers.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.NotEmpty(t, user.UserID)
			assert.Equal(t, "jdoe", user.UserName)
			assert.Empty(t, user.PasswordHash, "new accounts start without credentials")
			assert.Equal(t, models.AccountStatusInactive, user.AccountStatus)
			return user, nil
		})

	created, err := svc.CreateUser(context.Background(), adminActor, models.CreateUserRequest{
		UserName: "jdoe",
		Email:    "jdoe@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "jdoe", created.UserName)
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, models.AuditActionUserCreated, audit.recorded[0].Action)
}

func TestUserService_CreateUser_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserService(t, ctrl)

	_, err := svc.CreateUser(context.Background(), models.Principal{UserID: "u-1", Roles: []models.Role{models.RoleUser}}, models.CreateUserRequest{
		UserName: "jdoe",
		Email:    "jdoe@example.com",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_CreateUser_DuplicateUserName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	mockUsers.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUserNameAlreadyExists)

	_, err := svc.CreateUser(context.Background(), adminActor, models.CreateUserRequest{
		UserName: "jdoe",
		Email:    "jdoe@example.com",
	})

	assert.ErrorIs(t, err, store.ErrUserNameAlreadyExists)
	assert.Empty(t, audit.recorded)
}

func TestUserService_CreateUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserService(t, ctrl)

	_, err := svc.CreateUser(context.Background(), adminActor, models.CreateUserRequest{Email: "jdoe@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateUser(context.Background(), adminActor, models.CreateUserRequest{UserName: "jdoe"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── guarded mutations ────────────────────────────────────────────────────────

func TestUserService_GuardedMutation_PermissionDenialStopsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	permissions := &mockPermissionService{
		validateFn: func(_ context.Context, _ models.Principal, _ string) error {
			return ErrForbidden
		},
	}
	svc := NewUserService(permissions, mockUsers, &mockPasswordCleanupService{}, &mockAuditService{}, logger.Nop())

	// no repository expectations: any call would fail the controller
	err := svc.DeleteUser(context.Background(), adminActor, "target-1")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.ActivateUser(context.Background(), adminActor, "target-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	existing := models.User{UserID: "target-1", UserName: "jdoe", Email: "old@example.com"}
	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").Return(existing, nil),
		mockUsers.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user models.User) error {
				assert.Equal(t, "jdoe", user.UserName, "username is immutable")
				assert.Equal(t, "new@example.com", user.Email)
				return nil
			}),
	)

	err := svc.UpdateUser(context.Background(), adminActor, "target-1", models.UpdateUserRequest{
		Email: "new@example.com",
	})

	require.NoError(t, err)
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, models.AuditActionUserUpdated, audit.recorded[0].Action)
}

func TestUserService_UpdateUser_TargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	mockUsers.EXPECT().FindUserByID(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.UpdateUser(context.Background(), adminActor, "ghost", models.UpdateUserRequest{
		Email: "new@example.com",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser_ErasesPasswordHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	var erasedFor string
	cleanup := &mockPasswordCleanupService{
		deleteAllFn: func(_ context.Context, userID string) error {
			erasedFor = userID
			return nil
		},
	}
	audit := &mockAuditService{}
	svc := NewUserService(&mockPermissionService{}, mockUsers, cleanup, audit, logger.Nop())

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", UserName: "jdoe"}, nil),
		mockUsers.EXPECT().DeleteUser(gomock.Any(), "target-1").Return(nil),
	)

	err := svc.DeleteUser(context.Background(), adminActor, "target-1")

	require.NoError(t, err)
	assert.Equal(t, "target-1", erasedFor)
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, models.AuditActionUserDeleted, audit.recorded[0].Action)
}

// ── account status ───────────────────────────────────────────────────────────

func TestUserService_ActivateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusInactive}, nil),
		mockUsers.EXPECT().UpdateAccountStatus(gomock.Any(), "target-1", models.AccountStatusActive).Return(nil),
	)

	require.NoError(t, svc.ActivateUser(context.Background(), adminActor, "target-1"))
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, models.AuditActionUserActivated, audit.recorded[0].Action)
}

func TestUserService_ActivateUser_AlreadyActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
		Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusActive}, nil)

	err := svc.ActivateUser(context.Background(), adminActor, "target-1")

	assert.ErrorIs(t, err, ErrStatusUnchanged)
	assert.Empty(t, audit.recorded)
}

func TestUserService_DeactivateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusActive}, nil),
		mockUsers.EXPECT().UpdateAccountStatus(gomock.Any(), "target-1", models.AccountStatusInactive).Return(nil),
	)

	require.NoError(t, svc.DeactivateUser(context.Background(), adminActor, "target-1"))
}

// ── roles ────────────────────────────────────────────────────────────────────

func TestUserService_AssignRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, audit := newTestUserService(t, ctrl)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusActive}, nil),
		mockUsers.EXPECT().AssignRole(gomock.Any(), "target-1", models.RoleAdmin).Return(nil),
	)

	require.NoError(t, svc.AssignRole(context.Background(), adminActor, "target-1", models.RoleAdmin))
	require.Len(t, audit.recorded, 1)
	assert.Equal(t, models.AuditActionRoleAssigned, audit.recorded[0].Action)
	assert.Equal(t, string(models.RoleAdmin), audit.recorded[0].Details)
}

func TestUserService_AssignRole_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
		Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusInactive}, nil)

	err := svc.AssignRole(context.Background(), adminActor, "target-1", models.RoleAdmin)

	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestUserService_AssignRole_AlreadyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusActive}, nil),
		mockUsers.EXPECT().AssignRole(gomock.Any(), "target-1", models.RoleUser).
			Return(store.ErrRoleAlreadyAssigned),
	)

	err := svc.AssignRole(context.Background(), adminActor, "target-1", models.RoleUser)

	assert.ErrorIs(t, err, store.ErrRoleAlreadyAssigned)
}

func TestUserService_AssignRole_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserService(t, ctrl)

	err := svc.AssignRole(context.Background(), adminActor, "target-1", models.Role("Owner"))

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_RemoveRole_NotAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
			Return(models.User{UserID: "target-1", AccountStatus: models.AccountStatusActive}, nil),
		mockUsers.EXPECT().RemoveRole(gomock.Any(), "target-1", models.RoleAdmin).
			Return(store.ErrRoleWasNotAssigned),
	)

	err := svc.RemoveRole(context.Background(), adminActor, "target-1", models.RoleAdmin)

	assert.ErrorIs(t, err, store.ErrRoleWasNotAssigned)
}

// ── queries ──────────────────────────────────────────────────────────────────

func TestUserService_GetUser_IncludesRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	mockUsers.EXPECT().FindUserByID(gomock.Any(), "target-1").
		Return(models.User{UserID: "target-1", UserName: "jdoe"}, nil)
	mockUsers.EXPECT().GetRoles(gomock.Any(), "target-1").
		Return([]models.Role{models.RoleUser, models.RoleAdmin}, nil)

	user, err := svc.GetUser(context.Background(), adminActor, "target-1")

	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleUser, models.RoleAdmin}, user.Roles)
}

func TestUserService_ListUsers_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _ := newTestUserService(t, ctrl)

	_, err := svc.ListUsers(context.Background(), models.Principal{UserID: "u-1", Roles: []models.Role{models.RoleUser}}, models.UserFilter{})
	assert.ErrorIs(t, err, ErrForbidden)

	mockUsers.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
		Return([]models.User{{UserID: "u-1"}, {UserID: "u-2"}}, nil)

	users, err := svc.ListUsers(context.Background(), adminActor, models.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
