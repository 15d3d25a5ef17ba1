package service

import (
	"context"
	"errors"

	"github.com/vpetrenko/go-identity-server/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn          func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn        func(ctx context.Context, userID string) (models.User, error)
	findUserByUserNameFn  func(ctx context.Context, userName string) (models.User, error)
	listUsersFn           func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	updateUserFn          func(ctx context.Context, user models.User) error
	deleteUserFn          func(ctx context.Context, userID string) error
	updatePasswordHashFn  func(ctx context.Context, userID string, passwordHash string) error
	updateAccountStatusFn func(ctx context.Context, userID string, status int) error
	getRolesFn            func(ctx context.Context, userID string) ([]models.Role, error)
	assignRoleFn          func(ctx context.Context, userID string, role models.Role) error
	removeRoleFn          func(ctx context.Context, userID string, role models.Role) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	if m.findUserByUserNameFn != nil {
		return m.findUserByUserNameFn(ctx, userName)
	}
	return models.User{UserName: userName}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	if m.updatePasswordHashFn != nil {
		return m.updatePasswordHashFn(ctx, userID, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) UpdateAccountStatus(ctx context.Context, userID string, status int) error {
	if m.updateAccountStatusFn != nil {
		return m.updateAccountStatusFn(ctx, userID, status)
	}
	return nil
}

func (m *mockUserRepository) GetRoles(ctx context.Context, userID string) ([]models.Role, error) {
	if m.getRolesFn != nil {
		return m.getRolesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) AssignRole(ctx context.Context, userID string, role models.Role) error {
	if m.assignRoleFn != nil {
		return m.assignRoleFn(ctx, userID, role)
	}
	return nil
}

func (m *mockUserRepository) RemoveRole(ctx context.Context, userID string, role models.Role) error {
	if m.removeRoleFn != nil {
		return m.removeRoleFn(ctx, userID, role)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PasswordHistoryRepository
// ─────────────────────────────────────────────

type mockPasswordHistoryRepository struct {
	insertFn           func(ctx context.Context, entry models.PasswordHistory) error
	listByUserFn       func(ctx context.Context, userID string) ([]models.PasswordHistory, error)
	deleteByIDsFn      func(ctx context.Context, userID string, ids []string) (int64, error)
	deleteAllForUserFn func(ctx context.Context, userID string) (int64, error)
}

func (m *mockPasswordHistoryRepository) Insert(ctx context.Context, entry models.PasswordHistory) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, entry)
	}
	return nil
}

func (m *mockPasswordHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.PasswordHistory, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPasswordHistoryRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	if m.deleteByIDsFn != nil {
		return m.deleteByIDsFn(ctx, userID, ids)
	}
	return 0, nil
}

func (m *mockPasswordHistoryRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	if m.deleteAllForUserFn != nil {
		return m.deleteAllForUserFn(ctx, userID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: PermissionService
// ─────────────────────────────────────────────

type mockPermissionService struct {
	validateFn func(ctx context.Context, actor models.Principal, targetUserID string) error
	calls      int
}

func (m *mockPermissionService) Validate(ctx context.Context, actor models.Principal, targetUserID string) error {
	m.calls++
	if m.validateFn != nil {
		return m.validateFn(ctx, actor, targetUserID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: PasswordHistoryService
// ─────────────────────────────────────────────

type mockPasswordHistoryService struct {
	addFn   func(ctx context.Context, req models.AddPasswordHistoryRequest) error
	findFn  func(ctx context.Context, req models.FindPasswordHashRequest) (bool, error)
	added   []models.AddPasswordHistoryRequest
}

func (m *mockPasswordHistoryService) AddPasswordHistory(ctx context.Context, req models.AddPasswordHistoryRequest) error {
	m.added = append(m.added, req)
	if m.addFn != nil {
		return m.addFn(ctx, req)
	}
	return nil
}

func (m *mockPasswordHistoryService) FindPasswordHash(ctx context.Context, req models.FindPasswordHashRequest) (bool, error) {
	if m.findFn != nil {
		return m.findFn(ctx, req)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Mock: PasswordCleanupService
// ─────────────────────────────────────────────

type mockPasswordCleanupService struct {
	removeOldFn func(ctx context.Context, userID string) error
	deleteAllFn func(ctx context.Context, userID string) error
	pruned      []string
}

func (m *mockPasswordCleanupService) RemoveOldPasswords(ctx context.Context, userID string) error {
	m.pruned = append(m.pruned, userID)
	if m.removeOldFn != nil {
		return m.removeOldFn(ctx, userID)
	}
	return nil
}

func (m *mockPasswordCleanupService) DeletePasswordHistory(ctx context.Context, userID string) error {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: AuditService
// ─────────────────────────────────────────────

type auditCall struct {
	ActorID  string
	Action   string
	TargetID string
	Details  string
}

type mockAuditService struct {
	listFn   func(ctx context.Context, actor models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error)
	recorded []auditCall
}

func (m *mockAuditService) Record(_ context.Context, actorID, action, targetID, details string) {
	m.recorded = append(m.recorded, auditCall{ActorID: actorID, Action: action, TargetID: targetID, Details: details})
}

func (m *mockAuditService) List(ctx context.Context, actor models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: utils.PasswordHasher
// ─────────────────────────────────────────────

// mockHasher treats "hash:<password>" as the hash of <password>, keeping the
// tests free of real bcrypt work.
type mockHasher struct {
	hashErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hash:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) bool {
	return hash == "hash:"+password
}
