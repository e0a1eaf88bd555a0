package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a sqlx handle whose transactions are scripted with sqlmock.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqlMock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), sqlMock
}

func strPtr(s string) *string { return &s }

// MockProfileStore mocks store.ProfileStore. WithTx returns the same mock so
// expectations cover transactional calls too.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) List(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileStore) WithTx(_ *sqlx.Tx) store.ProfileStore {
	return m
}

// MockSkillStore mocks store.SkillStore.
type MockSkillStore struct {
	mock.Mock
}

func (m *MockSkillStore) Create(ctx context.Context, skill *domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillStore) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillStore) List(ctx context.Context) ([]*domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Skill), args.Error(1)
}

func (m *MockSkillStore) Update(ctx context.Context, skill *domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillStore) WithTx(_ *sqlx.Tx) store.SkillStore {
	return m
}

// MockEndorsementStore mocks store.EndorsementStore.
type MockEndorsementStore struct {
	mock.Mock
}

func (m *MockEndorsementStore) Create(ctx context.Context, endorsement *domain.Endorsement) error {
	args := m.Called(ctx, endorsement)
	return args.Error(0)
}

func (m *MockEndorsementStore) GetByID(ctx context.Context, id int64) (*domain.Endorsement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Endorsement), args.Error(1)
}

func (m *MockEndorsementStore) GetDetailedByID(ctx context.Context, id int64) (*domain.EndorsementDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EndorsementDetail), args.Error(1)
}

func (m *MockEndorsementStore) ListDetailed(ctx context.Context) ([]*domain.EndorsementDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EndorsementDetail), args.Error(1)
}

func (m *MockEndorsementStore) ListReceivedByProfile(
	ctx context.Context,
	profileID int64,
) ([]*domain.ReceivedEndorsement, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReceivedEndorsement), args.Error(1)
}

func (m *MockEndorsementStore) ListGivenByProfile(
	ctx context.Context,
	profileID int64,
) ([]*domain.GivenEndorsement, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GivenEndorsement), args.Error(1)
}

func (m *MockEndorsementStore) ListBySkill(ctx context.Context, skillID int64) ([]*domain.SkillEndorsement, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SkillEndorsement), args.Error(1)
}

func (m *MockEndorsementStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEndorsementStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEndorsementStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEndorsementStore) WithTx(_ *sqlx.Tx) store.EndorsementStore {
	return m
}

// sqlMockScript scripts the begin/finish pair of one transaction.
type sqlMockScript struct {
	mock sqlmock.Sqlmock
}

func (s sqlMockScript) commit() {
	s.mock.ExpectBegin()
	s.mock.ExpectCommit()
}

func (s sqlMockScript) rollback() {
	s.mock.ExpectBegin()
	s.mock.ExpectRollback()
}
