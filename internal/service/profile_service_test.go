package service

import (
	"context"
	"errors"
	"testing"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (ProfileService, *MockProfileStore, *MockEndorsementStore, sqlMockScript) {
	t.Helper()
	db, sqlMock := newMockDB(t)
	profiles := &MockProfileStore{}
	endorsements := &MockEndorsementStore{}
	t.Cleanup(func() {
		profiles.AssertExpectations(t)
		endorsements.AssertExpectations(t)
	})

	svc, err := NewProfileService(db, profiles, endorsements, nil)
	require.NoError(t, err)
	return svc, profiles, endorsements, sqlMockScript{sqlMock}
}

func TestNewProfileService(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := NewProfileService(nil, &MockProfileStore{}, &MockEndorsementStore{}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewProfileService(db, nil, &MockEndorsementStore{}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewProfileService(db, &MockProfileStore{}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_ListProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc, profiles, _, _ := newProfileServiceForTest(t)
		profiles.On("List", mock.Anything).Return([]*domain.Profile{}, nil)

		_, err := svc.ListProfiles(ctx)
		assert.ErrorIs(t, err, ErrEmptyCollection)
	})

	t.Run("rows", func(t *testing.T) {
		svc, profiles, _, _ := newProfileServiceForTest(t)
		want := []*domain.Profile{{ID: 1, FirstName: "Vincent", LastName: "Vega"}}
		profiles.On("List", mock.Anything).Return(want, nil)

		got, err := svc.ListProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestProfileService_CreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("committed", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		p := &domain.Profile{FirstName: "Vincent", LastName: "Vega"}
		profiles.On("Create", mock.Anything, p).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Profile).ID = 1
		}).Return(nil)

		require.NoError(t, svc.CreateProfile(ctx, p))
		assert.Equal(t, int64(1), p.ID)
	})

	t.Run("database failure rolls back", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.rollback()

		boom := errors.New("connection reset")
		profiles.On("Create", mock.Anything, mock.Anything).Return(boom)

		err := svc.CreateProfile(ctx, &domain.Profile{FirstName: "Vincent", LastName: "Vega"})
		assert.ErrorIs(t, err, store.ErrCreateFailed)
		assert.ErrorIs(t, err, boom)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("with endorsements", func(t *testing.T) {
		svc, profiles, endorsements, _ := newProfileServiceForTest(t)
		profile := &domain.Profile{ID: 2, FirstName: "Jules", LastName: "Winnfield"}
		received := []*domain.ReceivedEndorsement{{GiverID: 1, SkillID: 1, FirstName: "Vincent", LastName: "Vega", Name: "Python"}}
		profiles.On("GetByID", mock.Anything, int64(2)).Return(profile, nil)
		endorsements.On("ListReceivedByProfile", mock.Anything, int64(2)).Return(received, nil)
		endorsements.On("ListGivenByProfile", mock.Anything, int64(2)).Return([]*domain.GivenEndorsement{}, nil)

		detail, err := svc.GetProfile(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, profile, detail.Profile)
		assert.Equal(t, received, detail.Received)
		assert.Empty(t, detail.Given)
	})

	t.Run("missing", func(t *testing.T) {
		svc, profiles, _, _ := newProfileServiceForTest(t)
		profiles.On("GetByID", mock.Anything, int64(1000)).Return(nil, store.ErrProfileNotFound)

		_, err := svc.GetProfile(ctx, 1000)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	current := func() *domain.Profile {
		return &domain.Profile{ID: 1, FirstName: "Vincent", LastName: "Vega", Location: strPtr("California")}
	}

	t.Run("changed fields are written", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		profiles.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)
		profiles.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.FirstName == "Vic" && p.LastName == "Vega" && *p.Location == "California"
		})).Return(nil)

		updated, err := svc.UpdateProfile(ctx, 1, domain.ProfilePatch{FirstName: strPtr("Vic")})
		require.NoError(t, err)
		assert.Equal(t, "Vic", updated.FirstName)
	})

	t.Run("empty values are a no-op", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		profiles.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)

		updated, err := svc.UpdateProfile(ctx, 1, domain.ProfilePatch{LastName: strPtr(""), Location: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, current(), updated)
		profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.rollback()

		profiles.On("GetByID", mock.Anything, int64(1000)).Return(nil, store.ErrProfileNotFound)

		_, err := svc.UpdateProfile(ctx, 1000, domain.ProfilePatch{FirstName: strPtr("Vic")})
		assert.ErrorIs(t, err, store.ErrProfileNotFound)
		assert.NotErrorIs(t, err, store.ErrUpdateFailed)
	})

	t.Run("persistence failure", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.rollback()

		profiles.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)
		profiles.On("Update", mock.Anything, mock.Anything).Return(store.ErrInvalidEntity)

		_, err := svc.UpdateProfile(ctx, 1, domain.ProfilePatch{FirstName: strPtr("Vic")})
		assert.ErrorIs(t, err, store.ErrUpdateFailed)
	})
}

func TestProfileService_DeleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deleted profile", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		profile := &domain.Profile{ID: 1, FirstName: "Vincent", LastName: "Vega"}
		profiles.On("GetByID", mock.Anything, int64(1)).Return(profile, nil)
		profiles.On("Delete", mock.Anything, int64(1)).Return(nil)

		deleted, err := svc.DeleteProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, profile, deleted)
	})

	t.Run("missing", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.rollback()

		profiles.On("GetByID", mock.Anything, int64(1000)).Return(nil, store.ErrProfileNotFound)

		_, err := svc.DeleteProfile(ctx, 1000)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestProfileService_DeleteAllProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("table emptied", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		profiles.On("DeleteAll", mock.Anything).Return(int64(3), nil)
		profiles.On("Count", mock.Anything).Return(int64(0), nil)

		n, err := svc.DeleteAllProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("residual rows", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.commit()

		profiles.On("DeleteAll", mock.Anything).Return(int64(3), nil)
		profiles.On("Count", mock.Anything).Return(int64(1), nil)

		_, err := svc.DeleteAllProfiles(ctx)
		assert.ErrorIs(t, err, ErrResidualRows)
		assert.ErrorIs(t, err, store.ErrDeleteFailed)
	})

	t.Run("delete fails", func(t *testing.T) {
		svc, profiles, _, script := newProfileServiceForTest(t)
		script.rollback()

		profiles.On("DeleteAll", mock.Anything).Return(int64(0), errors.New("lock timeout"))

		_, err := svc.DeleteAllProfiles(ctx)
		assert.ErrorIs(t, err, store.ErrDeleteFailed)
		profiles.AssertNotCalled(t, "Count", mock.Anything)
	})
}
