package profiles

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/database/dbtest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	return NewProfileService(dbtest.Open(t, &Profile{}))
}

func ptr(f float64) *float64 { return &f }

func TestCreate_TrimsAndStores(t *testing.T) {
	s := newProfileService(t)

	p, err := s.Create(ProfileRequest{Name: " Ann ", Email: "ann@x.com", Age: "30"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Nil(t, got.Latitude)
}

func TestCreate_Rejections(t *testing.T) {
	s := newProfileService(t)
	var vErr *ValidationError

	for _, req := range []ProfileRequest{
		{Email: "ann@x.com", Age: "30"},
		{Name: "Ann", Age: "30"},
		{Name: "Ann", Email: "ann@x.com", Age: "   "},
		{Name: "Ann", Email: "ann@x.com", Age: "30", Latitude: ptr(1)},
		{Name: "Ann", Email: "ann@x.com", Age: "30", Latitude: ptr(91), Longitude: ptr(0)},
		{Name: "Ann", Email: "ann@x.com", Age: "30", Latitude: ptr(0), Longitude: ptr(-181)},
	} {
		_, err := s.Create(req)
		require.ErrorAs(t, err, &vErr, "%+v", req)
	}

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_AgeIsFreeText(t *testing.T) {
	s := newProfileService(t)
	_, err := s.Create(ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "thirty"})
	require.NoError(t, err)
}

func TestList_ArrivalOrder(t *testing.T) {
	s := newProfileService(t)

	var ids []uuid.UUID
	for _, name := range []string{"Ann", "Bob", "Cid"} {
		p, err := s.Create(ProfileRequest{Name: name, Email: name + "@x.com", Age: "30"})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, ids[i], p.ID)
	}
}

func TestUpdate_LocationOnlyWhenGiven(t *testing.T) {
	s := newProfileService(t)
	p, err := s.Create(ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "30", Latitude: ptr(1), Longitude: ptr(2), Address: "Here"})
	require.NoError(t, err)

	got, err := s.Update(p.ID, ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "31"})
	require.NoError(t, err)
	assert.Equal(t, "31", got.Age)
	require.NotNil(t, got.Latitude)
	assert.Equal(t, 1.0, *got.Latitude)
	assert.Equal(t, "Here", got.Address)

	got, err = s.Update(p.ID, ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "31", Latitude: ptr(3), Longitude: ptr(4), Address: "There"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, *got.Latitude)
	assert.Equal(t, "There", got.Address)

	list, err := s.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDelete_ThenNotFound(t *testing.T) {
	s := newProfileService(t)
	p, err := s.Create(ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "30"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p.ID))
	require.ErrorIs(t, s.Delete(p.ID), ErrProfileNotFound)

	_, err = s.Update(p.ID, ProfileRequest{Name: "Ann", Email: "ann@x.com", Age: "31"})
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = s.Get(uuid.New())
	require.ErrorIs(t, err, ErrProfileNotFound)
}
