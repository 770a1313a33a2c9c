package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

func TestReviewStore_CreateUpdatesRoomRating(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository()
	reviews := NewReviewStore(rooms)

	room := &domain.Room{ID: uuid.New(), Name: "Loft", Capacity: 2}
	require.NoError(t, rooms.Create(ctx, room))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, rating := range []int{5, 2} {
		_, err := reviews.Create(ctx, &domain.Review{
			RoomID:    room.ID,
			UserID:    uuid.New(),
			Rating:    rating,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	rating, err := reviews.Create(ctx, &domain.Review{RoomID: room.ID, UserID: uuid.New(), Rating: 4, CreatedAt: base.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomRating{Average: 3.67, Count: 3}, rating)

	stored, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.67, stored.AvgRating)
	assert.Equal(t, 3, stored.TotalReviews)

	list, err := reviews.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 2, list[0].Rating)
	assert.Equal(t, 4, list[2].Rating)
}

func TestReviewStore_UnknownRoom(t *testing.T) {
	reviews := NewReviewStore(NewRoomRepository())

	_, err := reviews.Create(context.Background(), &domain.Review{RoomID: uuid.New(), Rating: 5})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	list, err := reviews.ListByRoom(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRoomRepository_UpdateKeepsRating(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository()
	reviews := NewReviewStore(rooms)

	room := &domain.Room{ID: uuid.New(), Name: "Loft", Capacity: 2}
	require.NoError(t, rooms.Create(ctx, room))
	_, err := reviews.Create(ctx, &domain.Review{RoomID: room.ID, Rating: 5})
	require.NoError(t, err)

	edited := *room
	edited.Name = "Loft Deluxe"
	require.NoError(t, rooms.Update(ctx, &edited))

	got, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loft Deluxe", got.Name)
	assert.Equal(t, 5.0, got.AvgRating)
	assert.Equal(t, 1, got.TotalReviews)
}
