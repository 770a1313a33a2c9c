package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports/mocks"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

func validRoomInput() services.RoomInput {
	return services.RoomInput{
		Name:        "Garden Suite",
		Description: "Two rooms opening onto the garden terrace.",
		Price:       240,
		Type:        "suite",
		Capacity:    4,
		Images:      []string{"https://cdn.example.com/rooms/garden-suite.jpg"},
		Amenities:   []string{"wifi", "minibar"},
	}
}

func TestRoomService_Create(t *testing.T) {
	ctx := context.Background()
	rooms := mocks.NewRoomRepository(t)
	svc := services.NewRoomService(rooms, mocks.NewReservationStore(t), nil, discardLogger())

	rooms.On("Create", ctx, mock.MatchedBy(func(r *domain.Room) bool {
		return r.ID != uuid.Nil && r.Type == domain.RoomSuite && r.Capacity == 4 && !r.CreatedAt.IsZero()
	})).Return(nil)

	room, err := svc.Create(ctx, validRoomInput())

	require.NoError(t, err)
	assert.Equal(t, "Garden Suite", room.Name)
	assert.Equal(t, []string{"wifi", "minibar"}, room.Amenities)
}

func TestRoomService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRoomService(mocks.NewRoomRepository(t), mocks.NewReservationStore(t), nil, discardLogger())

	tests := []struct {
		name   string
		mutate func(*services.RoomInput)
		field  string
	}{
		{"short name", func(in *services.RoomInput) { in.Name = "A" }, "name"},
		{"short description", func(in *services.RoomInput) { in.Description = "tiny" }, "description"},
		{"negative price", func(in *services.RoomInput) { in.Price = -5 }, "price"},
		{"unknown type", func(in *services.RoomInput) { in.Type = "penthouse" }, "type"},
		{"no capacity", func(in *services.RoomInput) { in.Capacity = 0 }, "capacity"},
		{"bad image url", func(in *services.RoomInput) { in.Images = []string{"not a url"} }, "images"},
		{"no amenities", func(in *services.RoomInput) { in.Amenities = nil }, "amenities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRoomInput()
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRoomService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	rooms := mocks.NewRoomRepository(t)
	svc := services.NewRoomService(rooms, mocks.NewReservationStore(t), nil, discardLogger())
	id := uuid.New()

	rooms.On("GetByID", ctx, id).Return(nil, domain.ErrRoomNotFound)

	_, err := svc.Update(ctx, id, validRoomInput())

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_Delete_ArchivesFirst(t *testing.T) {
	ctx := context.Background()
	rooms := mocks.NewRoomRepository(t)
	store := mocks.NewReservationStore(t)
	db, mockRedis := redismock.NewClientMock()
	svc := services.NewRoomService(rooms, store, db, discardLogger())
	room := sampleRoom()

	var order []string
	rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	store.On("ArchiveByRoom", ctx, room.ID).Return(int64(3), nil).Run(func(mock.Arguments) { order = append(order, "archive") })
	rooms.On("Delete", ctx, room.ID).Return(nil).Run(func(mock.Arguments) { order = append(order, "delete") })
	mockRedis.ExpectIncr(calendarVersionKey(room.ID)).SetVal(1)

	require.NoError(t, svc.Delete(ctx, room.ID))
	assert.Equal(t, []string{"archive", "delete"}, order)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRoomService_Delete_ArchiveFailureKeepsRoom(t *testing.T) {
	ctx := context.Background()
	rooms := mocks.NewRoomRepository(t)
	store := mocks.NewReservationStore(t)
	svc := services.NewRoomService(rooms, store, nil, discardLogger())
	room := sampleRoom()

	rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	store.On("ArchiveByRoom", ctx, room.ID).Return(int64(0), errors.New("tx aborted"))

	err := svc.Delete(ctx, room.ID)

	require.Error(t, err)
	rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
