package tickets

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"booking/common"
	"booking/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedTickets(t *testing.T, db *gorm.DB, tickets ...common.Ticket) {
	t.Helper()

	for i := range tickets {
		if err := db.Create(&tickets[i]).Error; err != nil {
			t.Fatalf("Failed to seed ticket %s: %v", tickets[i].ID, err)
		}
	}
}

func countTickets(t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&common.Ticket{}).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count tickets: %v", err)
	}
	return count
}

func newTestService(db *gorm.DB) *Service {
	return NewService(NewRepository(db), zap.NewNop())
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a new ticket with extra fields", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		ticket, err := svc.Create(ctx, TicketForm{
			ID:    "A1",
			Name:  "Budi",
			NoHP:  "081234567890",
			Extra: map[string]any{"jumlah": "2"},
		})
		require.NoError(t, err)
		assert.Equal(t, "A1", ticket.ID)

		var stored common.Ticket
		require.NoError(t, db.First(&stored, "id = ?", "A1").Error)
		assert.Equal(t, "Budi", stored.Name)
		assert.Equal(t, "081234567890", stored.NoHP)
		assert.Equal(t, "2", stored.Extra["jumlah"])
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
		svc := newTestService(db)

		_, err := svc.Create(ctx, TicketForm{ID: "A1", Name: "Sari", NoHP: "081234567891"})

		verr, ok := AsValidationError(err)
		require.True(t, ok, "expected validation error, got %v", err)
		assert.True(t, verr.HasField("id"))
		assert.Contains(t, verr.Errors, FieldError{Field: "id", Message: MsgDuplicateID})
		assert.EqualValues(t, 1, countTickets(t, db, "id = ?", "A1"))
	})

	t.Run("rejects an invalid phone", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		_, err := svc.Create(ctx, TicketForm{ID: "A2", Name: "Budi", NoHP: "12345"})

		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.True(t, verr.HasField("nohp"))
		assert.EqualValues(t, 0, countTickets(t, db, "1 = 1"))
	})

	t.Run("reports duplicate id and phone together", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
		svc := newTestService(db)

		_, err := svc.Create(ctx, TicketForm{ID: "A1", Name: "Budi", NoHP: "bad"})

		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.True(t, verr.HasField("id"))
		assert.True(t, verr.HasField("nohp"))
	})
}

func TestService_GetByName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
	svc := newTestService(db)

	ticket, err := svc.GetByName(ctx, "Budi")
	require.NoError(t, err)
	assert.Equal(t, "A1", ticket.ID)

	_, err = svc.GetByName(ctx, "Nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTicketNotFound))
	assert.Equal(t, http.StatusNotFound, common.AsAppError(err).Code)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping the same id is allowed", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
		svc := newTestService(db)

		err := svc.Update(ctx, TicketForm{ID: "A1", Name: "Budi Santoso", NoHP: "085712345678"})
		require.NoError(t, err)

		var stored common.Ticket
		require.NoError(t, db.First(&stored, "id = ?", "A1").Error)
		assert.Equal(t, "Budi Santoso", stored.Name)
		assert.Equal(t, "085712345678", stored.NoHP)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		err := svc.Update(ctx, TicketForm{ID: "ZZ", Name: "Budi", NoHP: "081234567890"})
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})

	t.Run("invalid phone leaves the row untouched", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
		svc := newTestService(db)

		err := svc.Update(ctx, TicketForm{ID: "A1", Name: "Budi", NoHP: "nope"})

		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.True(t, verr.HasField("nohp"))
		assert.EqualValues(t, 1, countTickets(t, db, "nohp = ?", "081234567890"))
	})
}

func TestService_DeleteByName(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every matching row", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db,
			common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"},
			common.Ticket{ID: "A2", Name: "Budi", NoHP: "081234567891"},
			common.Ticket{ID: "A3", Name: "Sari", NoHP: "081234567892"},
		)
		svc := newTestService(db)

		deleted, err := svc.DeleteByName(ctx, "Budi")
		require.NoError(t, err)
		assert.EqualValues(t, 2, deleted)
		assert.EqualValues(t, 0, countTickets(t, db, "name = ?", "Budi"))
		assert.EqualValues(t, 1, countTickets(t, db, "name = ?", "Sari"))
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		seedTickets(t, db, common.Ticket{ID: "A1", Name: "Budi", NoHP: "081234567890"})
		svc := newTestService(db)

		deleted, err := svc.DeleteByName(ctx, "Nobody")
		require.NoError(t, err)
		assert.EqualValues(t, 0, deleted)
		assert.EqualValues(t, 1, countTickets(t, db, "1 = 1"))
	})
}
