package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gormDB.Exec("PRAGMA foreign_keys = ON").Error)

	err = gormDB.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.PriorityModel{},
		&models.TicketModel{},
		&models.StatusHistoryModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
	)
	require.NoError(t, err)

	return gormDB
}

type fixtures struct {
	reporter   *identity.User
	technician *identity.User
	category   *catalog.Category
	priority   *catalog.Priority
}

func seedFixtures(t *testing.T, gormDB *gorm.DB) fixtures {
	ctx := context.Background()
	userRepo := NewUserRepository(gormDB)
	categoryRepo := NewCategoryRepository(gormDB)
	priorityRepo := NewPriorityRepository(gormDB)

	reporter, err := identity.NewUser("alice", "alice@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, reporter))

	technician, err := identity.NewUser("bob", "bob@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, technician.AssignRole(identity.RoleTechnician))
	require.NoError(t, userRepo.Save(ctx, technician))

	category, err := catalog.NewCategory("hardware")
	require.NoError(t, err)
	require.NoError(t, categoryRepo.Save(ctx, category))

	priority, err := catalog.NewPriority("high", 1)
	require.NoError(t, err)
	require.NoError(t, priorityRepo.Save(ctx, priority))

	return fixtures{reporter: reporter, technician: technician, category: category, priority: priority}
}

func createTestTicket(t *testing.T, fx fixtures, title string) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "the printer is on fire", fx.category.ID(), fx.priority.ID(), fx.reporter.ID())
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "printer trouble")
	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.Title(), found.Title())
	assert.Equal(t, vo.StatusNew, found.Status())
	assert.Equal(t, fx.reporter.ID(), found.ReporterID())
	assert.Nil(t, found.AssigneeID())
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	gormDB := setupTestDB(t)
	seedFixtures(t, gormDB)
	repo := NewTicketRepository(gormDB)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.Error(t, err)
}

func TestTicketRepository_Update_PersistsAssignment(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "vpn down")
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.AssignTechnician(fx.technician.ID()))
	require.NoError(t, tk.ChangeStatus(vo.StatusOpen, fx.technician.ID()))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, found.Status())
	require.NotNil(t, found.AssigneeID())
	assert.Equal(t, fx.technician.ID(), *found.AssigneeID())
	assert.NotNil(t, found.AssignedAt())
}

func TestTicketRepository_List_Filters(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	first := createTestTicket(t, fx, "broken keyboard")
	require.NoError(t, repo.Save(ctx, first))

	second := createTestTicket(t, fx, "flickering monitor")
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, second.ChangeStatus(vo.StatusOpen, fx.reporter.ID()))
	require.NoError(t, repo.Update(ctx, second))

	t.Run("no filter returns everything", func(t *testing.T) {
		list, total, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		open := vo.StatusOpen
		list, total, err := repo.List(ctx, ticket.TicketFilter{Status: &open})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, second.ID(), list[0].ID())
	})

	t.Run("search matches title", func(t *testing.T) {
		list, total, err := repo.List(ctx, ticket.TicketFilter{Search: "keyboard"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID(), list[0].ID())
	})

	t.Run("pagination caps page size", func(t *testing.T) {
		list, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 1)
	})

	t.Run("unknown sort column falls back to created_at", func(t *testing.T) {
		_, _, err := repo.List(ctx, ticket.TicketFilter{SortBy: "password_hash; DROP TABLE tickets"})
		assert.NoError(t, err)
	})
}

func TestStatusHistoryRepository_ChainOrdering(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	ticketRepo := NewTicketRepository(gormDB)
	historyRepo := NewStatusHistoryRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "audited ticket")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	creation, err := ticket.NewCreationRecord(tk.ID(), vo.StatusNew, fx.reporter.ID())
	require.NoError(t, err)
	require.NoError(t, historyRepo.Append(ctx, creation))

	from := vo.StatusNew
	opened, err := ticket.NewStatusHistory(tk.ID(), &from, vo.StatusOpen, fx.technician.ID())
	require.NoError(t, err)
	require.NoError(t, historyRepo.Append(ctx, opened))

	records, err := historyRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].IsCreationRecord())
	assert.Equal(t, vo.StatusNew, records[0].ToStatus())
	require.NotNil(t, records[1].FromStatus())
	assert.Equal(t, vo.StatusNew, *records[1].FromStatus())
	assert.Equal(t, vo.StatusOpen, records[1].ToStatus())
}

func TestTicketRepository_Delete_CascadesChildren(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	ticketRepo := NewTicketRepository(gormDB)
	historyRepo := NewStatusHistoryRepository(gormDB)
	commentRepo := NewCommentRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "short lived")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	creation, err := ticket.NewCreationRecord(tk.ID(), vo.StatusNew, fx.reporter.ID())
	require.NoError(t, err)
	require.NoError(t, historyRepo.Append(ctx, creation))

	comment, err := ticket.NewComment(tk.ID(), fx.reporter.ID(), "please hurry")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, comment))

	require.NoError(t, ticketRepo.Delete(ctx, tk.ID()))

	records, err := historyRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, records)

	comments, err := commentRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCatalogRepositories_DeleteProtection(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	ticketRepo := NewTicketRepository(gormDB)
	categoryRepo := NewCategoryRepository(gormDB)
	priorityRepo := NewPriorityRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "holds references")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	err := categoryRepo.Delete(ctx, fx.category.ID())
	assert.ErrorIs(t, err, catalog.ErrInUse)

	err = priorityRepo.Delete(ctx, fx.priority.ID())
	assert.ErrorIs(t, err, catalog.ErrInUse)

	require.NoError(t, ticketRepo.Delete(ctx, tk.ID()))
	assert.NoError(t, categoryRepo.Delete(ctx, fx.category.ID()))
	assert.NoError(t, priorityRepo.Delete(ctx, fx.priority.ID()))
}

func TestTransactionManager_RollsBackHistoryWithTicket(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	ticketRepo := NewTicketRepository(gormDB)
	historyRepo := NewStatusHistoryRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, fx, "rolled back")

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ticketRepo.Save(txCtx, tk); err != nil {
			return err
		}
		creation, err := ticket.NewCreationRecord(tk.ID(), vo.StatusNew, fx.reporter.ID())
		if err != nil {
			return err
		}
		if err := historyRepo.Append(txCtx, creation); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	list, count, listErr := ticketRepo.List(ctx, ticket.TicketFilter{})
	require.NoError(t, listErr)
	assert.Zero(t, count)
	assert.Empty(t, list)
}

func TestUserRepository_EligibleTechnicians(t *testing.T) {
	gormDB := setupTestDB(t)
	fx := seedFixtures(t, gormDB)
	userRepo := NewUserRepository(gormDB)
	ctx := context.Background()

	staff, err := identity.NewUser("carol", "carol@example.com", "hash")
	require.NoError(t, err)
	staff.SetStaff(true)
	require.NoError(t, userRepo.Save(ctx, staff))

	eligible, err := userRepo.ListEligibleTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, eligible, 2)

	names := []string{eligible[0].Username(), eligible[1].Username()}
	assert.Contains(t, names, fx.technician.Username())
	assert.Contains(t, names, staff.Username())
}
