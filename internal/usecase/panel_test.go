//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/pkg/clock"
	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/pkg/errs"
	"coworking-admin/internal/usecase"
	usecasemock "coworking-admin/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPanel(t *testing.T) (*usecase.Panel, *usecasemock.MockGateway, *clock.Fixed) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockGateway(ctrl)
	clk := clock.NewFixed(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	panel := usecase.NewPanel("desks", usecase.DeskMessages(), gw, config.NewTestConfig(), clk, nil, log)
	return panel, gw, clk
}

func testResources() []resource.Resource {
	return []resource.Resource{
		{ID: 1, Number: 1, Name: "Janela"},
		{ID: 2, Number: 2, Name: "Fundos"},
	}
}

func testCustomers() []rental.Customer {
	return []rental.Customer{
		{ID: 10, Name: "Ana Souza", Email: "ana@example.com"},
	}
}

func testPlans() []rental.Plan {
	return []rental.Plan{
		{
			ID:       20,
			Name:     "Semanal Manhã",
			Price:    350,
			Category: rental.Category{ID: 1, Name: "Semanal", BaseDurationDays: 7},
			Shift:    rental.Shift{ID: 1, Name: "Manhã", StartTime: "08:00", EndTime: "12:00"},
		},
	}
}

func activeRecord(t *testing.T) rental.Record {
	t.Helper()

	period, err := rental.NewPeriod(
		time.Date(2025, time.March, 14, 8, 0, 0, 0, time.Local),
		time.Date(2025, time.March, 16, 12, 0, 0, 0, time.Local),
	)
	require.NoError(t, err)
	return rental.Record{ID: 100, ResourceID: 1, Period: period}
}

func expectCatalogs(gw *usecasemock.MockGateway) {
	gw.EXPECT().ListCustomers(gomock.Any()).Return(testCustomers(), nil).AnyTimes()
	gw.EXPECT().ListPlans(gomock.Any()).Return(testPlans(), nil).AnyTimes()
	gw.EXPECT().ListShifts(gomock.Any()).Return([]rental.Shift{{ID: 1, Name: "Manhã"}}, nil).AnyTimes()
}

func notificationMessages(panel *usecase.Panel) []string {
	var msgs []string
	for _, n := range panel.Notifications() {
		msgs = append(msgs, n.Message)
	}
	return msgs
}

// =============================================================================
// Load Tests
// =============================================================================

func TestPanel_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves status and fills catalogs", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResources(ctx).Return(testResources(), nil)
		gw.EXPECT().ListRentals(ctx).Return([]rental.Record{activeRecord(t)}, nil)
		expectCatalogs(gw)

		require.NoError(t, panel.Load(ctx))

		snap := panel.Snapshot()
		require.Len(t, snap.Resources, 2)
		assert.Equal(t, resource.StatusOccupied, snap.Resources[0].Status)
		assert.Equal(t, resource.StatusAvailable, snap.Resources[1].Status)
		assert.Len(t, snap.Customers, 1)
		assert.Len(t, snap.Plans, 1)
		assert.Len(t, snap.Shifts, 1)
	})

	t.Run("resource fetch failure notifies with prefix", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResources(ctx).Return(nil, errs.New("connection refused"))
		expectCatalogs(gw)

		err := panel.Load(ctx)
		require.Error(t, err)

		msgs := notificationMessages(panel)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "Erro ao carregar mesas: ")
		assert.Contains(t, msgs[0], "connection refused")
	})

	t.Run("rental fetch failure falls back to all available", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResources(ctx).Return(testResources(), nil)
		gw.EXPECT().ListRentals(ctx).Return(nil, errs.New("timeout"))
		expectCatalogs(gw)

		require.NoError(t, panel.Load(ctx))

		snap := panel.Snapshot()
		for _, r := range snap.Resources {
			assert.Equal(t, resource.StatusAvailable, r.Status)
			assert.Nil(t, r.NextAvailable)
		}
		assert.Empty(t, panel.Notifications())
	})

	t.Run("catalog failures are tolerated", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResources(ctx).Return(testResources(), nil)
		gw.EXPECT().ListRentals(ctx).Return(nil, nil)
		gw.EXPECT().ListCustomers(ctx).Return(nil, errs.New("boom"))
		gw.EXPECT().ListPlans(ctx).Return(nil, errs.New("boom"))
		gw.EXPECT().ListShifts(ctx).Return(nil, errs.New("boom"))

		require.NoError(t, panel.Load(ctx))
		assert.Empty(t, panel.Notifications())
	})
}

// =============================================================================
// Register/Edit Modal Tests
// =============================================================================

func TestPanel_SaveResource(t *testing.T) {
	ctx := context.Background()

	load := func(t *testing.T, panel *usecase.Panel, gw *usecasemock.MockGateway) {
		gw.EXPECT().ListResources(gomock.Any()).Return(testResources(), nil).AnyTimes()
		gw.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()
		expectCatalogs(gw)
		require.NoError(t, panel.Load(ctx))
	}

	t.Run("create uses default message and closes modal", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().CreateResource(ctx, 3, "Entrada").Return("", nil)

		panel.OpenRegister()
		panel.SetForm(usecase.ResourceForm{Number: 3, Name: "Entrada"})
		require.NoError(t, panel.SaveResource(ctx))

		snap := panel.Snapshot()
		assert.False(t, snap.RegisterOpen)
		assert.Nil(t, snap.Editing)
		assert.Contains(t, notificationMessages(panel), "Mesa cadastrada com sucesso!")
	})

	t.Run("update prefers the backend message", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().UpdateResource(ctx, int64(1), 5, "Janela maior").Return("Registro atualizado", nil)

		require.NoError(t, panel.OpenEdit(1))
		panel.SetForm(usecase.ResourceForm{Number: 5, Name: "Janela maior"})
		require.NoError(t, panel.SaveResource(ctx))

		assert.Contains(t, notificationMessages(panel), "Registro atualizado")
	})

	t.Run("edit snapshots the resource", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)

		require.NoError(t, panel.OpenEdit(2))
		snap := panel.Snapshot()
		require.NotNil(t, snap.Editing)
		assert.Equal(t, int64(2), snap.Editing.ID)
		assert.Equal(t, usecase.ResourceForm{Number: 2, Name: "Fundos"}, snap.Form)

		assert.ErrorIs(t, panel.OpenEdit(99), errs.ErrResourceNotFound)
	})

	t.Run("backend error keeps the modal open", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().CreateResource(ctx, 3, "").Return("", errs.New("boom"))

		panel.OpenRegister()
		panel.SetForm(usecase.ResourceForm{Number: 3})
		require.Error(t, panel.SaveResource(ctx))

		snap := panel.Snapshot()
		assert.True(t, snap.RegisterOpen)
		assert.Contains(t, notificationMessages(panel), "Erro ao salvar mesa")
	})

	t.Run("invalid number never reaches the gateway", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)

		panel.OpenRegister()
		panel.SetForm(usecase.ResourceForm{Number: 0, Name: "Anônima"})
		assert.ErrorIs(t, panel.SaveResource(ctx), resource.ErrInvalidNumber)
	})
}

// =============================================================================
// Rental Modal Tests
// =============================================================================

func TestPanel_RentalModal(t *testing.T) {
	ctx := context.Background()

	load := func(t *testing.T, panel *usecase.Panel, gw *usecasemock.MockGateway) {
		gw.EXPECT().ListResources(gomock.Any()).Return(testResources(), nil).AnyTimes()
		gw.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()
		expectCatalogs(gw)
		require.NoError(t, panel.Load(ctx))
	}

	t.Run("open initializes the form to today", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)

		require.NoError(t, panel.OpenRental(1))

		snap := panel.Snapshot()
		assert.True(t, snap.RentalOpen)
		assert.Equal(t, "15/03/2025", snap.StartDisplay)
		assert.Equal(t, int64(1), snap.RentalForm.ResourceID)
		assert.True(t, snap.Quote.IsZero())
	})

	t.Run("plan selection computes the quote", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))

		panel.ChangePlan(20)

		snap := panel.Snapshot()
		assert.Equal(t, "08:00", snap.Quote.ShiftStart)
		assert.Equal(t, "12:00", snap.Quote.ShiftEnd)
		assert.Equal(t, "21/03/2025", snap.Quote.EndDate.Display())
		assert.Equal(t, "2025-03-15T08:00", snap.Quote.StartAt)
		assert.Equal(t, "2025-03-21T12:00", snap.Quote.EndAt)
		assert.Equal(t, 350.0, snap.Quote.TotalPrice)
	})

	t.Run("invalid start date restores the previous value", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))
		panel.ChangePlan(20)

		assert.Equal(t, "15/03/2025", panel.ChangeStartDate("31/02/2025"))
		assert.Equal(t, "15/03/2025", panel.ChangeStartDate("2025-03-20"))

		assert.Equal(t, "20/03/2025", panel.ChangeStartDate("20/03/2025"))
		snap := panel.Snapshot()
		assert.Equal(t, "26/03/2025", snap.Quote.EndDate.Display())
	})

	t.Run("loose date entry is zero padded", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))
		panel.ChangePlan(20)

		assert.Equal(t, "01/04/2025", panel.ChangeStartDate("1/4/2025"))
	})

	t.Run("save posts the resolved booking and refreshes", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))
		panel.ChangeCustomer(10)
		panel.ChangePlan(20)

		gw.EXPECT().CreateRental(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, booking usecase.Booking) (string, error) {
				assert.Equal(t, int64(1), booking.Resource.ID)
				assert.Equal(t, int64(10), booking.Customer.ID)
				assert.Equal(t, int64(20), booking.Plan.ID)
				assert.Equal(t, "2025-03-15T08:00", booking.StartAt)
				assert.Equal(t, "2025-03-21T12:00", booking.EndAt)
				assert.Equal(t, 350.0, booking.TotalPrice)
				return "", nil
			})

		require.NoError(t, panel.SaveRental(ctx))

		snap := panel.Snapshot()
		assert.False(t, snap.RentalOpen)
		assert.Contains(t, notificationMessages(panel), "Aluguel realizado com sucesso!")
	})

	t.Run("unknown customer fails before the network", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))
		panel.ChangeCustomer(999)
		panel.ChangePlan(20)

		assert.ErrorIs(t, panel.SaveRental(ctx), errs.ErrCustomerNotFound)
		assert.Contains(t, notificationMessages(panel), "Cliente não encontrado")
	})

	t.Run("unknown plan fails before the network", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		require.NoError(t, panel.OpenRental(1))
		panel.ChangeCustomer(10)
		panel.ChangePlan(999)

		assert.ErrorIs(t, panel.SaveRental(ctx), errs.ErrPlanNotFound)
		assert.Contains(t, notificationMessages(panel), "Plano de aluguel não encontrado")
	})

	t.Run("general open requires choosing a resource", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)

		panel.OpenRentalGeneral()
		panel.ChangeCustomer(10)
		panel.ChangePlan(20)

		assert.ErrorIs(t, panel.SaveRental(ctx), errs.ErrResourceNotFound)
		assert.Contains(t, notificationMessages(panel), "Mesa não encontrada")
	})
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestPanel_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses when rentals exist", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return([]rental.Record{activeRecord(t)}, nil)

		assert.ErrorIs(t, panel.Delete(ctx, 1), errs.ErrResourceHasRentals)
		assert.Contains(t, notificationMessages(panel),
			"Esta mesa possui aluguéis vinculados e não pode ser removida. Exclua os aluguéis primeiro.")
	})

	t.Run("deletes and refreshes when clear", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResourceRentals(ctx, int64(2)).Return(nil, nil)
		gw.EXPECT().DeleteResource(ctx, int64(2)).Return("", nil)
		gw.EXPECT().ListResources(gomock.Any()).Return(testResources()[:1], nil)
		gw.EXPECT().ListRentals(gomock.Any()).Return(nil, nil)

		require.NoError(t, panel.Delete(ctx, 2))
		assert.Contains(t, notificationMessages(panel), "Mesa excluída com sucesso!")
	})

	t.Run("rental check failure stops the deletion", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return(nil, errs.New("boom"))

		require.Error(t, panel.Delete(ctx, 1))
		assert.Contains(t, notificationMessages(panel), "Erro ao excluir mesa")
	})
}

// =============================================================================
// Calendar Tests
// =============================================================================

func TestPanel_Calendar(t *testing.T) {
	ctx := context.Background()

	load := func(t *testing.T, panel *usecase.Panel, gw *usecasemock.MockGateway) {
		gw.EXPECT().ListResources(gomock.Any()).Return(testResources(), nil).AnyTimes()
		gw.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()
		expectCatalogs(gw)
		require.NoError(t, panel.Load(ctx))
	}

	t.Run("open fetches the resource rentals", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return([]rental.Record{activeRecord(t)}, nil)

		require.NoError(t, panel.OpenCalendar(ctx, 1))

		snap := panel.Snapshot()
		assert.True(t, snap.CalendarOpen)
		require.NotNil(t, snap.CalendarResource)
		assert.Equal(t, int64(1), snap.CalendarResource.ID)
		assert.Equal(t, "março de 2025", panel.CalendarMonthLabel())

		// March 2025 starts on a Saturday: 6 leading placeholders + 31 days.
		days := panel.CalendarDays()
		assert.Len(t, days, 37)
	})

	t.Run("fetch failure notifies with prefix", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return(nil, errs.New("boom"))

		require.Error(t, panel.OpenCalendar(ctx, 1))
		msgs := notificationMessages(panel)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "Erro ao carregar calendário: ")
	})

	t.Run("month navigation", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return(nil, nil)
		require.NoError(t, panel.OpenCalendar(ctx, 1))

		panel.NextMonth()
		assert.Equal(t, "abril de 2025", panel.CalendarMonthLabel())
		panel.PrevMonth()
		panel.PrevMonth()
		assert.Equal(t, "fevereiro de 2025", panel.CalendarMonthLabel())
	})

	t.Run("unknown resource selection is ignored", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)
		gw.EXPECT().ListResourceRentals(ctx, int64(1)).Return(nil, nil)
		require.NoError(t, panel.OpenCalendar(ctx, 1))

		require.NoError(t, panel.ChangeCalendarResource(ctx, 99))
		snap := panel.Snapshot()
		assert.Equal(t, int64(1), snap.CalendarResource.ID)
	})

	t.Run("unknown resource cannot open the calendar", func(t *testing.T) {
		panel, gw, _ := newTestPanel(t)
		load(t, panel, gw)

		assert.ErrorIs(t, panel.OpenCalendar(ctx, 99), errs.ErrResourceNotFound)
	})
}
