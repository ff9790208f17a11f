package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/cash-organizer/backend/internal/domain/error"
	"github.com/cash-organizer/backend/internal/integration/persistence"
)

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seedGoal := func(t *testing.T, f *fulfillFixture, funded string) {
		t.Helper()
		if funded != "" {
			seedTransaction(t, f.db, f.userID, f.goal.BalanceID, funded)
		}
	}

	t.Run("deletes an unfunded goal", func(t *testing.T) {
		f := newFulfillFixture(t)
		goalRepo := persistence.NewGoalRepository(f.db)
		uc := NewDeleteGoalUseCase(goalRepo, f.transactionRepo)

		output, err := uc.Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: f.goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected the goal to be deleted")
		}

		if _, err := goalRepo.FindByID(ctx, f.goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected goal to be gone, got %v", err)
		}
	})

	t.Run("leaves a partially funded goal untouched", func(t *testing.T) {
		f := newFulfillFixture(t)
		goalRepo := persistence.NewGoalRepository(f.db)
		uc := NewDeleteGoalUseCase(goalRepo, f.transactionRepo)
		seedGoal(t, f, "400")

		output, err := uc.Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: f.goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Deleted {
			t.Error("a partially funded goal must not be deleted")
		}

		if _, err := goalRepo.FindByID(ctx, f.goal.ID); err != nil {
			t.Errorf("goal should still exist, got %v", err)
		}
	})

	t.Run("deletes a fully funded goal", func(t *testing.T) {
		f := newFulfillFixture(t)
		goalRepo := persistence.NewGoalRepository(f.db)
		uc := NewDeleteGoalUseCase(goalRepo, f.transactionRepo)
		seedGoal(t, f, "1000")

		output, err := uc.Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: f.goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected the goal to be deleted")
		}
	})

	t.Run("reports goals of other users as not found", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewDeleteGoalUseCase(persistence.NewGoalRepository(f.db), f.transactionRepo)

		_, err := uc.Execute(ctx, DeleteGoalInput{UserID: uuid.New(), GoalID: f.goal.ID})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("reports unknown goals as not found", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewDeleteGoalUseCase(persistence.NewGoalRepository(f.db), f.transactionRepo)

		_, err := uc.Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: uuid.New()})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lists goals with derived funding state", func(t *testing.T) {
		f := newFulfillFixture(t)
		goalRepo := persistence.NewGoalRepository(f.db)
		uc := NewListGoalsUseCase(goalRepo, f.transactionRepo)

		seedTransaction(t, f.db, f.userID, f.goal.BalanceID, "250")

		output, err := uc.Execute(ctx, ListGoalsInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 1 {
			t.Fatalf("expected one goal, got %d", len(output.Goals))
		}
		if !output.Goals[0].CurrentAmount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("current amount = %s, want 250", output.Goals[0].CurrentAmount)
		}
		if output.Goals[0].IsDeletable {
			t.Error("a partially funded goal should not be deletable")
		}
	})

	t.Run("does not include goals of other users", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewListGoalsUseCase(persistence.NewGoalRepository(f.db), f.transactionRepo)

		output, err := uc.Execute(ctx, ListGoalsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 0 {
			t.Errorf("expected no goals, got %d", len(output.Goals))
		}
	})
}

func TestGetGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a goal with its current amount", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewGetGoalUseCase(persistence.NewGoalRepository(f.db), f.transactionRepo)

		output, err := uc.Execute(ctx, GetGoalInput{UserID: f.userID, GoalID: f.goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Goal.Name != "Vacation" {
			t.Errorf("goal name = %q, want Vacation", output.Goal.Goal.Name)
		}
		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("current amount = %s, want 0", output.Goal.CurrentAmount)
		}
	})

	t.Run("reports goals of other users as not found", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewGetGoalUseCase(persistence.NewGoalRepository(f.db), f.transactionRepo)

		_, err := uc.Execute(ctx, GetGoalInput{UserID: uuid.New(), GoalID: f.goal.ID})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestRenameGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("renames the goal but not the backing balance", func(t *testing.T) {
		f := newFulfillFixture(t)
		goalRepo := persistence.NewGoalRepository(f.db)
		balanceRepo := persistence.NewBalanceRepository(f.db)
		uc := NewRenameGoalUseCase(goalRepo)

		output, err := uc.Execute(ctx, RenameGoalInput{UserID: f.userID, GoalID: f.goal.ID, Name: "World trip"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != "World trip" {
			t.Errorf("goal name = %q, want World trip", output.Goal.Name)
		}

		backing, err := balanceRepo.FindByID(ctx, f.goal.BalanceID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backing.Name != "System balance for Vacation goal" {
			t.Errorf("backing balance name changed: %q", backing.Name)
		}
	})

	t.Run("rejects blank names", func(t *testing.T) {
		f := newFulfillFixture(t)
		uc := NewRenameGoalUseCase(persistence.NewGoalRepository(f.db))

		_, err := uc.Execute(ctx, RenameGoalInput{UserID: f.userID, GoalID: f.goal.ID, Name: "  "})
		if !errors.Is(err, domainerror.ErrInvalidGoalName) {
			t.Errorf("expected invalid goal name error, got %v", err)
		}
	})
}
