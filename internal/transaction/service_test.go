package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

var testDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func TestService_Add(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantTx    transaction.Transaction
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Date:     testDate,
				Type:     transaction.TypeExpense,
				Category: "  rent  ",
				Amount:   1500000,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Load(gomock.Any(), "Asha").
					Return(nil, nil)
				m.EXPECT().
					Save(gomock.Any(), "Asha", gomock.Len(1)).
					Return(nil)
			},
			wantTx: transaction.Transaction{
				Date:     testDate,
				Type:     transaction.TypeExpense,
				Category: "Rent",
				Amount:   1500000,
			},
		},
		{
			name: "EmptyCategory",
			params: transaction.CreateParams{
				Date:   testDate,
				Type:   transaction.TypeExpense,
				Amount: 100,
			},
			wantErr: transaction.ErrEmptyCategory,
		},
		{
			name: "BlankCategory",
			params: transaction.CreateParams{
				Date:     testDate,
				Type:     transaction.TypeExpense,
				Category: "   ",
				Amount:   100,
			},
			wantErr: transaction.ErrEmptyCategory,
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Date:     testDate,
				Type:     transaction.TypeIncome,
				Category: "Salary",
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Date:     testDate,
				Type:     transaction.TypeIncome,
				Category: "Salary",
				Amount:   -100,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownType",
			params: transaction.CreateParams{
				Date:     testDate,
				Type:     "Transfer",
				Category: "Misc",
				Amount:   100,
			},
			wantErr: transaction.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			index, tx, err := svc.Add(context.Background(), "Asha", tt.params)

			if tt.wantErr != nil {
				// No repo expectations are set: validation fails before any call.
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, index)
			assert.Equal(t, tt.wantTx, tx)
		})
	}
}

func TestService_Add_AppendsToExistingTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := []transaction.Transaction{
		{Date: testDate, Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
	}

	var saved []transaction.Transaction

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), "Asha").Return(existing, nil)
	repo.EXPECT().
		Save(gomock.Any(), "Asha", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, txs []transaction.Transaction) error {
			saved = txs
			return nil
		})

	svc := transaction.NewService(repo)
	index, _, err := svc.Add(context.Background(), "Asha", transaction.CreateParams{
		Date:     testDate.AddDate(0, 0, 1),
		Type:     transaction.TypeExpense,
		Category: "Rent",
		Amount:   1500000,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, index)
	require.Len(t, saved, 2)
	assert.Equal(t, "Salary", saved[0].Category)
	assert.Equal(t, "Rent", saved[1].Category)
}

func TestService_Edit(t *testing.T) {
	table := []transaction.Transaction{
		{Date: testDate, Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
		{Date: testDate, Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
	}

	t.Run("ReplacesInPlace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var saved []transaction.Transaction

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "Asha").Return(append([]transaction.Transaction{}, table...), nil)
		repo.EXPECT().
			Save(gomock.Any(), "Asha", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, txs []transaction.Transaction) error {
				saved = txs
				return nil
			})

		svc := transaction.NewService(repo)
		tx, err := svc.Edit(context.Background(), "Asha", 1, transaction.CreateParams{
			Date:     testDate,
			Type:     transaction.TypeExpense,
			Category: "groceries",
			Amount:   200000,
		})

		require.NoError(t, err)
		assert.Equal(t, "Groceries", tx.Category)
		require.Len(t, saved, 2)
		assert.Equal(t, "Salary", saved[0].Category)
		assert.Equal(t, "Groceries", saved[1].Category)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "Asha").Return(append([]transaction.Transaction{}, table...), nil)

		svc := transaction.NewService(repo)
		_, err := svc.Edit(context.Background(), "Asha", 2, transaction.CreateParams{
			Date:     testDate,
			Type:     transaction.TypeExpense,
			Category: "Rent",
			Amount:   100,
		})

		assert.ErrorIs(t, err, transaction.ErrIndexOutOfRange)
	})

	t.Run("ValidationBeforeLoad", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)

		svc := transaction.NewService(repo)
		_, err := svc.Edit(context.Background(), "Asha", 0, transaction.CreateParams{
			Date: testDate,
			Type: transaction.TypeExpense,
		})

		assert.ErrorIs(t, err, transaction.ErrEmptyCategory)
	})
}

func TestService_Delete(t *testing.T) {
	table := []transaction.Transaction{
		{Date: testDate, Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
		{Date: testDate, Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		{Date: testDate, Type: transaction.TypeExpense, Category: "Food", Amount: 200000},
	}

	t.Run("CompactsRemainingRows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var saved []transaction.Transaction

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "Asha").Return(append([]transaction.Transaction{}, table...), nil)
		repo.EXPECT().
			Save(gomock.Any(), "Asha", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, txs []transaction.Transaction) error {
				saved = txs
				return nil
			})

		svc := transaction.NewService(repo)
		require.NoError(t, svc.Delete(context.Background(), "Asha", 1))

		require.Len(t, saved, 2)
		assert.Equal(t, "Salary", saved[0].Category)
		assert.Equal(t, "Food", saved[1].Category)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "Asha").Return(append([]transaction.Transaction{}, table...), nil)

		svc := transaction.NewService(repo)
		assert.ErrorIs(t, svc.Delete(context.Background(), "Asha", 3), transaction.ErrIndexOutOfRange)
	})

	t.Run("LoadError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "Asha").Return(nil, errors.New("disk error"))

		svc := transaction.NewService(repo)
		assert.Error(t, svc.Delete(context.Background(), "Asha", 0))
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().RegisterUsername(gomock.Any(), "Asha").Return(nil)

	svc := transaction.NewService(repo)
	assert.NoError(t, svc.Register(context.Background(), "Asha"))
}
